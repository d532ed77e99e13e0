package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/renum/cmd/renum"
	"github.com/arthur-debert/renum/pkg/style"
	"github.com/arthur-debert/renum/pkg/ui"
)

func main() {
	rootCmd := renum.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(ui.FormatAuto, os.Stderr)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
