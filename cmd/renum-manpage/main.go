package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/renum/cmd/renum"
	"github.com/arthur-debert/renum/internal/version"
)

func main() {
	rootCmd := renum.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RENUM",
		Section: "1",
		Source:  "renum " + version.Version,
		Manual:  "renum manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
