package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/renum/pkg/types"
	"github.com/arthur-debert/renum/pkg/ui"
)

// Renderer defines the interface for rendering renum's output
type Renderer interface {
	RenderReport(report *types.RunReport) string
	RenderError(err error) string
	RenderWarning(msg string) string
	RenderMessage(msg string) string
}

// NewRenderer creates a renderer for the given format. FormatAuto is
// resolved against the output before choosing.
func NewRenderer(format ui.Format, output *os.File) Renderer {
	if format.Resolve(output) == ui.FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderReport renders a rename run report
func (r *TerminalRenderer) RenderReport(report *types.RunReport) string {
	if report == nil || len(report.Items) == 0 {
		return GetStyle("muted").Render("No files to rename")
	}

	var result strings.Builder

	result.WriteString(GetStyle("title").Render(reportTitle(report)) + "\n\n")

	for _, item := range report.Items {
		result.WriteString(r.renderItem(item) + "\n")
	}

	result.WriteString("\n" + r.renderSummary(report))
	return result.String()
}

// renderItem renders a single rename row
func (r *TerminalRenderer) renderItem(item types.ItemResult) string {
	row := fmt.Sprintf("%s %s → %s",
		StatusIndicator(item.Status),
		GetStyle("source").Render(item.Source),
		GetStyle("target").Render(item.Dest))

	if item.Status == types.StatusFailed && item.Error != "" {
		row += "  " + GetStyle("error").Render(item.Error)
	}

	return Indent(row, 1)
}

func (r *TerminalRenderer) renderSummary(report *types.RunReport) string {
	renamed, planned, failed := report.Counts()

	if report.DryRun {
		return GetStyle("muted").Render(dryRunSummary(planned))
	}

	parts := []string{GetStyle("count").Render(fmt.Sprintf("%d renamed", renamed))}
	if failed > 0 {
		parts = append(parts, GetStyle("error").Render(fmt.Sprintf("%d failed", failed)))
	}
	return strings.Join(parts, ", ")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderWarning renders a warning message
func (r *TerminalRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Warning.Prefix.Text, pterm.Warning.MessageStyle.Sprint(msg))
}

// RenderMessage renders a simple message
func (r *TerminalRenderer) RenderMessage(msg string) string {
	return GetStyle("info").Render(msg)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderReport renders a plain rename run report
func (r *PlainRenderer) RenderReport(report *types.RunReport) string {
	if report == nil || len(report.Items) == 0 {
		return "No files to rename"
	}

	var result strings.Builder

	result.WriteString(reportTitle(report) + "\n\n")

	for _, item := range report.Items {
		row := fmt.Sprintf("%s: %s -> %s", item.Status, item.Source, item.Dest)
		if item.Status == types.StatusFailed && item.Error != "" {
			row += fmt.Sprintf(" (%s)", item.Error)
		}
		result.WriteString(row + "\n")
	}

	renamed, planned, failed := report.Counts()
	if report.DryRun {
		result.WriteString("\n" + dryRunSummary(planned))
	} else {
		summary := fmt.Sprintf("%d renamed", renamed)
		if failed > 0 {
			summary += fmt.Sprintf(", %d failed", failed)
		}
		result.WriteString("\n" + summary)
	}

	return result.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// RenderWarning renders a plain warning message
func (r *PlainRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("Warning: %s", msg)
}

// RenderMessage renders a plain message
func (r *PlainRenderer) RenderMessage(msg string) string {
	return msg
}

func reportTitle(report *types.RunReport) string {
	if report.DryRun {
		return fmt.Sprintf("Dry run: %d moves with %s", len(report.Items), report.Pattern)
	}
	return fmt.Sprintf("Renaming %d files with %s", len(report.Items), report.Pattern)
}

func dryRunSummary(planned int) string {
	return fmt.Sprintf("%d moves planned; use the --go flag to actually rename files", planned)
}
