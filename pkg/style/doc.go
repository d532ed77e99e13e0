// Package style renders renum's user-facing output.
//
// All styling is driven by semantic names resolved through a registry
// loaded from an embedded YAML theme. Colors are adaptive and adjust to
// light and dark terminal backgrounds. A custom theme file can replace
// the embedded one at runtime via LoadStyles.
//
// Two renderers implement the Renderer interface: TerminalRenderer for
// rich output and PlainRenderer for pipes, redirects, and NO_COLOR
// environments. NewRenderer picks the right one for a ui.Format.
package style
