package topics

// Renderer formats topic content for terminal display. The format
// argument is the topic file's extension, dot included, so a renderer
// can decide per file type whether to transform the content.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer is the default renderer. It passes content through
// unchanged regardless of format.
type PlainRenderer struct{}

// Render returns the content as-is.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
