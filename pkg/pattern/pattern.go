// Package pattern compiles rename patterns of the form
// [<prefix>{padded_idx}]<suffix> into an immutable template and renders
// destination names from it.
//
// The grammar recognizes at most one replacement group, and the only valid
// group content is the literal token "padded_idx". A pattern without any
// group is a plain literal that renders identically for every index.
package pattern

import (
	"fmt"
	"strings"
)

// Field identifies a kind of dynamic content inside a pattern.
type Field int

const (
	// FieldPaddedIndex is a running index, zero-padded to the run's width.
	FieldPaddedIndex Field = iota
)

// segment is one (literal prefix, dynamic field) pair.
type segment struct {
	prefix string
	field  Field
}

// Pattern is a compiled rename template. It is immutable after Parse and
// safe to share across every render call of a run.
type Pattern struct {
	// segments holds at most one entry with the current grammar.
	segments []segment
	suffix   string
}

// Context carries the per-item values a render needs.
type Context struct {
	// Index is the zero-based running counter assigned in traversal order.
	Index int
	// Width is the padding width, constant across a run.
	Width int
}

// ParseError reports a malformed replacement group.
type ParseError struct {
	// Offset is the byte offset immediately after the offending '{'.
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected replacement group {padded_idx}, but content after opening brace at byte %d does not match", e.Offset)
}

// Parse compiles a raw pattern string.
//
// Only the first '{' is significant: text before it becomes the segment
// prefix and the text following it must read exactly "padded_idx}". Any
// later braces are part of the literal suffix. A string without '{' is a
// literal pattern with no dynamic content.
func Parse(s string) (*Pattern, error) {
	idx := strings.IndexByte(s, '{')
	if idx < 0 {
		return &Pattern{suffix: s}, nil
	}

	afterBrace := idx + 1
	rest, ok := strings.CutPrefix(s[afterBrace:], "padded_idx}")
	if !ok {
		return nil, &ParseError{Offset: afterBrace}
	}

	return &Pattern{
		segments: []segment{{prefix: s[:idx], field: FieldPaddedIndex}},
		suffix:   rest,
	}, nil
}

// HasDynamicContent reports whether the pattern contains a replacement
// group. Callers warn on literal patterns, which would rename every file
// to the same name.
func (p *Pattern) HasDynamicContent() bool {
	return len(p.segments) > 0
}

// String reconstructs the pattern source text.
func (p *Pattern) String() string {
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteString(seg.prefix)
		switch seg.field {
		case FieldPaddedIndex:
			b.WriteString("{padded_idx}")
		}
	}
	b.WriteString(p.suffix)
	return b.String()
}

// Render produces the destination name for one item. The index is
// left-padded with '0' to ctx.Width digits; an index wider than the
// padding is written in full, never truncated. Literal text is preserved
// byte for byte.
func (p *Pattern) Render(ctx Context) string {
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteString(seg.prefix)
		switch seg.field {
		case FieldPaddedIndex:
			fmt.Fprintf(&b, "%0*d", ctx.Width, ctx.Index)
		}
	}
	b.WriteString(p.suffix)
	return b.String()
}
