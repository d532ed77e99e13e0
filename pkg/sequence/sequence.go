// Package sequence drives a set of file paths through a compiled rename
// pattern, assigning each path a running index in a pluggable traversal
// order and handing the resulting tasks to a caller-supplied visitor.
package sequence

import (
	"github.com/arthur-debert/renum/pkg/pattern"
)

// Task is one unit of work handed to a visitor: a source path and the
// destination rendered for its assigned index. Tasks are ephemeral; the
// sequencer does not retain them after the visitor returns.
type Task struct {
	Index  int
	Source string
	Dest   string
}

// Control is a visitor's verdict after one task: keep going, or stop the
// run carrying a value of the visitor's error type.
type Control[E any] struct {
	stop bool
	err  E
}

// Continue keeps the run going.
func Continue[E any]() Control[E] {
	return Control[E]{}
}

// Stop halts the run immediately; err is surfaced by Run.
func Stop[E any](err E) Control[E] {
	return Control[E]{stop: true, err: err}
}

// Visitor reacts to one task at a time. The sequencer is generic over the
// visitor's error type and propagates a stop value verbatim.
type Visitor[E any] interface {
	Visit(task Task) Control[E]
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc[E any] func(task Task) Control[E]

// Visit calls f.
func (f VisitorFunc[E]) Visit(task Task) Control[E] {
	return f(task)
}

// Run visits every path files yields, in files' own order, assigning
// indices 0, 1, 2, ... and rendering each destination through pat with a
// padding width fixed up front from the source's size hint.
//
// When the visitor stops, Run halts immediately: no further item is
// rendered or visited, and the stop value is returned with stopped true.
// Partial-failure policy belongs to the visitor; a best-effort visitor
// must swallow per-item failures and continue.
func Run[E any](files Source, pat *pattern.Pattern, visitor Visitor[E]) (stopErr E, stopped bool) {
	width := paddingWidth(files)

	for idx := 0; ; idx++ {
		source, ok := files.Next()
		if !ok {
			break
		}

		dest := pat.Render(pattern.Context{Index: idx, Width: width})
		if c := visitor.Visit(Task{Index: idx, Source: source, Dest: dest}); c.stop {
			return c.err, true
		}
	}

	var zero E
	return zero, false
}

// paddingWidth derives the run's padding width from the source's size
// hint, taking the upper bound when bounded and the lower bound
// otherwise. A hint of zero still yields width 1, so rendering stays
// total for empty input. The width is computed once and never revisited:
// if the source yields more items than hinted, late indices print wider
// than the padding instead of re-padding the whole run.
func paddingWidth(files Source) int {
	low, high, bounded := files.SizeHint()

	n := low
	if bounded {
		n = high
	}
	if n <= 0 {
		return 1
	}

	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
