package sequence

// Source yields file paths one at a time, front to back.
type Source interface {
	// Next returns the next path from the front. ok is false once the
	// source is exhausted.
	Next() (path string, ok bool)

	// SizeHint returns lower and upper bounds on the number of remaining
	// items. The upper bound is meaningful only when bounded is true.
	// The hint is advisory: a source may yield more items than it
	// hinted, and the padding width derived from the hint is not
	// recomputed when that happens (see Run).
	SizeHint() (low, high int, bounded bool)
}

// DoubleEnded is a Source that can also yield from the back. Both ends
// consume the same underlying sequence and meet in the middle.
type DoubleEnded interface {
	Source

	// NextBack returns the next path from the back.
	NextBack() (path string, ok bool)
}

// SliceSource is a DoubleEnded source over an in-memory path list with an
// exact size hint. It is the canonical source for paths collected by the
// selection layer.
type SliceSource struct {
	items []string
	front int
	back  int
}

// NewSliceSource creates a source over items. The slice is not copied;
// callers must not mutate it during iteration.
func NewSliceSource(items []string) *SliceSource {
	return &SliceSource{items: items, back: len(items)}
}

// Next yields the next remaining item from the front.
func (s *SliceSource) Next() (string, bool) {
	if s.front >= s.back {
		return "", false
	}
	item := s.items[s.front]
	s.front++
	return item, true
}

// NextBack yields the next remaining item from the back.
func (s *SliceSource) NextBack() (string, bool) {
	if s.front >= s.back {
		return "", false
	}
	s.back--
	return s.items[s.back], true
}

// SizeHint reports the exact remaining count.
func (s *SliceSource) SizeHint() (low, high int, bounded bool) {
	n := s.back - s.front
	return n, n, true
}
