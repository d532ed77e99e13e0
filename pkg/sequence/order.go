package sequence

import (
	"github.com/arthur-debert/renum/pkg/errors"
)

// Order selects the traversal strategy used to assign indices to paths.
type Order string

const (
	// OrderSequential visits paths in the given order, unchanged.
	OrderSequential Order = "sequential"

	// OrderZigZag alternates ends: first, last, second, second to last,
	// and so on until the ends meet. Useful for single-sided scan sets
	// where physical page order alternates front and back.
	OrderZigZag Order = "zigzag"
)

// ParseOrder maps a user-supplied name onto an Order.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderSequential:
		return OrderSequential, nil
	case OrderZigZag:
		return OrderZigZag, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown order %q (valid orders: %s, %s)", s, OrderSequential, OrderZigZag)
}

// Arrange wraps src so that iteration follows the order. Zigzag requires
// back access; arranging a front-only source that way fails here, before
// any item is visited.
func (o Order) Arrange(src Source) (Source, error) {
	switch o {
	case OrderSequential:
		return src, nil
	case OrderZigZag:
		de, ok := src.(DoubleEnded)
		if !ok {
			return nil, errors.Newf(errors.ErrOrderUnsupported, "order %q requires a double ended source", o)
		}
		return &zigZag{inner: de}, nil
	}
	return nil, errors.Newf(errors.ErrOrderUnsupported, "unknown order %q", o)
}

// zigZag alternates reads between the two ends of a double ended source,
// front first.
type zigZag struct {
	inner    DoubleEnded
	backNext bool
}

func (z *zigZag) Next() (string, bool) {
	if z.backNext {
		z.backNext = false
		return z.inner.NextBack()
	}
	z.backNext = true
	return z.inner.Next()
}

func (z *zigZag) SizeHint() (low, high int, bounded bool) {
	return z.inner.SizeHint()
}
