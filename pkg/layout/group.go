package layout

import (
	errs "github.com/matzehuels/autolayout/pkg/errors"
)

// AlignEdges aligns edge of every element with the same edge of the element
// before it. All elements must share a common ancestor.
func (b *Builder) AlignEdges(elements []Element, edge Edge) ([]Handle, error) {
	return b.chain("AlignEdges", elements, func(prev, cur Element) (Handle, error) {
		return b.PinEdge(cur, edge, edge, prev)
	})
}

// AlignAxes aligns axis of every element with the same axis of the element
// before it.
func (b *Builder) AlignAxes(elements []Element, axis Axis) ([]Handle, error) {
	return b.chain("AlignAxes", elements, func(prev, cur Element) (Handle, error) {
		return b.AlignAxis(cur, axis, prev)
	})
}

// MatchDimensions makes dimension equal across all elements.
func (b *Builder) MatchDimensions(elements []Element, dimension Dimension) ([]Handle, error) {
	return b.chain("MatchDimensions", elements, func(prev, cur Element) (Handle, error) {
		return b.MatchDimension(cur, dimension, dimension, prev)
	})
}

// SetDimensions fixes dimension of every element to size. Unlike the other
// group operations a single element is enough.
func (b *Builder) SetDimensions(elements []Element, dimension Dimension, size float64) ([]Handle, error) {
	if len(elements) == 0 {
		return nil, errs.New(errs.ErrCodeInsufficientElements, "SetDimensions needs at least 1 element")
	}
	return b.composite("SetDimensions", func(c *collector) error {
		for _, e := range elements {
			if err := c.add(b.SetDimension(e, dimension, size)); err != nil {
				return err
			}
		}
		return nil
	})
}

// chain validates elements and calls link for each consecutive pair.
func (b *Builder) chain(op string, elements []Element, link func(prev, cur Element) (Handle, error)) ([]Handle, error) {
	if len(elements) < 2 {
		return nil, errs.New(errs.ErrCodeInsufficientElements, "%s needs at least 2 elements, got %d", op, len(elements))
	}
	if _, err := CommonAncestorOf(elements); err != nil {
		return nil, err
	}
	return b.composite(op, func(c *collector) error {
		for i := 1; i < len(elements); i++ {
			if err := c.add(link(elements[i-1], elements[i])); err != nil {
				return err
			}
		}
		return nil
	})
}
