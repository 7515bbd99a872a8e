package layout

import (
	"fmt"

	errs "github.com/matzehuels/autolayout/pkg/errors"
)

// Alignment controls how distributed elements line up on the cross axis.
type Alignment int

const (
	// AlignNone leaves the cross axis unconstrained.
	AlignNone Alignment = iota
	// AlignLeading aligns the top edges of a horizontal distribution or the
	// leading edges of a vertical one.
	AlignLeading
	// AlignTrailing aligns bottom or trailing edges.
	AlignTrailing
	// AlignCenter aligns the cross-axis centers.
	AlignCenter
	// AlignFill aligns both cross-axis edges.
	AlignFill
	// AlignBaseline aligns baselines. Only valid for horizontal distributions.
	AlignBaseline
)

func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeading:
		return "leading"
	case AlignTrailing:
		return "trailing"
	case AlignCenter:
		return "center"
	case AlignFill:
		return "fill"
	case AlignBaseline:
		return "baseline"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// alongAxis describes the edges and dimension a distribution lays out along.
type alongAxis struct {
	orientation Orientation
	lead, trail Edge
	dimension   Dimension
}

func newAlongAxis(axis Axis) (alongAxis, error) {
	o, err := axis.ConstraintAxis()
	if err != nil {
		return alongAxis{}, err
	}
	if o == OrientationVertical {
		return alongAxis{o, EdgeTop, EdgeBottom, DimensionHeight}, nil
	}
	return alongAxis{o, EdgeLeading, EdgeTrailing, DimensionWidth}, nil
}

// crossAttributes returns the attributes paired up between neighbours for
// alignment a.
func (ax alongAxis) crossAttributes(a Alignment) ([]Attribute, error) {
	horizontal := ax.orientation == OrientationHorizontal
	switch a {
	case AlignNone:
		return nil, nil
	case AlignLeading:
		if horizontal {
			return []Attribute{EdgeTop}, nil
		}
		return []Attribute{EdgeLeading}, nil
	case AlignTrailing:
		if horizontal {
			return []Attribute{EdgeBottom}, nil
		}
		return []Attribute{EdgeTrailing}, nil
	case AlignCenter:
		if horizontal {
			return []Attribute{AxisHorizontal}, nil
		}
		return []Attribute{AxisVertical}, nil
	case AlignFill:
		if horizontal {
			return []Attribute{EdgeTop, EdgeBottom}, nil
		}
		return []Attribute{EdgeLeading, EdgeTrailing}, nil
	case AlignBaseline:
		if horizontal {
			return []Attribute{AxisBaseline}, nil
		}
		return nil, errs.New(errs.ErrCodeInvalidAlignment, "baseline alignment needs a horizontal distribution")
	}
	return nil, errs.New(errs.ErrCodeInvalidAlignment, "unknown alignment %d", int(a))
}

// distribution is the validated input shared by both distribution policies.
type distribution struct {
	elements  []Element
	container Element
	axis      alongAxis
	cross     []Attribute
}

func (b *Builder) newDistribution(elements []Element, axis Axis, alignment Alignment) (*distribution, error) {
	if len(elements) < 2 {
		return nil, errs.New(errs.ErrCodeInsufficientElements, "distribution needs at least 2 elements, got %d", len(elements))
	}
	container, err := CommonAncestorOf(elements)
	if err != nil {
		return nil, err
	}
	for i, e := range elements {
		if e == container {
			return nil, errs.New(errs.ErrCodeInvalidInput, "element %d (%s) contains the other elements", i, describe(e))
		}
	}
	ax, err := newAlongAxis(axis)
	if err != nil {
		return nil, err
	}
	cross, err := ax.crossAttributes(alignment)
	if err != nil {
		return nil, err
	}
	return &distribution{elements: elements, container: container, axis: ax, cross: cross}, nil
}

// align emits the cross-axis constraints for each consecutive pair.
func (b *Builder) align(d *distribution, c *collector) error {
	for i := 1; i < len(d.elements); i++ {
		for _, attr := range d.cross {
			if err := c.add(b.Constrain(d.elements[i], attr, RelationEqual, d.elements[i-1], attr, 1, 0)); err != nil {
				return err
			}
		}
	}
	return nil
}

// anchor pins the outer edges of the first and last element flush to the
// container.
func (b *Builder) anchor(d *distribution, c *collector) error {
	first, last := d.elements[0], d.elements[len(d.elements)-1]
	if err := c.add(b.Constrain(first, d.axis.lead, RelationEqual, d.container, d.axis.lead, 1, 0)); err != nil {
		return err
	}
	return c.add(b.Constrain(last, d.axis.trail, RelationEqual, d.container, d.axis.trail, 1, 0))
}

// DistributeFixedSpacing lays elements out along axis in the given order,
// spacing apart, with sizes left to the solver. Every element shares the
// first element's size along the axis, the first element is flush with the
// container's leading (or top) edge and the last with its trailing (or
// bottom) edge. The container is the elements' nearest common ancestor.
func (b *Builder) DistributeFixedSpacing(elements []Element, axis Axis, spacing float64, alignment Alignment) ([]Handle, error) {
	if err := errs.ValidateFinite("spacing", spacing); err != nil {
		return nil, err
	}
	d, err := b.newDistribution(elements, axis, alignment)
	if err != nil {
		return nil, err
	}
	return b.composite("DistributeFixedSpacing", func(c *collector) error {
		if err := b.align(d, c); err != nil {
			return err
		}
		first := d.elements[0]
		for i := 1; i < len(d.elements); i++ {
			prev, cur := d.elements[i-1], d.elements[i]
			if err := c.add(b.PinEdge(cur, d.axis.lead, d.axis.trail, prev, WithOffset(spacing))); err != nil {
				return err
			}
			if err := c.add(b.MatchDimension(cur, d.axis.dimension, d.axis.dimension, first)); err != nil {
				return err
			}
		}
		return b.anchor(d, c)
	})
}

// DistributeFixedSize lays elements out along axis in the given order, each
// size long, with equal gaps left to the solver.
//
// With three or more elements the equal-gap relation is expressed per
// interior element: element i of n sits at fraction i/(n-1) of the
// container's free extent, measured from its leading edge. This needs the
// container's own leading edge at zero in the constraint's coordinate space,
// which holds for any solver that evaluates the host's attributes in its
// bounds.
func (b *Builder) DistributeFixedSize(elements []Element, axis Axis, size float64, alignment Alignment) ([]Handle, error) {
	if err := errs.ValidateExtent("size", size); err != nil {
		return nil, err
	}
	d, err := b.newDistribution(elements, axis, alignment)
	if err != nil {
		return nil, err
	}
	return b.composite("DistributeFixedSize", func(c *collector) error {
		if err := b.align(d, c); err != nil {
			return err
		}
		n := len(d.elements)
		for i, e := range d.elements {
			if err := c.add(b.SetDimension(e, d.axis.dimension, size)); err != nil {
				return err
			}
			if i == 0 || i == n-1 {
				continue
			}
			f := float64(i) / float64(n-1)
			if err := c.add(b.placeAtFraction(d, e, f, size)); err != nil {
				return err
			}
		}
		return b.anchor(d, c)
	})
}

// placeAtFraction positions e so the space before it is f times the free
// space of the container along the distribution axis. Only interior
// elements are placed this way, so two elements get just their size
// constraints and the two container anchors.
func (b *Builder) placeAtFraction(d *distribution, e Element, f, size float64) (Handle, error) {
	if d.axis.orientation == OrientationVertical {
		return b.Constrain(e, EdgeTop, RelationEqual, d.container, EdgeBottom, f, -f*size)
	}
	rtl, err := isRightToLeft(b.Direction(e))
	if err != nil {
		return Handle{}, err
	}
	if rtl {
		return b.Constrain(e, EdgeRight, RelationEqual, d.container, EdgeRight, 1-f, f*size)
	}
	return b.Constrain(e, EdgeLeft, RelationEqual, d.container, EdgeRight, f, -f*size)
}
