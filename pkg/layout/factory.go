package layout

import (
	errs "github.com/matzehuels/autolayout/pkg/errors"
)

// Insets are distances from each edge of a parent, measured inward.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// UniformInsets returns insets of v on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

func (in Insets) forEdge(e Edge) float64 {
	switch e {
	case EdgeTop:
		return in.Top
	case EdgeLeft:
		return in.Left
	case EdgeBottom:
		return in.Bottom
	default:
		return in.Right
	}
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// =============================================================================
// Centering
// =============================================================================

// CenterInParent centers e on both axes of its parent.
func (b *Builder) CenterInParent(e Element) ([]Handle, error) {
	return b.composite("CenterInParent", func(c *collector) error {
		for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
			if err := c.add(b.CenterInParentAlongAxis(e, axis)); err != nil {
				return err
			}
		}
		return nil
	})
}

// CenterInParentAlongAxis aligns an axis of e with the same axis of its parent.
func (b *Builder) CenterInParentAlongAxis(e Element, axis Axis) (Handle, error) {
	parent, err := parentOf(e)
	if err != nil {
		return Handle{}, err
	}
	return b.Constrain(e, axis, RelationEqual, parent, axis, 1, 0)
}

// PinCenterAxisToPosition places a center axis of e at a fixed x (vertical
// axis) or y (horizontal and baseline axes) in its parent's coordinates.
func (b *Builder) PinCenterAxisToPosition(e Element, axis Axis, value float64) (Handle, error) {
	parent, err := parentOf(e)
	if err != nil {
		return Handle{}, err
	}
	origin := EdgeTop
	if axis == AxisVertical {
		origin = EdgeLeft
	}
	return b.Constrain(e, axis, RelationEqual, parent, origin, 1, value)
}

// PinEdgeToPosition places an edge of e at a fixed position in its parent.
// Leading and trailing edges are measured from the parent's leading edge.
func (b *Builder) PinEdgeToPosition(e Element, edge Edge, value float64) (Handle, error) {
	parent, err := parentOf(e)
	if err != nil {
		return Handle{}, err
	}
	var origin Edge
	switch edge {
	case EdgeTop, EdgeBottom:
		origin = EdgeTop
	case EdgeLeft, EdgeRight:
		origin = EdgeLeft
	case EdgeLeading, EdgeTrailing:
		origin = EdgeLeading
	default:
		return Handle{}, errs.New(errs.ErrCodeUnmappedAttribute, "unmapped edge %d", int(edge))
	}
	return b.Constrain(e, edge, RelationEqual, parent, origin, 1, value)
}

// =============================================================================
// Pinning to the parent
// =============================================================================

// PinEdgeToParentEdge pins edge of e to the same edge of its parent.
// A positive inset always moves the edge inward: for bottom, right and
// trailing edges the constant is negated and an inequality relation is
// inverted, so WithRelation(RelationGreaterOrEqual) means "at least inset
// away from the parent's edge" on every side.
func (b *Builder) PinEdgeToParentEdge(e Element, edge Edge, inset float64, opts ...ConstraintOption) (Handle, error) {
	parent, err := parentOf(e)
	if err != nil {
		return Handle{}, err
	}
	cfg := newConstraintConfig(opts)
	rel := cfg.relation
	if edge.IsTrailingSide() {
		inset = -inset
		rel = rel.Inverse()
	}
	return b.Constrain(e, edge, rel, parent, edge, 1, inset)
}

// PinEdgesToParent pins all four edges of e to its parent with insets.
// Handles are returned in top, left, bottom, right order.
func (b *Builder) PinEdgesToParent(e Element, insets Insets) ([]Handle, error) {
	return b.pinEdgesToParent("PinEdgesToParent", e, insets, -1)
}

// PinEdgesToParentExcluding pins every edge of e except excluded. Leading and
// trailing are resolved against the current layout direction first.
func (b *Builder) PinEdgesToParentExcluding(e Element, insets Insets, excluded Edge) ([]Handle, error) {
	if e == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "nil element")
	}
	native, err := ResolveEdge(excluded, b.Direction(e))
	if err != nil {
		return nil, err
	}
	skip := map[NativeAttribute]Edge{
		AttrTop:    EdgeTop,
		AttrLeft:   EdgeLeft,
		AttrBottom: EdgeBottom,
		AttrRight:  EdgeRight,
	}[native]
	return b.pinEdgesToParent("PinEdgesToParentExcluding", e, insets, skip)
}

func (b *Builder) pinEdgesToParent(op string, e Element, insets Insets, skip Edge) ([]Handle, error) {
	return b.composite(op, func(c *collector) error {
		for _, edge := range []Edge{EdgeTop, EdgeLeft, EdgeBottom, EdgeRight} {
			if edge == skip {
				continue
			}
			if err := c.add(b.PinEdgeToParentEdge(e, edge, insets.forEdge(edge))); err != nil {
				return err
			}
		}
		return nil
	})
}

// =============================================================================
// Relating two elements
// =============================================================================

// PinEdge pins edge of e to toEdge of peer. WithOffset moves e's edge by the
// given amount (in reading direction for leading/trailing edges).
func (b *Builder) PinEdge(e Element, edge, toEdge Edge, peer Element, opts ...ConstraintOption) (Handle, error) {
	cfg := newConstraintConfig(opts)
	return b.Constrain(e, edge, cfg.relation, peer, toEdge, 1, cfg.offset)
}

// AlignAxis aligns axis of e with the same axis of peer.
func (b *Builder) AlignAxis(e Element, axis Axis, peer Element, opts ...ConstraintOption) (Handle, error) {
	cfg := newConstraintConfig(opts)
	return b.Constrain(e, axis, cfg.relation, peer, axis, 1, cfg.offset)
}

// MatchDimension relates dimension of e to toDimension of peer, optionally
// scaled by WithMultiplier and shifted by WithOffset.
func (b *Builder) MatchDimension(e Element, dimension, toDimension Dimension, peer Element, opts ...ConstraintOption) (Handle, error) {
	cfg := newConstraintConfig(opts)
	return b.Constrain(e, dimension, cfg.relation, peer, toDimension, cfg.multiplier, cfg.offset)
}

// =============================================================================
// Fixed sizes
// =============================================================================

// SetDimension fixes dimension of e to size (or bounds it with WithRelation).
func (b *Builder) SetDimension(e Element, dimension Dimension, size float64, opts ...ConstraintOption) (Handle, error) {
	cfg := newConstraintConfig(opts)
	return b.Constrain(e, dimension, cfg.relation, nil, nil, 1, size)
}

// SetSize fixes the width and height of e. A non-positive component is
// skipped rather than treated as an error, so SetSize(e, Size{Height: 40})
// only constrains the height and a zero Size installs nothing.
func (b *Builder) SetSize(e Element, size Size) ([]Handle, error) {
	return b.composite("SetSize", func(c *collector) error {
		if size.Width > 0 {
			if err := c.add(b.SetDimension(e, DimensionWidth, size.Width)); err != nil {
				return err
			}
		}
		if size.Height > 0 {
			if err := c.add(b.SetDimension(e, DimensionHeight, size.Height)); err != nil {
				return err
			}
		}
		return nil
	})
}
