package layout

import (
	"fmt"

	errs "github.com/matzehuels/autolayout/pkg/errors"
)

// Direction is the reading direction used to resolve leading and trailing
// edges. It is supplied by the host environment at call time.
type Direction int

const (
	// DirectionLeftToRight resolves leading to left and trailing to right.
	DirectionLeftToRight Direction = iota
	// DirectionRightToLeft resolves leading to right and trailing to left.
	DirectionRightToLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionLeftToRight:
		return "ltr"
	case DirectionRightToLeft:
		return "rtl"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "ltr" or "rtl" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr", "":
		return DirectionLeftToRight, nil
	case "rtl":
		return DirectionRightToLeft, nil
	}
	return 0, errs.New(errs.ErrCodeInvalidInput, "unknown layout direction %q (want ltr or rtl)", s)
}

// NativeAttribute is the solver-facing attribute code. Leading and trailing
// never appear here; they are resolved to left or right before a descriptor
// is built.
type NativeAttribute int

const (
	NotAnAttribute NativeAttribute = iota
	AttrLeft
	AttrRight
	AttrTop
	AttrBottom
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
	AttrBaseline
)

var nativeNames = [...]string{
	NotAnAttribute: "none",
	AttrLeft:       "left",
	AttrRight:      "right",
	AttrTop:        "top",
	AttrBottom:     "bottom",
	AttrWidth:      "width",
	AttrHeight:     "height",
	AttrCenterX:    "centerX",
	AttrCenterY:    "centerY",
	AttrBaseline:   "baseline",
}

func (a NativeAttribute) String() string {
	if a >= 0 && int(a) < len(nativeNames) {
		return nativeNames[a]
	}
	return fmt.Sprintf("NativeAttribute(%d)", int(a))
}

// IsDimension reports whether a is a size rather than a location.
func (a NativeAttribute) IsDimension() bool { return a == AttrWidth || a == AttrHeight }

// IsHorizontal reports whether a is measured along the x axis.
func (a NativeAttribute) IsHorizontal() bool {
	switch a {
	case AttrLeft, AttrRight, AttrCenterX, AttrWidth:
		return true
	}
	return false
}

// Attribute is a symbolic edge, axis or dimension that resolves to a native
// attribute under a layout direction.
type Attribute interface {
	Resolve(dir Direction) (NativeAttribute, error)
	String() string
}

// =============================================================================
// Edges
// =============================================================================

// Edge identifies one side of an element's frame.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeLeft
	EdgeBottom
	EdgeRight
	// EdgeLeading is the left edge for left-to-right languages and the
	// right edge for right-to-left languages.
	EdgeLeading
	// EdgeTrailing is the complement of EdgeLeading.
	EdgeTrailing
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Resolve maps e to a native attribute.
func (e Edge) Resolve(dir Direction) (NativeAttribute, error) {
	return ResolveEdge(e, dir)
}

// ResolveEdge maps an edge to a native attribute, resolving leading and
// trailing against dir.
func ResolveEdge(e Edge, dir Direction) (NativeAttribute, error) {
	switch e {
	case EdgeTop:
		return AttrTop, nil
	case EdgeLeft:
		return AttrLeft, nil
	case EdgeBottom:
		return AttrBottom, nil
	case EdgeRight:
		return AttrRight, nil
	case EdgeLeading, EdgeTrailing:
		rtl, err := isRightToLeft(dir)
		if err != nil {
			return NotAnAttribute, err
		}
		if (e == EdgeLeading) != rtl {
			return AttrLeft, nil
		}
		return AttrRight, nil
	}
	return NotAnAttribute, errs.New(errs.ErrCodeUnmappedAttribute, "unmapped edge %d", int(e))
}

// IsDirectional reports whether e depends on the layout direction.
func (e Edge) IsDirectional() bool { return e == EdgeLeading || e == EdgeTrailing }

// IsTrailingSide reports whether e lies on the far side of a frame (bottom,
// right or trailing). Insets against these edges are negated so a positive
// inset always moves inward.
func (e Edge) IsTrailingSide() bool {
	return e == EdgeBottom || e == EdgeRight || e == EdgeTrailing
}

func (e Edge) isVertical() bool { return e == EdgeTop || e == EdgeBottom }

// =============================================================================
// Axes
// =============================================================================

// Axis identifies a line through an element.
type Axis int

const (
	// AxisHorizontal is a horizontal line through the center of the element.
	AxisHorizontal Axis = iota
	// AxisVertical is a vertical line through the center of the element.
	AxisVertical
	// AxisBaseline is a horizontal line at the text baseline.
	AxisBaseline
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Resolve maps a to a native attribute. Axes are direction independent.
func (a Axis) Resolve(Direction) (NativeAttribute, error) {
	return ResolveAxis(a)
}

// ResolveAxis maps an axis to a native attribute.
func ResolveAxis(a Axis) (NativeAttribute, error) {
	switch a {
	case AxisHorizontal:
		return AttrCenterY, nil
	case AxisVertical:
		return AttrCenterX, nil
	case AxisBaseline:
		return AttrBaseline, nil
	}
	return NotAnAttribute, errs.New(errs.ErrCodeUnmappedAttribute, "unmapped axis %d", int(a))
}

// Orientation is the direction along which a distribution lays elements out.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// ConstraintAxis returns the orientation used when distributing along a.
// Horizontal and baseline axes lay elements out left to right (in reading
// order); the vertical axis lays them out top to bottom.
func (a Axis) ConstraintAxis() (Orientation, error) {
	switch a {
	case AxisHorizontal, AxisBaseline:
		return OrientationHorizontal, nil
	case AxisVertical:
		return OrientationVertical, nil
	}
	return 0, errs.New(errs.ErrCodeUnmappedAttribute, "unmapped axis %d", int(a))
}

// =============================================================================
// Dimensions
// =============================================================================

// Dimension identifies a size of an element.
type Dimension int

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

func (d Dimension) String() string {
	switch d {
	case DimensionWidth:
		return "width"
	case DimensionHeight:
		return "height"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// Resolve maps d to a native attribute.
func (d Dimension) Resolve(Direction) (NativeAttribute, error) {
	return ResolveDimension(d)
}

// ResolveDimension maps a dimension to a native attribute.
func ResolveDimension(d Dimension) (NativeAttribute, error) {
	switch d {
	case DimensionWidth:
		return AttrWidth, nil
	case DimensionHeight:
		return AttrHeight, nil
	}
	return NotAnAttribute, errs.New(errs.ErrCodeUnmappedAttribute, "unmapped dimension %d", int(d))
}

// =============================================================================
// Relations
// =============================================================================

// Relation is the comparison between the two sides of a constraint.
type Relation int

const (
	RelationEqual Relation = iota
	RelationLessOrEqual
	RelationGreaterOrEqual
)

func (r Relation) String() string {
	switch r {
	case RelationEqual:
		return "=="
	case RelationLessOrEqual:
		return "<="
	case RelationGreaterOrEqual:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Inverse swaps the inequalities and leaves equality untouched.
func (r Relation) Inverse() Relation {
	switch r {
	case RelationLessOrEqual:
		return RelationGreaterOrEqual
	case RelationGreaterOrEqual:
		return RelationLessOrEqual
	}
	return r
}

func (r Relation) valid() bool {
	return r == RelationEqual || r == RelationLessOrEqual || r == RelationGreaterOrEqual
}

func isRightToLeft(dir Direction) (bool, error) {
	switch dir {
	case DirectionLeftToRight:
		return false, nil
	case DirectionRightToLeft:
		return true, nil
	}
	return false, errs.New(errs.ErrCodeUnmappedAttribute, "unmapped layout direction %d", int(dir))
}
