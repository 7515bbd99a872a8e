package solver

import (
	"github.com/matzehuels/autolayout/pkg/layout"
)

// Rect is an axis-aligned frame. Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Layout is the result of a solve.
type Layout struct {
	root     layout.Element
	elements []layout.Element
	frames   map[layout.Element]Rect

	// Constraints is the number of constraints that took part in the solve.
	Constraints int
	// Dropped lists the constraints that contradicted stronger ones.
	Dropped []layout.Registration
}

func newLayout(sys *system, values []float64, cs []constraint, dropped []int) *Layout {
	l := &Layout{
		root:        sys.elements[0],
		elements:    sys.elements,
		frames:      make(map[layout.Element]Rect, len(sys.elements)),
		Constraints: len(cs),
	}
	for i, e := range sys.elements {
		base := i * varsPerElement
		l.frames[e] = Rect{
			X:      values[base+varX],
			Y:      values[base+varY],
			Width:  values[base+varW],
			Height: values[base+varH],
		}
	}
	for _, i := range dropped {
		l.Dropped = append(l.Dropped, cs[i].reg)
	}
	return l
}

// Root returns the element the layout was solved for.
func (l *Layout) Root() layout.Element { return l.root }

// Elements returns the solved elements in pre-order.
func (l *Layout) Elements() []layout.Element { return l.elements }

// Frame returns e's frame in its parent's coordinate space.
func (l *Layout) Frame(e layout.Element) (Rect, bool) {
	r, ok := l.frames[e]
	return r, ok
}

// AbsoluteFrame returns e's frame in the root's coordinate space.
func (l *Layout) AbsoluteFrame(e layout.Element) (Rect, bool) {
	r, ok := l.frames[e]
	if !ok {
		return Rect{}, false
	}
	for p := e.Parent(); p != nil; p = p.Parent() {
		pr, ok := l.frames[p]
		if !ok || p == l.root {
			break
		}
		r = r.Offset(pr.X, pr.Y)
	}
	return r, true
}
