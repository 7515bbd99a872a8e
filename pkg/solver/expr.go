package solver

import (
	"github.com/matzehuels/autolayout/pkg/layout"
)

// Each element owns four variables: x and y relative to its parent, then
// width and height.
const (
	varX = iota
	varY
	varW
	varH
	varsPerElement
)

// expr is a dense linear expression sum(coef[i]*v[i]) + constant.
type expr struct {
	coef     []float64
	constant float64
}

func newExpr(n int) expr { return expr{coef: make([]float64, n)} }

func (e expr) addScaled(o expr, k float64) {
	for i, c := range o.coef {
		e.coef[i] += k * c
	}
}

func (e expr) eval(values []float64) float64 {
	v := e.constant
	for i, c := range e.coef {
		v += c * values[i]
	}
	return v
}

// system maps elements of one tree to variable indices.
type system struct {
	elements []layout.Element
	index    map[layout.Element]int
}

func newSystem(root layout.Element) *system {
	s := &system{index: make(map[layout.Element]int)}
	layout.Walk(root, func(e layout.Element) bool {
		s.index[e] = len(s.elements)
		s.elements = append(s.elements, e)
		return true
	})
	return s
}

func (s *system) vars() int { return len(s.elements) * varsPerElement }

func (s *system) variable(e layout.Element, v int) int {
	return s.index[e]*varsPerElement + v
}

func (s *system) contains(e layout.Element) bool {
	_, ok := s.index[e]
	return ok
}

// attribute builds the expression for attr of e in host's coordinate space.
// The host's own attributes are in its bounds (left and top are zero);
// descendants accumulate their ancestors' offsets up to the host.
func (s *system) attribute(host, e layout.Element, attr layout.NativeAttribute) expr {
	x := newExpr(s.vars())
	switch attr {
	case layout.AttrWidth:
		x.coef[s.variable(e, varW)] = 1
		return x
	case layout.AttrHeight:
		x.coef[s.variable(e, varH)] = 1
		return x
	}

	pos, size := varY, varH
	if attr.IsHorizontal() {
		pos, size = varX, varW
	}
	if e != host {
		for p := e; p != nil && p != host; p = p.Parent() {
			x.coef[s.variable(p, pos)] = 1
		}
	}
	switch attr {
	case layout.AttrRight, layout.AttrBottom, layout.AttrBaseline:
		x.coef[s.variable(e, size)] += 1
	case layout.AttrCenterX, layout.AttrCenterY:
		x.coef[s.variable(e, size)] += 0.5
	}
	return x
}

// row turns a registration into expr rel 0, i.e. item - (m*target + c).
func (s *system) row(r layout.Registration) expr {
	d := r.Descriptor
	x := s.attribute(r.Host, d.Item, d.Attr)
	x.constant -= d.Constant
	if d.ToItem != nil {
		x.addScaled(s.attribute(r.Host, d.ToItem, d.ToAttr), -d.Multiplier)
	}
	return x
}
