package layout

import (
	"errors"
	"math"
	"sync"
	"testing"

	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/observability"
)

// =============================================================================
// Test doubles
// =============================================================================

type node struct {
	name     string
	parent   *node
	children []*node
	dir      *Direction
}

func newNode(name string) *node { return &node{name: name} }

func (n *node) add(name string) *node {
	c := &node{name: name, parent: n}
	n.children = append(n.children, c)
	return c
}

func (n *node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) String() string { return n.name }

func (n *node) LayoutDirection() Direction {
	if n.dir != nil {
		return *n.dir
	}
	if n.parent != nil {
		return n.parent.LayoutDirection()
	}
	return DirectionLeftToRight
}

// fakeSolver records registrations and can be told to reject the n-th
// install.
type fakeSolver struct {
	next     Token
	regs     map[Token]Registration
	order    []Token
	installs int
	rejectAt int
}

func newFakeSolver() *fakeSolver {
	return &fakeSolver{regs: make(map[Token]Registration)}
}

func (s *fakeSolver) Install(host Element, d Descriptor) (Token, error) {
	s.installs++
	if s.installs == s.rejectAt {
		return 0, errors.New("fake rejection")
	}
	s.next++
	s.regs[s.next] = Registration{Token: s.next, Host: host, Descriptor: d}
	s.order = append(s.order, s.next)
	return s.next, nil
}

func (s *fakeSolver) Uninstall(t Token) bool {
	if _, ok := s.regs[t]; !ok {
		return false
	}
	delete(s.regs, t)
	return true
}

func (s *fakeSolver) Affecting(e Element) []Registration {
	var out []Registration
	for _, t := range s.order {
		r, ok := s.regs[t]
		if ok && (r.Descriptor.Item == e || r.Descriptor.ToItem == e) {
			out = append(out, r)
		}
	}
	return out
}

func (s *fakeSolver) implicit(e Element, attr NativeAttribute, v float64) {
	s.next++
	s.regs[s.next] = Registration{
		Token:      s.next,
		Host:       e,
		Descriptor: Descriptor{Item: e, Attr: attr, Constant: v, Priority: PriorityLow},
		Implicit:   true,
	}
	s.order = append(s.order, s.next)
}

func (s *fakeSolver) descriptors(hs []Handle) []Descriptor {
	out := make([]Descriptor, len(hs))
	for i, h := range hs {
		out[i] = s.regs[h.Token()].Descriptor
	}
	return out
}

// =============================================================================
// Attribute mapping
// =============================================================================

func TestResolveEdge(t *testing.T) {
	tests := []struct {
		edge Edge
		dir  Direction
		want NativeAttribute
	}{
		{EdgeTop, DirectionLeftToRight, AttrTop},
		{EdgeBottom, DirectionRightToLeft, AttrBottom},
		{EdgeLeft, DirectionRightToLeft, AttrLeft},
		{EdgeRight, DirectionLeftToRight, AttrRight},
		{EdgeLeading, DirectionLeftToRight, AttrLeft},
		{EdgeTrailing, DirectionLeftToRight, AttrRight},
		{EdgeLeading, DirectionRightToLeft, AttrRight},
		{EdgeTrailing, DirectionRightToLeft, AttrLeft},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String()+"/"+tt.dir.String(), func(t *testing.T) {
			got, err := ResolveEdge(tt.edge, tt.dir)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ResolveEdge(%v, %v) = %v, want %v", tt.edge, tt.dir, got, tt.want)
			}
		})
	}
}

func TestResolveAxisAndDimension(t *testing.T) {
	axes := map[Axis]NativeAttribute{
		AxisHorizontal: AttrCenterY,
		AxisVertical:   AttrCenterX,
		AxisBaseline:   AttrBaseline,
	}
	for a, want := range axes {
		if got, _ := ResolveAxis(a); got != want {
			t.Errorf("ResolveAxis(%v) = %v, want %v", a, got, want)
		}
	}
	if got, _ := ResolveDimension(DimensionHeight); got != AttrHeight {
		t.Errorf("ResolveDimension(height) = %v, want height", got)
	}
}

func TestEdgeAndAxisClassification(t *testing.T) {
	trailing := map[Edge]bool{
		EdgeTop: false, EdgeLeft: false, EdgeLeading: false,
		EdgeBottom: true, EdgeRight: true, EdgeTrailing: true,
	}
	for e, want := range trailing {
		if got := e.IsTrailingSide(); got != want {
			t.Errorf("%v.IsTrailingSide() = %v, want %v", e, got, want)
		}
	}

	orientations := map[Axis]Orientation{
		AxisHorizontal: OrientationHorizontal,
		AxisBaseline:   OrientationHorizontal,
		AxisVertical:   OrientationVertical,
	}
	for a, want := range orientations {
		if got, err := a.ConstraintAxis(); err != nil || got != want {
			t.Errorf("%v.ConstraintAxis() = %v, %v, want %v", a, got, err, want)
		}
	}
	if _, err := Axis(99).ConstraintAxis(); !errs.Is(err, errs.ErrCodeUnmappedAttribute) {
		t.Errorf("ConstraintAxis(99) error = %v, want UNMAPPED_ATTRIBUTE", err)
	}
}

func TestUnmappedAttributes(t *testing.T) {
	checks := []error{
		func() error { _, err := ResolveEdge(Edge(42), DirectionLeftToRight); return err }(),
		func() error { _, err := ResolveEdge(EdgeLeading, Direction(7)); return err }(),
		func() error { _, err := ResolveAxis(Axis(9)); return err }(),
		func() error { _, err := ResolveDimension(Dimension(3)); return err }(),
	}
	for i, err := range checks {
		if !errs.Is(err, errs.ErrCodeUnmappedAttribute) {
			t.Errorf("check %d: error = %v, want UNMAPPED_ATTRIBUTE", i, err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("rtl"); err != nil || d != DirectionRightToLeft {
		t.Errorf("ParseDirection(rtl) = %v, %v", d, err)
	}
	if _, err := ParseDirection("up"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ParseDirection(up) error = %v, want INVALID_INPUT", err)
	}
}

// =============================================================================
// Common ancestor
// =============================================================================

func TestCommonAncestor(t *testing.T) {
	root := newNode("root")
	a := root.add("a")
	b := root.add("b")
	a1 := a.add("a1")
	a2 := a.add("a2")
	a1x := a1.add("a1x")

	tests := []struct {
		name string
		x, y Element
		want Element
	}{
		{"siblings", a1, a2, a},
		{"cousins", a1x, b, root},
		{"nested", a1x, a2, a},
		{"self", a1, a1, a1},
		{"ancestor", a, a1x, a},
		{"descendant", a1x, a, a},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommonAncestor(tt.x, tt.y)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("CommonAncestor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommonAncestorErrors(t *testing.T) {
	a := newNode("a")
	b := newNode("b")

	if _, err := CommonAncestor(a, b); !errs.Is(err, errs.ErrCodeNoCommonAncestor) {
		t.Errorf("disjoint error = %v, want NO_COMMON_ANCESTOR", err)
	}
	if _, err := CommonAncestor(a, nil); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("nil error = %v, want INVALID_INPUT", err)
	}
	if _, err := CommonAncestorOf(nil); !errs.Is(err, errs.ErrCodeInsufficientElements) {
		t.Errorf("empty error = %v, want INSUFFICIENT_ELEMENTS", err)
	}
	if _, err := CommonAncestorOf([]Element{a.add("x"), a.add("y"), b}); !errs.Is(err, errs.ErrCodeNoCommonAncestor) {
		t.Errorf("fold error = %v, want NO_COMMON_ANCESTOR", err)
	}
}

func TestWalkPreOrder(t *testing.T) {
	root := newNode("root")
	a := root.add("a")
	a.add("a1")
	root.add("b")

	var got []string
	Walk(root, func(e Element) bool {
		got = append(got, e.(*node).name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(got) != len(want) {
		t.Fatalf("Walk visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Walk[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	count := 0
	Walk(root, func(e Element) bool {
		count++
		return e != Element(a)
	})
	if count != 3 {
		t.Errorf("pruned Walk visited %d, want 3", count)
	}
}

// =============================================================================
// Priority scope
// =============================================================================

func TestWithPriorityNesting(t *testing.T) {
	s := newFakeSolver()
	b := New(s)
	root := newNode("root")
	a := root.add("a")

	if _, ok := b.Priority(); ok {
		t.Fatal("fresh builder should have no scope")
	}

	var inner, nested Handle
	err := b.WithPriority(PriorityHigh, func(b *Builder) error {
		err := b.WithPriority(PriorityLow, func(b *Builder) error {
			if p, _ := b.Priority(); p != PriorityLow {
				t.Errorf("nested Priority() = %v, want %v", p, PriorityLow)
			}
			var err error
			nested, err = b.SetDimension(a, DimensionWidth, 10)
			return err
		})
		if err != nil {
			return err
		}
		if p, _ := b.Priority(); p != PriorityHigh {
			t.Errorf("restored Priority() = %v, want %v", p, PriorityHigh)
		}
		inner, err = b.SetDimension(a, DimensionHeight, 10)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Priority(); ok {
		t.Error("outer builder picked up a scope")
	}
	outer, err := b.SetDimension(a, DimensionWidth, 20)
	if err != nil {
		t.Fatal(err)
	}

	got := s.descriptors([]Handle{nested, inner, outer})
	want := []Priority{PriorityLow, PriorityHigh, DefaultPriority}
	for i := range want {
		if got[i].Priority != want[i] {
			t.Errorf("constraint %d priority = %v, want %v", i, got[i].Priority, want[i])
		}
	}
}

func TestWithPriorityPropagatesErrors(t *testing.T) {
	b := New(newFakeSolver())
	sentinel := errors.New("boom")
	if err := b.WithPriority(PriorityHigh, func(*Builder) error { return sentinel }); err != sentinel {
		t.Errorf("WithPriority error = %v, want sentinel", err)
	}
	for _, p := range []Priority{0, -1, 1001} {
		if err := b.WithPriority(p, func(*Builder) error { return nil }); !errs.Is(err, errs.ErrCodeInvalidInput) {
			t.Errorf("WithPriority(%v) error = %v, want INVALID_INPUT", p, err)
		}
	}
}

func TestWithPriorityIsolatedAcrossGoroutines(t *testing.T) {
	b := New(newFakeSolver())
	var wg sync.WaitGroup
	for _, p := range []Priority{100, 200, 300, 400} {
		wg.Add(1)
		go func(p Priority) {
			defer wg.Done()
			_ = b.WithPriority(p, func(b *Builder) error {
				for i := 0; i < 100; i++ {
					if got, _ := b.Priority(); got != p {
						t.Errorf("Priority() = %v, want %v", got, p)
						return nil
					}
				}
				return nil
			})
		}(p)
	}
	wg.Wait()
}

func TestExplicitPriorityWins(t *testing.T) {
	s := newFakeSolver()
	b := New(s)
	a := newNode("root").add("a")
	_ = b.WithPriority(PriorityLow, func(b *Builder) error {
		h, err := b.Install(Descriptor{Item: a, Attr: AttrWidth, Constant: 5, Priority: PriorityHigh})
		if err != nil {
			t.Fatal(err)
		}
		if got := s.regs[h.Token()].Descriptor.Priority; got != PriorityHigh {
			t.Errorf("priority = %v, want %v", got, PriorityHigh)
		}
		return nil
	})
}

// =============================================================================
// Factory
// =============================================================================

func TestConstrainReadingDirection(t *testing.T) {
	root := newNode("root")
	rtl := DirectionRightToLeft
	root.dir = &rtl
	a := root.add("a")
	c := root.add("c")

	s := newFakeSolver()
	b := New(s)

	h, err := b.Constrain(c, EdgeLeading, RelationGreaterOrEqual, a, EdgeTrailing, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	d := s.regs[h.Token()].Descriptor
	if d.Attr != AttrRight || d.ToAttr != AttrLeft {
		t.Errorf("attributes = %v/%v, want right/left", d.Attr, d.ToAttr)
	}
	if d.Constant != -8 || d.Relation != RelationLessOrEqual {
		t.Errorf("constant/relation = %v %v, want -8 <=", d.Constant, d.Relation)
	}
	if s.regs[h.Token()].Host != Element(root) {
		t.Errorf("host = %v, want root", s.regs[h.Token()].Host)
	}

	// Absolute edges are never mirrored.
	h, err = b.Constrain(c, EdgeLeft, RelationEqual, a, EdgeRight, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.regs[h.Token()].Descriptor; d.Constant != 8 {
		t.Errorf("absolute constant = %v, want 8", d.Constant)
	}

	if _, err := b.Constrain(c, EdgeLeading, RelationEqual, a, EdgeLeft, 1, 0); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("mixed edges error = %v, want INVALID_INPUT", err)
	}
}

func TestConstrainValidation(t *testing.T) {
	root := newNode("root")
	a := root.add("a")
	b := New(newFakeSolver())

	tests := []struct {
		name string
		fn   func() error
		code errs.Code
	}{
		{"nil item", func() error {
			_, err := b.Constrain(nil, EdgeTop, RelationEqual, a, EdgeTop, 1, 0)
			return err
		}, errs.ErrCodeInvalidInput},
		{"nil pointer item", func() error {
			_, err := b.Constrain((*node)(nil), EdgeTop, RelationEqual, a, EdgeTop, 1, 0)
			return err
		}, errs.ErrCodeInvalidInput},
		{"nil pointer centered", func() error {
			_, err := b.CenterInParent((*node)(nil))
			return err
		}, errs.ErrCodeInvalidInput},
		{"nil pointer ancestor", func() error {
			_, err := CommonAncestor(a, (*node)(nil))
			return err
		}, errs.ErrCodeInvalidInput},
		{"nil target attribute", func() error {
			_, err := b.Constrain(a, EdgeTop, RelationEqual, root, nil, 1, 0)
			return err
		}, errs.ErrCodeInvalidInput},
		{"disjoint", func() error {
			_, err := b.PinEdge(a, EdgeTop, EdgeTop, newNode("stranger"))
			return err
		}, errs.ErrCodeNoCommonAncestor},
		{"unknown relation", func() error {
			_, err := b.Constrain(a, DimensionWidth, Relation(9), nil, nil, 1, 1)
			return err
		}, errs.ErrCodeInvalidInput},
		{"infinite constant", func() error {
			_, err := b.SetDimension(a, DimensionWidth, math.Inf(1))
			return err
		}, errs.ErrCodeInvalidInput},
		{"no parent", func() error {
			_, err := b.CenterInParent(root)
			return err
		}, errs.ErrCodeInvalidInput},
		{"unmapped edge", func() error {
			_, err := b.PinEdgeToPosition(a, Edge(17), 0)
			return err
		}, errs.ErrCodeUnmappedAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestInstallDefaultsMultiplier(t *testing.T) {
	root := newNode("root")
	a, p := root.add("a"), root.add("p")
	s := newFakeSolver()

	h, err := New(s).Install(Descriptor{Item: a, Attr: AttrWidth, ToItem: p, ToAttr: AttrWidth, Constant: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.regs[h.Token()].Descriptor.Multiplier; got != 1 {
		t.Errorf("Multiplier = %v, want 1", got)
	}

	h, err = New(s).Install(Descriptor{Item: a, Attr: AttrWidth, Constant: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.regs[h.Token()].Descriptor.Multiplier; got != 0 {
		t.Errorf("constant Multiplier = %v, want 0", got)
	}
}

func TestSolverRejectionIsWrapped(t *testing.T) {
	s := newFakeSolver()
	s.rejectAt = 1
	a := newNode("root").add("a")
	_, err := New(s).SetDimension(a, DimensionWidth, 10)
	if !errs.Is(err, errs.ErrCodeSolverRejected) {
		t.Errorf("error = %v, want SOLVER_REJECTED", err)
	}
}

func TestPinEdgesToParentInsets(t *testing.T) {
	root := newNode("root")
	e := root.add("e")
	s := newFakeSolver()

	hs, err := New(s).PinEdgesToParent(e, Insets{Top: 10, Left: 5, Bottom: 10, Right: 5})
	if err != nil {
		t.Fatal(err)
	}
	got := s.descriptors(hs)
	want := []struct {
		attr     NativeAttribute
		constant float64
	}{
		{AttrTop, 10}, {AttrLeft, 5}, {AttrBottom, -10}, {AttrRight, -5},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Attr != w.attr || got[i].ToAttr != w.attr || got[i].Constant != w.constant {
			t.Errorf("constraint %d = %s, want %v with %v", i, got[i], w.attr, w.constant)
		}
		if got[i].ToItem != Element(root) {
			t.Errorf("constraint %d target = %v, want root", i, got[i].ToItem)
		}
	}
}

func TestPinEdgeToParentEdgeInvertsBounds(t *testing.T) {
	root := newNode("root")
	e := root.add("e")
	s := newFakeSolver()
	b := New(s)

	h, err := b.PinEdgeToParentEdge(e, EdgeRight, 20, WithRelation(RelationGreaterOrEqual))
	if err != nil {
		t.Fatal(err)
	}
	d := s.regs[h.Token()].Descriptor
	// "at least 20 inside" on the right is e.right <= parent.right - 20.
	if d.Relation != RelationLessOrEqual || d.Constant != -20 {
		t.Errorf("descriptor = %s, want right <= parent.right - 20", d)
	}
}

func TestPinEdgesToParentExcluding(t *testing.T) {
	root := newNode("root")
	rtl := DirectionRightToLeft
	root.dir = &rtl
	e := root.add("e")
	s := newFakeSolver()

	hs, err := New(s).PinEdgesToParentExcluding(e, UniformInsets(4), EdgeLeading)
	if err != nil {
		t.Fatal(err)
	}
	if len(hs) != 3 {
		t.Fatalf("len = %d, want 3", len(hs))
	}
	for _, d := range s.descriptors(hs) {
		if d.Attr == AttrRight {
			t.Errorf("leading edge under rtl should exclude right, got %s", d)
		}
	}
}

func TestCenterInParent(t *testing.T) {
	root := newNode("root")
	e := root.add("e")
	s := newFakeSolver()

	hs, err := New(s).CenterInParent(e)
	if err != nil {
		t.Fatal(err)
	}
	got := s.descriptors(hs)
	if len(got) != 2 || got[0].Attr != AttrCenterY || got[1].Attr != AttrCenterX {
		t.Fatalf("descriptors = %v, want centerY then centerX", got)
	}
	for _, d := range got {
		if d.Attr != d.ToAttr || d.Constant != 0 || d.ToItem != Element(root) {
			t.Errorf("descriptor = %s, want same axis of root with zero offset", d)
		}
	}
}

func TestCenterInParentAlongAxis(t *testing.T) {
	root := newNode("root")
	e := root.add("e")
	s := newFakeSolver()

	h, err := New(s).CenterInParentAlongAxis(e, AxisVertical)
	if err != nil {
		t.Fatal(err)
	}
	d := s.regs[h.Token()].Descriptor
	if d.Attr != AttrCenterX || d.ToAttr != AttrCenterX || d.ToItem != Element(root) {
		t.Errorf("descriptor = %s, want centerX == root.centerX", d)
	}
	if _, err := New(s).CenterInParentAlongAxis(root, AxisVertical); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("root error = %v, want INVALID_INPUT", err)
	}
}

func TestPositions(t *testing.T) {
	root := newNode("root")
	e := root.add("e")
	s := newFakeSolver()
	b := New(s)

	tests := []struct {
		name   string
		fn     func() (Handle, error)
		attr   NativeAttribute
		toAttr NativeAttribute
	}{
		{"edge", func() (Handle, error) { return b.PinEdgeToPosition(e, EdgeBottom, 50) }, AttrBottom, AttrTop},
		{"leading", func() (Handle, error) { return b.PinEdgeToPosition(e, EdgeTrailing, 50) }, AttrRight, AttrLeft},
		{"vertical axis", func() (Handle, error) { return b.PinCenterAxisToPosition(e, AxisVertical, 50) }, AttrCenterX, AttrLeft},
		{"baseline", func() (Handle, error) { return b.PinCenterAxisToPosition(e, AxisBaseline, 50) }, AttrBaseline, AttrTop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := tt.fn()
			if err != nil {
				t.Fatal(err)
			}
			d := s.regs[h.Token()].Descriptor
			if d.Attr != tt.attr || d.ToAttr != tt.toAttr || d.Constant != 50 {
				t.Errorf("descriptor = %s", d)
			}
		})
	}
}

func TestMatchDimensionOptions(t *testing.T) {
	root := newNode("root")
	a, c := root.add("a"), root.add("c")
	s := newFakeSolver()

	h, err := New(s).MatchDimension(a, DimensionWidth, DimensionHeight, c,
		WithMultiplier(0.5), WithOffset(3), WithRelation(RelationLessOrEqual))
	if err != nil {
		t.Fatal(err)
	}
	d := s.regs[h.Token()].Descriptor
	if d.Multiplier != 0.5 || d.Constant != 3 || d.Relation != RelationLessOrEqual || d.ToAttr != AttrHeight {
		t.Errorf("descriptor = %s", d)
	}
}

func TestSetSize(t *testing.T) {
	e := newNode("root").add("e")

	tests := []struct {
		name  string
		size  Size
		attrs []NativeAttribute
	}{
		{"both", Size{Width: 10, Height: 20}, []NativeAttribute{AttrWidth, AttrHeight}},
		{"height only", Size{Height: 40}, []NativeAttribute{AttrHeight}},
		{"negative width", Size{Width: -1, Height: 40}, []NativeAttribute{AttrHeight}},
		{"degenerate", Size{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSolver()
			hs, err := New(s).SetSize(e, tt.size)
			if err != nil {
				t.Fatalf("SetSize: %v", err)
			}
			got := s.descriptors(hs)
			if len(got) != len(tt.attrs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.attrs))
			}
			for i, d := range got {
				if d.Attr != tt.attrs[i] || !d.IsConstant() {
					t.Errorf("constraint %d = %s", i, d)
				}
			}
		})
	}
}

// =============================================================================
// Composite atomicity
// =============================================================================

type rollbackHooks struct {
	observability.NoopConstraintHooks
	rollbacks, removed int
}

func (h *rollbackHooks) OnRollback(_ string, n int) {
	h.rollbacks++
	h.removed += n
}

func TestCompositeRollsBack(t *testing.T) {
	hooks := &rollbackHooks{}
	observability.SetConstraintHooks(hooks)
	defer observability.Reset()

	root := newNode("root")
	e := root.add("e")
	s := newFakeSolver()
	s.rejectAt = 3

	hs, err := New(s).PinEdgesToParent(e, Insets{})
	if !errs.Is(err, errs.ErrCodeSolverRejected) {
		t.Fatalf("error = %v, want SOLVER_REJECTED", err)
	}
	if hs != nil {
		t.Errorf("handles = %v, want nil", hs)
	}
	if len(s.regs) != 0 {
		t.Errorf("%d constraints left registered after rollback", len(s.regs))
	}
	if hooks.rollbacks != 1 || hooks.removed != 2 {
		t.Errorf("rollback hooks = %d/%d, want 1/2", hooks.rollbacks, hooks.removed)
	}
}

// =============================================================================
// Groups
// =============================================================================

func TestGroupOperations(t *testing.T) {
	root := newNode("root")
	els := []Element{root.add("a"), root.add("b"), root.add("c")}
	s := newFakeSolver()
	b := New(s)

	hs, err := b.AlignEdges(els, EdgeTop)
	if err != nil || len(hs) != 2 {
		t.Fatalf("AlignEdges = %d, %v", len(hs), err)
	}
	for i, d := range s.descriptors(hs) {
		if d.Item != els[i+1] || d.ToItem != els[i] {
			t.Errorf("AlignEdges[%d] = %s, want chained pairs", i, d)
		}
	}

	if hs, err := b.AlignAxes(els, AxisVertical); err != nil || len(hs) != 2 {
		t.Errorf("AlignAxes = %d, %v", len(hs), err)
	}
	if hs, err := b.MatchDimensions(els, DimensionHeight); err != nil || len(hs) != 2 {
		t.Errorf("MatchDimensions = %d, %v", len(hs), err)
	}
	if hs, err := b.SetDimensions(els[:1], DimensionWidth, 30); err != nil || len(hs) != 1 {
		t.Errorf("SetDimensions = %d, %v", len(hs), err)
	}

	if _, err := b.AlignEdges(els[:1], EdgeTop); !errs.Is(err, errs.ErrCodeInsufficientElements) {
		t.Errorf("AlignEdges(1) error = %v, want INSUFFICIENT_ELEMENTS", err)
	}
	if _, err := b.SetDimensions(nil, DimensionWidth, 30); !errs.Is(err, errs.ErrCodeInsufficientElements) {
		t.Errorf("SetDimensions(nil) error = %v, want INSUFFICIENT_ELEMENTS", err)
	}
	if _, err := b.MatchDimensions([]Element{els[0], newNode("x")}, DimensionWidth); !errs.Is(err, errs.ErrCodeNoCommonAncestor) {
		t.Errorf("MatchDimensions(disjoint) error = %v, want NO_COMMON_ANCESTOR", err)
	}
}

// =============================================================================
// Distribution
// =============================================================================

func TestDistributeValidation(t *testing.T) {
	root := newNode("root")
	a, c := root.add("a"), root.add("c")
	b := New(newFakeSolver())

	tests := []struct {
		name string
		fn   func() error
		code errs.Code
	}{
		{"one element", func() error {
			_, err := b.DistributeFixedSpacing([]Element{a}, AxisHorizontal, 10, AlignCenter)
			return err
		}, errs.ErrCodeInsufficientElements},
		{"no elements", func() error {
			_, err := b.DistributeFixedSize(nil, AxisHorizontal, 10, AlignCenter)
			return err
		}, errs.ErrCodeInsufficientElements},
		{"disjoint", func() error {
			_, err := b.DistributeFixedSpacing([]Element{a, newNode("x")}, AxisHorizontal, 10, AlignNone)
			return err
		}, errs.ErrCodeNoCommonAncestor},
		{"container in list", func() error {
			_, err := b.DistributeFixedSpacing([]Element{root, a}, AxisHorizontal, 10, AlignNone)
			return err
		}, errs.ErrCodeInvalidInput},
		{"baseline on vertical", func() error {
			_, err := b.DistributeFixedSpacing([]Element{a, c}, AxisVertical, 10, AlignBaseline)
			return err
		}, errs.ErrCodeInvalidAlignment},
		{"unknown alignment", func() error {
			_, err := b.DistributeFixedSize([]Element{a, c}, AxisVertical, 10, Alignment(42))
			return err
		}, errs.ErrCodeInvalidAlignment},
		{"zero size", func() error {
			_, err := b.DistributeFixedSize([]Element{a, c}, AxisHorizontal, 0, AlignNone)
			return err
		}, errs.ErrCodeInvalidInput},
		{"unknown axis", func() error {
			_, err := b.DistributeFixedSize([]Element{a, c}, Axis(8), 10, AlignNone)
			return err
		}, errs.ErrCodeUnmappedAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDistributeConstraintCounts(t *testing.T) {
	root := newNode("root")
	four := []Element{root.add("a"), root.add("b"), root.add("c"), root.add("d")}

	tests := []struct {
		name  string
		fn    func(b *Builder, els []Element) ([]Handle, error)
		els   []Element
		count int
	}{
		// 3 alignments + 3 spacings + 3 equal widths + 2 anchors
		{"spacing/4/center", func(b *Builder, els []Element) ([]Handle, error) {
			return b.DistributeFixedSpacing(els, AxisHorizontal, 10, AlignCenter)
		}, four, 11},
		// 2*3 fill alignments + 4 sizes + 2 fractions + 2 anchors
		{"size/4/fill", func(b *Builder, els []Element) ([]Handle, error) {
			return b.DistributeFixedSize(els, AxisVertical, 10, AlignFill)
		}, four, 14},
		// 2 sizes + 2 anchors, no gap constraint
		{"size/2/none", func(b *Builder, els []Element) ([]Handle, error) {
			return b.DistributeFixedSize(els, AxisHorizontal, 10, AlignNone)
		}, four[:2], 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs, err := tt.fn(New(newFakeSolver()), tt.els)
			if err != nil {
				t.Fatal(err)
			}
			if len(hs) != tt.count {
				t.Errorf("len = %d, want %d", len(hs), tt.count)
			}
		})
	}
}

func TestDistributeRollsBack(t *testing.T) {
	root := newNode("root")
	els := []Element{root.add("a"), root.add("b"), root.add("c")}
	s := newFakeSolver()
	s.rejectAt = 5

	if _, err := New(s).DistributeFixedSpacing(els, AxisHorizontal, 10, AlignLeading); err == nil {
		t.Fatal("expected an error")
	}
	if len(s.regs) != 0 {
		t.Errorf("%d constraints left registered", len(s.regs))
	}
}

// =============================================================================
// Removal
// =============================================================================

func TestHandleRemoveTwice(t *testing.T) {
	s := newFakeSolver()
	h, err := New(s).SetDimension(newNode("root").add("e"), DimensionWidth, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !h.Remove() {
		t.Error("first Remove() = false, want true")
	}
	if h.Remove() {
		t.Error("second Remove() = true, want false")
	}
	if (Handle{}).Remove() {
		t.Error("zero Handle Remove() = true, want false")
	}
}

func TestRemoveAll(t *testing.T) {
	s := newFakeSolver()
	hs, err := New(s).PinEdgesToParent(newNode("root").add("e"), UniformInsets(4))
	if err != nil {
		t.Fatal(err)
	}
	hs[0].Remove()
	if n := RemoveAll(hs); n != 3 {
		t.Errorf("RemoveAll = %d, want 3", n)
	}
	if len(s.regs) != 0 {
		t.Errorf("%d constraints left registered", len(s.regs))
	}
	if n := RemoveAll(hs); n != 0 {
		t.Errorf("second RemoveAll = %d, want 0", n)
	}
}

func TestRemoveAffecting(t *testing.T) {
	root := newNode("root")
	e := root.add("e")
	peer := root.add("peer")
	s := newFakeSolver()
	s.implicit(e, AttrWidth, 40)
	b := New(s)

	if _, err := b.PinEdgesToParent(e, Insets{}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.PinEdge(peer, EdgeTop, EdgeBottom, e); err != nil {
		t.Fatal(err)
	}

	if got := len(b.ConstraintsAffecting(e, true)); got != 6 {
		t.Fatalf("affecting with implicit = %d, want 6", got)
	}
	if got := len(b.ConstraintsAffecting(e, false)); got != 5 {
		t.Fatalf("affecting without implicit = %d, want 5", got)
	}

	if n := b.RemoveAffecting(e, false); n != 5 {
		t.Errorf("RemoveAffecting = %d, want 5", n)
	}
	left := b.ConstraintsAffecting(e, true)
	if len(left) != 1 || !s.regs[left[0].Token()].Implicit {
		t.Errorf("remaining = %v, want only the implicit constraint", left)
	}
	if b.ConstraintsAffecting(nil, true) != nil {
		t.Error("ConstraintsAffecting(nil) should be empty")
	}
}

func TestRemoveAffectingSubtree(t *testing.T) {
	root := newNode("root")
	box := root.add("box")
	a, c := box.add("a"), box.add("c")
	outside := root.add("outside")
	s := newFakeSolver()
	s.implicit(a, AttrHeight, 12)
	b := New(s)

	if _, err := b.PinEdge(c, EdgeLeading, EdgeTrailing, a); err != nil {
		t.Fatal(err)
	}
	if _, err := b.PinEdge(outside, EdgeTop, EdgeBottom, box); err != nil {
		t.Fatal(err)
	}
	if _, err := b.SetDimension(outside, DimensionWidth, 5); err != nil {
		t.Fatal(err)
	}

	// a<->c is shared by two subtree members and counted once.
	if n := b.RemoveAffectingSubtree(box, false); n != 2 {
		t.Errorf("RemoveAffectingSubtree = %d, want 2", n)
	}
	if len(s.regs) != 2 {
		t.Errorf("registrations left = %d, want 2 (implicit + outside width)", len(s.regs))
	}
	if n := b.RemoveAffectingSubtree(box, true); n != 1 {
		t.Errorf("second pass = %d, want 1 (the implicit constraint)", n)
	}
}
