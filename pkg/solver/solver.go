package solver

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/layout"
)

// IntrinsicSizer is implemented by elements with a natural content size.
// A non-positive component means the element has no intrinsic metric for
// that dimension.
type IntrinsicSizer interface {
	IntrinsicSize() layout.Size
}

// slot is one entry of the registration arena. The generation is bumped on
// every removal so tokens for a reused slot no longer match.
type slot struct {
	gen  uint32
	live bool
	reg  layout.Registration
}

// Solver is a registration table plus a priority-aware linear solve.
// It implements [layout.Solver] and is safe for concurrent use.
type Solver struct {
	mu     sync.Mutex
	slots  []slot
	free   []uint32
	seen   map[layout.Element]bool
	logger *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger for solve diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		seen:   make(map[layout.Element]bool),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func makeToken(index, gen uint32) layout.Token {
	return layout.Token(uint64(gen)<<32 | uint64(index))
}

func splitToken(t layout.Token) (index, gen uint32) {
	return uint32(uint64(t) & math.MaxUint32), uint32(uint64(t) >> 32)
}

// Install validates d and registers it with host.
func (s *Solver) Install(host layout.Element, d layout.Descriptor) (layout.Token, error) {
	if err := validate(host, d); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureImplicit(d.Item)
	if d.ToItem != nil {
		s.ensureImplicit(d.ToItem)
	}
	return s.add(layout.Registration{Host: host, Descriptor: d}), nil
}

// Uninstall removes the registration behind t. Stale and unknown tokens
// report false.
func (s *Solver) Uninstall(t layout.Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, gen := splitToken(t)
	if int(index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[index]
	if !sl.live || sl.gen != gen {
		return false
	}
	sl.live = false
	sl.reg = layout.Registration{}
	sl.gen++
	s.free = append(s.free, index)
	return true
}

// Affecting lists the live registrations whose item or target is e, in
// token order. Implicit size constraints for e are synthesized on first
// sight.
func (s *Solver) Affecting(e layout.Element) []layout.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureImplicit(e)
	var out []layout.Registration
	for _, sl := range s.slots {
		if !sl.live {
			continue
		}
		d := sl.reg.Descriptor
		if d.Item == e || d.ToItem == e {
			out = append(out, sl.reg)
		}
	}
	return out
}

// Lookup returns the live registration for t.
func (s *Solver) Lookup(t layout.Token) (layout.Registration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, gen := splitToken(t)
	if int(index) >= len(s.slots) {
		return layout.Registration{}, false
	}
	sl := s.slots[index]
	if !sl.live || sl.gen != gen {
		return layout.Registration{}, false
	}
	return sl.reg, true
}

// Registrations returns every live registration in slot order.
func (s *Solver) Registrations() []layout.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registrations()
}

// Len returns the number of live registrations.
func (s *Solver) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sl := range s.slots {
		if sl.live {
			n++
		}
	}
	return n
}

func (s *Solver) registrations() []layout.Registration {
	var out []layout.Registration
	for _, sl := range s.slots {
		if sl.live {
			out = append(out, sl.reg)
		}
	}
	return out
}

func (s *Solver) add(r layout.Registration) layout.Token {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[index]
	r.Token = makeToken(index, sl.gen)
	sl.live = true
	sl.reg = r
	return r.Token
}

// ensureImplicit registers intrinsic size constraints for e the first time
// the solver meets it. Removing them later is permanent.
func (s *Solver) ensureImplicit(e layout.Element) {
	if e == nil || s.seen[e] {
		return
	}
	s.seen[e] = true
	sizer, ok := e.(IntrinsicSizer)
	if !ok {
		return
	}
	size := sizer.IntrinsicSize()
	for _, c := range []struct {
		attr  layout.NativeAttribute
		value float64
	}{
		{layout.AttrWidth, size.Width},
		{layout.AttrHeight, size.Height},
	} {
		if c.value <= 0 {
			continue
		}
		s.add(layout.Registration{
			Host: e,
			Descriptor: layout.Descriptor{
				Item:     e,
				Attr:     c.attr,
				Relation: layout.RelationEqual,
				Constant: c.value,
				Priority: layout.PriorityLow,
			},
			Implicit: true,
		})
	}
}

// =============================================================================
// Validation
// =============================================================================

func validate(host layout.Element, d layout.Descriptor) error {
	reject := func(format string, args ...any) error {
		return errs.New(errs.ErrCodeSolverRejected, format, args...)
	}
	if d.Item == nil || host == nil {
		return reject("constraint needs an item and a host")
	}
	if !validAttribute(d.Attr) {
		return reject("invalid attribute %s", d.Attr)
	}
	for _, v := range []float64{d.Multiplier, d.Constant, float64(d.Priority)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return reject("non-finite value in %s", d)
		}
	}
	if !layout.IsAncestor(host, d.Item) {
		return reject("host does not contain item of %s", d)
	}

	if d.ToItem == nil {
		if !d.Attr.IsDimension() {
			return reject("location attribute %s cannot be set to a constant", d.Attr)
		}
		return nil
	}

	if !validAttribute(d.ToAttr) {
		return reject("invalid attribute %s", d.ToAttr)
	}
	if !layout.IsAncestor(host, d.ToItem) {
		return reject("host does not contain target of %s", d)
	}
	if d.Attr.IsDimension() != d.ToAttr.IsDimension() {
		return reject("cannot relate location and dimension in %s", d)
	}
	if !d.Attr.IsDimension() {
		if d.Attr.IsHorizontal() != d.ToAttr.IsHorizontal() {
			return reject("cannot relate horizontal and vertical locations in %s", d)
		}
		if d.Multiplier == 0 {
			return reject("zero multiplier on location attribute in %s", d)
		}
	}
	return nil
}

func validAttribute(a layout.NativeAttribute) bool {
	return a >= layout.AttrLeft && a <= layout.AttrBaseline
}
