package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority orders constraints for the solver. Higher priorities win when
// constraints conflict.
type Priority float64

const (
	PriorityRequired    Priority = 1000
	PriorityHigh        Priority = 750
	PriorityLow         Priority = 250
	PriorityFittingSize Priority = 50
)

// DefaultPriority is used when no priority scope is active.
const DefaultPriority = PriorityRequired

func (p Priority) String() string {
	return strconv.FormatFloat(float64(p), 'g', -1, 64)
}

// Descriptor is an unregistered linear relation:
//
//	Item.Attr  Relation  ToItem.ToAttr * Multiplier + Constant
//
// For constant constraints ToItem is nil, ToAttr is NotAnAttribute and
// Multiplier is ignored.
type Descriptor struct {
	Item       Element
	Attr       NativeAttribute
	Relation   Relation
	ToItem     Element
	ToAttr     NativeAttribute
	Multiplier float64
	Constant   float64
	Priority   Priority
}

// IsConstant reports whether d relates an attribute to a fixed value.
func (d Descriptor) IsConstant() bool { return d.ToItem == nil }

func (d Descriptor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s %s ", describe(d.Item), d.Attr, d.Relation)
	if d.IsConstant() {
		b.WriteString(strconv.FormatFloat(d.Constant, 'g', -1, 64))
	} else {
		fmt.Fprintf(&b, "%s.%s", describe(d.ToItem), d.ToAttr)
		if d.Multiplier != 1 {
			fmt.Fprintf(&b, " * %g", d.Multiplier)
		}
		switch {
		case d.Constant > 0:
			fmt.Fprintf(&b, " + %g", d.Constant)
		case d.Constant < 0:
			fmt.Fprintf(&b, " - %g", -d.Constant)
		}
	}
	fmt.Fprintf(&b, " @%s", d.Priority)
	return b.String()
}

// Token identifies a slot in a solver's registration table. Solvers encode
// whatever they need (typically an index and a generation) so stale tokens
// can be told apart from live ones.
type Token uint64

// Registration is one constraint installed in a solver.
type Registration struct {
	Token      Token
	Host       Element
	Descriptor Descriptor
	// Implicit marks constraints synthesized by the solver itself, such as
	// intrinsic content size constraints.
	Implicit bool
}

// Solver is the external constraint solver this package feeds.
//
// Install registers d with host, which is guaranteed to be an ancestor of
// (or equal to) every item in d. Uninstall detaches a registration and
// reports whether the token was live; unknown or already removed tokens are
// a no-op. Affecting lists every live registration whose Item or ToItem is e.
type Solver interface {
	Install(host Element, d Descriptor) (Token, error)
	Uninstall(t Token) bool
	Affecting(e Element) []Registration
}

// Handle is a registered constraint. The zero Handle is not registered
// anywhere and removing it is a no-op.
type Handle struct {
	token  Token
	solver Solver
}

// NewHandle binds a token to the solver that issued it.
func NewHandle(s Solver, t Token) Handle {
	return Handle{token: t, solver: s}
}

// Token returns the solver token backing h.
func (h Handle) Token() Token { return h.token }

// Remove detaches the constraint from its host. It reports whether anything
// was removed; removing the same handle twice is a no-op the second time.
func (h Handle) Remove() bool {
	if h.solver == nil {
		return false
	}
	return h.solver.Uninstall(h.token)
}

// RemoveAll removes every handle and returns how many were live.
func RemoveAll(handles []Handle) int {
	n := 0
	for _, h := range handles {
		if h.Remove() {
			n++
		}
	}
	return n
}
