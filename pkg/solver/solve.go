package solver

import (
	"context"
	"math"
	"sort"
	"time"

	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/layout"
	"github.com/matzehuels/autolayout/pkg/observability"
)

const epsilon = 1e-9

// constraint is a registration lowered to expr rel 0.
type constraint struct {
	reg  layout.Registration
	expr expr
	ineq bool // expr <= 0 when set, expr == 0 otherwise
}

// Solve computes frames for root and its descendants from the live
// registrations hosted inside that subtree.
//
// Constraints are added strongest first. A constraint that contradicts the
// ones already accepted is dropped as a whole; a dropped required
// constraint is logged as a warning. Inequalities that the current solution
// violates are turned into equalities one at a time, strongest first, until
// none is violated. Variables nothing determines resolve to zero.
func (s *Solver) Solve(ctx context.Context, root layout.Element) (*Layout, error) {
	if root == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "solve without a root")
	}
	start := time.Now()
	sys := newSystem(root)
	observability.Solver().OnSolveStart(ctx, len(sys.elements))

	s.mu.Lock()
	for _, e := range sys.elements {
		s.ensureImplicit(e)
	}
	regs := s.registrations()
	s.mu.Unlock()

	cs := s.lower(sys, regs)
	result, err := s.solve(ctx, sys, cs)
	dropped := 0
	if result != nil {
		dropped = len(result.Dropped)
	}
	observability.Solver().OnSolveComplete(ctx, len(cs), dropped, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("solved layout", "elements", len(sys.elements), "constraints", len(cs), "dropped", dropped, "took", time.Since(start))
	return result, nil
}

// lower converts registrations hosted in sys into constraints sorted by
// priority, strongest first, ties in slot order.
func (s *Solver) lower(sys *system, regs []layout.Registration) []constraint {
	var cs []constraint
	for _, r := range regs {
		if !sys.contains(r.Host) {
			continue
		}
		d := r.Descriptor
		if !layout.IsAncestor(r.Host, d.Item) || (d.ToItem != nil && !layout.IsAncestor(r.Host, d.ToItem)) {
			s.logger.Warn("skipping constraint whose items left the host", "constraint", d.String())
			continue
		}
		c := constraint{reg: r, expr: sys.row(r)}
		switch d.Relation {
		case layout.RelationLessOrEqual:
			c.ineq = true
		case layout.RelationGreaterOrEqual:
			c.ineq = true
			negate(&c.expr)
		}
		cs = append(cs, c)
	}
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].reg.Descriptor.Priority > cs[j].reg.Descriptor.Priority
	})
	return cs
}

func negate(x *expr) {
	for i := range x.coef {
		x.coef[i] = -x.coef[i]
	}
	x.constant = -x.constant
}

func (s *Solver) solve(ctx context.Context, sys *system, cs []constraint) (*Layout, error) {
	active := make([]bool, len(cs))
	inequalities := 0
	for _, c := range cs {
		if c.ineq {
			inequalities++
		}
	}

	for iter := 0; iter <= inequalities; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values, dropped := eliminate(sys.vars(), cs, active)

		violated := -1
		for i, c := range cs {
			if c.ineq && !active[i] && c.expr.eval(values) > 1e-6 {
				violated = i
				break
			}
		}
		if violated < 0 || iter == inequalities {
			for _, i := range dropped {
				if cs[i].reg.Descriptor.Priority >= layout.PriorityRequired {
					s.logger.Warn("unsatisfiable required constraint", "constraint", cs[i].reg.Descriptor.String())
				}
			}
			return newLayout(sys, values, cs, dropped), nil
		}
		active[violated] = true
	}
	return nil, errs.New(errs.ErrCodeInternal, "active set did not converge")
}

// eliminate runs incremental Gauss-Jordan elimination over the equalities
// and active inequalities in order. It returns the variable values (free
// variables at zero) and the indices of constraints that were dropped
// because they contradict earlier ones.
func eliminate(n int, cs []constraint, active []bool) ([]float64, []int) {
	type pivotRow struct {
		pivot int
		row   expr
	}
	var basis []pivotRow
	var dropped []int

	for i, c := range cs {
		if c.ineq && !active[i] {
			continue
		}
		r := expr{coef: append([]float64(nil), c.expr.coef...), constant: c.expr.constant}
		for _, b := range basis {
			if k := r.coef[b.pivot]; k != 0 {
				r.addScaled(b.row, -k)
				r.constant -= k * b.row.constant
			}
		}

		pivot, best := -1, epsilon
		for j, v := range r.coef {
			if math.Abs(v) > best {
				pivot, best = j, math.Abs(v)
			}
		}
		if pivot < 0 {
			if math.Abs(r.constant) > 1e-6 {
				dropped = append(dropped, i)
			}
			continue
		}

		k := 1 / r.coef[pivot]
		for j := range r.coef {
			r.coef[j] *= k
		}
		r.constant *= k
		r.coef[pivot] = 1
		for bi := range basis {
			b := &basis[bi]
			if f := b.row.coef[pivot]; f != 0 {
				b.row.addScaled(r, -f)
				b.row.constant -= f * r.constant
				b.row.coef[pivot] = 0
			}
		}
		basis = append(basis, pivotRow{pivot: pivot, row: r})
	}

	// Each row reads v[pivot] + sum(free terms) + constant == 0.
	values := make([]float64, n)
	for _, b := range basis {
		values[b.pivot] = 0 - b.row.constant // never -0
	}
	return values, dropped
}
