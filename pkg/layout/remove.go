package layout

import (
	"github.com/matzehuels/autolayout/pkg/observability"
)

// ConstraintsAffecting returns handles for every constraint whose item or
// target is e. Constraints the solver synthesized itself are only included
// when includeImplicit is set.
func (b *Builder) ConstraintsAffecting(e Element, includeImplicit bool) []Handle {
	if e == nil {
		return nil
	}
	var handles []Handle
	for _, r := range b.solver.Affecting(e) {
		if r.Implicit && !includeImplicit {
			continue
		}
		handles = append(handles, NewHandle(b.solver, r.Token))
	}
	return handles
}

// RemoveAffecting removes the constraints ConstraintsAffecting reports for e
// and returns how many were removed.
func (b *Builder) RemoveAffecting(e Element, includeImplicit bool) int {
	n := RemoveAll(b.ConstraintsAffecting(e, includeImplicit))
	b.logger.Debug("removed constraints", "element", describe(e), "count", n)
	observability.Constraints().OnRemove(n)
	return n
}

// RemoveAffectingSubtree removes every constraint affecting root or any of
// its descendants. A constraint between two elements of the subtree is only
// counted once.
//
// Each removal is a separate solver call; with a large subtree prefer a
// single call here over RemoveAffecting per element.
func (b *Builder) RemoveAffectingSubtree(root Element, includeImplicit bool) int {
	seen := make(map[Token]struct{})
	var handles []Handle
	Walk(root, func(e Element) bool {
		for _, h := range b.ConstraintsAffecting(e, includeImplicit) {
			if _, ok := seen[h.Token()]; ok {
				continue
			}
			seen[h.Token()] = struct{}{}
			handles = append(handles, h)
		}
		return true
	})
	n := RemoveAll(handles)
	b.logger.Debug("removed subtree constraints", "root", describe(root), "count", n)
	observability.Constraints().OnRemove(n)
	return n
}
