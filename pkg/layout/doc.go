// Package layout is a declarative convenience layer over a linear constraint
// layout solver.
//
// # Overview
//
// Callers describe spatial relationships between elements (pin an edge to an
// edge, center on an axis, match a dimension, distribute evenly) with a small
// closed vocabulary. Each description is translated into one or more
// primitive [Descriptor] values, registered with a [Solver], and returned as
// [Handle] values that can later be removed.
//
// The package never solves anything and never owns the element tree. It
// talks to both through narrow interfaces:
//
//   - [Element]: a node with a parent and ordered children
//   - [Solver]: installs descriptors, uninstalls tokens, and lists the
//     registrations affecting an element
//
// The reference implementations live in the tree and solver packages.
//
// # Attributes
//
// Attributes come in three closed families: [Edge], [Axis] and [Dimension].
// They resolve to a [NativeAttribute] under a [Direction]. Leading and
// trailing resolve to left and right for left-to-right layouts and the other
// way round for right-to-left ones. The direction is read from the element
// (see [Directional]) when the constraint is built, so a later change of
// direction does not affect installed constraints.
//
// # Builder
//
// All constraint creation goes through a [Builder]:
//
//	b := layout.New(s)
//	handles, err := b.PinEdgesToParent(child, layout.Insets{Top: 10, Left: 5, Bottom: 10, Right: 5})
//
// [Builder.Constrain] is the general primitive; every other method is a
// sequence of calls to it. Two-element constraints are registered with the
// nearest common ancestor of both elements ([CommonAncestor]).
//
// # Priorities
//
// [Builder.WithPriority] runs a block with a derived builder whose
// constraints default to the given priority:
//
//	err := b.WithPriority(layout.PriorityHigh, func(b *layout.Builder) error {
//	    _, err := b.SetDimension(e, layout.DimensionWidth, 100)
//	    return err
//	})
//
// The outer builder is never modified, so nested scopes and concurrent
// scopes on different builders cannot observe each other.
//
// # Composite Operations
//
// Operations that install several constraints return them in a stable order
// and are atomic: if a later step fails, everything the call installed is
// removed again before the error is returned.
//
// # Distribution
//
// [Builder.DistributeFixedSpacing] and [Builder.DistributeFixedSize] lay out
// an ordered list of elements along an axis inside their common ancestor,
// with an [Alignment] for the cross axis.
//
// # Removal
//
// [Handle.Remove] detaches one constraint; removing twice is a no-op that
// reports false. [Builder.RemoveAffecting] and
// [Builder.RemoveAffectingSubtree] remove everything touching an element or
// a subtree, optionally sparing constraints the solver synthesized itself.
package layout
