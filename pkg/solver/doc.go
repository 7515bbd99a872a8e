// Package solver is a small reference implementation of [layout.Solver].
//
// # Registration Table
//
// Constraints live in an arena of slots. A [layout.Token] packs the slot
// index with a generation counter that is bumped on removal, so a token
// that outlived its constraint never matches a reused slot:
//
//	token = generation<<32 | index
//
// Elements that implement [IntrinsicSizer] get implicit width and height
// constraints at [layout.PriorityLow] the first time the solver sees them.
// These are marked Implicit in [layout.Registration]; once removed they stay
// removed.
//
// # Solving
//
// [Solver.Solve] assigns four variables to every element (x and y in the
// parent's space, width, height) and lowers each registration hosted in the
// subtree to a linear row. Attributes of the host itself are read in its
// bounds, so a child's left edge pinned to its parent's left edge means
// x == 0.
//
// Rows are added strongest first by Gauss-Jordan elimination. A row that
// contradicts the accepted ones is dropped and reported in
// [Layout.Dropped]. Inequalities use a simple active-set loop. This is not a
// Cassowary solver: weaker constraints are satisfied exactly or not at all,
// never "as closely as possible". It is meant for tests, demos and
// inspection, not for interactive layout of large trees.
package solver
