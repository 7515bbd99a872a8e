// Package pkg provides the core libraries for Autolayout, a constraint-based
// layout builder.
//
// # Overview
//
// Autolayout positions rectangular elements in a tree by installing linear
// relations between their edges, axes and dimensions, then solving them. The
// pkg directory is organized into four areas:
//
//  1. [layout] - The builder: edges, axes, dimensions, priorities and the
//     factory methods that turn them into constraints
//  2. [solver] and [tree] - A reference constraint engine and element tree
//  3. [inspect] and [snapshot] - Debugging output (Graphviz, JSON)
//  4. [demo] - Named scenes exercising the builder end to end
//
// # Architecture
//
// The typical data flow:
//
//	tree.Node (element hierarchy)
//	         ↓
//	    [layout] package (builder installs constraints)
//	         ↓
//	    [solver] package (prioritized solve)
//	         ↓
//	    frames → table / JSON / SVG
//
// # Quick Start
//
//	root := tree.New("root")
//	card := root.Add("card")
//
//	s := solver.New()
//	b := layout.New(s)
//	b.SetSize(root, layout.Size{Width: 320, Height: 200})
//	b.PinEdgesToParent(card, layout.UniformInsets(16))
//
//	l, _ := s.Solve(ctx, root)
//	f, _ := l.Frame(card) // {16 16 288 168}
//
// # Main Packages
//
// [layout] - Attributes, relations and priorities; the [layout.Builder] with
// pinning, alignment, dimension and distribution methods; constraint handles
// and removal.
//
// [solver] - Gaussian elimination over element frames. Constraints are added
// in priority order and any that conflict with those already accepted are
// dropped and reported.
//
// [tree] - A simple element tree with names, intrinsic sizes and a layout
// direction for leading/trailing edges.
//
// [inspect] - Graphviz DOT and SVG diagrams of an element tree and its
// constraints.
//
// [snapshot] - A JSON document of elements, frames and constraints.
//
// [cache] - A file cache for rendered diagrams.
//
// [demo] - Built-in scenes used by the CLI and tests.
//
// ## Supporting Packages
//
// [errors] - Coded errors with user-facing messages.
//
// [observability] - Hooks for constraint installation and solving.
//
// [buildinfo] - Version information set at build time.
//
// [layout]: github.com/matzehuels/autolayout/pkg/layout
// [layout.Builder]: github.com/matzehuels/autolayout/pkg/layout#Builder
// [solver]: github.com/matzehuels/autolayout/pkg/solver
// [tree]: github.com/matzehuels/autolayout/pkg/tree
// [inspect]: github.com/matzehuels/autolayout/pkg/inspect
// [snapshot]: github.com/matzehuels/autolayout/pkg/snapshot
// [cache]: github.com/matzehuels/autolayout/pkg/cache
// [demo]: github.com/matzehuels/autolayout/pkg/demo
// [errors]: github.com/matzehuels/autolayout/pkg/errors
// [observability]: github.com/matzehuels/autolayout/pkg/observability
// [buildinfo]: github.com/matzehuels/autolayout/pkg/buildinfo
package pkg
