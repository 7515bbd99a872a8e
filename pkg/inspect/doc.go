// Package inspect renders an element tree and its constraints as a Graphviz
// diagram, for debugging layouts.
//
// # Usage
//
//	dot := inspect.ToDOT(root, s, inspect.Options{Detailed: true, Layout: l})
//	svg, err := inspect.RenderSVG(dot)
//
// Containment is drawn as grey undirected edges so Graphviz ranks the tree
// top to bottom. Constraints between two elements are drawn as blue arrows
// from item to target that do not affect ranking; constant constraints
// (fixed sizes) appear inside the element's label when Detailed is set.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package inspect
