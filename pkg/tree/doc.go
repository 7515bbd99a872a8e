// Package tree is a minimal visual element tree for driving the layout
// package.
//
// A [Node] has a uuid identity, a display name, ordered children, an
// optional intrinsic content size and a layout direction that is inherited
// from the nearest ancestor that sets one:
//
//	root := tree.New("root")
//	label := root.Add("label", tree.WithIntrinsicSize(120, 20))
//	root.SetDirection(layout.DirectionRightToLeft) // label is now RTL too
//
// Nodes implement [layout.Element] and [layout.Directional], and solvers pick
// up the intrinsic size through the IntrinsicSize method.
package tree
