package demo

import (
	"fmt"

	"github.com/matzehuels/autolayout/pkg/layout"
	"github.com/matzehuels/autolayout/pkg/tree"
)

var scenes = []Scene{
	{
		Name:        "pin-insets",
		Description: "Card inset from its container with a header pinned to three edges",
		Build:       buildPinInsets,
	},
	{
		Name:        "center",
		Description: "Fixed-size badge centered in the container with a caption below",
		Build:       buildCenter,
	},
	{
		Name:        "spacing",
		Description: "Toolbar buttons distributed with fixed spacing",
		Build:       buildSpacing,
	},
	{
		Name:        "fixed-size",
		Description: "Equal-height rows spread evenly down the container",
		Build:       buildFixedSize,
	},
	{
		Name:        "priority",
		Description: "Preferred width losing to a required maximum",
		Build:       buildPriority,
	},
	{
		Name:        "align",
		Description: "Group alignment, matched heights and a centered icon row",
		Build:       buildAlign,
	},
	{
		Name:        "rtl",
		Description: "Avatar row that mirrors under right-to-left layout",
		Build:       buildRTL,
	},
	{
		Name:        "matrix",
		Description: "3x3 grid of fixed-size cells spread across rows",
		Build:       buildMatrix,
	},
}

// steps runs fns in order and stops at the first error.
func steps(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func handles(_ []layout.Handle, err error) error { return err }

func handle(_ layout.Handle, err error) error { return err }

func buildPinInsets(b *layout.Builder, root *tree.Node) error {
	card := root.Add("card")
	header := card.Add("header")
	return steps(
		func() error {
			return handles(b.PinEdgesToParent(card, layout.Insets{Top: 20, Left: 16, Bottom: 20, Right: 16}))
		},
		func() error {
			return handles(b.PinEdgesToParentExcluding(header, layout.UniformInsets(0), layout.EdgeBottom))
		},
		func() error { return handle(b.SetDimension(header, layout.DimensionHeight, 44)) },
	)
}

func buildCenter(b *layout.Builder, root *tree.Node) error {
	badge := root.Add("badge")
	caption := root.Add("caption", tree.WithIntrinsicSize(160, 20))
	return steps(
		func() error { return handles(b.SetSize(badge, layout.Size{Width: 120, Height: 40})) },
		func() error { return handles(b.CenterInParent(badge)) },
		func() error { return handle(b.AlignAxis(caption, layout.AxisVertical, badge)) },
		func() error {
			return handle(b.PinEdge(caption, layout.EdgeTop, layout.EdgeBottom, badge, layout.WithOffset(8)))
		},
	)
}

func buildSpacing(b *layout.Builder, root *tree.Node) error {
	toolbar := root.Add("toolbar")
	var buttons []layout.Element
	for _, name := range []string{"back", "title", "share", "next"} {
		buttons = append(buttons, toolbar.Add(name))
	}
	return steps(
		func() error {
			return handles(b.PinEdgesToParentExcluding(toolbar, layout.UniformInsets(0), layout.EdgeBottom))
		},
		func() error { return handle(b.SetDimension(toolbar, layout.DimensionHeight, 44)) },
		func() error {
			return handles(b.DistributeFixedSpacing(buttons, layout.AxisHorizontal, 8, layout.AlignFill))
		},
		func() error { return handle(b.PinEdgeToParentEdge(buttons[0], layout.EdgeTop, 6)) },
		func() error { return handle(b.PinEdgeToParentEdge(buttons[0], layout.EdgeBottom, 6)) },
	)
}

func buildFixedSize(b *layout.Builder, root *tree.Node) error {
	var rows []layout.Element
	for i := 1; i <= 5; i++ {
		rows = append(rows, root.Add(fmt.Sprintf("row%d", i)))
	}
	return steps(
		func() error {
			return handles(b.DistributeFixedSize(rows, layout.AxisVertical, 60, layout.AlignFill))
		},
		func() error { return handle(b.PinEdgeToParentEdge(rows[0], layout.EdgeLeading, 16)) },
		func() error { return handle(b.PinEdgeToParentEdge(rows[0], layout.EdgeTrailing, 16)) },
	)
}

func buildPriority(b *layout.Builder, root *tree.Node) error {
	label := root.Add("label", tree.WithIntrinsicSize(200, 24))
	return steps(
		func() error { return handle(b.PinEdgeToParentEdge(label, layout.EdgeLeading, 16)) },
		func() error { return handle(b.PinEdgeToParentEdge(label, layout.EdgeTop, 16)) },
		func() error {
			return handle(b.MatchDimension(label, layout.DimensionWidth, layout.DimensionWidth, root,
				layout.WithMultiplier(0.5), layout.WithRelation(layout.RelationLessOrEqual)))
		},
		func() error {
			return b.WithPriority(layout.PriorityHigh, func(b *layout.Builder) error {
				return handle(b.SetDimension(label, layout.DimensionWidth, 240))
			})
		},
	)
}

func buildAlign(b *layout.Builder, root *tree.Node) error {
	boxes := []layout.Element{
		root.Add("a", tree.WithIntrinsicSize(60, 30)),
		root.Add("b", tree.WithIntrinsicSize(80, 50)),
		root.Add("c", tree.WithIntrinsicSize(40, 20)),
	}
	icon := root.Add("icon", tree.WithIntrinsicSize(24, 24))
	text := root.Add("text", tree.WithIntrinsicSize(100, 18))
	return steps(
		func() error { return handle(b.PinEdgeToParentEdge(boxes[0], layout.EdgeTop, 20)) },
		func() error { return handle(b.PinEdgeToParentEdge(boxes[0], layout.EdgeLeading, 20)) },
		func() error { return handles(b.AlignEdges(boxes, layout.EdgeTop)) },
		func() error { return handles(b.MatchDimensions(boxes, layout.DimensionHeight)) },
		func() error { return handles(b.SetDimensions(boxes, layout.DimensionWidth, 64)) },
		func() error {
			return handle(b.PinEdge(boxes[1], layout.EdgeLeading, layout.EdgeTrailing, boxes[0], layout.WithOffset(12)))
		},
		func() error {
			return handle(b.PinEdge(boxes[2], layout.EdgeLeading, layout.EdgeTrailing, boxes[1], layout.WithOffset(12)))
		},
		func() error {
			return handle(b.PinEdge(icon, layout.EdgeTop, layout.EdgeBottom, boxes[0], layout.WithOffset(16)))
		},
		func() error { return handle(b.PinEdgeToParentEdge(icon, layout.EdgeLeading, 20)) },
		func() error { return handles(b.AlignAxes([]layout.Element{icon, text}, layout.AxisHorizontal)) },
		func() error {
			return handle(b.PinEdge(text, layout.EdgeLeading, layout.EdgeTrailing, icon, layout.WithOffset(8)))
		},
	)
}

func buildRTL(b *layout.Builder, root *tree.Node) error {
	row := root.Add("row", tree.WithDirection(layout.DirectionRightToLeft))
	avatar := row.Add("avatar")
	name := row.Add("name", tree.WithIntrinsicSize(120, 20))
	return steps(
		func() error {
			return handles(b.PinEdgesToParentExcluding(row, layout.UniformInsets(16), layout.EdgeBottom))
		},
		func() error { return handle(b.SetDimension(row, layout.DimensionHeight, 48)) },
		func() error { return handles(b.SetSize(avatar, layout.Size{Width: 48, Height: 48})) },
		func() error { return handle(b.PinEdgeToParentEdge(avatar, layout.EdgeLeading, 0)) },
		func() error { return handle(b.PinEdgeToParentEdge(avatar, layout.EdgeTop, 0)) },
		func() error {
			return handle(b.PinEdge(name, layout.EdgeLeading, layout.EdgeTrailing, avatar, layout.WithOffset(12)))
		},
		func() error { return handle(b.AlignAxis(name, layout.AxisHorizontal, avatar)) },
	)
}

func buildMatrix(b *layout.Builder, root *tree.Node) error {
	const n, cell = 3, 80
	var rows []layout.Element
	for r := 0; r < n; r++ {
		rows = append(rows, root.Add(fmt.Sprintf("row%d", r)))
	}
	if err := steps(
		func() error { return handles(b.DistributeFixedSize(rows, layout.AxisVertical, cell, layout.AlignFill)) },
		func() error { return handle(b.PinEdgeToParentEdge(rows[0], layout.EdgeLeading, 0)) },
		func() error { return handle(b.PinEdgeToParentEdge(rows[0], layout.EdgeTrailing, 0)) },
	); err != nil {
		return err
	}

	for r, row := range rows {
		parent := row.(*tree.Node)
		var cells []layout.Element
		for c := 0; c < n; c++ {
			cells = append(cells, parent.Add(fmt.Sprintf("cell%d%d", r, c)))
		}
		if err := steps(
			func() error {
				return handles(b.DistributeFixedSize(cells, layout.AxisHorizontal, cell, layout.AlignFill))
			},
			func() error { return handle(b.PinEdgeToParentEdge(cells[0], layout.EdgeTop, 0)) },
			func() error { return handle(b.PinEdgeToParentEdge(cells[0], layout.EdgeBottom, 0)) },
		); err != nil {
			return err
		}
	}
	return nil
}
