package inspect

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/autolayout/pkg/layout"
	"github.com/matzehuels/autolayout/pkg/solver"
)

// Registry lists installed constraints. [*solver.Solver] implements it.
type Registry interface {
	Registrations() []layout.Registration
}

// Options configures the diagram.
type Options struct {
	// Detailed adds constant constraints and, with Layout set, solved frames
	// to element labels. When false, only element names are shown.
	Detailed bool
	// Implicit includes constraints the solver synthesized itself.
	Implicit bool
	// Layout supplies frames for detailed labels. Optional.
	Layout *solver.Layout
}

// ToDOT draws the element tree under root as grey containment edges and
// every two-element constraint in reg as a labelled blue edge from item to
// target. Implicit constraints are dashed.
func ToDOT(root layout.Element, reg Registry, opts Options) string {
	ids := make(map[layout.Element]string)
	var order []layout.Element
	layout.Walk(root, func(e layout.Element) bool {
		ids[e] = fmt.Sprintf("n%d", len(order))
		order = append(order, e)
		return true
	})

	var regs []layout.Registration
	if reg != nil {
		for _, r := range reg.Registrations() {
			if _, ok := ids[r.Descriptor.Item]; !ok {
				continue
			}
			if r.Implicit && !opts.Implicit {
				continue
			}
			regs = append(regs, r)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, e := range order {
		label := fmtLabel(e, regs, opts)
		fmt.Fprintf(&buf, "  %s [label=%q];\n", ids[e], label)
	}

	buf.WriteString("\n")
	for _, e := range order {
		for _, c := range e.Children() {
			fmt.Fprintf(&buf, "  %s -> %s [color=grey, arrowhead=none];\n", ids[e], ids[c])
		}
	}

	buf.WriteString("\n")
	for _, r := range regs {
		d := r.Descriptor
		to, ok := ids[d.ToItem]
		if d.IsConstant() || !ok {
			continue
		}
		attrs := []string{
			fmt.Sprintf("label=%q", fmtRelation(d)),
			"color=steelblue",
			"fontcolor=steelblue",
			"constraint=false",
		}
		if r.Implicit {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", ids[d.Item], to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Name returns the label used for e: its String method when it has one.
func Name(e layout.Element) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e)
}

func fmtLabel(e layout.Element, regs []layout.Registration, opts Options) string {
	name := Name(e)
	if !opts.Detailed {
		return name
	}

	parts := []string{name}
	if opts.Layout != nil {
		if f, ok := opts.Layout.Frame(e); ok {
			parts = append(parts, fmt.Sprintf("(%s, %s) %sx%s", num(f.X), num(f.Y), num(f.Width), num(f.Height)))
		}
	}
	for _, r := range regs {
		d := r.Descriptor
		if d.IsConstant() && d.Item == e {
			parts = append(parts, fmtRelation(d))
		}
	}
	return strings.Join(parts, "\n")
}

// num formats v with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100+0, 'f', -1, 64)
}

// fmtRelation renders a descriptor without element names, e.g.
// "left == right + 8 @1000" or "width == 100 @250".
func fmtRelation(d layout.Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s ", d.Attr, d.Relation)
	if d.IsConstant() {
		b.WriteString(strconv.FormatFloat(d.Constant, 'g', -1, 64))
	} else {
		b.WriteString(d.ToAttr.String())
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

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg tag with one that scales
// from its viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
