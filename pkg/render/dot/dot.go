package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/algoviz/pkg/scene"
)

// ToDOT converts a scene to Graphviz DOT source.
func ToDOT(s scene.Scene) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.5, fixedsize=true];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	if s.Mode != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", s.Mode+" heap")
	}
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		attrs := fmt.Sprintf("label=%q", n.Label)
		if n.Highlight {
			attrs += ", fillcolor=\"#ffd54f\""
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, c := range childrenOf(s) {
		writeChildren(&buf, c)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type children struct {
	parent      string
	left, right string
}

// childrenOf groups edges by parent. Scenes written before edges carried a
// side fall back to comparing x coordinates.
func childrenOf(s scene.Scene) []children {
	index := make(map[string]int)
	var out []children
	for _, e := range s.Edges {
		i, ok := index[e.From]
		if !ok {
			i = len(out)
			index[e.From] = i
			out = append(out, children{parent: e.From})
		}
		left := e.Side == scene.SideLeft || (e.Side == "" && e.X2 < e.X1)
		if left {
			out[i].left = e.To
		} else {
			out[i].right = e.To
		}
	}
	return out
}

func writeChildren(buf *bytes.Buffer, c children) {
	left, right := c.left, c.right
	if left == "" {
		left = placeholder(buf, c.parent, "l")
	}
	if right == "" {
		right = placeholder(buf, c.parent, "r")
	}
	fmt.Fprintf(buf, "  %q -> %q%s;\n", c.parent, left, edgeStyle(c.left))
	fmt.Fprintf(buf, "  %q -> %q%s;\n", c.parent, right, edgeStyle(c.right))
}

func placeholder(buf *bytes.Buffer, parent, side string) string {
	id := parent + "_" + side
	fmt.Fprintf(buf, "  %q [label=\"\", style=invis];\n", id)
	return id
}

func edgeStyle(child string) string {
	if child == "" {
		return " [style=invis]"
	}
	return ""
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
