// Package svg renders positioned scenes as standalone SVG documents.
//
// The renderer draws edges first, then node shapes, then labels, so lines
// never cover text. Appearance is delegated to a [Style]: [Simple] for plain
// circles or [Handdrawn] for a seeded sketch look.
//
//	data := svg.Render(s, svg.WithStyle(svg.NewHanddrawn(42)), svg.WithSteps())
package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/algoviz/pkg/scene"
)

const nodeInteractionCSS = `
    .node { transition: stroke-width 0.2s ease; }
    .node.highlight { stroke-width: 4; }
    .node-text { pointer-events: none; }`

const nodeInteractionJS = `
    document.querySelectorAll('.node').forEach(el => {
      el.addEventListener('mouseenter', () => el.classList.add('highlight'));
      el.addEventListener('mouseleave', () => el.classList.remove('highlight'));
    });`

const (
	stepLineHeight = 18.0
	stepPadding    = 20.0
)

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	style       Style
	steps       bool
	interactive bool
	title       string
}

func WithStyle(s Style) Option  { return func(r *renderer) { r.style = s } }
func WithSteps() Option         { return func(r *renderer) { r.steps = true } }
func WithInteraction() Option   { return func(r *renderer) { r.interactive = true } }
func WithTitle(t string) Option { return func(r *renderer) { r.title = t } }

// Render draws s and returns the SVG bytes.
func Render(s scene.Scene, opts ...Option) []byte {
	r := renderer{style: Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	height := s.Height
	if r.steps && len(s.Steps) > 0 {
		height += stepsPanelHeight(s.Steps)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, height, s.Width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}

	r.style.RenderDefs(&buf)

	for _, e := range s.Edges {
		r.style.RenderEdge(&buf, Edge{FromID: e.From, ToID: e.To, X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2})
	}
	nodes := toNodes(s.Nodes)
	for _, n := range nodes {
		r.style.RenderNode(&buf, n)
	}
	for _, n := range nodes {
		r.style.RenderLabel(&buf, n)
	}

	if r.steps && len(s.Steps) > 0 {
		renderSteps(&buf, s.Steps, s.Height)
	}
	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", nodeInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", nodeInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func toNodes(in []scene.Node) []Node {
	out := make([]Node, len(in))
	for i, n := range in {
		out[i] = Node{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y, Highlight: n.Highlight}
	}
	return out
}

func stepsPanelHeight(steps []string) float64 {
	return 2*stepPadding + float64(len(steps))*stepLineHeight
}

// renderSteps lists the build log below the drawing.
func renderSteps(buf *bytes.Buffer, steps []string, top float64) {
	fmt.Fprintf(buf, `  <g class="steps" font-family="%s" font-size="12" fill="#555555">`+"\n", fontFamily)
	for i, step := range steps {
		y := top + stepPadding + float64(i)*stepLineHeight
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f">%d. %s</text>`+"\n", stepPadding, y, i+1, escapeXML(step))
	}
	buf.WriteString("  </g>\n")
}
