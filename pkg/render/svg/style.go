package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"math/rand/v2"
)

// NodeRadius is the circle radius used for every node.
const NodeRadius = 20.0

// Style defines how nodes, edges and labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, markers).
	RenderDefs(buf *bytes.Buffer)
	// RenderEdge writes one parent→child line.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderNode writes one node shape.
	RenderNode(buf *bytes.Buffer, n Node)
	// RenderLabel writes a node's key text.
	RenderLabel(buf *bytes.Buffer, n Node)
}

// Node contains everything needed to draw one key.
type Node struct {
	ID        string
	Label     string
	X, Y      float64
	Highlight bool
}

// Edge contains line coordinates between two nodes.
type Edge struct {
	FromID, ToID   string
	X1, Y1, X2, Y2 float64
}

const (
	colorStroke    = "#333333"
	colorFill      = "#ffffff"
	colorHighlight = "#ffd54f"
	colorEdge      = "#666666"
	fontFamily     = "Helvetica, Arial, sans-serif"
)

func fill(n Node) string {
	if n.Highlight {
		return colorHighlight
	}
	return colorFill
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// fontSize shrinks long labels so they stay inside the circle.
func fontSize(label string) float64 {
	n := max(1, len(label))
	return max(9, min(16, (NodeRadius*1.6)/(float64(n)*0.55)))
}

// =============================================================================
// Simple
// =============================================================================

// Simple draws plain circles and straight lines.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderEdge(buf *bytes.Buffer, e Edge) {
	fmt.Fprintf(buf, `  <line class="edge" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
		e.X1, e.Y1, e.X2, e.Y2, colorEdge)
}

func (Simple) RenderNode(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf, `  <circle id="node-%s" class="node" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		escapeXML(n.ID), n.X, n.Y, NodeRadius, fill(n), colorStroke)
}

func (Simple) RenderLabel(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf, `  <text class="node-text" data-node="%s" x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		escapeXML(n.ID), n.X, n.Y, fontFamily, fontSize(n.Label), escapeXML(n.Label))
}

// =============================================================================
// Handdrawn
// =============================================================================

// Handdrawn draws wobbly outlines and slightly bent lines. The wobble comes
// from a seeded generator, so equal seeds give identical output.
type Handdrawn struct {
	seed uint64
}

// NewHanddrawn creates a hand-drawn style with the given seed.
func NewHanddrawn(seed uint64) *Handdrawn {
	return &Handdrawn{seed: seed}
}

// rng derives a per-element generator so output does not depend on the
// order elements are drawn in.
func (h *Handdrawn) rng(key string) *rand.Rand {
	var k uint64 = 1469598103934665603
	for i := 0; i < len(key); i++ {
		k ^= uint64(key[i])
		k *= 1099511628211
	}
	return rand.New(rand.NewPCG(h.seed, k))
}

func jitter(r *rand.Rand, amount float64) float64 {
	return (r.Float64()*2 - 1) * amount
}

func (h *Handdrawn) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <filter id="sketch"><feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="2" result="noise"/>`)
	buf.WriteString(`<feDisplacementMap in="SourceGraphic" in2="noise" scale="2"/></filter>` + "\n")
	buf.WriteString("  </defs>\n")
}

func (h *Handdrawn) RenderEdge(buf *bytes.Buffer, e Edge) {
	r := h.rng("edge:" + e.FromID + ":" + e.ToID)
	mx := (e.X1+e.X2)/2 + jitter(r, 4)
	my := (e.Y1+e.Y2)/2 + jitter(r, 4)
	fmt.Fprintf(buf, `  <path class="edge" d="M %.1f %.1f Q %.1f %.1f %.1f %.1f" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round"/>`+"\n",
		e.X1, e.Y1, mx, my, e.X2, e.Y2, colorEdge)
}

func (h *Handdrawn) RenderNode(buf *bytes.Buffer, n Node) {
	r := h.rng("node:" + n.ID)
	const segments = 12
	var path bytes.Buffer
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i%segments) / segments
		rad := NodeRadius + jitter(r, 1.5)
		x := n.X + rad*math.Cos(a)
		y := n.Y + rad*math.Sin(a)
		if i == 0 {
			fmt.Fprintf(&path, "M %.1f %.1f", x, y)
		} else {
			fmt.Fprintf(&path, " L %.1f %.1f", x, y)
		}
	}
	path.WriteString(" Z")
	fmt.Fprintf(buf, `  <path id="node-%s" class="node" d="%s" fill="%s" stroke="%s" stroke-width="2.5" stroke-linejoin="round" filter="url(#sketch)"/>`+"\n",
		escapeXML(n.ID), path.String(), fill(n), colorStroke)
}

func (h *Handdrawn) RenderLabel(buf *bytes.Buffer, n Node) {
	r := h.rng("label:" + n.ID)
	rot := jitter(r, 3)
	fmt.Fprintf(buf, `  <text class="node-text" data-node="%s" x="%.1f" y="%.1f" font-family="'Comic Sans MS', 'Comic Neue', cursive" font-size="%.1f" text-anchor="middle" dominant-baseline="central" transform="rotate(%.1f %.1f %.1f)">%s</text>`+"\n",
		escapeXML(n.ID), n.X, n.Y, fontSize(n.Label), rot, n.X, n.Y, escapeXML(n.Label))
}
