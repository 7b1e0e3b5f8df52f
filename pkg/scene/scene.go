package scene

import (
	"fmt"
	"slices"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Structure kinds.
const (
	KindHeap = "heap"
	KindBST  = "bst"
)

// Visual styles for rendering.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// Child sides carried on edges.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// ValidKinds is the set of supported structure kinds.
var ValidKinds = map[string]bool{
	KindHeap: true,
	KindBST:  true,
}

// =============================================================================
// Scene - Positioned Drawing
// =============================================================================

// Scene is the canonical serialization format for a positioned data
// structure. Nodes and edges are in the order the layout pass emitted them.
type Scene struct {
	Kind      string    `json:"kind" bson:"kind"`
	Mode      string    `json:"mode,omitempty" bson:"mode,omitempty"` // "max" or "min" for heaps
	Width     float64   `json:"width" bson:"width"`
	Height    float64   `json:"height" bson:"height"`
	Values    []float64 `json:"values,omitempty" bson:"values,omitempty"`       // Input keys (bst) or heap array
	Extracted []float64 `json:"extracted,omitempty" bson:"extracted,omitempty"` // Keys removed by heap extracts
	Nodes     []Node    `json:"nodes" bson:"nodes"`
	Edges     []Edge    `json:"edges" bson:"edges"`
	Steps     []string  `json:"steps,omitempty" bson:"steps,omitempty"`
}

// Node is a positioned key.
type Node struct {
	ID        string  `json:"id" bson:"id"`
	Label     string  `json:"label" bson:"label"`
	X         float64 `json:"x" bson:"x"`
	Y         float64 `json:"y" bson:"y"`
	Highlight bool    `json:"highlight,omitempty" bson:"highlight,omitempty"`
}

// Edge is a positioned parent→child link.
type Edge struct {
	From string  `json:"from" bson:"from"`
	To   string  `json:"to" bson:"to"`
	X1   float64 `json:"x1" bson:"x1"`
	Y1   float64 `json:"y1" bson:"y1"`
	X2   float64 `json:"x2" bson:"x2"`
	Y2   float64 `json:"y2" bson:"y2"`
	Side string  `json:"side,omitempty" bson:"side,omitempty"` // "left" or "right"
}

// NodeID returns the identifier given to the i-th emitted node.
func NodeID(i int) string { return fmt.Sprintf("n%d", i) }

// IsEmpty reports whether the scene has no nodes.
func (s Scene) IsEmpty() bool { return len(s.Nodes) == 0 }

// Node returns the node with the given ID.
func (s Scene) Node(id string) (Node, bool) {
	i := slices.IndexFunc(s.Nodes, func(n Node) bool { return n.ID == id })
	if i < 0 {
		return Node{}, false
	}
	return s.Nodes[i], true
}

// Bounds returns the smallest box containing every node centre.
// An empty scene returns zeros.
func (s Scene) Bounds() (minX, minY, maxX, maxY float64) {
	for i, n := range s.Nodes {
		if i == 0 {
			minX, maxX, minY, maxY = n.X, n.X, n.Y, n.Y
			continue
		}
		minX, maxX = min(minX, n.X), max(maxX, n.X)
		minY, maxY = min(minY, n.Y), max(maxY, n.Y)
	}
	return minX, minY, maxX, maxY
}

// Validate checks that the scene kind is known, every edge references an
// existing node, and no node has more than one parent.
func (s Scene) Validate() error {
	if !ValidKinds[s.Kind] {
		return fmt.Errorf("invalid kind: %q (must be 'heap' or 'bst')", s.Kind)
	}
	ids := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
	}
	parents := make(map[string]string, len(s.Edges))
	for _, e := range s.Edges {
		if !ids[e.From] || !ids[e.To] {
			return fmt.Errorf("edge %s→%s references unknown node", e.From, e.To)
		}
		if p, ok := parents[e.To]; ok {
			return fmt.Errorf("node %q has two parents (%s, %s)", e.To, p, e.From)
		}
		parents[e.To] = e.From
		if e.Side != "" && e.Side != SideLeft && e.Side != SideRight {
			return fmt.Errorf("edge %s→%s has invalid side %q", e.From, e.To, e.Side)
		}
	}
	return nil
}
