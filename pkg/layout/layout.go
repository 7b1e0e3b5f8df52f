// Package layout turns heaps and binary search trees into positioned scenes.
//
// Both structures are drawn as binary trees using the same rule: the root
// sits at the horizontal centre of the frame, and each child is placed one
// vertical step below its parent, offset sideways by a distance that halves
// at every level. For a BST this is exactly [bst.AssignLayout]; heaps apply
// the same rule to the implicit tree of their backing array.
package layout

import (
	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/heap"
	"github.com/matzehuels/algoviz/pkg/keys"
	"github.com/matzehuels/algoviz/pkg/scene"
)

const (
	// DefaultWidth is the default frame width in drawing units.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in drawing units.
	DefaultHeight = 600.0

	// DefaultTopMargin is the y coordinate of the root node.
	DefaultTopMargin = 50.0

	// bottomMargin keeps the deepest row clear of the frame edge.
	bottomMargin = 50.0
)

// Options configures scene layout.
type Options struct {
	Width     float64
	Height    float64
	TopMargin float64

	// Highlight, when set, marks the BST search path to this key.
	Highlight *float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.TopMargin <= 0 {
		o.TopMargin = DefaultTopMargin
	}
	return o
}

// =============================================================================
// BST
// =============================================================================

// BST builds a fresh tree from values, lays it out and returns the scene.
func BST(values []float64, opts Options) scene.Scene {
	opts = opts.withDefaults()
	res := bst.BuildValues(values)

	if opts.Highlight != nil {
		bst.Search(res.Root, *opts.Highlight)
	}
	bst.AssignLayout(res.Root, opts.Width/2, opts.TopMargin, opts.Width/4)

	s := scene.Scene{
		Kind:   scene.KindBST,
		Width:  opts.Width,
		Values: values,
		Steps:  res.Steps,
	}
	appendPrimitives(&s, bst.Traverse(res.Root))
	s.Height = frameHeight(s, opts)
	return s
}

// appendPrimitives converts traversal output to scene nodes and edges.
// Node IDs follow pre-order indices.
func appendPrimitives(s *scene.Scene, ps []bst.Primitive) {
	for _, p := range ps {
		switch p.Kind {
		case bst.KindNode:
			s.Nodes = append(s.Nodes, scene.Node{
				ID:        scene.NodeID(p.Index),
				Label:     keys.Format(p.Value),
				X:         p.X,
				Y:         p.Y,
				Highlight: p.Highlighted,
			})
		case bst.KindEdge:
			s.Edges = append(s.Edges, scene.Edge{
				From: scene.NodeID(p.From),
				To:   scene.NodeID(p.To),
				X1:   p.X1,
				Y1:   p.Y1,
				X2:   p.X2,
				Y2:   p.Y2,
				Side: p.Side.String(),
			})
		}
	}
}

// =============================================================================
// Heap
// =============================================================================

// Heap lays out the current contents of h as a complete binary tree.
// Node IDs follow array indices, so "n0" is always the root.
func Heap(h *heap.Heap, opts Options) scene.Scene {
	opts = opts.withDefaults()
	items := h.ToArray()

	s := scene.Scene{
		Kind:   scene.KindHeap,
		Mode:   h.Mode().String(),
		Width:  opts.Width,
		Values: items,
		Steps:  h.Steps(),
	}
	if len(items) > 0 {
		s.Nodes = make([]scene.Node, len(items))
		placeHeap(&s, items, 0, opts.Width/2, opts.TopMargin, opts.Width/4)
	}
	s.Height = frameHeight(s, opts)
	return s
}

func placeHeap(s *scene.Scene, items []float64, i int, x, y, offset float64) {
	s.Nodes[i] = scene.Node{
		ID:    scene.NodeID(i),
		Label: keys.Format(items[i]),
		X:     x,
		Y:     y,
	}
	for side, child := range [2]int{2*i + 1, 2*i + 2} {
		if child >= len(items) {
			continue
		}
		cx, sideName := x-offset, scene.SideLeft
		if side == 1 {
			cx, sideName = x+offset, scene.SideRight
		}
		cy := y + bst.VerticalStep
		s.Edges = append(s.Edges, scene.Edge{
			From: scene.NodeID(i),
			To:   scene.NodeID(child),
			X1:   x,
			Y1:   y,
			X2:   cx,
			Y2:   cy,
			Side: sideName,
		})
		placeHeap(s, items, child, cx, cy, offset/2)
	}
}

// frameHeight grows the frame when the deepest row would fall off it.
func frameHeight(s scene.Scene, opts Options) float64 {
	_, _, _, maxY := s.Bounds()
	return max(opts.Height, maxY+bottomMargin)
}
