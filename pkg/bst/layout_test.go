package bst

import (
	"testing"
)

func TestAssignLayoutSymmetry(t *testing.T) {
	root := Build([]string{"50", "30", "70"}).Root
	AssignLayout(root, 400, 50, 100)

	tests := []struct {
		name string
		n    *Node
		x, y float64
	}{
		{"root", root, 400, 50},
		{"left", root.Left, 300, 130},
		{"right", root.Right, 500, 130},
	}
	for _, tt := range tests {
		if tt.n.X != tt.x || tt.n.Y != tt.y {
			t.Errorf("%s at (%v, %v), want (%v, %v)", tt.name, tt.n.X, tt.n.Y, tt.x, tt.y)
		}
		if !tt.n.Positioned {
			t.Errorf("%s not marked positioned", tt.name)
		}
	}
}

func TestAssignLayoutHalvesOffset(t *testing.T) {
	root := BuildValues([]float64{50, 30, 70, 20, 80}).Root
	AssignLayout(root, 400, 50, 100)

	if ll := root.Left.Left; ll.X != 250 || ll.Y != 210 {
		t.Errorf("20 at (%v, %v), want (250, 210)", ll.X, ll.Y)
	}
	if rr := root.Right.Right; rr.X != 550 || rr.Y != 210 {
		t.Errorf("80 at (%v, %v), want (550, 210)", rr.X, rr.Y)
	}
}

func TestAssignLayoutNil(t *testing.T) {
	AssignLayout(nil, 0, 0, 10)
	if got := Traverse(nil); len(got) != 0 {
		t.Errorf("Traverse(nil) = %v, want empty", got)
	}
}

func countKinds(ps []Primitive) (nodes, edges int) {
	for _, p := range ps {
		if p.Kind == KindNode {
			nodes++
		} else {
			edges++
		}
	}
	return nodes, edges
}

func TestTraverseCompleteness(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"single", []float64{1}},
		{"balanced", []float64{50, 30, 70}},
		{"chain", []float64{1, 2, 3, 4, 5}},
		{"mixed", []float64{50, 30, 70, 20, 40, 60, 80, 35, 45, 65}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := BuildValues(tt.values).Root
			AssignLayout(root, 400, 50, 200)

			ps := Traverse(root)
			nodes, edges := countKinds(ps)
			size := Size(root)
			if nodes != size {
				t.Errorf("node primitives = %d, want %d", nodes, size)
			}
			if edges != size-1 {
				t.Errorf("edge primitives = %d, want %d", edges, size-1)
			}

			seen := map[float64]bool{}
			for _, p := range ps {
				if p.Kind != KindNode {
					continue
				}
				if seen[p.Value] {
					t.Errorf("node %v emitted twice", p.Value)
				}
				seen[p.Value] = true
			}
		})
	}
}

func TestTraversePreOrder(t *testing.T) {
	root := BuildValues([]float64{50, 30, 70}).Root
	AssignLayout(root, 400, 50, 100)

	ps := Traverse(root)
	want := []Primitive{
		{Kind: KindEdge, X1: 400, Y1: 50, X2: 300, Y2: 130, From: 0, To: 1, Side: Left},
		{Kind: KindEdge, X1: 400, Y1: 50, X2: 500, Y2: 130, From: 0, To: 2, Side: Right},
		{Kind: KindNode, X: 400, Y: 50, Index: 0, Value: 50},
		{Kind: KindNode, X: 300, Y: 130, Index: 1, Value: 30},
		{Kind: KindNode, X: 500, Y: 130, Index: 2, Value: 70},
	}
	if len(ps) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(ps), len(want), ps)
	}
	for i := range want {
		if ps[i] != want[i] {
			t.Errorf("primitive %d = %+v, want %+v", i, ps[i], want[i])
		}
	}
}

func TestTraverseSkipsUnpositionedEdges(t *testing.T) {
	root := BuildValues([]float64{50, 30, 70}).Root
	ps := Traverse(root)
	nodes, edges := countKinds(ps)
	if nodes != 3 || edges != 0 {
		t.Errorf("unpositioned tree: nodes=%d edges=%d, want 3 and 0", nodes, edges)
	}
}

func TestTraverseDeepFork(t *testing.T) {
	// Past ~55 levels the halved offset vanishes, so siblings share
	// coordinates. Endpoints must still resolve to distinct nodes.
	var values []float64
	for v := 1.0; v <= 58; v++ {
		values = append(values, v)
	}
	values = append(values, 60, 59, 61)
	root := BuildValues(values).Root
	AssignLayout(root, 400, 50, 200)

	ps := Traverse(root)
	byIndex := make(map[int]float64)
	for _, p := range ps {
		if p.Kind == KindNode {
			byIndex[p.Index] = p.Value
		}
	}

	targets := make(map[int]bool)
	var forkSides []Side
	for _, p := range ps {
		if p.Kind != KindEdge {
			continue
		}
		if targets[p.To] {
			t.Fatalf("node %d has two incoming edges", p.To)
		}
		targets[p.To] = true
		if byIndex[p.From] == 60 {
			forkSides = append(forkSides, p.Side)
			want := 59.0
			if p.Side == Right {
				want = 61
			}
			if byIndex[p.To] != want {
				t.Errorf("%v child of 60 = %v, want %v", p.Side, byIndex[p.To], want)
			}
		}
	}
	if len(targets) != len(values)-1 {
		t.Errorf("edges = %d, want %d", len(targets), len(values)-1)
	}
	if len(forkSides) != 2 || forkSides[0] != Left || forkSides[1] != Right {
		t.Errorf("fork sides = %v, want [left right]", forkSides)
	}
}

func TestSideString(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Error("unexpected Side strings")
	}
}

func TestKindString(t *testing.T) {
	if KindEdge.String() != "edge" || KindNode.String() != "node" {
		t.Error("unexpected Kind strings")
	}
}
