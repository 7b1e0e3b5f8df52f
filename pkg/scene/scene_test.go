package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleScene() Scene {
	return Scene{
		Kind:   KindBST,
		Width:  800,
		Height: 600,
		Values: []float64{50, 30},
		Nodes: []Node{
			{ID: "n0", Label: "50", X: 400, Y: 50},
			{ID: "n1", Label: "30", X: 200, Y: 130, Highlight: true},
		},
		Edges: []Edge{{From: "n0", To: "n1", X1: 400, Y1: 50, X2: 200, Y2: 130, Side: SideLeft}},
		Steps: []string{"Inserted 50 into BST", "Inserted 30 into BST"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scene)
		wantErr string
	}{
		{"valid", func(*Scene) {}, ""},
		{"bad kind", func(s *Scene) { s.Kind = "graph" }, "invalid kind"},
		{"dangling edge", func(s *Scene) { s.Edges[0].To = "n9" }, "unknown node"},
		{"duplicate id", func(s *Scene) { s.Nodes[1].ID = "n0" }, "duplicate node id"},
		{"two parents", func(s *Scene) { s.Edges = append(s.Edges, s.Edges[0]) }, "two parents"},
		{"bad side", func(s *Scene) { s.Edges[0].Side = "middle" }, "invalid side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleScene()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMarshalEmptyUsesArrays(t *testing.T) {
	data, err := Marshal(Scene{Kind: KindHeap})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Contains(data, []byte(`"nodes": []`)) || !bytes.Contains(data, []byte(`"edges": []`)) {
		t.Errorf("empty scene should encode empty arrays:\n%s", data)
	}
}

func TestReadRejectsInvalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind": "tower", "nodes": [], "edges": []}`))
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if _, err := Unmarshal([]byte(`{not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	want := sampleScene()

	if err := WriteFile(want, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got.Nodes) != 2 || got.Nodes[1] != want.Nodes[1] {
		t.Errorf("nodes = %+v, want %+v", got.Nodes, want.Nodes)
	}
	if got.Edges[0] != want.Edges[0] {
		t.Errorf("edge = %+v, want %+v", got.Edges[0], want.Edges[0])
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestBoundsAndLookup(t *testing.T) {
	s := sampleScene()
	minX, minY, maxX, maxY := s.Bounds()
	if minX != 200 || minY != 50 || maxX != 400 || maxY != 130 {
		t.Errorf("Bounds = (%v,%v,%v,%v)", minX, minY, maxX, maxY)
	}
	if n, ok := s.Node("n1"); !ok || n.Label != "30" {
		t.Errorf("Node(n1) = %+v, %v", n, ok)
	}
	if _, ok := s.Node("zz"); ok {
		t.Error("Node(zz) should not exist")
	}
	if !(Scene{}).IsEmpty() {
		t.Error("zero Scene should be empty")
	}
}
