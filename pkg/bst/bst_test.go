package bst

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// checkOrdering verifies that every key lies strictly within (lo, hi).
func checkOrdering(t *testing.T, n *Node, lo, hi *float64) {
	t.Helper()
	if n == nil {
		return
	}
	if lo != nil && n.Value <= *lo {
		t.Fatalf("node %v violates lower bound %v", n.Value, *lo)
	}
	if hi != nil && n.Value >= *hi {
		t.Fatalf("node %v violates upper bound %v", n.Value, *hi)
	}
	checkOrdering(t, n.Left, lo, &n.Value)
	checkOrdering(t, n.Right, &n.Value, hi)
}

func TestInsert(t *testing.T) {
	var root *Node
	for _, v := range []float64{50, 30, 70, 20, 40, 60, 80} {
		root = Insert(root, v)
	}

	if root.Value != 50 {
		t.Fatalf("root = %v, want 50", root.Value)
	}
	if root.Left.Value != 30 || root.Right.Value != 70 {
		t.Errorf("children = (%v, %v), want (30, 70)", root.Left.Value, root.Right.Value)
	}
	if root.Left.Left.Value != 20 || root.Right.Right.Value != 80 {
		t.Errorf("unexpected grandchildren")
	}
	checkOrdering(t, root, nil, nil)
}

func TestInsertDuplicateReturnsSameRoot(t *testing.T) {
	root := Insert(nil, 10)
	again := Insert(root, 10)
	if again != root {
		t.Fatal("duplicate insert should return the same root")
	}
	if Size(root) != 1 {
		t.Errorf("Size = %d, want 1", Size(root))
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		wantOrder []float64
		wantSteps []string
	}{
		{
			name:      "balanced",
			tokens:    []string{"50", "30", "70"},
			wantOrder: []float64{30, 50, 70},
			wantSteps: []string{"Inserted 50 into BST", "Inserted 30 into BST", "Inserted 70 into BST"},
		},
		{
			name:      "duplicates dropped",
			tokens:    []string{"50", "50", "30"},
			wantOrder: []float64{30, 50},
			wantSteps: []string{"Inserted 50 into BST", "Inserted 30 into BST"},
		},
		{
			name:      "non-numeric filtered",
			tokens:    []string{"50", "abc", "30", "xyz"},
			wantOrder: []float64{30, 50},
			wantSteps: []string{"Inserted 50 into BST", "Inserted 30 into BST"},
		},
		{
			name:   "all invalid",
			tokens: []string{"a", "b"},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Build(tt.tokens)
			if got := InOrder(res.Root); !slices.Equal(got, tt.wantOrder) {
				t.Errorf("InOrder = %v, want %v", got, tt.wantOrder)
			}
			if !slices.Equal(res.Steps, tt.wantSteps) {
				t.Errorf("Steps = %q, want %q", res.Steps, tt.wantSteps)
			}
			if len(tt.wantOrder) == 0 && res.Root != nil {
				t.Errorf("Root = %+v, want nil", res.Root)
			}
		})
	}
}

func TestBuildRandomOrdering(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for trial := range 50 {
		n := r.IntN(80)
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(r.IntN(60))
		}

		res := BuildValues(values)
		checkOrdering(t, res.Root, nil, nil)

		unique := slices.Clone(values)
		slices.Sort(unique)
		unique = slices.Compact(unique)

		if got := InOrder(res.Root); !slices.Equal(got, unique) {
			t.Fatalf("trial %d: InOrder = %v, want %v", trial, got, unique)
		}
		if len(res.Steps) != len(unique) {
			t.Fatalf("trial %d: %d steps for %d unique keys", trial, len(res.Steps), len(unique))
		}
	}
}

func TestBuildIsIndependent(t *testing.T) {
	first := BuildValues([]float64{1, 2, 3})
	second := BuildValues([]float64{9})
	if Size(first.Root) != 3 {
		t.Errorf("first build mutated by second: size %d", Size(first.Root))
	}
	if Size(second.Root) != 1 {
		t.Errorf("second build size = %d, want 1", Size(second.Root))
	}
}

func TestHeightAndContains(t *testing.T) {
	root := BuildValues([]float64{50, 30, 70, 20}).Root
	if h := Height(root); h != 3 {
		t.Errorf("Height = %d, want 3", h)
	}
	if Height(nil) != 0 {
		t.Error("Height(nil) should be 0")
	}
	if !Contains(root, 20) || Contains(root, 25) {
		t.Error("Contains gave wrong answers")
	}
}

func TestSearchHighlightsPath(t *testing.T) {
	root := BuildValues([]float64{50, 30, 70, 20, 40}).Root

	path, found := Search(root, 40)
	if !found {
		t.Fatal("Search(40) should find the key")
	}
	var got []float64
	for _, n := range path {
		got = append(got, n.Value)
	}
	if want := []float64{50, 30, 40}; !slices.Equal(got, want) {
		t.Errorf("path = %v, want %v", got, want)
	}
	if root.Right.Highlighted || root.Left.Left.Highlighted {
		t.Error("nodes off the path should not be highlighted")
	}

	// A second search clears the previous highlight.
	_, found = Search(root, 75)
	if found {
		t.Error("Search(75) should miss")
	}
	if root.Left.Highlighted {
		t.Error("stale highlight left on 30")
	}
	if !root.Right.Highlighted {
		t.Error("70 should be highlighted on the path to 75")
	}
}

func TestParseTokens(t *testing.T) {
	got := ParseTokens("50, 30 70;\t20\n")
	if want := []string{"50", "30", "70", "20"}; !slices.Equal(got, want) {
		t.Errorf("ParseTokens = %q, want %q", got, want)
	}
}
