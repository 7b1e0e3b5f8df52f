package share

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/algoviz/pkg/errors"
)

func TestEncodeDecode(t *testing.T) {
	tests := []State{
		{Structure: "bst", Values: []float64{50, 30, 70}},
		{Structure: "heap", Mode: "min", Values: []float64{-1.5, 2}},
		{Structure: "heap", Mode: "max", Ops: "5, 3, extract, clear"},
	}

	for _, want := range tests {
		t.Run(want.Structure+want.Mode, func(t *testing.T) {
			token, err := Encode(want)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			for _, c := range token {
				if c == '+' || c == '/' || c == '=' {
					t.Fatalf("token %q is not URL-safe", token)
				}
			}
			got, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Structure != want.Structure || got.Mode != want.Mode || got.Ops != want.Ops {
				t.Errorf("got %+v, want %+v", got, want)
			}
			if len(got.Values) != len(want.Values) {
				t.Errorf("values = %v, want %v", got.Values, want.Values)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	bad, _ := Encode(State{Structure: "graph"})
	tests := []struct {
		name  string
		token string
		code  errors.Code
	}{
		{"not base64", "!!!", errors.ErrCodeInvalidInput},
		{"not json", "bm90IGpzb24", errors.ErrCodeInvalidInput},
		{"unknown structure", bad, errors.ErrCodeInvalidStructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode(%q) error = %v, want code %s", tt.token, err, tt.code)
			}
		})
	}
}

// storeContract exercises behaviour every Store must share.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	st := State{Structure: "bst", Values: []float64{8, 4, 12}}
	id, err := s.Save(ctx, st)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := errors.ValidateShareID(id); err != nil {
		t.Errorf("Save returned non-UUID id %q", id)
	}

	got, err := s.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Structure != "bst" || len(got.Values) != 3 || got.Values[2] != 12 {
		t.Errorf("Load = %+v, want %+v", got, st)
	}

	id2, _ := s.Save(ctx, st)
	if id2 == id {
		t.Error("each Save should produce a new id")
	}

	if _, err := s.Load(ctx, NewID()); !errors.Is(err, errors.ErrCodeShareNotFound) {
		t.Errorf("Load(unknown) error = %v, want SHARE_NOT_FOUND", err)
	}

	if _, err := s.Save(ctx, State{Structure: "queue"}); !errors.Is(err, errors.ErrCodeInvalidStructure) {
		t.Errorf("Save(invalid) error = %v, want INVALID_STRUCTURE", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close(context.Background())
	storeContract(t, s)
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	values := []float64{1, 2}
	id, _ := s.Save(ctx, State{Structure: "heap", Values: values})
	values[0] = 99

	got, _ := s.Load(ctx, id)
	if got.Values[0] != 1 {
		t.Error("store should not alias caller slices")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "shares"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeContract(t, s)

	entries, _ := os.ReadDir(s.Path())
	if len(entries) != 2 {
		t.Errorf("files = %d, want 2", len(entries))
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	_, err := s.Load(context.Background(), "../../etc/passwd")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
