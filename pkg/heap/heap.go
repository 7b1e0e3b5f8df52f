package heap

import (
	"fmt"
	"strings"

	"github.com/matzehuels/algoviz/pkg/keys"
)

// Mode selects which key a heap keeps at its root.
type Mode int

const (
	// Max keeps the largest key at the root.
	Max Mode = iota
	// Min keeps the smallest key at the root.
	Min
)

// String returns "max" or "min".
func (m Mode) String() string {
	if m == Min {
		return "min"
	}
	return "max"
}

// ParseMode converts "max" or "min" (case-insensitive) to a Mode.
// An empty string yields Max.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return Max, fmt.Errorf("invalid heap mode: %q (must be 'max' or 'min')", s)
	}
}

// Heap is a binary heap stored in a dense slice.
// The zero value is an empty max-heap.
type Heap struct {
	mode  Mode
	items []float64
	steps []string
}

// New creates an empty heap with the given mode.
func New(mode Mode) *Heap {
	return &Heap{mode: mode}
}

// Mode returns the mode the heap was created with.
func (h *Heap) Mode() Mode { return h.mode }

// Len returns the number of keys in the heap.
func (h *Heap) Len() int { return len(h.items) }

// Peek returns the root without removing it.
func (h *Heap) Peek() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return h.items[0], true
}

// Insert appends v as a new leaf and sifts it up.
func (h *Heap) Insert(v float64) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
	h.logf("Inserted %s", keys.Format(v))
}

// ExtractRoot removes and returns the root key.
// It returns false when the heap is empty, leaving the heap untouched.
func (h *Heap) ExtractRoot() (float64, bool) {
	n := len(h.items)
	if n == 0 {
		return 0, false
	}
	if n == 1 {
		root := h.items[0]
		h.items = h.items[:0]
		h.logf("Extracted root %s", keys.Format(root))
		return root, true
	}

	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	h.siftDown(0)
	h.logf("Extracted root %s", keys.Format(root))
	return root, true
}

// ToArray returns a copy of the backing slice in heap order.
func (h *Heap) ToArray() []float64 {
	out := make([]float64, len(h.items))
	copy(out, h.items)
	return out
}

// Clear removes every key. The step log restarts with a single
// "Cleared heap" line, so clearing twice leaves the same state as once.
func (h *Heap) Clear() {
	h.items = nil
	h.steps = []string{"Cleared heap"}
}

// Steps returns the log of mutations applied since creation or the last Clear.
func (h *Heap) Steps() []string {
	out := make([]string, len(h.steps))
	copy(out, h.steps)
	return out
}

// shouldSwap reports whether the parent key must move below the child key.
func (h *Heap) shouldSwap(parent, child float64) bool {
	if h.mode == Min {
		return parent > child
	}
	return parent < child
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := parentOf(i)
		if !h.shouldSwap(h.items[p], h.items[i]) {
			return
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		target := i
		if l := leftOf(i); l < n && h.shouldSwap(h.items[target], h.items[l]) {
			target = l
		}
		if r := rightOf(i); r < n && h.shouldSwap(h.items[target], h.items[r]) {
			target = r
		}
		if target == i {
			return
		}
		h.items[i], h.items[target] = h.items[target], h.items[i]
		i = target
	}
}

func (h *Heap) logf(format string, args ...any) {
	h.steps = append(h.steps, fmt.Sprintf(format, args...))
}

func parentOf(i int) int { return (i - 1) / 2 }
func leftOf(i int) int   { return 2*i + 1 }
func rightOf(i int) int  { return 2*i + 2 }
