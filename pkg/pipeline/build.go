package pipeline

import (
	"github.com/matzehuels/algoviz/pkg/heap"
	"github.com/matzehuels/algoviz/pkg/layout"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// Build constructs the requested structure and lays it out.
// Options must already be validated.
func Build(opts Options) (scene.Scene, error) {
	lopts := layout.Options{
		Width:     opts.Width,
		Height:    opts.Height,
		Highlight: opts.Highlight,
	}

	switch opts.Structure {
	case scene.KindBST:
		return layout.BST(opts.Values, lopts), nil
	case scene.KindHeap:
		h, extracted, err := buildHeap(opts)
		if err != nil {
			return scene.Scene{}, err
		}
		s := layout.Heap(h, lopts)
		s.Extracted = extracted
		return s, nil
	}
	return scene.Scene{}, ValidateStructure(opts.Structure)
}

// buildHeap inserts Values in order, then runs the Ops script.
func buildHeap(opts Options) (*heap.Heap, []float64, error) {
	mode, err := heap.ParseMode(opts.Mode)
	if err != nil {
		return nil, nil, err
	}
	h := heap.New(mode)
	for _, v := range opts.Values {
		h.Insert(v)
	}
	extracted := h.Apply(heap.ParseScript(opts.Ops))
	return h, extracted, nil
}
