// Package pkg provides the core libraries for algoviz, a visualizer for
// binary heaps and binary search trees.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Structures: [heap] and [bst] hold the data structures and their step
//     logs; [keys] parses and formats the numeric keys they store
//  2. Drawing: [layout] positions nodes into a [scene], which the
//     [render/svg] and [render/dot] packages turn into output
//  3. Infrastructure: [pipeline] orchestrates build → render with a [cache];
//     [share] stores inputs behind links; [config], [errors],
//     [observability] and [buildinfo] serve the CLI and HTTP server
//
// # Architecture
//
// The typical data flow:
//
//	keys / operation script
//	         ↓
//	    [heap] or [bst] (build the structure)
//	         ↓
//	    [layout] (positions → [scene.Scene])
//	         ↓
//	    [render/svg], [render/dot]
//	         ↓
//	    SVG / DOT / Graphviz SVG / JSON output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Structure: "heap",
//	    Mode:      "min",
//	    Values:    []float64{5, 3, 8},
//	    Ops:       "extract, insert 1",
//	    Formats:   []string{"svg", "json"},
//	})
//
// Or use the structures directly:
//
//	h := heap.New(heap.Max)
//	h.Insert(5)
//	top, ok := h.ExtractRoot()
//
//	res := bst.BuildValues([]float64{50, 30, 70})
//	bst.Search(res.Root, 30)
package pkg
