// Package scene provides the serialization format for positioned data
// structure drawings.
//
// A [Scene] is what every renderer, cache and API response in algoviz
// exchanges: the structure kind, the frame size, the positioned nodes and
// edges, and the step log of the build that produced them. It sits at the
// boundary between the in-memory structures (pkg/heap, pkg/bst) and external
// formats.
//
// # Constants
//
// This package is the single source of truth for structure and style names:
//
//	scene.KindHeap        // "heap"
//	scene.KindBST         // "bst"
//	scene.StyleSimple     // "simple"
//	scene.StyleHanddrawn  // "handdrawn"
//
// # Format
//
//	{
//	  "kind": "bst",
//	  "width": 800,
//	  "height": 600,
//	  "values": [50, 30, 70],
//	  "nodes": [{"id": "n0", "label": "50", "x": 400, "y": 50}, ...],
//	  "edges": [{"from": "n0", "to": "n1", "x1": 400, "y1": 50, "x2": 200, "y2": 130}, ...],
//	  "steps": ["Inserted 50 into BST", ...]
//	}
//
// Common operations:
//
//	data, _ := scene.Marshal(s)           // Scene → []byte
//	s, _ := scene.Unmarshal(data)         // []byte → Scene
//	scene.WriteFile(s, "tree.json")       // Scene → file
//	s, _ := scene.ReadFile("tree.json")   // file → Scene
//
// Struct fields also carry bson tags so scenes can be stored in MongoDB
// without a separate document type.
package scene
