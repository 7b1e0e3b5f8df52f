// Package bst builds binary search trees from numeric input and positions
// their nodes for drawing.
//
// Building and layout are separate passes. [Build] folds [Insert] over the
// parsed input and records one step line per key actually inserted.
// [AssignLayout] then walks the finished tree once and gives every node a
// coordinate, and [Traverse] flattens the positioned tree into [Primitive]
// values a renderer can draw directly:
//
//	res := bst.Build([]string{"50", "30", "70"})
//	bst.AssignLayout(res.Root, 400, 50, 100)
//	for _, p := range bst.Traverse(res.Root) {
//	    // p.Kind is bst.KindEdge or bst.KindNode
//	}
//
// # Ordering
//
// Every key in a node's left subtree is strictly smaller than the node's key
// and every key in its right subtree strictly larger. Inserting a key that is
// already present leaves the tree unchanged: duplicates are dropped without
// being counted or reported.
//
// # Input filtering
//
// Tokens that do not parse as finite numbers are skipped. An input with no
// valid tokens builds an empty tree rather than failing.
//
// # Layout
//
// [AssignLayout] uses the classic halving-offset approximation: children sit
// [VerticalStep] below their parent, offset horizontally by the current
// offset, which halves at each depth. For [50, 30, 70] placed at (400, 50)
// with offset 100 the children land at (300, 130) and (500, 130).
package bst
