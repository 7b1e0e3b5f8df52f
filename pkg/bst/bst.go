package bst

import (
	"fmt"
	"strings"

	"github.com/matzehuels/algoviz/pkg/keys"
)

// Node is one key in a binary search tree. Each node owns its children;
// nodes are never shared between parents and carry no parent pointer.
//
// X, Y and Positioned are written by AssignLayout. Highlighted is a transient
// display flag set by Search.
type Node struct {
	Value       float64
	Left, Right *Node

	X, Y        float64
	Positioned  bool
	Highlighted bool
}

// Label returns the node's key formatted for display.
func (n *Node) Label() string { return keys.Format(n.Value) }

// Result is the outcome of a Build call.
type Result struct {
	Root  *Node
	Steps []string
}

// Insert places value into the subtree rooted at root and returns the
// resulting subtree root. A nil root yields a new leaf. Equal keys are
// ignored and root is returned unchanged.
func Insert(root *Node, value float64) *Node {
	root, _ = insert(root, value)
	return root
}

func insert(root *Node, value float64) (*Node, bool) {
	if root == nil {
		return &Node{Value: value}, true
	}
	var added bool
	switch {
	case value < root.Value:
		root.Left, added = insert(root.Left, value)
	case value > root.Value:
		root.Right, added = insert(root.Right, value)
	}
	return root, added
}

// Build parses tokens, skipping any that are not finite numbers, and
// constructs a fresh tree from the remaining values in order.
func Build(tokens []string) Result {
	return BuildValues(keys.ParseAll(tokens))
}

// BuildValues constructs a fresh tree from values in order. Steps holds one
// line per value that was inserted; duplicates produce no step.
func BuildValues(values []float64) Result {
	var res Result
	for _, v := range values {
		var added bool
		res.Root, added = insert(res.Root, v)
		if added {
			res.Steps = append(res.Steps, fmt.Sprintf("Inserted %s into BST", keys.Format(v)))
		}
	}
	return res
}

// ParseTokens splits free-form input on commas, semicolons and whitespace.
func ParseTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// Size returns the number of nodes in the tree.
func Size(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Size(root.Left) + Size(root.Right)
}

// Height returns the number of levels in the tree; an empty tree has height 0.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + max(Height(root.Left), Height(root.Right))
}

// InOrder returns the keys in ascending order.
func InOrder(root *Node) []float64 {
	var out []float64
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(root)
	return out
}

// Contains reports whether value is a key in the tree.
func Contains(root *Node, value float64) bool {
	for n := root; n != nil; {
		switch {
		case value < n.Value:
			n = n.Left
		case value > n.Value:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// Search walks from root toward value, clears any previous highlight and
// marks every node on the visited path as Highlighted. It returns the visited
// nodes and whether value was found.
func Search(root *Node, value float64) ([]*Node, bool) {
	clearHighlight(root)
	var path []*Node
	for n := root; n != nil; {
		n.Highlighted = true
		path = append(path, n)
		switch {
		case value < n.Value:
			n = n.Left
		case value > n.Value:
			n = n.Right
		default:
			return path, true
		}
	}
	return path, false
}

func clearHighlight(n *Node) {
	if n == nil {
		return
	}
	n.Highlighted = false
	clearHighlight(n.Left)
	clearHighlight(n.Right)
}
