package bst

// VerticalStep is the distance in drawing units between adjacent depths.
const VerticalStep = 80.0

// Kind distinguishes the two drawing primitives produced by Traverse.
type Kind int

const (
	KindEdge Kind = iota
	KindNode
)

// String returns "edge" or "node".
func (k Kind) String() string {
	if k == KindNode {
		return "node"
	}
	return "edge"
}

// Side says which child slot an edge leads to.
type Side int

const (
	Left Side = iota
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Primitive is one positioned item for a renderer.
//
// For KindEdge, (X1, Y1) is the parent and (X2, Y2) the child; From and To
// are their pre-order indices and Side the child slot. For KindNode, (X, Y)
// is the centre, Index the pre-order position, Value the key and
// Highlighted the display flag.
type Primitive struct {
	Kind Kind

	X1, Y1, X2, Y2 float64
	From, To       int
	Side           Side

	X, Y        float64
	Index       int
	Value       float64
	Highlighted bool
}

// AssignLayout positions root at (x, y) and recursively places the left child
// at (x-offset, y+VerticalStep) and the right child at
// (x+offset, y+VerticalStep), halving offset at each level.
// Call it once after the tree is fully built.
func AssignLayout(root *Node, x, y, offset float64) {
	if root == nil {
		return
	}
	root.X, root.Y = x, y
	root.Positioned = true
	AssignLayout(root.Left, x-offset, y+VerticalStep, offset/2)
	AssignLayout(root.Right, x+offset, y+VerticalStep, offset/2)
}

// Traverse flattens the tree in pre-order. For each node it emits the edges
// to its children, then the node itself, then recurses left and right. Edges
// are emitted only when both ends have been positioned.
//
// Nodes are numbered in emission order, so edge endpoints never depend on
// coordinates.
func Traverse(root *Node) []Primitive {
	var out []Primitive
	next := 0
	traverse(root, &next, &out)
	return out
}

func traverse(n *Node, next *int, out *[]Primitive) {
	if n == nil {
		return
	}
	i := *next
	*next++
	for side, child := range [2]*Node{n.Left, n.Right} {
		if child == nil || !n.Positioned || !child.Positioned {
			continue
		}
		to := i + 1
		if side == int(Right) {
			to += Size(n.Left)
		}
		*out = append(*out, Primitive{
			Kind: KindEdge,
			X1:   n.X,
			Y1:   n.Y,
			X2:   child.X,
			Y2:   child.Y,
			From: i,
			To:   to,
			Side: Side(side),
		})
	}
	*out = append(*out, Primitive{
		Kind:        KindNode,
		X:           n.X,
		Y:           n.Y,
		Index:       i,
		Value:       n.Value,
		Highlighted: n.Highlighted,
	})
	traverse(n.Left, next, out)
	traverse(n.Right, next, out)
}
