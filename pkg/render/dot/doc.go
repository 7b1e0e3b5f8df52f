// Package dot renders scenes as Graphviz node-link diagrams.
//
// # Usage
//
// Convert a scene to DOT source, then render to SVG in-process:
//
//	src := dot.ToDOT(s)
//	svg, err := dot.RenderSVG(ctx, src)
//
// # DOT Format
//
// The generated graph uses top-to-bottom layout (rankdir=TB) with circular
// nodes and ordering=out, so Graphviz keeps left children to the left of
// right children. A node with a single child gets an invisible sibling on
// the empty side; without it Graphviz would centre the lone child under its
// parent and a BST would lose its left/right shape.
//
// Highlighted nodes (a BST search path) are filled yellow.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for rendering, which runs
// Graphviz compiled to WebAssembly and needs no system install.
package dot
