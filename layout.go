// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package rayzer

import "github.com/grindlemire/go-rayzer/internal/layout"

// Node is a rectangle in a layout tree.
type Node = layout.Node

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Axis selects the direction a node is split along.
type Axis = layout.Axis

const (
	Rows = layout.Rows
	Cols = layout.Cols
)

// NodeKind reports whether a node is a leaf or which way it was split.
type NodeKind = layout.Kind

const (
	Leaf            = layout.Leaf
	RowContainer    = layout.RowContainer
	ColumnContainer = layout.ColumnContainer
)

// SplitOption configures a split.
type SplitOption = layout.SplitOption

// WalkFunc is called for each node visited by Walk.
type WalkFunc = layout.WalkFunc

// SkipChildren can be returned from a WalkFunc to skip a node's descendants.
var SkipChildren = layout.SkipChildren

// NewNode creates a root leaf node.
func NewNode(x, y, width, height float64) *Node {
	return layout.NewNode(x, y, width, height)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// ParseAxis converts "rows" or "cols" into an Axis.
func ParseAxis(s string) (Axis, error) {
	return layout.ParseAxis(s)
}

// Strict makes a split fail instead of creating a remaining child.
func Strict() SplitOption {
	return layout.Strict()
}

// WithNames binds names to children by position; "" skips a child.
func WithNames(names ...string) SplitOption {
	return layout.WithNames(names...)
}

// WithNameAt binds names to children by index.
func WithNameAt(names map[int]string) SplitOption {
	return layout.WithNameAt(names)
}

// Then registers a function called with the new children of a split.
func Then(fn func(children []*Node) error) SplitOption {
	return layout.Then(fn)
}

// Walk visits n and its descendants depth-first, parents before children.
func Walk(n *Node, fn WalkFunc) error {
	return layout.Walk(n, fn)
}

// Leaves returns the leaf nodes under n in depth-first order.
func Leaves(n *Node) []*Node {
	return layout.Leaves(n)
}
