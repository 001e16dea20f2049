package layout

import (
	"math"
	"slices"
	"sort"
)

// Node is a rectangle in a layout tree. It is either a leaf or a container
// whose children tile its extent along one axis.
//
// Nodes are built by NewNode and by splitting. Geometry never changes after
// construction and a node's children are set exactly once. Splitting distinct
// nodes concurrently is safe; splitting the same node is not.
type Node struct {
	rect      Rect
	kind      Kind
	index     int
	parent    *Node // Non-owning back-pointer
	children  []*Node
	remaining *Node
	named     map[string]*Node
}

// NewNode creates a root leaf node. Negative sizes are clamped to zero and
// NaN or infinite values are replaced by zero, so geometry is always finite.
func NewNode(x, y, width, height float64) *Node {
	return &Node{
		rect:  NewRect(finite(x), finite(y), max(finite(width), 0), max(finite(height), 0)),
		index: -1,
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// X returns the x-coordinate of the node's top-left corner.
func (n *Node) X() float64 { return n.rect.X }

// Y returns the y-coordinate of the node's top-left corner.
func (n *Node) Y() float64 { return n.rect.Y }

// Width returns the node's width.
func (n *Node) Width() float64 { return n.rect.Width }

// Height returns the node's height.
func (n *Node) Height() float64 { return n.rect.Height }

// Rect returns the node's geometry.
func (n *Node) Rect() Rect { return n.rect }

// Kind returns whether the node is a leaf, row container or column container.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the node this node was split from, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Index returns the node's position among its parent's children, or -1 for a root.
func (n *Node) Index() int { return n.index }

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf returns true if the node has not been split.
func (n *Node) IsLeaf() bool { return n.kind == Leaf }

// Children returns a copy of the node's children in split-axis order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Remaining returns the extra child created for space no constraint
// claimed, or nil if the split consumed everything.
func (n *Node) Remaining() *Node { return n.remaining }

// Child returns the child bound to name at split time.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.named[name]
	return child, ok
}

// Names returns the bound child names in sorted order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.named))
	for name := range n.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesOf returns the names bound to child, sorted. A child that is the
// node's remaining child also reports "remaining".
func (n *Node) NamesOf(child *Node) []string {
	var names []string
	for name, c := range n.named {
		if c == child {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if child != nil && child == n.remaining {
		names = append(names, "remaining")
	}
	return names
}

// Equal reports whether two nodes have the same geometry.
// Parent, children and kind are not compared.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.rect == other.rect
}

// Hit returns the deepest node containing p, or nil if p is outside n.
func (n *Node) Hit(p Point) *Node {
	if !p.In(n.rect) {
		return nil
	}
	for _, child := range n.children {
		if hit := child.Hit(p); hit != nil {
			return hit
		}
	}
	return n
}
