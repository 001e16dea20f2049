package layout

import "errors"

// SkipChildren can be returned from a WalkFunc to skip the node's descendants.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each node visited by Walk with its depth below the
// starting node.
type WalkFunc func(node *Node, depth int) error

// Walk visits n and its descendants depth-first, parents before children.
// An error other than SkipChildren stops the walk and is returned.
func Walk(n *Node, fn WalkFunc) error {
	return walk(n, 0, fn)
}

func walk(n *Node, depth int, fn WalkFunc) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range n.children {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Leaves returns the leaf nodes under n in depth-first order.
// A leaf n returns itself.
func Leaves(n *Node) []*Node {
	var leaves []*Node
	_ = Walk(n, func(node *Node, _ int) error {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return nil
	})
	return leaves
}
