package layout

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-rayzer/internal/constraint"
	"github.com/grindlemire/go-rayzer/internal/debug"
	"github.com/grindlemire/go-rayzer/internal/distribute"
)

// SplitRows divides the node's height across constraints and stacks one
// child per part from the node's top edge. Each constraint may be a number,
// a token string or a constraint.Constraint.
//
// Space no constraint claims becomes an extra trailing child, also
// available from Remaining, unless Strict is given. On error the node is
// left unchanged.
func (n *Node) SplitRows(constraints []any, opts ...SplitOption) ([]*Node, error) {
	return n.Split(Rows, constraints, opts...)
}

// SplitCols is SplitRows along the node's width, placing children from the
// node's left edge.
func (n *Node) SplitCols(constraints []any, opts ...SplitOption) ([]*Node, error) {
	return n.Split(Cols, constraints, opts...)
}

// Split divides the node along axis. See SplitRows.
func (n *Node) Split(axis Axis, constraints []any, opts ...SplitOption) ([]*Node, error) {
	var cfg splitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if n.kind != Leaf {
		return nil, fmt.Errorf("%w: %v is a %v", ErrAlreadySplit, n.rect, n.kind)
	}

	cs, err := constraint.ParseAll(constraints...)
	if err != nil {
		return nil, err
	}

	extent := n.rect.Height
	if axis == Cols {
		extent = n.rect.Width
	}
	parts, err := distribute.Constraints(extent, cs, distribute.Tolerant)
	if err != nil {
		return nil, fmt.Errorf("split %v: %w", axis, err)
	}

	hasRemaining := len(parts) > len(cs)
	if hasRemaining && cfg.strict {
		return nil, fmt.Errorf("%w: %v of %v left along %v", ErrRemainingSpace, parts[len(parts)-1], extent, axis)
	}

	children := n.layoutParts(axis, parts)

	named := make(map[string]*Node)
	for _, b := range cfg.binders {
		if err := b.bind(named, children, len(cs)); err != nil {
			return nil, err
		}
	}

	n.children = children
	n.kind = axis.containerKind()
	if hasRemaining {
		n.remaining = children[len(children)-1]
	}
	if len(named) > 0 {
		n.named = named
	}

	debug.Logger().Debug("split",
		"axis", axis.String(),
		"rect", n.rect.String(),
		"constraints", len(cs),
		"children", len(children),
		"remaining", hasRemaining,
	)

	for _, fn := range cfg.then {
		if err := fn(slices.Clone(children)); err != nil {
			return slices.Clone(children), err
		}
	}
	return slices.Clone(children), nil
}

// layoutParts creates one child per part, placed contiguously along axis.
func (n *Node) layoutParts(axis Axis, parts []float64) []*Node {
	children := make([]*Node, len(parts))
	pos := n.rect.Y
	if axis == Cols {
		pos = n.rect.X
	}

	for i, size := range parts {
		r := n.rect
		if axis == Rows {
			r.Y, r.Height = pos, size
		} else {
			r.X, r.Width = pos, size
		}
		children[i] = &Node{rect: r, index: i, parent: n}
		pos += size
	}
	return children
}
