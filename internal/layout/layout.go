package layout

import (
	"fmt"
	"strings"
)

// Axis selects the direction a node is split along.
type Axis uint8

const (
	Rows Axis = iota // Children stacked top-to-bottom along the height
	Cols             // Children placed left-to-right along the width
)

// String returns "rows" or "cols".
func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Cols:
		return "cols"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis converts a case-insensitive axis name into an Axis.
// Accepted names are "rows", "row", "cols", "col", "columns" and "column".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rows", "row":
		return Rows, nil
	case "cols", "col", "columns", "column":
		return Cols, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: rows, cols)", ErrUnknownAxis, s)
	}
}

// Kind reports whether a node is a leaf or which way it was split.
type Kind uint8

const (
	Leaf            Kind = iota // Not split
	RowContainer                // Split with SplitRows
	ColumnContainer             // Split with SplitCols
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case RowContainer:
		return "row-container"
	case ColumnContainer:
		return "column-container"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// containerKind returns the Kind a node takes when split along a.
func (a Axis) containerKind() Kind {
	if a == Rows {
		return RowContainer
	}
	return ColumnContainer
}
