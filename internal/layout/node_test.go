package layout

import (
	"errors"
	"math"
	"testing"
)

func TestNewNode(t *testing.T) {
	n := NewNode(3, 4, 50, 60)

	if n.X() != 3 || n.Y() != 4 || n.Width() != 50 || n.Height() != 60 {
		t.Errorf("geometry = %v, want [3, 4, 50, 60]", n.Rect())
	}
	if n.Parent() != nil {
		t.Error("new node should have no parent")
	}
	if len(n.Children()) != 0 {
		t.Errorf("len(Children()) = %d, want 0", len(n.Children()))
	}
	if n.Kind() != Leaf {
		t.Errorf("Kind() = %v, want leaf", n.Kind())
	}
	if !n.IsRoot() || !n.IsLeaf() {
		t.Error("new node should be a root leaf")
	}
	if n.Remaining() != nil {
		t.Error("new node should have no remaining child")
	}
	if n.Index() != -1 {
		t.Errorf("Index() = %d, want -1", n.Index())
	}
}

func TestNewNode_ClampsNegativeSize(t *testing.T) {
	n := NewNode(0, 0, -5, -1)
	if n.Width() != 0 || n.Height() != 0 {
		t.Errorf("size = %vx%v, want 0x0", n.Width(), n.Height())
	}
}

func TestNewNode_NonFiniteBecomesZero(t *testing.T) {
	type tc struct {
		x, y, w, h float64
		expected   Rect
	}

	tests := map[string]tc{
		"nan coordinates": {x: math.NaN(), y: math.NaN(), w: 10, h: 5, expected: NewRect(0, 0, 10, 5)},
		"nan size":        {x: 1, y: 2, w: math.NaN(), h: math.NaN(), expected: NewRect(1, 2, 0, 0)},
		"infinite size":   {x: 1, y: 2, w: math.Inf(1), h: math.Inf(-1), expected: NewRect(1, 2, 0, 0)},
		"infinite origin": {x: math.Inf(-1), y: math.Inf(1), w: 3, h: 4, expected: NewRect(0, 0, 3, 4)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewNode(tt.x, tt.y, tt.w, tt.h).Rect()
			if got != tt.expected {
				t.Errorf("Rect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNode_Equal(t *testing.T) {
	a := NewNode(1, 2, 3, 4)
	b := NewNode(1, 2, 3, 4)
	c := NewNode(1, 2, 3, 5)

	if _, err := b.SplitRows([]any{1}); err != nil {
		t.Fatalf("SplitRows() error = %v", err)
	}

	if !a.Equal(b) {
		t.Error("nodes with same geometry should be equal regardless of kind and children")
	}
	if a.Equal(c) {
		t.Error("nodes with different height should not be equal")
	}
	if a.Equal(nil) {
		t.Error("node should not equal nil")
	}
	var nilNode *Node
	if !nilNode.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestNode_ChildrenIsACopy(t *testing.T) {
	n := NewNode(0, 0, 10, 10)
	if _, err := n.SplitCols([]any{5, 5}); err != nil {
		t.Fatalf("SplitCols() error = %v", err)
	}

	children := n.Children()
	children[0] = nil

	if n.Children()[0] == nil {
		t.Error("mutating Children() result changed the node")
	}
}

func TestNode_Hit(t *testing.T) {
	root := NewNode(0, 0, 100, 100)
	rows, err := root.SplitRows([]any{10, ">=0", 10})
	if err != nil {
		t.Fatalf("SplitRows() error = %v", err)
	}
	cols, err := rows[1].SplitCols([]any{"30%"})
	if err != nil {
		t.Fatalf("SplitCols() error = %v", err)
	}

	type tc struct {
		p        Point
		expected *Node
	}

	tests := map[string]tc{
		"header":  {p: Point{X: 50, Y: 5}, expected: rows[0]},
		"sidebar": {p: Point{X: 5, Y: 50}, expected: cols[0]},
		"content": {p: Point{X: 50, Y: 50}, expected: cols[1]},
		"footer":  {p: Point{X: 99, Y: 99}, expected: rows[2]},
		"outside": {p: Point{X: 100, Y: 50}, expected: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := root.Hit(tt.p); got != tt.expected {
				t.Errorf("Hit(%v) = %v, want %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	type tc struct {
		input    string
		expected Axis
	}

	tests := map[string]tc{
		"rows":    {input: "rows", expected: Rows},
		"row":     {input: "Row", expected: Rows},
		"cols":    {input: "cols", expected: Cols},
		"columns": {input: " COLUMNS ", expected: Cols},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if err != nil {
				t.Fatalf("ParseAxis(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := ParseAxis("diagonal"); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("ParseAxis(diagonal) error = %v, want ErrUnknownAxis", err)
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		Leaf:            "leaf",
		RowContainer:    "row-container",
		ColumnContainer: "column-container",
		Kind(9):         "Kind(9)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
