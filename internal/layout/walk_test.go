package layout

import (
	"errors"
	"testing"
)

func buildWalkTree(t *testing.T) *Node {
	t.Helper()
	root := NewNode(0, 0, 100, 100)
	rows, err := root.SplitRows([]any{10, ">=0", 10})
	if err != nil {
		t.Fatalf("SplitRows() error = %v", err)
	}
	if _, err := rows[1].SplitCols([]any{"30%"}); err != nil {
		t.Fatalf("SplitCols() error = %v", err)
	}
	return root
}

func TestWalk_Order(t *testing.T) {
	root := buildWalkTree(t)

	var got []Rect
	var depths []int
	err := Walk(root, func(n *Node, depth int) error {
		got = append(got, n.Rect())
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []Rect{
		NewRect(0, 0, 100, 100),
		NewRect(0, 0, 100, 10),
		NewRect(0, 10, 100, 80),
		NewRect(0, 10, 30, 80),
		NewRect(30, 10, 70, 80),
		NewRect(0, 90, 100, 10),
	}
	wantDepths := []int{0, 1, 1, 2, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] || depths[i] != wantDepths[i] {
			t.Errorf("visit %d = %v@%d, want %v@%d", i, got[i], depths[i], want[i], wantDepths[i])
		}
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	root := buildWalkTree(t)

	count := 0
	_ = Walk(root, func(n *Node, depth int) error {
		count++
		if depth == 1 {
			return SkipChildren
		}
		return nil
	})
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	root := buildWalkTree(t)
	stop := errors.New("stop")

	count := 0
	err := Walk(root, func(n *Node, depth int) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want stop", err)
	}
	if count != 2 {
		t.Errorf("visited %d nodes, want 2", count)
	}
}

func TestLeaves(t *testing.T) {
	root := buildWalkTree(t)

	leaves := Leaves(root)
	if len(leaves) != 4 {
		t.Fatalf("len(Leaves()) = %d, want 4", len(leaves))
	}
	for _, leaf := range leaves {
		if !leaf.IsLeaf() {
			t.Errorf("%v is not a leaf", leaf.Rect())
		}
	}

	single := NewNode(0, 0, 1, 1)
	if got := Leaves(single); len(got) != 1 || got[0] != single {
		t.Error("a leaf should be its own only leaf")
	}
}
