package rayzer

import (
	"errors"
	"testing"
)

func TestPublicErrorsMatch(t *testing.T) {
	type tc struct {
		run      func() error
		expected error
	}

	tests := map[string]tc{
		"negative constraint": {
			run:      func() error { _, err := NewFixed(-1); return err },
			expected: ErrInvalidConstraintValue,
		},
		"bad token": {
			run:      func() error { _, err := Parse("1.2.3"); return err },
			expected: ErrInvalidConstraintFormat,
		},
		"unsupported input": {
			run:      func() error { _, err := Parse([]string{"1"}); return err },
			expected: ErrUnsupportedInputType,
		},
		"non-positive budget": {
			run:      func() error { _, err := Distribute(0, 1); return err },
			expected: ErrNonPositiveBudget,
		},
		"required sum": {
			run:      func() error { _, err := Distribute(3, 3, ">=1"); return err },
			expected: ErrConstraintSumExceedsBudget,
		},
		"percentages": {
			run:      func() error { _, err := Distribute(3, "50%", "%51"); return err },
			expected: ErrPercentageSumExceeds100,
		},
		"incomplete": {
			run:      func() error { _, err := DistributeStrict(3, 1); return err },
			expected: ErrIncompleteDistribution,
		},
		"remaining space": {
			run: func() error {
				_, err := NewNode(0, 0, 20, 20).SplitCols([]any{10}, Strict())
				return err
			},
			expected: ErrRemainingSpace,
		},
		"name mismatch": {
			run: func() error {
				_, err := NewNode(0, 0, 20, 20).SplitRows([]any{10, 10}, WithNames("a"))
				return err
			},
			expected: ErrNameSizeMismatch,
		},
		"name index": {
			run: func() error {
				_, err := NewNode(0, 0, 20, 20).SplitRows([]any{10, 10}, WithNameAt(map[int]string{2: "x"}))
				return err
			},
			expected: ErrNameIndexOutOfRange,
		},
		"unknown axis": {
			run:      func() error { _, err := ParseAxis("z"); return err },
			expected: ErrUnknownAxis,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.expected) {
				t.Errorf("error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestIncompleteDistributionError_As(t *testing.T) {
	_, err := DistributeStrict(12, 2)

	var incomplete *IncompleteDistributionError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want *IncompleteDistributionError", err)
	}
	if incomplete.Leftover != 10 {
		t.Errorf("Leftover = %v, want 10", incomplete.Leftover)
	}
}

func TestSplitCols_TreeGeometry(t *testing.T) {
	root := NewNode(10, 20, 100, 200)

	children, err := root.SplitCols([]any{10, ">=10", "30%", ":1", ":1"})
	if err != nil {
		t.Fatalf("SplitCols() error = %v", err)
	}

	wantX := []float64{10, 20, 30, 54, 82}
	wantW := []float64{10, 10, 24, 28, 28}
	if len(children) != len(wantX) {
		t.Fatalf("len(children) = %d, want %d", len(children), len(wantX))
	}
	for i, c := range children {
		if !near(c.X(), wantX[i]) || !near(c.Width(), wantW[i]) {
			t.Errorf("child %d = %v, want x=%v w=%v", i, c.Rect(), wantX[i], wantW[i])
		}
		if c.Y() != 20 || c.Height() != 200 {
			t.Errorf("child %d = %v, want y=20 h=200", i, c.Rect())
		}
	}
	if root.Kind() != ColumnContainer {
		t.Errorf("Kind() = %v, want column-container", root.Kind())
	}
}

func TestLeaves_PublicAPI(t *testing.T) {
	root := NewNode(0, 0, 10, 10)
	if _, err := root.SplitRows([]any{":1", ":1"}); err != nil {
		t.Fatalf("SplitRows() error = %v", err)
	}

	visited := 0
	if err := Walk(root, func(*Node, int) error { visited++; return nil }); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if visited != 3 {
		t.Errorf("visited %d nodes, want 3", visited)
	}
	if got := len(Leaves(root)); got != 2 {
		t.Errorf("len(Leaves()) = %d, want 2", got)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
