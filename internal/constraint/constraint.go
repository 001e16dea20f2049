package constraint

import (
	"fmt"
	"math"
	"strconv"
)

// Kind specifies how a Constraint claims its share of a budget.
type Kind uint8

const (
	Fixed      Kind = iota // Exact absolute amount
	Minimum                // Absolute amount; absorbs leftover budget
	Maximum                // Cap applied against whatever remains last
	Percentage             // Share of the budget left after Fixed/Minimum
	Ratio                  // Proportional share of the budget left after percentages
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case Percentage:
		return "percentage"
	case Ratio:
		return "ratio"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Constraint is an immutable sizing rule for one slot of a subdivision.
// Two constraints are equal when their kind and value are equal, so
// Constraint values can be compared with ==.
type Constraint struct {
	kind  Kind
	value float64
}

// New creates a Constraint of the given kind.
// Returns ErrInvalidValue if value is negative, NaN or infinite.
func New(kind Kind, value float64) (Constraint, error) {
	if kind > Ratio {
		return Constraint{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidValue, uint8(kind))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Constraint{}, fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}
	return Constraint{kind: kind, value: value}, nil
}

// NewFixed returns a constraint requesting exactly v.
func NewFixed(v float64) (Constraint, error) { return New(Fixed, v) }

// NewMinimum returns a constraint requesting at least v.
func NewMinimum(v float64) (Constraint, error) { return New(Minimum, v) }

// NewMaximum returns a constraint requesting at most v.
func NewMaximum(v float64) (Constraint, error) { return New(Maximum, v) }

// NewPercentage returns a constraint requesting v percent (0-100 scale).
func NewPercentage(v float64) (Constraint, error) { return New(Percentage, v) }

// NewRatio returns a constraint requesting v shares of what remains.
func NewRatio(v float64) (Constraint, error) { return New(Ratio, v) }

// Kind returns the constraint kind.
func (c Constraint) Kind() Kind {
	return c.kind
}

// Value returns the constraint value.
func (c Constraint) Value() float64 {
	return c.value
}

// String returns the canonical token for the constraint.
func (c Constraint) String() string {
	num := strconv.FormatFloat(c.value, 'f', -1, 64)
	switch c.kind {
	case Minimum:
		return ">=" + num
	case Maximum:
		return "<=" + num
	case Percentage:
		return num + "%"
	case Ratio:
		return ":" + num
	default:
		return num
	}
}
