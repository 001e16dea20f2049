// constraint.go re-exports constraint and distribution APIs.
package rayzer

import (
	"github.com/grindlemire/go-rayzer/internal/constraint"
	"github.com/grindlemire/go-rayzer/internal/distribute"
)

// Constraint is an immutable sizing rule for one slot of a subdivision.
type Constraint = constraint.Constraint

// ConstraintKind specifies how a Constraint claims its share of a budget.
type ConstraintKind = constraint.Kind

const (
	Fixed      = constraint.Fixed
	Minimum    = constraint.Minimum
	Maximum    = constraint.Maximum
	Percentage = constraint.Percentage
	Ratio      = constraint.Ratio
)

// IncompleteDistributionError reports budget a strict distribution left unconsumed.
type IncompleteDistributionError = distribute.IncompleteDistributionError

// NewFixed returns a constraint requesting exactly v.
func NewFixed(v float64) (Constraint, error) { return constraint.NewFixed(v) }

// NewMinimum returns a constraint requesting at least v.
func NewMinimum(v float64) (Constraint, error) { return constraint.NewMinimum(v) }

// NewMaximum returns a constraint requesting at most v.
func NewMaximum(v float64) (Constraint, error) { return constraint.NewMaximum(v) }

// NewPercentage returns a constraint requesting v percent.
func NewPercentage(v float64) (Constraint, error) { return constraint.NewPercentage(v) }

// NewRatio returns a constraint requesting v shares of what remains.
func NewRatio(v float64) (Constraint, error) { return constraint.NewRatio(v) }

// Parse converts a number, token string or Constraint into a Constraint.
func Parse(v any) (Constraint, error) {
	return constraint.Parse(v)
}

// ParseAll parses a mixed list of constraint inputs.
func ParseAll(inputs ...any) ([]Constraint, error) {
	return constraint.ParseAll(inputs...)
}

// Distribute splits budget across inputs. Leftover budget that no minimum
// absorbs is returned as an extra trailing part.
func Distribute(budget float64, inputs ...any) ([]float64, error) {
	return distribute.Distribute(budget, inputs...)
}

// DistributeStrict splits budget across inputs and fails with an
// *IncompleteDistributionError when budget is left over.
func DistributeStrict(budget float64, inputs ...any) ([]float64, error) {
	return distribute.DistributeStrict(budget, inputs...)
}
