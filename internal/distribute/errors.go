package distribute

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveBudget is returned when the budget is zero, negative, or not finite.
	ErrNonPositiveBudget = errors.New("budget must be a positive finite number")

	// ErrConstraintSumExceedsBudget is returned when fixed and minimum
	// constraints together require more than the budget.
	ErrConstraintSumExceedsBudget = errors.New("sum of required constraints exceeds budget")

	// ErrPercentageSumExceeds100 is returned when percentage constraints add up to more than 100.
	ErrPercentageSumExceeds100 = errors.New("sum of percentage constraints exceeds 100")

	// ErrIncompleteDistribution matches any *IncompleteDistributionError.
	ErrIncompleteDistribution = errors.New("incomplete distribution")
)

// IncompleteDistributionError reports budget left unconsumed by a strict
// distribution that has no minimum constraint to absorb it.
type IncompleteDistributionError struct {
	Budget   float64
	Leftover float64
}

// Error implements the error interface.
func (e *IncompleteDistributionError) Error() string {
	return fmt.Sprintf("incomplete distribution of %v, remaining %v", e.Budget, e.Leftover)
}

// Is reports whether target is ErrIncompleteDistribution.
func (e *IncompleteDistributionError) Is(target error) bool {
	return target == ErrIncompleteDistribution
}
