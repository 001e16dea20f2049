package distribute

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-rayzer/internal/constraint"
)

// Mode selects what happens to leftover budget that no minimum absorbs.
type Mode uint8

const (
	Tolerant Mode = iota // Append the leftover as an extra trailing part
	Strict               // Fail with *IncompleteDistributionError
)

// Distribute parses inputs with constraint.Parse and distributes budget
// across them. Leftover budget that no minimum absorbs is returned as one
// extra trailing part.
func Distribute(budget float64, inputs ...any) ([]float64, error) {
	cs, err := constraint.ParseAll(inputs...)
	if err != nil {
		return nil, err
	}
	return Constraints(budget, cs, Tolerant)
}

// DistributeStrict is like Distribute but fails when leftover budget remains
// and there is no minimum constraint to absorb it.
func DistributeStrict(budget float64, inputs ...any) ([]float64, error) {
	cs, err := constraint.ParseAll(inputs...)
	if err != nil {
		return nil, err
	}
	return Constraints(budget, cs, Strict)
}

// Constraints distributes budget across cs and returns one part per
// constraint, in input order. In Tolerant mode the result may carry one
// extra trailing part holding unconsumed budget.
func Constraints(budget float64, cs []constraint.Constraint, mode Mode) ([]float64, error) {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveBudget, budget)
	}

	parts := make([]float64, len(cs), len(cs)+1)
	remaining := budget
	firstMin := -1

	// Fixed and minimum claim their exact value first.
	for i, c := range cs {
		if c.Kind() != constraint.Fixed && c.Kind() != constraint.Minimum {
			continue
		}
		parts[i] = c.Value()
		remaining -= c.Value()
		if remaining < 0 {
			return nil, fmt.Errorf("%w: %v at constraint %d", ErrConstraintSumExceedsBudget, budget, i)
		}
		if c.Kind() == constraint.Minimum && firstMin < 0 {
			firstMin = i
		}
	}

	// Percentages share what fixed and minimum left behind.
	totalPct := sumOf(cs, constraint.Percentage)
	if totalPct > 100 {
		return nil, fmt.Errorf("%w: %v", ErrPercentageSumExceeds100, totalPct)
	}
	if remaining != 0 && totalPct != 0 {
		for i, c := range cs {
			if c.Kind() == constraint.Percentage {
				parts[i] = c.Value() * 0.01 * remaining
			}
		}
		remaining = (1 - totalPct*0.01) * remaining
	}

	// Ratios consume everything still left. Weights are scaled by the
	// largest one so their total stays finite for extreme values.
	maxRatio := maxOf(cs, constraint.Ratio)
	if remaining != 0 && maxRatio != 0 {
		var totalRatio float64
		for _, c := range cs {
			if c.Kind() == constraint.Ratio {
				totalRatio += c.Value() / maxRatio
			}
		}
		for i, c := range cs {
			if c.Kind() == constraint.Ratio {
				parts[i] = remaining * (c.Value() / maxRatio / totalRatio)
			}
		}
		remaining = 0
	}

	// Maximums are capped in order; the first one that cannot be satisfied
	// takes the rest and later ones get nothing.
	for i, c := range cs {
		if c.Kind() != constraint.Maximum {
			continue
		}
		if c.Value() < remaining {
			parts[i] = c.Value()
			remaining -= c.Value()
			continue
		}
		parts[i] = remaining
		remaining = 0
		break
	}

	if remaining == 0 {
		return parts, nil
	}
	if firstMin >= 0 {
		parts[firstMin] += remaining
		return parts, nil
	}
	if mode == Strict {
		return nil, &IncompleteDistributionError{Budget: budget, Leftover: remaining}
	}
	return append(parts, remaining), nil
}

func sumOf(cs []constraint.Constraint, kind constraint.Kind) float64 {
	var total float64
	for _, c := range cs {
		if c.Kind() == kind {
			total += c.Value()
		}
	}
	return total
}

func maxOf(cs []constraint.Constraint, kind constraint.Kind) float64 {
	var m float64
	for _, c := range cs {
		if c.Kind() == kind {
			m = max(m, c.Value())
		}
	}
	return m
}
