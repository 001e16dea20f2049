package rayzer

import (
	"github.com/grindlemire/go-rayzer/internal/constraint"
	"github.com/grindlemire/go-rayzer/internal/distribute"
	"github.com/grindlemire/go-rayzer/internal/layout"
)

// Errors returned by the package. Match them with errors.Is.
var (
	ErrInvalidConstraintValue     = constraint.ErrInvalidValue
	ErrInvalidConstraintFormat    = constraint.ErrInvalidFormat
	ErrUnsupportedInputType       = constraint.ErrUnsupportedInput
	ErrNonPositiveBudget          = distribute.ErrNonPositiveBudget
	ErrConstraintSumExceedsBudget = distribute.ErrConstraintSumExceedsBudget
	ErrPercentageSumExceeds100    = distribute.ErrPercentageSumExceeds100
	ErrIncompleteDistribution     = distribute.ErrIncompleteDistribution
	ErrRemainingSpace             = layout.ErrRemainingSpace
	ErrAlreadySplit               = layout.ErrAlreadySplit
	ErrNameSizeMismatch           = layout.ErrNameSizeMismatch
	ErrNameIndexOutOfRange        = layout.ErrNameIndexOutOfRange
	ErrUnknownAxis                = layout.ErrUnknownAxis
)
