package cli

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-rayzer/internal/blueprint"
	"github.com/grindlemire/go-rayzer/internal/constraint"
	"github.com/grindlemire/go-rayzer/internal/distribute"
	"github.com/grindlemire/go-rayzer/internal/layout"
)

// ExitCode is the process exit status reported by the rayzer binary.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates a malformed constraint, rect, axis or
	// name list on the command line.
	ExitInvalidInput ExitCode = 2

	// ExitDistributionFailed indicates the constraints could not be
	// satisfied within the budget.
	ExitDistributionFailed ExitCode = 3

	// ExitBlueprintFailed indicates a blueprint could not be loaded or built.
	ExitBlueprintFailed ExitCode = 4
)

// CLIError is an error that carries the exit code the process should
// terminate with.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps err.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// exitCodeFor classifies a library error by the sentinel it wraps.
func exitCodeFor(err error) ExitCode {
	switch {
	case errors.Is(err, constraint.ErrInvalidValue),
		errors.Is(err, constraint.ErrInvalidFormat),
		errors.Is(err, constraint.ErrUnsupportedInput),
		errors.Is(err, layout.ErrUnknownAxis),
		errors.Is(err, layout.ErrNameSizeMismatch),
		errors.Is(err, layout.ErrNameIndexOutOfRange):
		return ExitInvalidInput
	case errors.Is(err, distribute.ErrNonPositiveBudget),
		errors.Is(err, distribute.ErrConstraintSumExceedsBudget),
		errors.Is(err, distribute.ErrPercentageSumExceeds100),
		errors.Is(err, distribute.ErrIncompleteDistribution),
		errors.Is(err, layout.ErrRemainingSpace):
		return ExitDistributionFailed
	case errors.Is(err, blueprint.ErrUnsupportedFormat),
		errors.Is(err, blueprint.ErrDecode),
		errors.Is(err, blueprint.ErrUnknownTarget):
		return ExitBlueprintFailed
	default:
		return ExitGeneralError
	}
}
