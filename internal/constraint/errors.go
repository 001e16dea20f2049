package constraint

import "errors"

var (
	// ErrInvalidValue is returned when a constraint value is negative or not finite.
	ErrInvalidValue = errors.New("invalid constraint value")

	// ErrInvalidFormat is returned when a token does not match the constraint grammar.
	ErrInvalidFormat = errors.New("invalid constraint format")

	// ErrUnsupportedInput is returned when Parse is given a value that is
	// neither a number, a string token, nor a Constraint.
	ErrUnsupportedInput = errors.New("unsupported constraint input")
)
