package constraint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern matches a normalized token: an optional ">=", "<=", "%" or ":"
// prefix followed by a non-negative decimal numeral.
var tokenPattern = regexp.MustCompile(`^(>=|<=|%|:)?(\d+(?:\.\d+)?)$`)

// Parse converts a loosely typed input into a Constraint.
//
// Numbers of any Go integer or float type become Fixed constraints. Strings
// are parsed with ParseToken. A Constraint (or non-nil *Constraint) is
// returned as an independent copy. Anything else is ErrUnsupportedInput.
func Parse(v any) (Constraint, error) {
	switch x := v.(type) {
	case Constraint:
		return x, nil
	case *Constraint:
		if x == nil {
			return Constraint{}, fmt.Errorf("%w: nil *Constraint", ErrUnsupportedInput)
		}
		return *x, nil
	case string:
		return ParseToken(x)
	case float64:
		return NewFixed(x)
	case float32:
		return NewFixed(float64(x))
	case int:
		return NewFixed(float64(x))
	case int8:
		return NewFixed(float64(x))
	case int16:
		return NewFixed(float64(x))
	case int32:
		return NewFixed(float64(x))
	case int64:
		return NewFixed(float64(x))
	case uint:
		return NewFixed(float64(x))
	case uint8:
		return NewFixed(float64(x))
	case uint16:
		return NewFixed(float64(x))
	case uint32:
		return NewFixed(float64(x))
	case uint64:
		return NewFixed(float64(x))
	default:
		return Constraint{}, fmt.Errorf("%w: %v (%T)", ErrUnsupportedInput, v, v)
	}
}

// ParseToken parses a textual constraint token.
//
// A trailing "%" is moved to the front before matching, so "30%" and "%30"
// are equivalent. Surrounding whitespace is ignored.
func ParseToken(token string) (Constraint, error) {
	s := strings.TrimSpace(token)
	if strings.HasSuffix(s, "%") {
		s = "%" + s[:len(s)-1]
	}

	m := tokenPattern.FindStringSubmatch(s)
	if m == nil {
		return Constraint{}, fmt.Errorf("%w: %q", ErrInvalidFormat, token)
	}

	value, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, token, err)
	}

	switch m[1] {
	case ">=":
		return NewMinimum(value)
	case "<=":
		return NewMaximum(value)
	case "%":
		return NewPercentage(value)
	case ":":
		return NewRatio(value)
	default:
		return NewFixed(value)
	}
}

// ParseAll parses every input in order. The error names the index of the
// first input that failed.
func ParseAll(inputs ...any) ([]Constraint, error) {
	out := make([]Constraint, len(inputs))
	for i, in := range inputs {
		c, err := Parse(in)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}
