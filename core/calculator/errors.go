package calculator

import "errors"

var (
	// ErrInvalidArgument is returned when a unary operation receives a second operand.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain is returned when an operand lies outside the domain of the
	// operation, e.g. the square root of a negative number.
	ErrDomain = errors.New("math domain error")

	// ErrType is returned when an operand is missing or not a number.
	ErrType = errors.New("type error")

	// ErrUnsupportedOperation is returned for selectors outside the supported set.
	// The wrapping error names the offending selector.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrDivisionByZero is returned unwrapped by division, floor division and
	// modulo when the divisor is zero, and by raising zero to a negative power.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a result cannot be represented as a float64.
	ErrOverflow = errors.New("numerical result out of range")
)
