package calculator

import "fmt"

// Op is one of the supported arithmetic operations.
type Op int

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv      // true division, always a float result
	OpFloorDiv // division rounded toward negative infinity
	OpMod      // remainder with the sign of the divisor
	OpPow
	OpNeg
	OpAbs
	OpSqrt
)

var opNames = map[Op]struct{ name, symbol string }{
	OpAdd:      {"add", "+"},
	OpSub:      {"sub", "-"},
	OpMul:      {"mul", "*"},
	OpDiv:      {"div", "/"},
	OpFloorDiv: {"floordiv", "//"},
	OpMod:      {"mod", "%"},
	OpPow:      {"pow", "**"},
	OpNeg:      {"neg", "neg"},
	OpAbs:      {"abs", "abs"},
	OpSqrt:     {"sqrt", "sqrt"},
}

var selectors = func() map[string]Op {
	m := make(map[string]Op, 2*len(opNames))
	for op, names := range opNames {
		m[names.name] = op
		m[names.symbol] = op
	}
	return m
}()

// ParseOp maps a selector in word form ("add") or symbolic form ("+") to its
// Op. Unary operations only have a word form. Unknown selectors fail with
// [ErrUnsupportedOperation].
func ParseOp(selector string) (Op, error) {
	op, ok := selectors[selector]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperation, selector)
	}
	return op, nil
}

// IsUnary reports whether op takes a single operand.
func (op Op) IsUnary() bool {
	return op == OpNeg || op == OpAbs || op == OpSqrt
}

// Valid reports whether op is one of the declared operations.
func (op Op) Valid() bool {
	_, ok := opNames[op]
	return ok
}

// String returns the word form of op.
func (op Op) String() string {
	if names, ok := opNames[op]; ok {
		return names.name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Symbol returns the symbolic form of a binary op, or the word form of a
// unary one.
func (op Op) Symbol() string {
	if names, ok := opNames[op]; ok {
		return names.symbol
	}
	return op.String()
}
