package calculator

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/leofalp/askgo/core/parse"
)

// Input holds the operands and the operation selector for [Calc].
// B is nil for unary operations. An empty Op defaults to "+".
type Input struct {
	A  any    `json:"a"`
	B  any    `json:"b,omitempty"`
	Op string `json:"op"`
}

// Output carries the result produced by [Calc].
type Output struct {
	Result Number `json:"result"`
}

// Calc evaluates req with [Evaluate].
//
// Example:
//
//	out, err := calculator.Calc(ctx, calculator.Input{A: 10, B: 4, Op: "//"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.Result) // 2
func Calc(_ context.Context, req Input) (Output, error) {
	op := req.Op
	if op == "" {
		op = "+"
	}
	result, err := Evaluate(req.A, req.B, op)
	if err != nil {
		return Output{}, err
	}
	return Output{Result: result}, nil
}

// ParseInput decodes a JSON object such as {"a": 2, "b": 3, "op": "**"}.
// Sloppy JSON (single quotes, unquoted keys, trailing commas) is repaired
// before decoding. Numeric fields are kept as json.Number so integer
// literals stay exact.
func ParseInput(raw string) (Input, error) {
	in, err := parse.ParseStringAs[Input](raw)
	if err != nil {
		return Input{}, fmt.Errorf("invalid calculator input: %w", err)
	}
	return in, nil
}

// ParseOperand converts a command-line token into an operand. Integer and
// float literals become a [Number]; any other token is returned unchanged so
// that [Evaluate] reports it with [ErrType].
func ParseOperand(token string) any {
	n, err := ParseNumber(token)
	if err != nil {
		return token
	}
	return n
}

// Evaluate validates its operands and applies the operation named by
// selector. b == nil means the second operand is absent.
//
// Checks run in a fixed order: a must be numeric; unary selectors reject a
// second operand; binary operations need a numeric b; finally the selector
// must be known.
func Evaluate(a, b any, selector string) (Number, error) {
	x, err := ToNumber(a)
	if err != nil {
		return Number{}, fmt.Errorf("%w: a must be a number", ErrType)
	}

	op, opErr := ParseOp(selector)
	if opErr == nil && op.IsUnary() {
		if b != nil {
			return Number{}, fmt.Errorf("%w: operation '%s' is unary and does not accept b", ErrInvalidArgument, selector)
		}
		return applyUnary(op, x)
	}

	if b == nil {
		return Number{}, fmt.Errorf("%w: b must be a number for binary operations", ErrType)
	}
	y, err := ToNumber(b)
	if err != nil {
		return Number{}, fmt.Errorf("%w: b must be a number for binary operations", ErrType)
	}

	if opErr != nil {
		return Number{}, opErr
	}
	return applyBinary(op, x, y)
}

// Apply runs op on already-typed operands. b must be nil for unary
// operations and non-nil for binary ones.
func Apply(op Op, a Number, b *Number) (Number, error) {
	if !op.Valid() {
		return Number{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
	}
	if op.IsUnary() {
		if b != nil {
			return Number{}, fmt.Errorf("%w: operation '%s' is unary and does not accept b", ErrInvalidArgument, op)
		}
		return applyUnary(op, a)
	}
	if b == nil {
		return Number{}, fmt.Errorf("%w: b must be a number for binary operations", ErrType)
	}
	return applyBinary(op, a, *b)
}

func applyUnary(op Op, a Number) (Number, error) {
	switch op {
	case OpNeg:
		if a.IsInt() {
			return Number{i: new(big.Int).Neg(a.bigInt())}, nil
		}
		return Float(-a.f), nil
	case OpAbs:
		if a.IsInt() {
			return Number{i: new(big.Int).Abs(a.bigInt())}, nil
		}
		return Float(math.Abs(a.f)), nil
	case OpSqrt:
		if a.Sign() < 0 {
			return Number{}, fmt.Errorf("%w: sqrt of negative number", ErrDomain)
		}
		f, err := a.toFloat()
		if err != nil {
			return Number{}, err
		}
		return Float(math.Sqrt(f)), nil
	}
	return Number{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
}

func applyBinary(op Op, a, b Number) (Number, error) {
	switch op {
	case OpAdd:
		if a.IsInt() && b.IsInt() {
			return Number{i: new(big.Int).Add(a.bigInt(), b.bigInt())}, nil
		}
		return floatOp(a, b, func(x, y float64) float64 { return x + y })
	case OpSub:
		if a.IsInt() && b.IsInt() {
			return Number{i: new(big.Int).Sub(a.bigInt(), b.bigInt())}, nil
		}
		return floatOp(a, b, func(x, y float64) float64 { return x - y })
	case OpMul:
		if a.IsInt() && b.IsInt() {
			return Number{i: new(big.Int).Mul(a.bigInt(), b.bigInt())}, nil
		}
		return floatOp(a, b, func(x, y float64) float64 { return x * y })
	case OpDiv:
		return trueDiv(a, b)
	case OpFloorDiv:
		q, _, err := divMod(a, b)
		return q, err
	case OpMod:
		_, r, err := divMod(a, b)
		return r, err
	case OpPow:
		return pow(a, b)
	}
	return Number{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
}

func floats(a, b Number) (float64, float64, error) {
	x, err := a.toFloat()
	if err != nil {
		return 0, 0, err
	}
	y, err := b.toFloat()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func floatOp(a, b Number, fn func(x, y float64) float64) (Number, error) {
	x, y, err := floats(a, b)
	if err != nil {
		return Number{}, err
	}
	return Float(fn(x, y)), nil
}

func trueDiv(a, b Number) (Number, error) {
	if b.Sign() == 0 && !isNaN(b) {
		return Number{}, ErrDivisionByZero
	}
	if a.IsInt() && b.IsInt() {
		f, _ := new(big.Rat).SetFrac(a.bigInt(), b.bigInt()).Float64()
		if math.IsInf(f, 0) {
			return Number{}, fmt.Errorf("%w: integer division result too large for a float", ErrOverflow)
		}
		return Float(f), nil
	}
	return floatOp(a, b, func(x, y float64) float64 { return x / y })
}

// divMod returns the floored quotient and the remainder. The remainder has
// the sign of the divisor, so a == q*b + r always holds for integers.
func divMod(a, b Number) (Number, Number, error) {
	if b.Sign() == 0 && !isNaN(b) {
		return Number{}, Number{}, ErrDivisionByZero
	}

	if a.IsInt() && b.IsInt() {
		divisor := b.bigInt()
		q, r := new(big.Int).QuoRem(a.bigInt(), divisor, new(big.Int))
		if r.Sign() != 0 && (r.Sign() < 0) != (divisor.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
			r.Add(r, divisor)
		}
		return Number{i: q}, Number{i: r}, nil
	}

	x, y, err := floats(a, b)
	if err != nil {
		return Number{}, Number{}, err
	}

	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 {
		if (y < 0) != (mod < 0) {
			mod += y
			div -= 1
		}
	} else {
		mod = math.Copysign(0, y)
	}

	var floorDiv float64
	if div != 0 {
		floorDiv = math.Floor(div)
		if div-floorDiv > 0.5 {
			floorDiv += 1
		}
	} else {
		floorDiv = math.Copysign(0, x/y)
	}
	return Float(floorDiv), Float(mod), nil
}

func pow(a, b Number) (Number, error) {
	if a.IsInt() && b.IsInt() {
		exp := b.bigInt()
		if exp.Sign() >= 0 {
			return Number{i: new(big.Int).Exp(a.bigInt(), exp, nil)}, nil
		}
		if a.Sign() == 0 {
			return Number{}, ErrDivisionByZero
		}
	}

	x, y, err := floats(a, b)
	if err != nil {
		return Number{}, err
	}
	if x == 0 && y < 0 {
		return Number{}, ErrDivisionByZero
	}
	if x < 0 && !math.IsInf(y, 0) && !math.IsNaN(y) && y != math.Trunc(y) {
		return Number{}, fmt.Errorf("%w: negative number cannot be raised to a fractional power", ErrDomain)
	}

	r := math.Pow(x, y)
	if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return Number{}, fmt.Errorf("%w: %s ** %s", ErrOverflow, a, b)
	}
	return Float(r), nil
}

func isNaN(n Number) bool {
	return !n.IsInt() && math.IsNaN(n.f)
}
