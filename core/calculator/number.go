package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is an operand or result of the calculator. It holds either an
// arbitrary-precision integer or an IEEE-754 double. The zero value is the
// integer 0.
type Number struct {
	i       *big.Int
	f       float64
	isFloat bool
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{i: big.NewInt(v)}
}

// BigInt returns an integer Number holding a copy of v. A nil v yields 0.
func BigInt(v *big.Int) Number {
	if v == nil {
		return Number{}
	}
	return Number{i: new(big.Int).Set(v)}
}

// Float returns a floating-point Number.
func Float(v float64) Number {
	return Number{f: v, isFloat: true}
}

// ParseNumber parses a decimal literal. Integer literals become integers of
// arbitrary size, everything strconv.ParseFloat accepts becomes a float.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return Number{i: i}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q is not a number", ErrType, s)
	}
	return Float(f), nil
}

// ToNumber converts any Go numeric value, json.Number, *big.Int or Number
// into a Number. Other values, including bool and nil, fail with [ErrType].
func ToNumber(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case *Number:
		if x == nil {
			break
		}
		return *x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Number{i: new(big.Int).SetUint64(uint64(x))}, nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Number{i: new(big.Int).SetUint64(x)}, nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return BigInt(x), nil
	case json.Number:
		return ParseNumber(string(x))
	}
	return Number{}, fmt.Errorf("%w: unsupported operand type %T", ErrType, v)
}

// IsInt reports whether n holds an integer.
func (n Number) IsInt() bool {
	return !n.isFloat
}

// BigInt returns a copy of the integer value and true, or nil and false when
// n is a float.
func (n Number) BigInt() (*big.Int, bool) {
	if n.isFloat {
		return nil, false
	}
	return new(big.Int).Set(n.bigInt()), true
}

// Float64 returns n as a float64. Integers too large for a float64 convert to
// an infinity; use the arithmetic operations to get [ErrOverflow] instead.
func (n Number) Float64() float64 {
	f, _ := n.toFloat()
	return f
}

// Sign returns -1, 0 or +1 depending on the sign of n. NaN reports 0.
func (n Number) Sign() int {
	if !n.isFloat {
		return n.bigInt().Sign()
	}
	switch {
	case n.f < 0:
		return -1
	case n.f > 0:
		return 1
	}
	return 0
}

// Equal reports whether n and other have the same kind and value.
func (n Number) Equal(other Number) bool {
	if n.isFloat != other.isFloat {
		return false
	}
	if n.isFloat {
		return n.f == other.f
	}
	return n.bigInt().Cmp(other.bigInt()) == 0
}

// String formats integers in base 10 and floats in their shortest form,
// always keeping a decimal point or exponent so 3.0 is not shown as "3".
func (n Number) String() string {
	if !n.isFloat {
		return n.bigInt().String()
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// MarshalJSON encodes integers as JSON integers and floats as JSON numbers.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.isFloat {
		return []byte(n.bigInt().String()), nil
	}
	return json.Marshal(n.f)
}

// UnmarshalJSON decodes a JSON number, keeping integer literals exact.
func (n *Number) UnmarshalJSON(data []byte) error {
	var raw json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrType, err.Error())
	}
	parsed, err := ParseNumber(raw.String())
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Number) bigInt() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// toFloat converts n to a float64, failing with ErrOverflow when an integer
// does not fit.
func (n Number) toFloat() (float64, error) {
	if n.isFloat {
		return n.f, nil
	}
	f, _ := new(big.Float).SetInt(n.bigInt()).Float64()
	if math.IsInf(f, 0) {
		return f, fmt.Errorf("%w: integer too large to convert to float", ErrOverflow)
	}
	return f, nil
}
