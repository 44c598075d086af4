package calculator

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   Number
		wantOK bool
	}{
		{"int", 3, Int(3), true},
		{"int8", int8(-3), Int(-3), true},
		{"uint64", uint64(math.MaxUint64), BigInt(new(big.Int).SetUint64(math.MaxUint64)), true},
		{"float32", float32(0.5), Float(0.5), true},
		{"float64", 2.5, Float(2.5), true},
		{"json integer", json.Number("12"), Int(12), true},
		{"json float", json.Number("1e3"), Float(1000), true},
		{"big int", big.NewInt(7), Int(7), true},
		{"number", Float(1), Float(1), true},
		{"string", "1", Number{}, false},
		{"bool", false, Number{}, false},
		{"nil", nil, Number{}, false},
		{"nil big int", (*big.Int)(nil), Number{}, false},
		{"bad json number", json.Number("abc"), Number{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToNumber(tc.input)
			if tc.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !got.Equal(tc.want) {
					t.Errorf("ToNumber(%v) = %v, want %v", tc.input, got, tc.want)
				}
				return
			}
			if !errors.Is(err, ErrType) {
				t.Errorf("ToNumber(%v) error = %v, want ErrType", tc.input, err)
			}
		})
	}
}

func TestNumber_String(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Int(8), "8"},
		{Int(-12), "-12"},
		{Number{}, "0"},
		{Float(3), "3.0"},
		{Float(2.5), "2.5"},
		{Float(1e16), "1e+16"},
		{Float(math.Inf(1)), "+Inf"},
		{Float(math.NaN()), "NaN"},
	}

	for _, tc := range tests {
		if got := tc.n.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestNumber_Equal(t *testing.T) {
	if Int(3).Equal(Float(3)) {
		t.Error("an int and a float must not compare equal")
	}
	if !(Number{}).Equal(Int(0)) {
		t.Error("the zero value should equal Int(0)")
	}
	if !Float(0.1).Equal(Float(0.1)) {
		t.Error("identical floats should compare equal")
	}
}

func TestNumber_BigIntIsCopy(t *testing.T) {
	n := Int(5)
	v, ok := n.BigInt()
	if !ok {
		t.Fatal("expected integer")
	}
	v.SetInt64(100)
	if !n.Equal(Int(5)) {
		t.Errorf("mutating the returned big.Int changed the Number: %v", n)
	}
	if _, ok := Float(1).BigInt(); ok {
		t.Error("BigInt() on a float should report false")
	}
}

func TestNumber_JSON(t *testing.T) {
	var decoded struct {
		N Number `json:"n"`
	}
	if err := json.Unmarshal([]byte(`{"n": 98765432109876543210}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.N.IsInt() || decoded.N.String() != "98765432109876543210" {
		t.Errorf("decoded %v, want the exact integer", decoded.N)
	}

	encoded, err := json.Marshal([]Number{Int(1), Float(0.5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != "[1,0.5]" {
		t.Errorf("encoded %s", encoded)
	}

	if err := json.Unmarshal([]byte(`{"n": "x"}`), &decoded); err == nil {
		t.Error("expected error decoding a string into Number")
	}
}

func TestNumber_Sign(t *testing.T) {
	if Int(-2).Sign() != -1 || Int(0).Sign() != 0 || Float(0.1).Sign() != 1 {
		t.Error("unexpected Sign results")
	}
	if Float(math.NaN()).Sign() != 0 {
		t.Error("NaN should report sign 0")
	}
}
