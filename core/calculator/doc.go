// Package calculator evaluates a fixed set of unary and binary arithmetic
// operations over integer and floating-point operands.
//
// Operations are selected either through the closed [Op] enum, for callers
// that know the operation statically ([Apply]), or through a selector string
// in symbolic or word form such as "+" and "add" ([Evaluate]). Integers are
// arbitrary precision; any floating-point operand promotes the operation to
// float64.
//
// Failures are reported with the sentinel errors declared in errors.go and
// can be inspected with [errors.Is]. [ErrDivisionByZero] is returned as-is
// (never wrapped) for division, floor division and modulo by zero.
//
// [Calc] and [ParseInput] expose the evaluator to structured (JSON) callers
// such as the askgo command line.
package calculator
