package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/askgo/core/calculator"
	"github.com/leofalp/askgo/core/parse"
	"github.com/leofalp/askgo/providers/observability"
)

type calcOptions struct {
	root      *rootOptions
	jsonInput string
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	opts := &calcOptions{root: root}
	cmd := &cobra.Command{
		Use:   "calc <a> <op> [b]",
		Short: "Evaluate a single arithmetic operation",
		Long: `Evaluate a single arithmetic operation.

Binary operations: + - * / // % ** (or add sub mul div floordiv mod pow).
Unary operations: neg abs sqrt, which take no second operand.
Integers have arbitrary precision; true division always yields a float.
Use -- before negative operands, e.g. askgo calc -- -7 // 2.`,
		Example: `  askgo calc 2 '**' 100
  askgo calc 9 sqrt
  askgo calc --json '{"a": 7, "b": 2, "op": "%"}'`,
		Args: cobra.RangeArgs(0, 3),
		RunE: opts.run,
	}
	cmd.Flags().StringVar(&opts.jsonInput, "json", "", `Read the operation from a JSON object like {"a": 2, "b": 3, "op": "**"}`)
	return cmd
}

func (o *calcOptions) run(cmd *cobra.Command, args []string) error {
	_, observer, err := o.root.load(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("json") {
		if len(args) > 0 {
			return fmt.Errorf("--json does not take positional arguments")
		}
		observer.Debug(cmd.Context(), "Calculator input", observability.String("input", parse.Compact(o.jsonInput)))

		in, err := calculator.ParseInput(o.jsonInput)
		if err != nil {
			return err
		}
		result, err := calculator.Calc(cmd.Context(), in)
		if err != nil {
			return err
		}
		encoded, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(encoded))
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("expected <a> <op> [b], got %d argument(s)", len(args))
	}
	var b any
	if len(args) == 3 {
		b = calculator.ParseOperand(args[2])
	}
	result, err := calculator.Evaluate(calculator.ParseOperand(args[0]), b, args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, result)
	return err
}
