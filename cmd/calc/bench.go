package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

type benchOptions struct {
	expr       string
	iterations int
}

func newBenchCommand(root *rootOptions) *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated evaluation with and without precompiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.expr, "expr", "2.1+-3.2*5^(3-1)/(2*3.14 - 1) + VAR", "expression to evaluate; VAR varies per iteration")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 100000, "evaluations per strategy")
	return cmd
}

// strategy evaluates the expression once with VAR set to v.
type strategy struct {
	name string
	run  func(e *calc.Engine, v float32) error
}

func runBench(cmd *cobra.Command, root *rootOptions, opts *benchOptions) error {
	if opts.iterations <= 0 {
		return fmt.Errorf("iterations (%d) must be positive", opts.iterations)
	}
	e, err := newEngine(root)
	if err != nil {
		return err
	}
	if err := setVar(e, "VAR", 0); err != nil {
		return err
	}
	x, err := e.Compile(opts.expr)
	if err != nil {
		return err
	}
	strategies := []strategy{
		{"recompile", func(e *calc.Engine, v float32) error {
			if err := e.SetVariable("VAR", v); err != nil {
				return err
			}
			x, err := e.Compile(opts.expr)
			if err != nil {
				return err
			}
			_, err = e.Eval(x)
			return err
		}},
		{"cached", func(e *calc.Engine, v float32) error {
			if err := e.SetVariable("VAR", v); err != nil {
				return err
			}
			_, err := e.Evaluate(opts.expr)
			return err
		}},
		{"precompiled", func(e *calc.Engine, v float32) error {
			if err := e.SetVariable("VAR", v); err != nil {
				return err
			}
			_, err := e.Eval(x)
			return err
		}},
	}
	out := cmd.OutOrStdout()
	for _, s := range strategies {
		start := time.Now()
		for i := 0; i < opts.iterations; i++ {
			if err := s.run(e, float32(i)*0.0001); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
		}
		d := time.Since(start)
		fmt.Fprintf(out, "%-12s %10d iterations %12v %10.1f ns/op\n", s.name, opts.iterations, d, float64(d.Nanoseconds())/float64(opts.iterations))
	}
	return nil
}
