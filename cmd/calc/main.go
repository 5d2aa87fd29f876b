// Command calc evaluates arithmetic expressions.
//
// Expressions come from an input file followed by arguments, or from standard
// input when neither is given. Use -- before an expression that begins with a minus
// sign.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	in       string
	verb     string
	given    []string
	vars     string
	lines    bool
	echo     bool
	builtins bool
	verbose  bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "calc [flags] [expr...]",
		Short:        "Evaluate arithmetic expressions",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.vars, "vars", "", "YAML file of name: value variable definitions")
	f.StringArrayVar(&opts.given, "given", nil, "name=value variable definition (any number of times)")
	f.BoolVar(&opts.builtins, "builtins", true, "define pi, euler, exp, ln, log, sqrt, pow, sin, cos, tan, abs")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	cmd.Flags().StringVar(&opts.in, "in", "", "input file, evaluated before any args (default stdin if no args given)")
	cmd.Flags().StringVar(&opts.verb, "fmt", "%g", "result formatting string")
	cmd.Flags().BoolVarP(&opts.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	cmd.Flags().BoolVar(&opts.echo, "echo", false, "print compiled postfix forms")

	cmd.AddCommand(newBenchCommand(opts))
	return cmd
}

// newEngine creates an engine with the variables from the --vars file and
// --given flags.
func newEngine(opts *rootOptions) (*calc.Engine, error) {
	var eopts []calc.Option
	if opts.builtins {
		eopts = append(eopts, calc.Builtins())
	}
	e, err := calc.New(eopts...)
	if err != nil {
		return nil, err
	}
	if opts.vars != "" {
		f, err := os.Open(opts.vars)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		vars, err := loadVars(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.vars, err)
		}
		for _, v := range vars {
			if err := setVar(e, v.name, v.val); err != nil {
				return nil, err
			}
			slog.Debug("variable from file", "name", v.name, "value", v.val)
		}
	}
	for _, s := range opts.given {
		name, src, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		name = strings.TrimSpace(name)
		r, err := e.Evaluate(src)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		if err := setVar(e, name, r); err != nil {
			return nil, err
		}
		slog.Debug("variable given", "name", name, "value", r)
	}
	return e, nil
}

func setVar(e *calc.Engine, name string, val float32) error {
	if e.HasVariable(name) {
		return e.SetVariable(name, val)
	}
	return e.DefineVariable(name, val)
}

func runEval(cmd *cobra.Command, opts *rootOptions, args []string) error {
	e, err := newEngine(opts)
	if err != nil {
		return err
	}
	// The input file comes first, then the arguments. Standard input is
	// read only when there is nothing else.
	var srcs []string
	if opts.in != "" || len(args) == 0 {
		srcs, err = readInput(cmd.InOrStdin(), opts.in, opts.lines)
		if err != nil {
			return err
		}
	}
	srcs = append(srcs, args...)
	out := cmd.OutOrStdout()
	verb := opts.verb + "\n"
	failed := 0
	for _, src := range srcs {
		x, err := e.Compile(src)
		if err != nil {
			fmt.Fprintln(out, err)
			failed++
			continue
		}
		slog.Debug("compiled", "src", src, "postfix", x.String())
		if opts.echo {
			fmt.Fprintf(out, "%v : ", x)
		}
		r, err := e.Eval(x)
		if err != nil {
			fmt.Fprintln(out, err)
			failed++
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// readInput reads expressions from the named file, or from stdin if the name
// is empty or "-". With lines, each non-blank line is an expression;
// otherwise the entire input is one.
func readInput(stdin io.Reader, name string, lines bool) ([]string, error) {
	r := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, errors.New("no input")
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}
