// Package cli implements the timelang command, a thin wrapper that feeds
// expressions to the parser and prints their canonical forms.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"
	"github.com/timelang/timelang"
	"golang.org/x/sync/semaphore"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color   = colorAuto
	grammar string
	jobs    int
)

var rootCmd = &cobra.Command{
	Use:   "timelang [<expression>...]",
	Short: "Parse human-readable time expressions",
	Long: `timelang parses a small natural language for points in time, durations,
and time ranges, and prints each expression in its canonical form.

Each argument is one expression (quote expressions containing spaces).
With no arguments, expressions are read from standard input, one per line.

The --as flag selects which grammar an expression must match:
  expression     any time expression (the default)
  point          a single point in time, absolute or relative
  duration       a bare duration such as "2 hours and 30 minutes"
  range          a "from ... to ..." time range

Examples:
  timelang "3 days ago"
  timelang "next tuesday" "15/4/2025 at 9:27 AM"
  timelang --as duration "5 years, 2 months, 3 weeks and 11 minutes"
  timelang --as range "from 1/1/2023 to 15/1/2023"
  timelang < expressions.txt`,
	Version:      version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		switch grammar {
		case "expression", "point", "duration", "range":
			// Valid
		default:
			return fmt.Errorf("invalid grammar %q: must be one of expression, point, duration, or range", grammar)
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().StringVar(&grammar, "as", "expression",
		"grammar to parse against: expression, point, duration, range")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent parses in batch mode")
}

func Execute() error {
	return rootCmd.Execute()
}

// parseAs dispatches input to the entry point named by mode.
func parseAs(mode, input string) (fmt.Stringer, error) {
	switch mode {
	case "expression":
		return timelang.ParseTimeExpression(input)
	case "point":
		return timelang.ParsePointInTime(input)
	case "duration":
		return timelang.ParseDuration(input)
	case "range":
		return timelang.ParseTimeRange(input)
	}
	return nil, fmt.Errorf("unknown grammar %q", mode)
}

// readLines collects non-empty lines from r, trimming surrounding
// whitespace.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expressions: %w", err)
	}
	return lines, nil
}

type result struct {
	canonical string
	err       error
}

// parseAll parses every expression with bounded parallelism, preserving
// input order in the returned slice.
func parseAll(ctx context.Context, exprs []string, mode string, jobs int) []result {
	results := make([]result, len(exprs))

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(jobs))

	for i, expr := range exprs {
		if err := sem.Acquire(ctx, 1); err != nil {
			for j := i; j < len(exprs); j++ {
				results[j] = result{err: err}
			}
			break
		}

		wg.Add(1)
		go func(i int, expr string) {
			defer wg.Done()
			defer sem.Release(1)

			node, err := parseAs(mode, expr)
			if err != nil {
				results[i] = result{err: err}
				return
			}
			results[i] = result{canonical: node.String()}
		}(i, expr)
	}

	wg.Wait()
	return results
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}

	out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)

	exprs := args
	if len(exprs) == 0 {
		var err error
		exprs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if len(exprs) == 0 {
			out.Warningf("no expressions given")
			return nil
		}
	}

	results := parseAll(ctx, exprs, grammar, jobs)

	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			out.ParseFailure(exprs[i], r.err)
			continue
		}
		out.Result(r.canonical)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to parse", failed, len(exprs))
	}
	return nil
}
