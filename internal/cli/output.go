package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mgutz/ansi"
	"github.com/timelang/timelang"
)

// Output handles all program output with optional color support.
// Canonical forms go to stdout; diagnostics go to stderr.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	green  func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		green:  color("green"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// Result writes the canonical form of a successfully parsed expression.
func (o *Output) Result(canonical string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stdout, "%s\n", o.green(canonical))
}

// ParseFailure writes a diagnostic for a failed expression. When the
// error carries a position, the offending input is echoed with a caret
// under the byte where matching stopped.
func (o *Output) ParseFailure(input string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintf(o.stderr, "%s%v\n", o.red("error: "), err)

	var syntaxErr *timelang.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintf(o.stderr, "  %s\n", input)
		fmt.Fprintf(o.stderr, "  %s\n", o.yellow(caret(input, syntaxErr.Pos)))
	}
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// caret builds a marker line pointing at byte offset pos of input.
func caret(input string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(input) {
		pos = len(input)
	}
	return strings.Repeat(" ", pos) + "^"
}
