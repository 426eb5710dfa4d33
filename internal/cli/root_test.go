package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/timelang/timelang"
)

func TestColorModeSet(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"auto", false},
		{"always", false},
		{"never", false},
		{"", true},
		{"yes", true},
		{"Always", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && c.String() != tt.value {
				t.Errorf("String() = %q, want %q", c.String(), tt.value)
			}
		})
	}
}

func TestParseAs(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		input   string
		want    string
		wantErr bool
	}{
		{"expression", "expression", "3 days ago", "3 days ago", false},
		{"expression accepts duration", "expression", "10 minutes", "10 minutes", false},
		{"point", "point", "next tuesday", "next Tuesday", false},
		{"point rejects duration", "point", "10 minutes", "", true},
		{"duration", "duration", "2 hrs and 30 mins", "2 hours and 30 minutes", false},
		{"duration rejects point", "duration", "tomorrow", "", true},
		{"range", "range", "from now to tomorrow", "from now to tomorrow", false},
		{"range rejects point", "range", "tomorrow", "", true},
		{"unknown mode", "interval", "now", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := parseAs(tt.mode, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAs(%q, %q) error = %v, wantErr %v", tt.mode, tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && node.String() != tt.want {
				t.Errorf("parseAs(%q, %q) = %q, want %q", tt.mode, tt.input, node.String(), tt.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	input := "3 days ago\n\n  next tuesday  \n\t\nnow\n"
	lines, err := readLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}
	want := []string{"3 days ago", "next tuesday", "now"}
	if len(lines) != len(want) {
		t.Fatalf("readLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestParseAllPreservesOrder(t *testing.T) {
	exprs := []string{
		"3 days ago",
		"not a time",
		"from 1/1/2023 to 15/1/2023",
		"2 hours and 30 minutes",
	}

	results := parseAll(context.Background(), exprs, "expression", 2)

	if len(results) != len(exprs) {
		t.Fatalf("got %d results, want %d", len(results), len(exprs))
	}
	if results[0].canonical != "3 days ago" {
		t.Errorf("results[0] = %q, want %q", results[0].canonical, "3 days ago")
	}
	if results[1].err == nil {
		t.Error("results[1].err = nil, want parse error")
	}
	if results[2].canonical != "from 1/1/2023 to 15/1/2023" {
		t.Errorf("results[2] = %q, want %q", results[2].canonical, "from 1/1/2023 to 15/1/2023")
	}
	if results[3].canonical != "2 hours and 30 minutes" {
		t.Errorf("results[3] = %q, want %q", results[3].canonical, "2 hours and 30 minutes")
	}
}

func TestParseAllCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// One worker slot: the first Acquire may succeed, but once the
	// semaphore observes the canceled context every remaining slot fails.
	results := parseAll(ctx, []string{"now", "tomorrow", "yesterday"}, "expression", 1)
	for i, r := range results {
		if r.err == nil && r.canonical == "" {
			t.Errorf("results[%d] has neither value nor error", i)
		}
	}
	if last := results[len(results)-1]; last.err == nil {
		t.Error("last result should carry the context error")
	}
}

func TestCaret(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  string
	}{
		{"3 days!", 6, "      ^"},
		{"x", 0, "^"},
		{"abc", 3, "   ^"},
		{"abc", -2, "^"},
		{"abc", 99, "   ^"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := caret(tt.input, tt.pos); got != tt.want {
				t.Errorf("caret(%q, %d) = %q, want %q", tt.input, tt.pos, got, tt.want)
			}
		})
	}
}

func TestOutputResult(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewOutput(&stdout, &stderr, false)

	out.Result("3 days ago")

	if got := stdout.String(); got != "3 days ago\n" {
		t.Errorf("stdout = %q, want %q", got, "3 days ago\n")
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestOutputParseFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewOutput(&stdout, &stderr, false)

	_, err := timelang.ParseTimeExpression("3 days agoo")
	if err == nil {
		t.Fatal("expected parse error")
	}
	out.ParseFailure("3 days agoo", err)

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	got := stderr.String()
	if !strings.HasPrefix(got, "error: ") {
		t.Errorf("stderr = %q, want error: prefix", got)
	}
	if !strings.Contains(got, "  3 days agoo\n") {
		t.Errorf("stderr = %q, should echo the input", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("stderr = %q, should include a caret line", got)
	}
}

func TestOutputColorizedResult(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewOutput(&stdout, &stderr, true)

	out.Result("now")

	got := stdout.String()
	if !strings.Contains(got, "now") {
		t.Errorf("stdout = %q, should contain the canonical form", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("stdout = %q, should contain an ANSI escape", got)
	}
}

func TestRootCmdRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad grammar", []string{"--as", "interval", "now"}},
		{"jobs too low", []string{"--jobs", "0", "now"}},
		{"jobs too high", []string{"--jobs", "101", "now"}},
		{"bad color", []string{"--color", "sometimes", "now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer resetFlags()

			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)
			rootCmd.SetArgs(tt.args)
			if err := rootCmd.Execute(); err == nil {
				t.Error("Execute() = nil, want error")
			}
		})
	}
}

func TestRootCmdParsesArgs(t *testing.T) {
	defer resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"--color", "never", "3 days ago", "NEXT monday"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\nstderr: %s", err, stderr.String())
	}
	want := "3 days ago\nnext Monday\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRootCmdReadsStdin(t *testing.T) {
	defer resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader("2 hrs and 30 mins\n\nfrom now to tomorrow\n"))
	rootCmd.SetArgs([]string{"--color", "never"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\nstderr: %s", err, stderr.String())
	}
	want := "2 hours and 30 minutes\nfrom now to tomorrow\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRootCmdReportsFailures(t *testing.T) {
	defer resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"--color", "never", "now", "not a time"})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Execute() = nil, want error")
	}
	if !strings.Contains(err.Error(), "1 of 2 expressions failed") {
		t.Errorf("Execute() error = %v, want failure tally", err)
	}
	if got := stdout.String(); got != "now\n" {
		t.Errorf("stdout = %q, want %q", got, "now\n")
	}
	if !strings.Contains(stderr.String(), "error: ") {
		t.Errorf("stderr = %q, should carry the diagnostic", stderr.String())
	}
}

// resetFlags restores the package-level flag state mutated by Execute so
// tests do not leak configuration into each other.
func resetFlags() {
	color = colorAuto
	grammar = "expression"
	jobs = 10
	rootCmd.SetIn(nil)
	rootCmd.SetArgs(nil)
}
