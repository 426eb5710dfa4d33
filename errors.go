package timelang

import "fmt"

// SyntaxError is the single failure type produced by parsing: no grammar
// alternative matched the input at Pos. Pos is a byte offset into Input,
// and Want names the construct (or set of alternatives) expected there.
//
// Calendar and clock violations (30/2/2023, 25:00, 13:00 PM) are reported
// the same way, positioned at the offending field: an impossible date and
// a date-shaped string that never was a date are indistinguishable to the
// caller, both meaning the input is not a valid time expression.
type SyntaxError struct {
	Input string
	Pos   int
	Want  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cannot parse %q: expected %s at position %d", e.Input, e.Want, e.Pos)
}
