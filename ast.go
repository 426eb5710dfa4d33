// Package timelang parses a small natural language for points in time,
// durations, and time ranges (e.g. "3 days ago", "from 1/1/2023 to
// 15/1/2023", "2 hours and 30 minutes") into a typed AST, and renders
// every AST node back to one canonical textual form.
//
// The package only describes expressions structurally. It never resolves
// them against a clock: evaluating "tomorrow" to an instant, timezone
// handling, and calendar arithmetic are the caller's business.
//
// All AST nodes are immutable value types. Unions (TimeExpression,
// PointInTime, AbsoluteTime, RelativeTime, Hour, TimeDirection) are sealed
// interfaces whose variants are comparable structs, so == gives structural
// equality on any two nodes of the same union. No total order is implied
// across variants.
package timelang

import "fmt"

// Number is a non-negative integer magnitude with no implicit unit.
type Number uint64

// Year is a calendar year. Any uint16 value is valid, including 0.
type Year uint16

// Month is a month of the year, January = 1 through December = 12.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// DayOfMonth is a day of the month in the range 1 through 31. Whether a
// given day actually exists is a property of the surrounding Date.
type DayOfMonth uint8

// Minute is a minute of the hour in the range 0 through 59.
type Minute uint8

// AmPm distinguishes the two halves of the 12-hour clock.
type AmPm int

const (
	AM AmPm = iota
	PM
)

// Weekday is a day of the week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NamedTime is a fixed idiom that names a point in time directly, such as
// "now" or "the day after tomorrow".
type NamedTime int

const (
	Now NamedTime = iota
	Today
	Tomorrow
	Yesterday
	DayAfterTomorrow
	DayBeforeYesterday
)

// TimeExpression is the top-level union of the language: a single point in
// time, a bare duration, or a range between two points.
type TimeExpression interface {
	fmt.Stringer
	timeExpression()
}

// PointInTime is a single point in time, either absolute (a concrete date,
// time, or both) or relative (anchored to "now" or another reference).
type PointInTime interface {
	TimeExpression
	pointInTime()
}

// AbsoluteTime is a concrete calendar/clock reading: a Date, a DateTime,
// or a bare Time with no date attached.
type AbsoluteTime interface {
	PointInTime
	absoluteTime()
}

// RelativeTime is a point in time expressed relative to a reference:
// a NamedTime, a next/last weekday, or a Directional duration offset.
type RelativeTime interface {
	PointInTime
	relativeTime()
}

// Hour is an hour of the day, in either 12-hour (Hour12) or 24-hour
// (Hour24) form. The two forms are distinct values and are never
// normalized into each other: 2 PM and 14 describe the same wall-clock
// reading but are not equal AST nodes.
type Hour interface {
	fmt.Stringer
	hour()
}

// Hour24 is an hour on the 24-hour clock, 0 through 23.
type Hour24 uint8

// Hour12 is an hour on the 12-hour clock, 1 through 12, qualified by AM
// or PM.
type Hour12 struct {
	Value uint8
	AmPm  AmPm
}

// Date is a day-first calendar date, e.g. 15/4/2025.
type Date struct {
	Month Month
	Day   DayOfMonth
	Year  Year
}

// Time is a time of day with minute resolution.
type Time struct {
	Hour   Hour
	Minute Minute
}

// DateTime is a Date joined with a Time, e.g. "15/4/2025 at 9:27 AM".
type DateTime struct {
	Date Date
	Time Time
}

// Duration is an unanchored span of time with one magnitude per unit.
// Units not mentioned in the source text are zero. The all-zero Duration
// is a valid value and renders as "0 minutes".
type Duration struct {
	Years   Number
	Months  Number
	Weeks   Number
	Days    Number
	Hours   Number
	Minutes Number
}

// NextWeekday is the upcoming occurrence of a weekday, e.g. "next tuesday".
type NextWeekday struct {
	Weekday Weekday
}

// LastWeekday is the most recent occurrence of a weekday, e.g. "last friday".
type LastWeekday struct {
	Weekday Weekday
}

// Directional is a Duration anchored before or after a reference point,
// e.g. "3 days ago" or "2 hours after 10/10/2022".
type Directional struct {
	Duration Duration
	Dir      TimeDirection
}

// TimeRange is a pair of points delimiting a period, e.g. "from 1/1/2023
// to 15/1/2023". No ordering between Start and End is enforced; whether
// Start precedes End is a semantic question for the evaluator.
type TimeRange struct {
	Start PointInTime
	End   PointInTime
}

// TimeDirection is the anchor a Directional duration is measured against,
// and whether the duration lies before or after it. Ago and FromNow carry
// no payload: their anchor is implicitly "now".
type TimeDirection interface {
	fmt.Stringer
	timeDirection()
}

// Ago anchors a duration before now, e.g. "3 days ago".
type Ago struct{}

// FromNow anchors a duration after now, e.g. "2 hours from now".
type FromNow struct{}

// AfterAbsolute anchors a duration after a concrete date/time.
type AfterAbsolute struct {
	Anchor AbsoluteTime
}

// BeforeAbsolute anchors a duration before a concrete date/time.
type BeforeAbsolute struct {
	Anchor AbsoluteTime
}

// AfterNamed anchors a duration after a named time, e.g. "after tomorrow".
type AfterNamed struct {
	Anchor NamedTime
}

// BeforeNamed anchors a duration before a named time, e.g. "before yesterday".
type BeforeNamed struct {
	Anchor NamedTime
}

// AfterNext anchors a duration after the next occurrence of a weekday.
type AfterNext struct {
	Weekday Weekday
}

// BeforeNext anchors a duration before the next occurrence of a weekday.
type BeforeNext struct {
	Weekday Weekday
}

// AfterLast anchors a duration after the last occurrence of a weekday.
type AfterLast struct {
	Weekday Weekday
}

// BeforeLast anchors a duration before the last occurrence of a weekday.
type BeforeLast struct {
	Weekday Weekday
}

func (Date) absoluteTime()     {}
func (DateTime) absoluteTime() {}
func (Time) absoluteTime()     {}

func (NamedTime) relativeTime()   {}
func (NextWeekday) relativeTime() {}
func (LastWeekday) relativeTime() {}
func (Directional) relativeTime() {}

func (Date) pointInTime()        {}
func (DateTime) pointInTime()    {}
func (Time) pointInTime()        {}
func (NamedTime) pointInTime()   {}
func (NextWeekday) pointInTime() {}
func (LastWeekday) pointInTime() {}
func (Directional) pointInTime() {}

func (Date) timeExpression()        {}
func (DateTime) timeExpression()    {}
func (Time) timeExpression()        {}
func (NamedTime) timeExpression()   {}
func (NextWeekday) timeExpression() {}
func (LastWeekday) timeExpression() {}
func (Directional) timeExpression() {}
func (Duration) timeExpression()    {}
func (TimeRange) timeExpression()   {}

func (Hour24) hour() {}
func (Hour12) hour() {}

func (Ago) timeDirection()            {}
func (FromNow) timeDirection()        {}
func (AfterAbsolute) timeDirection()  {}
func (BeforeAbsolute) timeDirection() {}
func (AfterNamed) timeDirection()     {}
func (BeforeNamed) timeDirection()    {}
func (AfterNext) timeDirection()      {}
func (BeforeNext) timeDirection()     {}
func (AfterLast) timeDirection()      {}
func (BeforeLast) timeDirection()     {}

// NewDate validates day against the calendar rules for month and year
// (leap years, 28-31 day months) and returns the Date. An impossible date
// such as 30/2/2023 is an error, never a clamped value.
func NewDate(month Month, day DayOfMonth, year Year) (Date, error) {
	if month < January || month > December {
		return Date{}, fmt.Errorf("month must be between 1 and 12, got %d", int(month))
	}
	if max := DaysIn(month, year); day < 1 || int(day) > max {
		return Date{}, fmt.Errorf("day must be between 1 and %d for %s %d, got %d", max, month, year, day)
	}
	return Date{Month: month, Day: day, Year: year}, nil
}

// NewHour24 returns a 24-hour clock hour, validating 0 <= v <= 23.
func NewHour24(v uint) (Hour24, error) {
	if v > 23 {
		return 0, fmt.Errorf("hour must be between 0 and 23, got %d", v)
	}
	return Hour24(v), nil
}

// NewHour12 returns a 12-hour clock hour, validating 1 <= v <= 12.
func NewHour12(v uint, half AmPm) (Hour12, error) {
	if v < 1 || v > 12 {
		return Hour12{}, fmt.Errorf("hour must be between 1 and 12, got %d", v)
	}
	return Hour12{Value: uint8(v), AmPm: half}, nil
}

// NewMinute returns a minute of the hour, validating 0 <= v <= 59.
func NewMinute(v uint) (Minute, error) {
	if v > 59 {
		return 0, fmt.Errorf("minute must be between 0 and 59, got %d", v)
	}
	return Minute(v), nil
}

// DaysIn reports the number of days in the given month and year, using
// proleptic Gregorian leap year rules.
func DaysIn(month Month, year Year) int {
	switch month {
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year Year) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Add returns the component-wise sum of two durations.
func (d Duration) Add(o Duration) Duration {
	return Duration{
		Years:   d.Years + o.Years,
		Months:  d.Months + o.Months,
		Weeks:   d.Weeks + o.Weeks,
		Days:    d.Days + o.Days,
		Hours:   d.Hours + o.Hours,
		Minutes: d.Minutes + o.Minutes,
	}
}

// IsZero reports whether every component of the duration is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Compare orders two dates chronologically, returning -1, 0, or +1.
func (d Date) Compare(o Date) int {
	if c := cmpInt(int(d.Year), int(o.Year)); c != 0 {
		return c
	}
	if c := cmpInt(int(d.Month), int(o.Month)); c != 0 {
		return c
	}
	return cmpInt(int(d.Day), int(o.Day))
}

// Compare orders two times of day chronologically, returning -1, 0, or +1.
// A 12-hour reading is compared by its position on the 24-hour clock
// (midnight is 12 AM), without altering either value.
func (t Time) Compare(o Time) int {
	if c := cmpInt(clockHour(t.Hour), clockHour(o.Hour)); c != 0 {
		return c
	}
	return cmpInt(int(t.Minute), int(o.Minute))
}

// Compare orders two date-times chronologically, returning -1, 0, or +1.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.Date.Compare(o.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(o.Time)
}

// clockHour maps either hour form onto 0..23 for comparison only.
func clockHour(h Hour) int {
	switch h := h.(type) {
	case Hour24:
		return int(h)
	case Hour12:
		v := int(h.Value) % 12
		if h.AmPm == PM {
			v += 12
		}
		return v
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
