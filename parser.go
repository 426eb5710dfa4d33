package timelang

import (
	"fmt"
	"strconv"
	"strings"
)

// parser consumes a token stream with single-token lookahead. Every
// grammar rule is a method that either consumes the tokens it matched or,
// on failure, leaves the position where it found it (callers snapshot with
// mark and rewind with reset around each ordered-choice alternative), so
// a failed alternative never steals input from its siblings.
type parser struct {
	input  string
	tokens []token
	pos    int
}

func newParser(input string) (*parser, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	return &parser{input: input, tokens: tokens}, nil
}

func (p *parser) peek() token { return p.peekAt(0) }

func (p *parser) peekAt(n int) token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) advance() token {
	t := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) mark() int   { return p.pos }
func (p *parser) reset(m int) { p.pos = m }

func (p *parser) fail(tok token, want string) *SyntaxError {
	return &SyntaxError{Input: p.input, Pos: tok.pos, Want: want}
}

// keyword consumes the next token if it is the given word,
// case-insensitively.
func (p *parser) keyword(kw string) bool {
	if tok := p.peek(); tok.typ == tokWord && strings.EqualFold(tok.lit, kw) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) punct(typ tokenType, want string) error {
	if tok := p.peek(); tok.typ != typ {
		return p.fail(tok, want)
	}
	p.advance()
	return nil
}

// atEOF returns nil when all input has been consumed.
func (p *parser) atEOF() error {
	if tok := p.peek(); tok.typ != tokEOF {
		return p.fail(tok, "end of input")
	}
	return nil
}

// parseNumber: one or more ASCII digits, base 10, no sign or decimal point.
func (p *parser) parseNumber() (Number, error) {
	tok := p.peek()
	if tok.typ != tokNumber {
		return 0, p.fail(tok, "a number")
	}
	v, err := strconv.ParseUint(tok.lit, 10, 64)
	if err != nil {
		return 0, p.fail(tok, "a number small enough to fit in 64 bits")
	}
	p.advance()
	return Number(v), nil
}

// parseUint consumes a number token whose value lies in [min, max],
// failing with the given description otherwise.
func (p *parser) parseUint(want string, min, max uint64) (uint64, token, error) {
	tok := p.peek()
	if tok.typ != tokNumber {
		return 0, tok, p.fail(tok, want)
	}
	v, err := strconv.ParseUint(tok.lit, 10, 64)
	if err != nil || v < min || v > max {
		return 0, tok, p.fail(tok, want)
	}
	p.advance()
	return v, tok, nil
}

var monthNames = map[string]Month{
	"january":   January,
	"february":  February,
	"march":     March,
	"april":     April,
	"may":       May,
	"june":      June,
	"july":      July,
	"august":    August,
	"september": September,
	"october":   October,
	"november":  November,
	"december":  December,
}

// parseMonthName: a full English month name, case-insensitive. Numeric
// months are only accepted inside slash-separated dates.
func (p *parser) parseMonthName() (Month, error) {
	tok := p.peek()
	if tok.typ == tokWord {
		if m, ok := monthNames[strings.ToLower(tok.lit)]; ok {
			p.advance()
			return m, nil
		}
	}
	return 0, p.fail(tok, "a month name (January through December)")
}

var weekdayNames = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// parseWeekday: a full English weekday name, case-insensitive.
func (p *parser) parseWeekday() (Weekday, error) {
	tok := p.peek()
	if tok.typ == tokWord {
		if wd, ok := weekdayNames[strings.ToLower(tok.lit)]; ok {
			p.advance()
			return wd, nil
		}
	}
	return 0, p.fail(tok, "a weekday (Monday through Sunday)")
}

// tryAmPm consumes a trailing AM/PM marker if present.
func (p *parser) tryAmPm() (AmPm, bool) {
	tok := p.peek()
	if tok.typ != tokWord {
		return 0, false
	}
	switch strings.ToLower(tok.lit) {
	case "am":
		p.advance()
		return AM, true
	case "pm":
		p.advance()
		return PM, true
	}
	return 0, false
}

func (p *parser) parseAmPm() (AmPm, error) {
	tok := p.peek()
	if half, ok := p.tryAmPm(); ok {
		return half, nil
	}
	return 0, p.fail(tok, `"AM" or "PM"`)
}

// parseHour: a bare hour, 12-hour when an AM/PM marker follows
// ("11 AM"), 24-hour otherwise ("14"). The two forms are exclusive: the
// marker's presence decides which range applies.
func (p *parser) parseHour() (Hour, error) {
	tok := p.peek()
	if tok.typ != tokNumber {
		return nil, p.fail(tok, "an hour")
	}
	v, err := strconv.ParseUint(tok.lit, 10, 64)
	if err != nil {
		return nil, p.fail(tok, "an hour")
	}
	p.advance()
	if half, ok := p.tryAmPm(); ok {
		h, err := NewHour12(uint(v), half)
		if err != nil {
			return nil, p.fail(tok, "an hour between 1 and 12 when AM/PM is given")
		}
		return h, nil
	}
	h, err := NewHour24(uint(v))
	if err != nil {
		return nil, p.fail(tok, "an hour between 0 and 23")
	}
	return h, nil
}

// parseDate: D/M/Y, day first. The day is validated against the calendar
// rules for the given month and year; an impossible day fails at the day's
// offset just like any other mismatch.
func (p *parser) parseDate() (Date, error) {
	day, dayTok, err := p.parseUint("a day between 1 and 31", 1, 31)
	if err != nil {
		return Date{}, err
	}
	if err := p.punct(tokSlash, `"/"`); err != nil {
		return Date{}, err
	}
	month, _, err := p.parseUint("a month between 1 and 12", 1, 12)
	if err != nil {
		return Date{}, err
	}
	if err := p.punct(tokSlash, `"/"`); err != nil {
		return Date{}, err
	}
	year, _, err := p.parseUint("a year between 0 and 65535", 0, 65535)
	if err != nil {
		return Date{}, err
	}
	date, err := NewDate(Month(month), DayOfMonth(day), Year(year))
	if err != nil {
		want := fmt.Sprintf("a day between 1 and %d for %s %d",
			DaysIn(Month(month), Year(year)), Month(month), year)
		return Date{}, p.fail(dayTok, want)
	}
	return date, nil
}

// parseTime: H:MM with a two-digit minute, optionally followed by AM/PM.
// Without the marker the hour is read on the 24-hour clock (0..23); with
// it, on the 12-hour clock (1..12).
func (p *parser) parseTime() (Time, error) {
	hourTok := p.peek()
	if hourTok.typ != tokNumber {
		return Time{}, p.fail(hourTok, "a time of day")
	}
	hv, err := strconv.ParseUint(hourTok.lit, 10, 64)
	if err != nil {
		return Time{}, p.fail(hourTok, "an hour")
	}
	p.advance()
	if err := p.punct(tokColon, `":"`); err != nil {
		return Time{}, err
	}
	minTok := p.peek()
	if minTok.typ != tokNumber || len(minTok.lit) != 2 {
		return Time{}, p.fail(minTok, "a two-digit minute")
	}
	mv, _ := strconv.ParseUint(minTok.lit, 10, 64)
	if mv > 59 {
		return Time{}, p.fail(minTok, "a minute between 0 and 59")
	}
	p.advance()
	if half, ok := p.tryAmPm(); ok {
		h, err := NewHour12(uint(hv), half)
		if err != nil {
			return Time{}, p.fail(hourTok, "an hour between 1 and 12 when AM/PM is given")
		}
		return Time{Hour: h, Minute: Minute(mv)}, nil
	}
	h, err := NewHour24(uint(hv))
	if err != nil {
		return Time{}, p.fail(hourTok, "an hour between 0 and 23")
	}
	return Time{Hour: h, Minute: Minute(mv)}, nil
}

// parseDateTime: a Date joined to a Time, with an optional "at" between
// them ("15/6/2022 at 3:58 PM", "1/1/2019 20:15").
func (p *parser) parseDateTime() (DateTime, error) {
	date, err := p.parseDate()
	if err != nil {
		return DateTime{}, err
	}
	p.keyword("at")
	t, err := p.parseTime()
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: date, Time: t}, nil
}

// parseAbsoluteTime: a DateTime, a Date, or a bare Time, longest
// structural match first. A date that is followed by something
// time-shaped extends into a DateTime; otherwise it stands alone.
func (p *parser) parseAbsoluteTime() (AbsoluteTime, error) {
	tok := p.peek()
	if tok.typ != tokNumber {
		return nil, p.fail(tok, "a date or time")
	}
	if p.peekAt(1).typ == tokColon {
		return p.parseTime()
	}
	date, err := p.parseDate()
	if err != nil {
		return nil, err
	}
	m := p.mark()
	p.keyword("at")
	if t, err := p.parseTime(); err == nil {
		return DateTime{Date: date, Time: t}, nil
	}
	p.reset(m)
	return date, nil
}

type timeUnit int

const (
	unitMinutes timeUnit = iota
	unitHours
	unitDays
	unitWeeks
	unitMonths
	unitYears
	numTimeUnits
)

var unitKeywords = map[string]timeUnit{
	"minute": unitMinutes, "minutes": unitMinutes, "min": unitMinutes, "mins": unitMinutes,
	"hour": unitHours, "hours": unitHours, "hr": unitHours, "hrs": unitHours,
	"day": unitDays, "days": unitDays,
	"week": unitWeeks, "weeks": unitWeeks,
	"month": unitMonths, "months": unitMonths,
	"year": unitYears, "years": unitYears, "yr": unitYears,
}

var unitPlural = [numTimeUnits]string{"minutes", "hours", "days", "weeks", "months", "years"}

func lookupUnit(word string) (timeUnit, bool) {
	u, ok := unitKeywords[strings.ToLower(word)]
	return u, ok
}

// parseDuration: one or more <number> <unit> pairs joined by ",", "and",
// ", and", or plain whitespace. Singular and plural unit keywords are both
// accepted regardless of magnitude. Each unit may appear at most once; the
// order of pairs does not matter. A trailing connective is only consumed
// when another pair follows it.
func (p *parser) parseDuration() (Duration, error) {
	var d Duration
	var seen [numTimeUnits]bool
	start := p.peek()
	pairs := 0
	for p.peek().typ == tokNumber {
		num, err := p.parseNumber()
		if err != nil {
			return Duration{}, err
		}
		unitTok := p.peek()
		var unit timeUnit
		ok := unitTok.typ == tokWord
		if ok {
			unit, ok = lookupUnit(unitTok.lit)
		}
		if !ok {
			return Duration{}, p.fail(unitTok, "a time unit (minutes, hours, days, weeks, months, or years)")
		}
		if seen[unit] {
			return Duration{}, p.fail(unitTok, fmt.Sprintf("each time unit at most once (%s given twice)", unitPlural[unit]))
		}
		seen[unit] = true
		p.advance()
		switch unit {
		case unitMinutes:
			d.Minutes = num
		case unitHours:
			d.Hours = num
		case unitDays:
			d.Days = num
		case unitWeeks:
			d.Weeks = num
		case unitMonths:
			d.Months = num
		case unitYears:
			d.Years = num
		}
		pairs++

		// A connective belongs to the duration only when another pair
		// directly follows it.
		m := p.mark()
		if p.peek().typ == tokComma {
			p.advance()
		}
		p.keyword("and")
		next, after := p.peek(), p.peekAt(1)
		if next.typ == tokNumber && after.typ == tokWord {
			if _, ok := lookupUnit(after.lit); ok {
				continue
			}
		}
		p.reset(m)
		break
	}
	if pairs == 0 {
		return Duration{}, p.fail(start, "a number followed by a time unit")
	}
	return d, nil
}

// parseNamedTime: the fixed idiom set, longest match, with an optional
// leading "the" on the multi-word idioms.
func (p *parser) parseNamedTime() (NamedTime, error) {
	start := p.peek()
	if start.typ != tokWord {
		return 0, p.fail(start, "a named time such as now, today, tomorrow, or yesterday")
	}
	m := p.mark()
	w1 := strings.ToLower(p.advance().lit)
	switch w1 {
	case "now":
		return Now, nil
	case "today":
		return Today, nil
	case "tomorrow":
		return Tomorrow, nil
	case "yesterday":
		return Yesterday, nil
	}
	if w1 == "the" && p.peek().typ == tokWord {
		w1 = strings.ToLower(p.advance().lit)
	}
	if w1 != "day" {
		p.reset(m)
		return 0, p.fail(start, "one of now, today, tomorrow, yesterday, the, or day")
	}
	sense := p.peek()
	switch {
	case p.keyword("after"):
		if ref := p.peek(); !p.keyword("tomorrow") {
			p.reset(m)
			return 0, p.fail(ref, `"tomorrow"`)
		}
		return DayAfterTomorrow, nil
	case p.keyword("before"):
		if ref := p.peek(); !p.keyword("yesterday") {
			p.reset(m)
			return 0, p.fail(ref, `"yesterday"`)
		}
		return DayBeforeYesterday, nil
	}
	p.reset(m)
	return 0, p.fail(sense, `"after" or "before"`)
}

// parseTimeDirection: "ago", "from now", or "after"/"before" followed by
// an anchor (an absolute time, a named time, or a next/last weekday).
func (p *parser) parseTimeDirection() (TimeDirection, error) {
	tok := p.peek()
	if tok.typ != tokWord {
		return nil, p.fail(tok, `"ago", "from now", "after", or "before"`)
	}
	switch strings.ToLower(tok.lit) {
	case "ago":
		p.advance()
		return Ago{}, nil
	case "from":
		p.advance()
		if now := p.peek(); !p.keyword("now") {
			return nil, p.fail(now, `"now"`)
		}
		return FromNow{}, nil
	case "after":
		p.advance()
		return p.parseAnchor(true)
	case "before":
		p.advance()
		return p.parseAnchor(false)
	}
	return nil, p.fail(tok, `"ago", "from now", "after", or "before"`)
}

// parseAnchor parses the reference point of an "after"/"before" direction.
func (p *parser) parseAnchor(after bool) (TimeDirection, error) {
	tok := p.peek()
	switch {
	case tok.typ == tokNumber:
		abs, err := p.parseAbsoluteTime()
		if err != nil {
			return nil, err
		}
		if after {
			return AfterAbsolute{Anchor: abs}, nil
		}
		return BeforeAbsolute{Anchor: abs}, nil
	case p.keyword("next"):
		wd, err := p.parseWeekday()
		if err != nil {
			return nil, err
		}
		if after {
			return AfterNext{Weekday: wd}, nil
		}
		return BeforeNext{Weekday: wd}, nil
	case p.keyword("last"):
		wd, err := p.parseWeekday()
		if err != nil {
			return nil, err
		}
		if after {
			return AfterLast{Weekday: wd}, nil
		}
		return BeforeLast{Weekday: wd}, nil
	default:
		named, err := p.parseNamedTime()
		if err != nil {
			return nil, err
		}
		if after {
			return AfterNamed{Anchor: named}, nil
		}
		return BeforeNamed{Anchor: named}, nil
	}
}

// parseRelativeTime tries, in strict priority order: a named idiom, a
// next/last weekday, then a duration with a direction. The named idiom
// comes first so that "now" is never read as the start of a duration form.
func (p *parser) parseRelativeTime() (RelativeTime, error) {
	tok := p.peek()
	if tok.typ == tokWord {
		switch strings.ToLower(tok.lit) {
		case "next":
			p.advance()
			wd, err := p.parseWeekday()
			if err != nil {
				return nil, err
			}
			return NextWeekday{Weekday: wd}, nil
		case "last":
			p.advance()
			wd, err := p.parseWeekday()
			if err != nil {
				return nil, err
			}
			return LastWeekday{Weekday: wd}, nil
		case "now", "today", "tomorrow", "yesterday", "day", "the":
			named, err := p.parseNamedTime()
			if err != nil {
				return nil, err
			}
			return named, nil
		default:
			return nil, p.fail(tok, "a named time, next/last and a weekday, or a duration with a direction")
		}
	}
	dur, err := p.parseDuration()
	if err != nil {
		return nil, err
	}
	dir, err := p.parseTimeDirection()
	if err != nil {
		return nil, err
	}
	return Directional{Duration: dur, Dir: dir}, nil
}

// parsePointInTime: absolute when the input leads with a number shaped
// like a date or time (number then "/" or ":"), relative otherwise. A
// leading number with neither separator can only start a directional
// relative form ("3 days ago").
func (p *parser) parsePointInTime() (PointInTime, error) {
	if p.peek().typ == tokNumber {
		switch p.peekAt(1).typ {
		case tokSlash, tokColon:
			return p.parseAbsoluteTime()
		}
	}
	return p.parseRelativeTime()
}

// parseTimeRange: "from" PointInTime "to" PointInTime. Whether the start
// precedes the end is not checked here.
func (p *parser) parseTimeRange() (TimeRange, error) {
	if tok := p.peek(); !p.keyword("from") {
		return TimeRange{}, p.fail(tok, `"from"`)
	}
	start, err := p.parsePointInTime()
	if err != nil {
		return TimeRange{}, err
	}
	if tok := p.peek(); !p.keyword("to") {
		return TimeRange{}, p.fail(tok, `"to"`)
	}
	end, err := p.parsePointInTime()
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// parseTimeExpression tries, in priority order: a range, a bare duration,
// a point in time. A duration followed by a directional connective is not
// a bare duration — "2 hours after now" must reach the directional
// grammar intact, so the duration alternative steps aside whenever
// "ago", "from now", "after", or "before" follows.
func (p *parser) parseTimeExpression() (TimeExpression, error) {
	if tok := p.peek(); tok.typ == tokWord && strings.EqualFold(tok.lit, "from") {
		return p.parseTimeRange()
	}
	m := p.mark()
	if d, err := p.parseDuration(); err == nil {
		if !p.directionFollows() {
			return d, nil
		}
		p.reset(m)
	} else {
		p.reset(m)
	}
	return p.parsePointInTime()
}

// directionFollows reports whether the next token opens a TimeDirection.
func (p *parser) directionFollows() bool {
	tok := p.peek()
	if tok.typ != tokWord {
		return false
	}
	switch strings.ToLower(tok.lit) {
	case "ago", "from", "after", "before":
		return true
	}
	return false
}
