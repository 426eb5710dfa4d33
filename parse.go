package timelang

// runParser is the shared shape of every entry point: lex, run one
// grammar rule, and require that the whole input was consumed. Failures
// are always a *SyntaxError positioned in the original input.
func runParser[T any](input string, rule func(*parser) (T, error)) (T, error) {
	var zero T
	p, err := newParser(input)
	if err != nil {
		return zero, err
	}
	v, err := rule(p)
	if err != nil {
		return zero, err
	}
	if err := p.atEOF(); err != nil {
		return zero, err
	}
	return v, nil
}

// ParseTimeExpression parses any expression of the language: a time
// range ("from 1/1/2023 to 15/1/2023"), a bare duration ("2 hours, 30
// minutes"), or a single point in time ("3 days ago", "15/4/2025 at
// 9:27 AM"), tried in that order.
func ParseTimeExpression(input string) (TimeExpression, error) {
	return runParser(input, (*parser).parseTimeExpression)
}

// ParsePointInTime parses a single absolute or relative point in time.
func ParsePointInTime(input string) (PointInTime, error) {
	return runParser(input, (*parser).parsePointInTime)
}

// ParseAbsoluteTime parses a date ("20/4/2021"), a date with a time
// ("15/6/2022 at 3:58 PM"), or a bare time of day ("11:21 AM").
func ParseAbsoluteTime(input string) (AbsoluteTime, error) {
	return runParser(input, (*parser).parseAbsoluteTime)
}

// ParseRelativeTime parses a named idiom ("now", "the day after
// tomorrow"), a next/last weekday ("next tuesday"), or a duration with a
// direction ("2 years and 10 minutes from now").
func ParseRelativeTime(input string) (RelativeTime, error) {
	return runParser(input, (*parser).parseRelativeTime)
}

// ParseDuration parses comma/"and"-joined unit-quantity pairs such as
// "5 years, 2 months, 3 weeks and 11 minutes". Units may appear in any
// order but each at most once; unmentioned units are zero.
func ParseDuration(input string) (Duration, error) {
	return runParser(input, (*parser).parseDuration)
}

// ParseTimeRange parses "from <point> to <point>". The start is not
// required to precede the end.
func ParseTimeRange(input string) (TimeRange, error) {
	return runParser(input, (*parser).parseTimeRange)
}

// ParseDate parses a day-first D/M/Y date such as "20/4/2021", validating
// the day against the month and year.
func ParseDate(input string) (Date, error) {
	return runParser(input, (*parser).parseDate)
}

// ParseTime parses an H:MM time of day, 24-hour ("14:07") or 12-hour
// with a trailing AM/PM ("9:27 AM").
func ParseTime(input string) (Time, error) {
	return runParser(input, (*parser).parseTime)
}

// ParseDateTime parses a date joined to a time, with an optional "at"
// between them.
func ParseDateTime(input string) (DateTime, error) {
	return runParser(input, (*parser).parseDateTime)
}

// ParseHour parses a bare hour: "14" (24-hour) or "2 PM" (12-hour).
func ParseHour(input string) (Hour, error) {
	return runParser(input, (*parser).parseHour)
}

// ParseMinute parses a minute of the hour, 0 through 59.
func ParseMinute(input string) (Minute, error) {
	return runParser(input, func(p *parser) (Minute, error) {
		v, _, err := p.parseUint("a minute between 0 and 59", 0, 59)
		return Minute(v), err
	})
}

// ParseMonth parses a full English month name, case-insensitively.
func ParseMonth(input string) (Month, error) {
	return runParser(input, (*parser).parseMonthName)
}

// ParseDayOfMonth parses a day of the month, 1 through 31.
func ParseDayOfMonth(input string) (DayOfMonth, error) {
	return runParser(input, func(p *parser) (DayOfMonth, error) {
		v, _, err := p.parseUint("a day between 1 and 31", 1, 31)
		return DayOfMonth(v), err
	})
}

// ParseYear parses a year, 0 through 65535.
func ParseYear(input string) (Year, error) {
	return runParser(input, func(p *parser) (Year, error) {
		v, _, err := p.parseUint("a year between 0 and 65535", 0, 65535)
		return Year(v), err
	})
}

// ParseNumber parses a non-negative base-10 integer.
func ParseNumber(input string) (Number, error) {
	return runParser(input, (*parser).parseNumber)
}

// ParseAmPm parses "AM" or "PM", case-insensitively.
func ParseAmPm(input string) (AmPm, error) {
	return runParser(input, (*parser).parseAmPm)
}

// ParseWeekday parses a full English weekday name, case-insensitively.
func ParseWeekday(input string) (Weekday, error) {
	return runParser(input, (*parser).parseWeekday)
}

// ParseNamedTime parses a named idiom such as "now", "tomorrow", or
// "the day before yesterday".
func ParseNamedTime(input string) (NamedTime, error) {
	return runParser(input, (*parser).parseNamedTime)
}
