package timelang

import (
	"fmt"
	"strconv"
	"strings"
)

// Every AST node renders to exactly one canonical textual form, and that
// form parses back to the identical node. Formatting does not try to
// reproduce the text a node was parsed from: "1 hr and 5 min" comes back
// as "1 hour and 5 minutes".

func (n Number) String() string { return strconv.FormatUint(uint64(n), 10) }

func (y Year) String() string { return strconv.Itoa(int(y)) }

var longMonthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return longMonthNames[m-1]
}

func (d DayOfMonth) String() string { return strconv.Itoa(int(d)) }

func (m Minute) String() string { return fmt.Sprintf("%02d", int(m)) }

func (ap AmPm) String() string {
	if ap == PM {
		return "PM"
	}
	return "AM"
}

var longWeekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "%!Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return longWeekdayNames[w]
}

func (n NamedTime) String() string {
	switch n {
	case Now:
		return "now"
	case Today:
		return "today"
	case Tomorrow:
		return "tomorrow"
	case Yesterday:
		return "yesterday"
	case DayAfterTomorrow:
		return "the day after tomorrow"
	case DayBeforeYesterday:
		return "the day before yesterday"
	}
	return "%!NamedTime(" + strconv.Itoa(int(n)) + ")"
}

func (h Hour24) String() string { return strconv.Itoa(int(h)) }

func (h Hour12) String() string {
	return strconv.Itoa(int(h.Value)) + " " + h.AmPm.String()
}

// String renders a date numerically, day first: "20/4/2021". The month
// name form is only used when a Month is rendered on its own.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", int(d.Day), int(d.Month), int(d.Year))
}

// String preserves the parsed clock form: "14:07" for a 24-hour reading,
// "9:27 AM" for a 12-hour one. Minutes are always two digits.
func (t Time) String() string {
	switch h := t.Hour.(type) {
	case Hour12:
		return fmt.Sprintf("%d:%02d %s", int(h.Value), int(t.Minute), h.AmPm)
	case Hour24:
		return fmt.Sprintf("%d:%02d", int(h), int(t.Minute))
	}
	return fmt.Sprintf("?:%02d", int(t.Minute))
}

// String always joins the parts with "at", even though parsing accepts
// its absence.
func (dt DateTime) String() string {
	return dt.Date.String() + " at " + dt.Time.String()
}

// String renders the nonzero units from largest to smallest, singular at
// magnitude one, with "and" before the final unit: "1 year, 2 weeks and
// 3 days". The zero duration renders as "0 minutes" so that it survives a
// format/parse round trip.
func (d Duration) String() string {
	var parts []string
	add := func(n Number, singular string) {
		if n == 0 {
			return
		}
		if n == 1 {
			parts = append(parts, "1 "+singular)
			return
		}
		parts = append(parts, n.String()+" "+singular+"s")
	}
	add(d.Years, "year")
	add(d.Months, "month")
	add(d.Weeks, "week")
	add(d.Days, "day")
	add(d.Hours, "hour")
	add(d.Minutes, "minute")
	switch len(parts) {
	case 0:
		return "0 minutes"
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func (nw NextWeekday) String() string { return "next " + nw.Weekday.String() }

func (lw LastWeekday) String() string { return "last " + lw.Weekday.String() }

func (d Directional) String() string {
	return d.Duration.String() + " " + d.Dir.String()
}

func (r TimeRange) String() string {
	return "from " + r.Start.String() + " to " + r.End.String()
}

func (Ago) String() string { return "ago" }

func (FromNow) String() string { return "from now" }

func (d AfterAbsolute) String() string { return "after " + d.Anchor.String() }

func (d BeforeAbsolute) String() string { return "before " + d.Anchor.String() }

func (d AfterNamed) String() string { return "after " + d.Anchor.String() }

func (d BeforeNamed) String() string { return "before " + d.Anchor.String() }

func (d AfterNext) String() string { return "after next " + d.Weekday.String() }

func (d BeforeNext) String() string { return "before next " + d.Weekday.String() }

func (d AfterLast) String() string { return "after last " + d.Weekday.String() }

func (d BeforeLast) String() string { return "before last " + d.Weekday.String() }
