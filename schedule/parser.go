// Package schedule parses free-form weekly opening-hours strings such as
// "Mon, Wed-Sun 11 am - 10 pm / Tue 10:30 am - 10:30 pm" and answers whether
// a schedule is open at a given moment.
package schedule

import (
	"strings"
	"unicode"
)

const (
	clauseSeparator   = "/"
	daySeparator      = ","
	rangeSeparator    = "-"
	intervalSeparator = "-"
)

// Parser turns schedule strings into WeeklySchedules. The zero value expands
// day ranges forward only, so "Sat-Mon" yields no days.
type Parser struct {
	// WrapDayRanges lets a range such as "Sat-Mon" wrap past Sunday.
	WrapDayRanges bool
}

var defaultParser = Parser{}

// ParseSchedule parses raw with the default Parser.
func ParseSchedule(raw string) (*WeeklySchedule, error) {
	return defaultParser.Parse(raw)
}

// Parse converts raw into a WeeklySchedule. Clauses are applied left to
// right, so a later clause overwrites an earlier one on a shared day.
func (p Parser) Parse(raw string) (*WeeklySchedule, error) {
	ws := &WeeklySchedule{}
	for _, clause := range strings.Split(raw, clauseSeparator) {
		clause = strings.TrimSpace(clause)

		split := strings.IndexFunc(clause, unicode.IsDigit)
		if split < 0 {
			return nil, &ParseError{Kind: ErrMalformedSchedule, Clause: clause}
		}

		days, err := p.parseDays(clause, clause[:split])
		if err != nil {
			return nil, err
		}
		iv, err := parseInterval(clause, clause[split:])
		if err != nil {
			return nil, err
		}
		for _, d := range days {
			ws.set(d, iv)
		}
	}
	return ws, nil
}

func (p Parser) parseDays(clause, part string) ([]Weekday, error) {
	var days []Weekday
	for _, token := range strings.Split(strings.TrimSpace(part), daySeparator) {
		if !strings.Contains(token, rangeSeparator) {
			d, ok := LookupWeekday(token)
			if !ok {
				return nil, &ParseError{Kind: ErrUnknownDay, Clause: clause, Token: strings.TrimSpace(token)}
			}
			days = append(days, d)
			continue
		}

		bounds := strings.Split(token, rangeSeparator)
		if len(bounds) != 2 {
			return nil, &ParseError{Kind: ErrUnknownDay, Clause: clause, Token: strings.TrimSpace(token)}
		}
		from, ok := LookupWeekday(bounds[0])
		if !ok {
			return nil, &ParseError{Kind: ErrUnknownDay, Clause: clause, Token: strings.TrimSpace(bounds[0])}
		}
		to, ok := LookupWeekday(bounds[1])
		if !ok {
			return nil, &ParseError{Kind: ErrUnknownDay, Clause: clause, Token: strings.TrimSpace(bounds[1])}
		}
		days = append(days, p.expandRange(from, to)...)
	}
	return days, nil
}

// expandRange walks from..to inclusive. Without WrapDayRanges a backwards
// range is empty.
func (p Parser) expandRange(from, to Weekday) []Weekday {
	if to < from {
		if !p.WrapDayRanges {
			return nil
		}
		to += DaysPerWeek
	}
	out := make([]Weekday, 0, int(to-from)+1)
	for d := from; d <= to; d++ {
		out = append(out, d%DaysPerWeek)
	}
	return out
}

func parseInterval(clause, part string) (Interval, error) {
	bounds := strings.Split(strings.TrimSpace(part), intervalSeparator)
	if len(bounds) != 2 {
		return Interval{}, &ParseError{Kind: ErrMalformedTime, Clause: clause, Token: strings.TrimSpace(part)}
	}
	start, err := ParseClock(bounds[0])
	if err != nil {
		return Interval{}, &ParseError{Kind: ErrMalformedTime, Clause: clause, Token: strings.TrimSpace(bounds[0])}
	}
	end, err := ParseClock(bounds[1])
	if err != nil {
		return Interval{}, &ParseError{Kind: ErrMalformedTime, Clause: clause, Token: strings.TrimSpace(bounds[1])}
	}
	return Interval{Start: start, End: end}, nil
}
