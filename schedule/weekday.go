package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Weekday is a day of the week with Monday=0 … Sunday=6.
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

// DaysPerWeek is the number of weekday buckets in a WeeklySchedule.
const DaysPerWeek = 7

var dayAbbreviations = map[string]Weekday{
	"mon": Monday,
	"tue": Tuesday,
	"wed": Wednesday,
	"thu": Thursday,
	"fri": Friday,
	"sat": Saturday,
	"sun": Sunday,
}

var dayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// LookupWeekday resolves a three-letter day abbreviation, ignoring case and
// surrounding whitespace.
func LookupWeekday(abbr string) (Weekday, bool) {
	d, ok := dayAbbreviations[strings.ToLower(strings.TrimSpace(abbr))]
	return d, ok
}

// WeekdayOf returns the Monday-first weekday of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysPerWeek)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return dayNames[d]
}
