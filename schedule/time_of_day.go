package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with no date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// "11 am", "11:30 pm", "9:5 am", "9 PM"
var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{1,2}))?\s+([aApP][mM])$`)

// NewTimeOfDay builds a TimeOfDay from 24-hour components.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// TimeOfDayOf returns the wall-clock part of t, seconds included.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseClock parses a 12-hour clock value such as "11 am" or "10:30 pm".
func ParseClock(s string) (TimeOfDay, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, _ := strconv.Atoi(m[1])
	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: hour out of range in %q", ErrMalformedTime, s)
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
		if minute > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: minute out of range in %q", ErrMalformedTime, s)
		}
	}

	hour %= 12
	if strings.EqualFold(m[3], "pm") {
		hour += 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after u.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	a, b := t.seconds(), u.seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (t TimeOfDay) After(u TimeOfDay) bool { return t.Compare(u) > 0 }

// String formats t as HH:MM, or HH:MM:SS when seconds are set.
func (t TimeOfDay) String() string {
	if t.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(data []byte) error {
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err := time.Parse(layout, string(data))
		if err == nil {
			*t = TimeOfDayOf(parsed)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrMalformedTime, data)
}
