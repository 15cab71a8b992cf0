package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Interval is an opening window: open from Start, closes at End. An End
// earlier than Start means the window runs past midnight.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// CrossesMidnight reports whether the interval ends on the following day.
func (iv Interval) CrossesMidnight() bool {
	return iv.Start.After(iv.End)
}

// Contains reports whether t falls inside the interval, both ends inclusive.
// For a midnight-crossing interval t matches either the evening part
// (t >= Start) or the early-morning tail (t <= End).
func (iv Interval) Contains(t TimeOfDay) bool {
	if !iv.CrossesMidnight() {
		return iv.Start.Compare(t) <= 0 && t.Compare(iv.End) <= 0
	}
	return t.Compare(iv.Start) >= 0 || t.Compare(iv.End) <= 0
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// WeeklySchedule holds at most one Interval per weekday. It is read-only
// once returned from the parser.
type WeeklySchedule struct {
	days [DaysPerWeek]*Interval
}

func (s *WeeklySchedule) set(d Weekday, iv Interval) {
	s.days[d] = &iv
}

// Get returns the interval scheduled for d, if any.
func (s *WeeklySchedule) Get(d Weekday) (Interval, bool) {
	if s == nil || !d.Valid() || s.days[d] == nil {
		return Interval{}, false
	}
	return *s.days[d], true
}

// Days lists the scheduled weekdays in Monday-first order.
func (s *WeeklySchedule) Days() []Weekday {
	var out []Weekday
	if s == nil {
		return out
	}
	for d, iv := range s.days {
		if iv != nil {
			out = append(out, Weekday(d))
		}
	}
	return out
}

// Len is the number of scheduled weekdays.
func (s *WeeklySchedule) Len() int {
	return len(s.Days())
}

func (s *WeeklySchedule) String() string {
	parts := make([]string, 0, DaysPerWeek)
	for _, d := range s.Days() {
		iv, _ := s.Get(d)
		parts = append(parts, fmt.Sprintf("%s %s", d, iv))
	}
	return strings.Join(parts, " / ")
}

// MarshalJSON encodes the schedule as an object keyed by day abbreviation.
func (s *WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]Interval, DaysPerWeek)
	for _, d := range s.Days() {
		iv, _ := s.Get(d)
		out[d.String()] = iv
	}
	return json.Marshal(out)
}

func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var in map[string]Interval
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = WeeklySchedule{}
	for name, iv := range in {
		d, ok := LookupWeekday(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDay, name)
		}
		s.set(d, iv)
	}
	return nil
}
