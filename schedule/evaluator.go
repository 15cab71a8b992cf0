package schedule

import "time"

// IsOpenAt reports whether s is open at when. Only the bucket for when's own
// weekday is consulted: an overnight interval stored under Monday also
// matches Monday's early-morning hours up to its End.
func IsOpenAt(s *WeeklySchedule, when time.Time) bool {
	iv, ok := s.Get(WeekdayOf(when))
	if !ok {
		return false
	}
	return iv.Contains(TimeOfDayOf(when))
}
