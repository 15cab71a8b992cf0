package restaurant

import "fmt"

// Record is one restaurant with its raw weekly schedule string.
type Record struct {
	Name        string `json:"name"`
	RawSchedule string `json:"schedule"`
}

func (r *Record) ToString() string {
	return fmt.Sprintf("Restaurant(name=%s, schedule=%s)", r.Name, r.RawSchedule)
}
