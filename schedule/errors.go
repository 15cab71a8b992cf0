package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSchedule is returned when a slot clause has no time component.
	ErrMalformedSchedule = errors.New("malformed schedule")
	// ErrUnknownDay is returned when a day token is not a recognised abbreviation.
	ErrUnknownDay = errors.New("unknown day")
	// ErrMalformedTime is returned when a time token matches neither 12-hour format.
	ErrMalformedTime = errors.New("malformed time")
)

// ParseError describes where in a schedule string parsing failed.
type ParseError struct {
	Kind   error
	Clause string
	Token  string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v in clause %q", e.Kind, e.Clause)
	}
	return fmt.Sprintf("%v %q in clause %q", e.Kind, e.Token, e.Clause)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
