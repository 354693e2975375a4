package wire

import (
	"fmt"
	"time"
)

// None is the literal the bridge sends in place of an absent value.
const None = "none"

const (
	// DateTimeLayout is the bridge's timestamp format, no zone or fraction.
	DateTimeLayout = "2006-01-02T15:04:05"
	// ClockLayout is a time of day such as "T07:30:00".
	ClockLayout = "T15:04:05"
)

// ParseDateTime parses a bridge timestamp. Timestamps carry no zone and are
// returned in UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a %s timestamp", ErrInvalidFormat, s, DateTimeLayout)
	}
	return t, nil
}

// ParseOptionalDateTime returns nil for the sentinel and fails for any other
// string that is not a timestamp.
func ParseOptionalDateTime(s string) (*time.Time, error) {
	if s == None {
		return nil, nil
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseClock parses a time of day such as "T14:00:00". The date part of the
// result is zero.
func ParseClock(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ClockLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a %s time", ErrInvalidFormat, s, ClockLayout)
	}
	return t, nil
}

func ParseOptionalClock(s string) (*time.Time, error) {
	if s == None {
		return nil, nil
	}
	t, err := ParseClock(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ParseOptionalString(s string) *string {
	if s == None {
		return nil
	}
	return &s
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
