package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical string layout of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components.
// It rejects combinations that are not real calendar dates, such as 2023-02-29.
func NewDate(year, month, day int) (Date, error) {
	if !ValidDate(year, month, day) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidArgument, year, month, day)
	}
	return Date{t: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}, nil
}

// ParseDate parses a canonical date string, a date-time string or a unix stamp.
// Any time of day is truncated. A date-time with a UTC offset keeps its own calendar day.
func ParseDate(s string) (Date, error) {
	t, err := parse(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: truncate(t)}, nil
}

// FromTime converts t to a Date in UTC.
func FromTime(t time.Time) Date {
	return Date{t: truncate(t.UTC())}
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() int {
	return int(d.t.Month())
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Stamp() int64 {
	return d.t.Unix()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

var layouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	DateLayout,
	"2006-1-2",
}

// parse returns the wall clock of s in its own offset, UTC for unix stamps.
func parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidArgument)
	}

	if stamp, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(stamp, 0).UTC(), nil
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() < 1 || t.Year() > 9999 {
			break
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidArgument, s)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
