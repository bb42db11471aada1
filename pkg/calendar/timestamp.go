package calendar

import (
	"fmt"
	"time"
)

// TimestampLayout is the canonical string layout of a Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a Date with a time of day, in UTC and whole seconds.
type Timestamp struct {
	t time.Time
}

// NewTimestamp builds a Timestamp from its components.
func NewTimestamp(year, month, day, hour, minute, second int) (Timestamp, error) {
	if !ValidDate(year, month, day) {
		return Timestamp{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidArgument, year, month, day)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Timestamp{}, fmt.Errorf("%w: %02d:%02d:%02d is not a time of day", ErrInvalidArgument, hour, minute, second)
	}
	return Timestamp{t: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)}, nil
}

// ParseTimestamp parses a date-time string, a date string (midnight) or a unix stamp.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := parse(s)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t: t.UTC().Truncate(time.Second)}, nil
}

// TimestampFromTime converts t to a Timestamp in UTC.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{t: t.UTC().Truncate(time.Second)}
}

func (ts Timestamp) Year() int {
	return ts.t.Year()
}

func (ts Timestamp) Month() int {
	return int(ts.t.Month())
}

func (ts Timestamp) Day() int {
	return ts.t.Day()
}

func (ts Timestamp) Hour() int {
	return ts.t.Hour()
}

func (ts Timestamp) Minute() int {
	return ts.t.Minute()
}

func (ts Timestamp) Second() int {
	return ts.t.Second()
}

func (ts Timestamp) Stamp() int64 {
	return ts.t.Unix()
}

func (ts Timestamp) Time() time.Time {
	return ts.t
}

func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

func (ts Timestamp) String() string {
	return ts.t.Format(TimestampLayout)
}

// Date drops the time of day.
func (ts Timestamp) Date() Date {
	return Date{t: truncate(ts.t)}
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(b []byte) error {
	v, err := ParseTimestamp(string(b))
	if err != nil {
		return err
	}
	*ts = v
	return nil
}
