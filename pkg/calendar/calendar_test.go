package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruFelix/hesper/pkg/calendar"
)

func TestValidDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		year, month, day int
		want             bool
	}{
		{"regular day", 2024, 6, 15, true},
		{"leap day in leap year", 2024, 2, 29, true},
		{"leap day in common year", 2023, 2, 29, false},
		{"century not leap", 1900, 2, 29, false},
		{"four hundred leap", 2000, 2, 29, true},
		{"april has 30 days", 2024, 4, 31, false},
		{"month zero", 2024, 0, 10, false},
		{"month thirteen", 2024, 13, 10, false},
		{"day zero", 2024, 1, 0, false},
		{"year zero", 0, 1, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calendar.ValidDate(tc.year, tc.month, tc.day))
		})
	}
}

func TestNewDate(t *testing.T) {
	t.Parallel()

	t.Run("valid components", func(t *testing.T) {
		d, err := calendar.NewDate(2024, 2, 29)
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 2, d.Month())
		assert.Equal(t, 29, d.Day())
		assert.Equal(t, "2024-02-29", d.String())
	})

	t.Run("invalid calendar date", func(t *testing.T) {
		_, err := calendar.NewDate(2023, 2, 29)
		require.Error(t, err)
		assert.ErrorIs(t, err, calendar.ErrInvalidArgument)
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("canonical string round trips", func(t *testing.T) {
		for _, s := range []string{"2020-01-01", "1999-12-31", "2024-02-29"} {
			d, err := calendar.ParseDate(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, d.String())
		}
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		d, err := calendar.ParseDate("2020-06-15 13:45:10")
		require.NoError(t, err)
		assert.Equal(t, "2020-06-15", d.String())
	})

	t.Run("offset keeps the submitted day", func(t *testing.T) {
		for in, want := range map[string]string{
			"2024-03-01T01:00:00+05:00": "2024-03-01",
			"2024-02-29T23:30:00-08:00": "2024-02-29",
			"2024-03-01T00:00:00Z":      "2024-03-01",
		} {
			d, err := calendar.ParseDate(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, d.String(), in)
		}
	})

	t.Run("unpadded components", func(t *testing.T) {
		d, err := calendar.ParseDate("2024-2-9")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-09", d.String())

		_, err = calendar.ParseDate("2023-2-29")
		assert.ErrorIs(t, err, calendar.ErrInvalidArgument)
	})

	t.Run("unix stamp", func(t *testing.T) {
		d, err := calendar.ParseDate("86400")
		require.NoError(t, err)
		assert.Equal(t, "1970-01-02", d.String())
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, s := range []string{"", "   ", "not a date", "2023-02-29", "2024-13-01", "15/06/2020"} {
			_, err := calendar.ParseDate(s)
			assert.ErrorIs(t, err, calendar.ErrInvalidArgument, s)
		}
	})
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	t.Run("components and canonical form", func(t *testing.T) {
		ts, err := calendar.NewTimestamp(2024, 3, 10, 8, 5, 9)
		require.NoError(t, err)
		assert.Equal(t, 8, ts.Hour())
		assert.Equal(t, 5, ts.Minute())
		assert.Equal(t, 9, ts.Second())
		assert.Equal(t, "2024-03-10 08:05:09", ts.String())
		assert.Equal(t, "2024-03-10", ts.Date().String())
	})

	t.Run("rejects invalid time of day", func(t *testing.T) {
		_, err := calendar.NewTimestamp(2024, 3, 10, 24, 0, 0)
		assert.ErrorIs(t, err, calendar.ErrInvalidArgument)

		_, err = calendar.NewTimestamp(2024, 3, 10, 10, 60, 0)
		assert.ErrorIs(t, err, calendar.ErrInvalidArgument)
	})

	t.Run("parse accepts several layouts", func(t *testing.T) {
		for in, want := range map[string]string{
			"2024-03-10 08:05:09":       "2024-03-10 08:05:09",
			"2024-03-10T08:05:09Z":      "2024-03-10 08:05:09",
			"2024-03-10T10:05:09+02:00": "2024-03-10 08:05:09",
			"2024-03-10":                "2024-03-10 00:00:00",
		} {
			ts, err := calendar.ParseTimestamp(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, ts.String(), in)
		}
	})

	t.Run("from time", func(t *testing.T) {
		ts := calendar.TimestampFromTime(time.Date(2021, 5, 6, 7, 8, 9, 500, time.UTC))
		assert.Equal(t, "2021-05-06 07:08:09", ts.String())
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a, _ := calendar.NewDate(2020, 1, 1)
	b, _ := calendar.NewTimestamp(2020, 1, 1, 0, 0, 1)
	c, _ := calendar.NewDate(2020, 1, 1)

	assert.Equal(t, -1, calendar.Compare(a, b))
	assert.Equal(t, 1, calendar.Compare(b, a))
	assert.Equal(t, 0, calendar.Compare(a, c))
}

func TestDateText(t *testing.T) {
	t.Parallel()

	var d calendar.Date
	require.NoError(t, d.UnmarshalText([]byte("2022-11-30")))
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2022-11-30", string(b))

	assert.Error(t, d.UnmarshalText([]byte("garbage")))
}
