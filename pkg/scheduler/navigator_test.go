package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateAt(t *testing.T, date string) State {
	t.Helper()
	d, err := time.Parse(DateLayout, date)
	require.NoError(t, err)
	return New(d)
}

func TestNew(t *testing.T) {
	now := time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)
	s := New(now)

	assert.Equal(t, models.TimeZoneOptions[0], s.TimeZone)
	assert.Equal(t, -1, s.SelectedWeekday)
	assert.Empty(t, s.SelectedCalendarDate)
	assert.True(t, s.Displayed.Equal(now))
	assert.Equal(t, "2024-03-04", s.DisplayedDate())
}

func TestWeekNavigation(t *testing.T) {
	t.Run("Previous then next twice", func(t *testing.T) {
		s := stateAt(t, "2024-03-04")

		s = s.PreviousWeek()
		assert.Equal(t, "2024-02-26", s.DisplayedDate())

		s = s.NextWeek()
		s = s.NextWeek()
		assert.Equal(t, "2024-03-11", s.DisplayedDate())
	})

	t.Run("Step forward and back is identity", func(t *testing.T) {
		start := stateAt(t, "2023-12-29")

		next, err := start.StepWeek(1)
		require.NoError(t, err)
		back, err := next.StepWeek(-1)
		require.NoError(t, err)

		assert.True(t, back.Displayed.Equal(start.Displayed))
	})

	t.Run("Crosses year boundary", func(t *testing.T) {
		s, err := stateAt(t, "2023-12-28").StepWeek(1)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-04", s.DisplayedDate())
	})

	t.Run("Receiver is not modified", func(t *testing.T) {
		s := stateAt(t, "2024-03-04")
		_ = s.NextWeek()
		assert.Equal(t, "2024-03-04", s.DisplayedDate())
	})

	t.Run("Invalid direction", func(t *testing.T) {
		for _, dir := range []int{0, 2, -7} {
			s := stateAt(t, "2024-03-04")
			got, err := s.StepWeek(dir)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "direction %d", dir)
			assert.Equal(t, s, got)
		}
	})
}

func TestJumpTo(t *testing.T) {
	s := stateAt(t, "2024-03-04")
	picked := time.Date(2024, time.April, 17, 13, 45, 0, 0, time.Local)

	s = s.JumpTo(picked)

	assert.Equal(t, "2024-04-17", s.DisplayedDate())
	assert.Equal(t, "2024-04-17", s.SelectedCalendarDate)
	assert.Equal(t, 0, s.Displayed.Hour())
	assert.Equal(t, 0, s.Displayed.Minute())
}

func TestSelectWeekday(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		day      string
		expected string
		index    int
	}{
		{"monday from wednesday", "2024-03-06", "Monday", "2024-03-04", 0},
		{"wednesday from monday", "2024-03-04", "Wednesday", "2024-03-06", 2},
		{"friday from friday", "2024-03-08", "Friday", "2024-03-08", 4},
		{"wednesday from saturday", "2024-03-09", "Wednesday", "2024-03-06", 2},
		{"wednesday from sunday", "2024-03-10", "Wednesday", "2024-03-06", 2},
		{"monday across month", "2024-03-01", "Monday", "2024-02-26", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := stateAt(t, tt.from).SelectWeekday(tt.day)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, s.DisplayedDate())
			assert.Equal(t, tt.day, s.Displayed.Weekday().String())
			assert.Equal(t, tt.index, s.SelectedWeekday)
		})
	}

	t.Run("Keeps time of day", func(t *testing.T) {
		s := New(time.Date(2024, time.March, 7, 18, 30, 0, 0, time.UTC))
		s, err := s.SelectWeekday("Tuesday")
		require.NoError(t, err)
		assert.Equal(t, 18, s.Displayed.Hour())
		assert.Equal(t, 30, s.Displayed.Minute())
	})

	t.Run("Unknown weekday", func(t *testing.T) {
		for _, day := range []string{"Saturday", "Sunday", "monday", ""} {
			s := stateAt(t, "2024-03-04")
			got, err := s.SelectWeekday(day)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, s, got)
		}
	})
}

func TestSetTimeZone(t *testing.T) {
	utc0 := models.TimeZoneOptions[0]
	utc23 := models.TimeZoneOptions[1]

	t.Run("Rebases the same instant", func(t *testing.T) {
		s := New(time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC))

		shifted := s.SetTimeZone(utc23)
		assert.True(t, shifted.Displayed.Equal(s.Displayed))
		assert.Equal(t, "2024-03-05", shifted.DisplayedDate())
		assert.Equal(t, 9, shifted.Displayed.Hour())
		_, offset := shifted.Displayed.Zone()
		assert.Equal(t, 23*3600, offset)
		assert.Equal(t, utc23, shifted.TimeZone)
	})

	t.Run("Round trip restores the date", func(t *testing.T) {
		s := New(time.Date(2024, time.March, 4, 0, 30, 0, 0, time.UTC))

		back := s.SetTimeZone(utc23).SetTimeZone(utc0)
		assert.Equal(t, s.DisplayedDate(), back.DisplayedDate())
		assert.True(t, back.Displayed.Equal(s.Displayed))
	})

	t.Run("By label", func(t *testing.T) {
		s, err := stateAt(t, "2024-03-04").SetTimeZoneByLabel("UTC+23")
		require.NoError(t, err)
		assert.Equal(t, utc23, s.TimeZone)

		_, err = s.SetTimeZoneByLabel("UTC+5")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestHeader(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2024-03-04", "Monday - March 4th, 2024"},
		{"2024-03-01", "Friday - March 1st, 2024"},
		{"2024-03-22", "Friday - March 22nd, 2024"},
		{"2024-03-23", "Saturday - March 23rd, 2024"},
		{"2024-03-11", "Monday - March 11th, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.expected, stateAt(t, tt.date).Header())
		})
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 31: "31st"}
	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n))
	}
}
