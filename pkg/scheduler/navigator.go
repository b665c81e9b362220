package scheduler

import (
	"fmt"
	"time"

	"github.com/borgmon/week-scheduler/pkg/models"
)

// DateLayout is the dataset date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Weekdays are the day labels shown as grid rows
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// State is everything the scheduler view renders from.
// Transitions never modify the receiver; they return the next state.
type State struct {
	Displayed            time.Time
	TimeZone             models.TimeZoneOption
	SelectedWeekday      int    // index into Weekdays, -1 when none
	SelectedCalendarDate string // YYYY-MM-DD, empty when none
}

// New returns the startup state: now, shown in the first time zone option
func New(now time.Time) State {
	tz := models.TimeZoneOptions[0]
	return State{
		Displayed:       now.In(tz.Location()),
		TimeZone:        tz,
		SelectedWeekday: -1,
	}
}

// StepWeek moves the displayed date one week back (-1) or forward (+1)
func (s State) StepWeek(direction int) (State, error) {
	if direction != -1 && direction != 1 {
		return s, fmt.Errorf("%w: week step must be -1 or +1, got %d", ErrInvalidArgument, direction)
	}
	s.Displayed = s.Displayed.AddDate(0, 0, 7*direction)
	return s, nil
}

// PreviousWeek is StepWeek(-1)
func (s State) PreviousWeek() State {
	prev, _ := s.StepWeek(-1)
	return prev
}

// NextWeek is StepWeek(+1)
func (s State) NextWeek() State {
	next, _ := s.StepWeek(1)
	return next
}

// JumpTo shows the start of the given calendar day and marks it as the picked calendar date
func (s State) JumpTo(date time.Time) State {
	s.Displayed = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.Displayed.Location())
	s.SelectedCalendarDate = s.Displayed.Format(DateLayout)
	return s
}

// SelectWeekday moves to the named weekday of the displayed Monday-start week and selects its row
func (s State) SelectWeekday(day string) (State, error) {
	idx := WeekdayIndex(day)
	if idx < 0 {
		return s, fmt.Errorf("%w: unknown weekday %q", ErrInvalidArgument, day)
	}
	s.SelectedWeekday = idx
	s.Displayed = WeekStart(s.Displayed).AddDate(0, 0, idx)
	return s, nil
}

// SetTimeZone re-expresses the displayed instant at the option's fixed offset
func (s State) SetTimeZone(option models.TimeZoneOption) State {
	s.TimeZone = option
	s.Displayed = s.Displayed.In(option.Location())
	return s
}

// SetTimeZoneByLabel is SetTimeZone for a selector label
func (s State) SetTimeZoneByLabel(label string) (State, error) {
	option, ok := models.FindTimeZone(label)
	if !ok {
		return s, fmt.Errorf("%w: unknown time zone %q", ErrInvalidArgument, label)
	}
	return s.SetTimeZone(option), nil
}

// DisplayedDate formats the displayed date as YYYY-MM-DD
func (s State) DisplayedDate() string {
	return s.Displayed.Format(DateLayout)
}

// Header renders the displayed date as "Monday - March 4th, 2024"
func (s State) Header() string {
	d := s.Displayed
	return fmt.Sprintf("%s - %s %s, %d", d.Weekday(), d.Month(), Ordinal(d.Day()), d.Year())
}

// WeekdayIndex returns the position of day in Weekdays, or -1
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// WeekStart returns the Monday of t's week, keeping t's time of day
func WeekStart(t time.Time) time.Time {
	// Sunday (0) belongs to the week that started six days earlier
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday)
}

// Ordinal formats a day of month with its English suffix (1st, 2nd, 11th, 23rd)
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
