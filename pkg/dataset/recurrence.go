package dataset

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// expandRecurringEvent expands an RRULE into the occurrences starting inside [windowStart, windowEnd).
// EXDATE instants are removed.
func expandRecurringEvent(base icalEvent, windowStart, windowEnd time.Time) ([]icalEvent, error) {
	duration := base.End.Sub(base.Start)

	opt, err := rrule.StrToROption(base.RRule)
	if err != nil {
		return nil, fmt.Errorf("parsing RRULE: %w", err)
	}
	opt.Dtstart = base.Start

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("building RRULE: %w", err)
	}

	set := &rrule.Set{}
	set.RRule(rule)
	for _, ex := range base.ExDates {
		set.ExDate(ex)
	}

	events := []icalEvent{}
	for _, start := range set.Between(windowStart, windowEnd, true) {
		instance := base
		instance.Start = start
		if duration > 0 {
			instance.End = start.Add(duration)
		} else {
			instance.End = time.Time{}
		}
		instance.RRule = ""
		instance.UID = base.UID + "-" + start.Format(time.RFC3339)
		events = append(events, instance)
	}

	return events, nil
}
