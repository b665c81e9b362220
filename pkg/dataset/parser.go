package dataset

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// icalEvent is the subset of a VEVENT that maps onto grid slots
type icalEvent struct {
	UID     string
	Title   string
	Status  string
	Start   time.Time
	End     time.Time
	AllDay  bool
	RRule   string
	ExDates []time.Time
}

var cancelledTitleCleaner = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func parseEvent(comp *ical.Component) icalEvent {
	normalizeComponentTimezones(comp)
	loc := getTimezoneFromComponent(comp)

	event := icalEvent{}

	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		event.UID = uidProp.Value
	}

	if summaryProp := comp.Props.Get(ical.PropSummary); summaryProp != nil {
		event.Title = summaryProp.Value
	}

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		event.AllDay = startProp.ValueType() == ical.ValueDate
		if t, err := parseDateTimeProperty(startProp, loc); err == nil {
			event.Start = t
		}
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProperty(endProp, loc); err == nil {
			event.End = t
		}
	}
	if event.End.IsZero() && !event.Start.IsZero() {
		if durProp := comp.Props.Get(ical.PropDuration); durProp != nil {
			if d, err := durProp.Duration(); err == nil {
				event.End = event.Start.Add(d)
			}
		}
	}

	if statusProp := comp.Props.Get(ical.PropStatus); statusProp != nil {
		event.Status = strings.ToUpper(statusProp.Value)
	}

	// Polyfill: If status is not CANCELLED but title indicates cancellation, set status to CANCELLED
	if event.Status != "CANCELLED" && isCancelledTitle(event.Title) {
		event.Status = "CANCELLED"
	}

	if rruleProp := comp.Props.Get(ical.PropRecurrenceRule); rruleProp != nil {
		event.RRule = rruleProp.Value
	}

	for _, exProp := range comp.Props.Values(ical.PropExceptionDates) {
		for _, value := range strings.Split(exProp.Value, ",") {
			single := &ical.Prop{Name: exProp.Name, Params: exProp.Params, Value: strings.TrimSpace(value)}
			if t, err := parseDateTimeProperty(single, loc); err == nil {
				event.ExDates = append(event.ExDates, t)
			}
		}
	}

	return event
}

func parseDateTimeProperty(prop *ical.Prop, loc *time.Location) (time.Time, error) {
	if t, err := prop.DateTime(loc); err == nil {
		return t, nil
	}

	// If that fails, try parsing the raw value directly
	value := prop.Value

	formats := []string{
		"20060102T150405",     // Basic format: YYYYMMDDTHHMMSS
		"20060102T150405Z",    // UTC format
		time.RFC3339,          // Standard RFC3339
		"2006-01-02T15:04:05", // ISO 8601 without timezone
		"20060102",            // Date only
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", value)
}

func isCancelledTitle(title string) bool {
	cleanTitle := cancelledTitleCleaner.ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(cleanTitle, "canceled") || strings.HasPrefix(cleanTitle, "cancelled")
}
