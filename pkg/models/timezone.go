package models

import (
	"fmt"
	"time"
)

// TimeZoneOption is a named fixed UTC offset offered by the zone selector
type TimeZoneOption struct {
	Label       string
	OffsetHours int
}

// TimeZoneOptions is the fixed list shown in the selector; the first entry is the startup default
var TimeZoneOptions = []TimeZoneOption{
	{Label: "UTC+0", OffsetHours: 0},
	{Label: "UTC+23", OffsetHours: 23},
}

// Location returns a fixed zone carrying the option's offset
func (o TimeZoneOption) Location() *time.Location {
	return time.FixedZone(o.Label, o.OffsetHours*60*60)
}

// OffsetMinutes returns the offset in minutes east of UTC
func (o TimeZoneOption) OffsetMinutes() int {
	return o.OffsetHours * 60
}

func (o TimeZoneOption) String() string {
	return fmt.Sprintf("%s (%+d min)", o.Label, o.OffsetMinutes())
}

// TimeZoneLabels returns the selector labels in display order
func TimeZoneLabels() []string {
	labels := make([]string, 0, len(TimeZoneOptions))
	for _, opt := range TimeZoneOptions {
		labels = append(labels, opt.Label)
	}
	return labels
}

// FindTimeZone looks up an option by label
func FindTimeZone(label string) (TimeZoneOption, bool) {
	for _, opt := range TimeZoneOptions {
		if opt.Label == label {
			return opt, true
		}
	}
	return TimeZoneOption{}, false
}
