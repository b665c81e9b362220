package scheduler

import "time"

const (
	// SlotStart is the first slot, in minutes from midnight (8:00 AM)
	SlotStart = 8 * 60
	// SlotEnd is the last slot, inclusive (11:00 PM)
	SlotEnd = 23 * 60
	// SlotStep is the slot length in minutes
	SlotStep = 30
	// SlotLabelLayout formats a slot as "h:mm A"
	SlotLabelLayout = "3:04 PM"
)

var slotLabels = buildSlots()

func buildSlots() []string {
	slots := make([]string, 0, (SlotEnd-SlotStart)/SlotStep+1)
	for mins := SlotStart; mins <= SlotEnd; mins += SlotStep {
		slots = append(slots, SlotLabel(mins))
	}
	return slots
}

// GenerateSlots returns the slot labels from 8:00 AM to 11:00 PM in 30 minute steps.
// The returned slice is a copy and may be modified by the caller.
func GenerateSlots() []string {
	out := make([]string, len(slotLabels))
	copy(out, slotLabels)
	return out
}

// SlotIndex returns the position of a label in the slot list, or -1
func SlotIndex(label string) int {
	for i, s := range slotLabels {
		if s == label {
			return i
		}
	}
	return -1
}

// SlotLabel formats minutes from midnight as a slot label
func SlotLabel(minutes int) string {
	base := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(minutes) * time.Minute).Format(SlotLabelLayout)
}
