package dataset

import (
	"bytes"
	"fmt"
	"io"

	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/emersion/go-ical"
	"go.uber.org/zap"
)

// parseICal turns every timed, non-cancelled VEVENT into records for the grid slots it overlaps
func (l *Loader) parseICal(log *zap.Logger, body []byte) ([]models.AvailabilityRecord, error) {
	decoder := ical.NewDecoder(bytes.NewReader(body))
	records := []models.AvailabilityRecord{}
	seen := make(map[models.SlotKey]bool)
	stats := &loadStats{}

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			stats.total++

			event := parseEvent(comp)
			if !shouldIncludeEvent(log, event, stats) {
				continue
			}

			occurrences := []icalEvent{event}
			if event.RRule != "" {
				expanded, err := expandRecurringEvent(event, l.windowStart, l.windowEnd)
				if err != nil {
					stats.skippedMalformed++
					log.Warn("Skipping event with unsupported RRULE",
						zap.String("title", event.Title),
						zap.String("rrule", event.RRule),
						zap.Error(err))
					continue
				}
				occurrences = expanded
			}

			added := 0
			for _, occ := range occurrences {
				for _, record := range slotRecords(occ.Start, occ.End, l.location) {
					if seen[record.Key()] {
						continue
					}
					seen[record.Key()] = true
					records = append(records, record)
					added++
				}
			}
			if added == 0 {
				stats.skippedOutsideSlots++
			}
		}
	}

	stats.logSummary(log, len(records))
	return records, nil
}
