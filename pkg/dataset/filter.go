package dataset

import (
	"time"

	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/borgmon/week-scheduler/pkg/scheduler"
	"go.uber.org/zap"
)

type loadStats struct {
	total               int
	skippedMalformed    int
	skippedInvalid      int
	skippedMissingTime  int
	skippedCancelled    int
	skippedAllDay       int
	skippedOutsideSlots int
}

func (s *loadStats) logSummary(log *zap.Logger, includedCount int) {
	totalSkipped := s.skippedMalformed + s.skippedInvalid + s.skippedMissingTime +
		s.skippedCancelled + s.skippedAllDay + s.skippedOutsideSlots
	log.Info("Dataset summary",
		zap.Int("entries", s.total),
		zap.Int("records", includedCount),
		zap.Int("skipped", totalSkipped))
	if totalSkipped > 0 {
		log.Debug("Skipped breakdown",
			zap.Int("malformed", s.skippedMalformed),
			zap.Int("invalid", s.skippedInvalid),
			zap.Int("missing_time", s.skippedMissingTime),
			zap.Int("cancelled", s.skippedCancelled),
			zap.Int("all_day", s.skippedAllDay),
			zap.Int("outside_slots", s.skippedOutsideSlots))
	}
}

func shouldIncludeEvent(log *zap.Logger, event icalEvent, stats *loadStats) bool {
	if event.Start.IsZero() {
		stats.skippedMissingTime++
		log.Debug("Skipping event without start", zap.String("title", event.Title))
		return false
	}

	if event.Status == "CANCELLED" {
		stats.skippedCancelled++
		log.Debug("Skipping cancelled event",
			zap.String("title", event.Title),
			zap.Time("start", event.Start))
		return false
	}

	if event.AllDay || isAllDaySpan(event) {
		stats.skippedAllDay++
		log.Debug("Skipping all-day event",
			zap.String("title", event.Title),
			zap.Time("start", event.Start))
		return false
	}

	return true
}

func isAllDaySpan(event icalEvent) bool {
	startDate := event.Start.Format(scheduler.DateLayout)
	endDate := event.End.Format(scheduler.DateLayout)
	duration := event.End.Sub(event.Start)

	// An event is considered all-day if it spans multiple days and is >= 24 hours
	return startDate != endDate && duration >= 24*time.Hour
}

// slotRecords returns one record per grid slot overlapping [start, end) in loc
func slotRecords(start, end time.Time, loc *time.Location) []models.AvailabilityRecord {
	start = start.In(loc)
	end = end.In(loc)
	if !end.After(start) {
		end = start.Add(scheduler.SlotStep * time.Minute)
	}

	records := []models.AvailabilityRecord{}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	for day.Before(end) {
		for mins := scheduler.SlotStart; mins <= scheduler.SlotEnd; mins += scheduler.SlotStep {
			slotStart := day.Add(time.Duration(mins) * time.Minute)
			slotEnd := slotStart.Add(scheduler.SlotStep * time.Minute)
			if slotStart.Before(end) && slotEnd.After(start) {
				records = append(records, models.AvailabilityRecord{
					Date: day.Format(scheduler.DateLayout),
					Time: scheduler.SlotLabel(mins),
				})
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return records
}
