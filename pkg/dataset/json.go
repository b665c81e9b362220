package dataset

import (
	"fmt"

	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var validate = validator.New()

// parseJSON decodes an array of {Date, Time} objects. Entries that fail to decode or
// validate are logged and skipped; only a malformed document is an error.
func (l *Loader) parseJSON(log *zap.Logger, body []byte) ([]models.AvailabilityRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	stats := &loadStats{}
	records := make([]models.AvailabilityRecord, 0, len(raw))

	for i, entry := range raw {
		stats.total++

		var record models.AvailabilityRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			stats.skippedMalformed++
			log.Warn("Skipping undecodable record", zap.Int("index", i), zap.Error(err))
			continue
		}

		if err := validate.Struct(record); err != nil {
			stats.skippedInvalid++
			log.Warn("Skipping invalid record",
				zap.Int("index", i),
				zap.String("date", record.Date),
				zap.String("time", record.Time),
				zap.Error(err))
			continue
		}

		records = append(records, record)
	}

	stats.logSummary(log, len(records))
	return records, nil
}
