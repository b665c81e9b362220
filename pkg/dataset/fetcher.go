package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/borgmon/week-scheduler/pkg/models"
	"go.uber.org/zap"
)

// Format is the encoding of a dataset document
type Format string

const (
	FormatJSON      Format = "json"
	FormatICalendar Format = "ical"
)

// Loader reads availability records from static dataset sources
type Loader struct {
	logger *zap.Logger
	client *http.Client

	// Recurring events are expanded inside [windowStart, windowEnd)
	windowStart time.Time
	windowEnd   time.Time

	// Location used to turn iCalendar instants into dataset dates and slot labels
	location *time.Location
}

// Option customizes a Loader
type Option func(*Loader)

// WithHTTPClient sets the client used for http(s) sources
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithRecurrenceWindow bounds RRULE expansion
func WithRecurrenceWindow(start, end time.Time) Option {
	return func(l *Loader) {
		l.windowStart = start
		l.windowEnd = end
	}
}

// WithLocation sets the zone iCalendar events are converted to
func WithLocation(loc *time.Location) Option {
	return func(l *Loader) {
		l.location = loc
	}
}

// NewLoader creates a Loader. By default recurring events are expanded 26 weeks
// either side of now, in the local zone.
func NewLoader(logger *zap.Logger, opts ...Option) *Loader {
	now := time.Now()
	l := &Loader{
		logger:      logger,
		client:      &http.Client{Timeout: 10 * time.Second},
		windowStart: now.AddDate(0, 0, -26*7),
		windowEnd:   now.AddDate(0, 0, 26*7),
		location:    time.Local,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads one source and returns its valid records in document order
func (l *Loader) Load(ctx context.Context, source models.DataSource) ([]models.AvailabilityRecord, error) {
	body, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}

	log := l.logger.With(zap.String("source", source.Name), zap.String("location", source.Location))

	switch DetectFormat(source.Location, body) {
	case FormatICalendar:
		if err := validateICalFormat(string(body)); err != nil {
			return nil, err
		}
		return l.parseICal(log, body)
	default:
		return l.parseJSON(log, body)
	}
}

// LoadAll loads every valid source in order. A failing source is logged and skipped.
func (l *Loader) LoadAll(ctx context.Context, sources []models.DataSource) []models.AvailabilityRecord {
	all := []models.AvailabilityRecord{}
	for _, source := range sources {
		if !source.Validate() {
			l.logger.Warn("Skipping incomplete data source", zap.String("id", source.ID))
			continue
		}

		records, err := l.Load(ctx, source)
		if err != nil {
			l.logger.Error("Failed to load data source",
				zap.String("source", source.Name),
				zap.String("location", source.Location),
				zap.Error(err))
			continue
		}

		all = append(all, records...)
		l.logger.Info("Loaded data source", zap.String("source", source.Name), zap.Int("records", len(records)))
	}

	l.logger.Info("Datasets loaded", zap.Int("sources", len(sources)), zap.Int("records", len(all)))
	return all
}

func (l *Loader) read(ctx context.Context, source models.DataSource) ([]byte, error) {
	if !source.IsRemote() {
		body, err := os.ReadFile(source.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset file: %w", err)
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset URL: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("HTTP request failed: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// DetectFormat picks the decoder from the file extension, falling back to sniffing the body
func DetectFormat(location string, body []byte) Format {
	ext := strings.ToLower(filepath.Ext(location))
	switch ext {
	case ".ics", ".ical", ".ifb":
		return FormatICalendar
	case ".json":
		return FormatJSON
	}

	if strings.HasPrefix(strings.TrimSpace(string(body)), "BEGIN:VCALENDAR") {
		return FormatICalendar
	}
	return FormatJSON
}

func validateICalFormat(bodyStr string) error {
	// Check if response is HTML instead of iCalendar
	upperBody := strings.ToUpper(strings.TrimSpace(bodyStr))
	if strings.HasPrefix(upperBody, "<!DOCTYPE") || strings.HasPrefix(upperBody, "<HTML") {
		return fmt.Errorf("received HTML instead of iCalendar data - check if URL requires authentication")
	}

	if !strings.HasPrefix(strings.TrimSpace(bodyStr), "BEGIN:VCALENDAR") {
		previewLen := 100
		if len(bodyStr) < previewLen {
			previewLen = len(bodyStr)
		}
		return fmt.Errorf("invalid iCalendar format - expected BEGIN:VCALENDAR, got: %s",
			strings.TrimSpace(bodyStr[:previewLen]))
	}

	return nil
}
