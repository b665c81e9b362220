package availability

import (
	"sync"
	"testing"

	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestIsOccupied(t *testing.T) {
	idx := NewIndex([]models.AvailabilityRecord{{Date: "2024-03-04", Time: "9:00 AM"}})

	tests := []struct {
		name     string
		date     string
		time     string
		expected bool
	}{
		{"exact match", "2024-03-04", "9:00 AM", true},
		{"other slot", "2024-03-04", "9:30 AM", false},
		{"other date", "2024-03-05", "9:00 AM", false},
		{"leading zero differs", "2024-03-04", "09:00 AM", false},
		{"empty date", "", "9:00 AM", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, idx.IsOccupied(tt.date, tt.time))
		})
	}
}

func TestUnrelatedRecordsDoNotChangeLookups(t *testing.T) {
	base := []models.AvailabilityRecord{
		{Date: "2024-03-04", Time: "9:00 AM"},
		{Date: "2024-03-05", Time: "1:30 PM"},
	}
	extended := append(append([]models.AvailabilityRecord{}, base...),
		models.AvailabilityRecord{Date: "2024-03-06", Time: "9:00 AM"},
		models.AvailabilityRecord{Date: "2024-03-04", Time: "9:00 AM"},
	)

	before := NewIndex(base)
	after := NewIndex(extended)

	probes := []models.SlotKey{
		{Date: "2024-03-04", Time: "9:00 AM"},
		{Date: "2024-03-05", Time: "1:30 PM"},
		{Date: "2024-03-05", Time: "9:00 AM"},
		{Date: "2024-03-07", Time: "9:00 AM"},
	}
	for _, p := range probes {
		assert.Equal(t, before.IsOccupied(p.Date, p.Time), after.IsOccupied(p.Date, p.Time), "%+v", p)
	}
	assert.Equal(t, 4, after.Len())
}

func TestRecordsOn(t *testing.T) {
	idx := NewIndex([]models.AvailabilityRecord{
		{Date: "2024-03-04", Time: "10:00 AM"},
		{Date: "2024-03-05", Time: "9:00 AM"},
		{Date: "2024-03-04", Time: "8:30 AM"},
	})

	assert.Equal(t, []models.AvailabilityRecord{
		{Date: "2024-03-04", Time: "10:00 AM"},
		{Date: "2024-03-04", Time: "8:30 AM"},
	}, idx.RecordsOn("2024-03-04"))
	assert.Empty(t, idx.RecordsOn("2024-01-01"))
}

func TestNewIndexCopiesInput(t *testing.T) {
	records := []models.AvailabilityRecord{{Date: "2024-03-04", Time: "9:00 AM"}}
	idx := NewIndex(records)

	records[0].Time = "9:30 AM"

	assert.Equal(t, "9:00 AM", idx.RecordsOn("2024-03-04")[0].Time)
}

func TestReplace(t *testing.T) {
	idx := NewIndex([]models.AvailabilityRecord{{Date: "2024-03-04", Time: "9:00 AM"}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = idx.IsOccupied("2024-03-04", "9:00 AM")
		}()
	}
	idx.Replace([]models.AvailabilityRecord{{Date: "2024-03-05", Time: "2:00 PM"}})
	wg.Wait()

	assert.False(t, idx.IsOccupied("2024-03-04", "9:00 AM"))
	assert.True(t, idx.IsOccupied("2024-03-05", "2:00 PM"))
	assert.Equal(t, 1, idx.Len())
}
