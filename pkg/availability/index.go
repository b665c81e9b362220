package availability

import (
	"sync"

	"github.com/borgmon/week-scheduler/pkg/models"
)

// Index answers existence queries over a static set of availability records
type Index struct {
	mu sync.RWMutex

	// Records in load order
	records []models.AvailabilityRecord

	// Map of (date, time) to presence, for O(1) lookups
	bySlot map[models.SlotKey]struct{}

	// Map of date to positions in records, preserving load order
	byDate map[string][]int
}

// NewIndex builds an index over records. The slice is copied.
func NewIndex(records []models.AvailabilityRecord) *Index {
	idx := &Index{}
	idx.rebuild(records)
	return idx
}

func (idx *Index) rebuild(records []models.AvailabilityRecord) {
	idx.records = make([]models.AvailabilityRecord, len(records))
	copy(idx.records, records)

	idx.bySlot = make(map[models.SlotKey]struct{}, len(records))
	idx.byDate = make(map[string][]int)
	for i, r := range idx.records {
		idx.bySlot[r.Key()] = struct{}{}
		idx.byDate[r.Date] = append(idx.byDate[r.Date], i)
	}
}

// Replace swaps in a new record set, used when datasets are reloaded
func (idx *Index) Replace(records []models.AvailabilityRecord) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.rebuild(records)
}

// IsOccupied reports whether a record matches both date and time exactly
func (idx *Index) IsOccupied(date, time string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	_, ok := idx.bySlot[models.SlotKey{Date: date, Time: time}]
	return ok
}

// RecordsOn returns the records for a date in load order
func (idx *Index) RecordsOn(date string) []models.AvailabilityRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	positions := idx.byDate[date]
	result := make([]models.AvailabilityRecord, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.records[pos])
	}
	return result
}

// Len returns the number of records, duplicates included
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.records)
}
