package models

// AvailabilityRecord marks one time slot of one day as occupied in a static dataset
type AvailabilityRecord struct {
	Date string `json:"Date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Time string `json:"Time" validate:"required,datetime=3:04 PM"`    // h:mm A
}

// Key returns the (date, time) identity of the record
func (r AvailabilityRecord) Key() SlotKey {
	return SlotKey{Date: r.Date, Time: r.Time}
}

// SlotKey identifies a time slot on a calendar date
type SlotKey struct {
	Date string
	Time string
}
