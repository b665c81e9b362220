package scheduler

// Lookup answers whether a dataset holds a record for a date and slot
type Lookup interface {
	IsOccupied(date, slot string) bool
}

// Cell is one slot of one weekday row
type Cell struct {
	Slot        string
	Checked     bool // a record exists for the displayed date
	Highlighted bool // a record exists for the picked calendar date
}

// Row is one weekday line of the grid
type Row struct {
	Day      string
	Selected bool
	Cells    []Cell
}

// Grid is the complete content of one render pass
type Grid struct {
	Header        string
	DisplayedDate string
	Slots         []string
	Rows          []Row
}

// BuildGrid composes the weekday rows and slot cells for a state.
//
// Cells are keyed by slot only, so every row carries the same states. Checked follows
// the displayed date and Highlighted follows the picked calendar date; when the two
// dates differ the checked and highlighted cells need not coincide.
func BuildGrid(state State, lookup Lookup) Grid {
	slots := GenerateSlots()
	displayed := state.DisplayedDate()

	cells := make([]Cell, len(slots))
	for i, slot := range slots {
		cells[i] = Cell{
			Slot:        slot,
			Checked:     lookup.IsOccupied(displayed, slot),
			Highlighted: state.SelectedCalendarDate != "" && lookup.IsOccupied(state.SelectedCalendarDate, slot),
		}
	}

	rows := make([]Row, len(Weekdays))
	for i, day := range Weekdays {
		rowCells := make([]Cell, len(cells))
		copy(rowCells, cells)
		rows[i] = Row{
			Day:      day,
			Selected: i == state.SelectedWeekday,
			Cells:    rowCells,
		}
	}

	return Grid{
		Header:        state.Header(),
		DisplayedDate: displayed,
		Slots:         slots,
		Rows:          rows,
	}
}

// CheckedSlots returns the slot labels checked for the displayed date
func (g Grid) CheckedSlots() []string {
	if len(g.Rows) == 0 {
		return nil
	}
	var out []string
	for _, c := range g.Rows[0].Cells {
		if c.Checked {
			out = append(out, c.Slot)
		}
	}
	return out
}
