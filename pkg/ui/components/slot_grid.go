package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/week-scheduler/pkg/scheduler"
)

const (
	dayColumnWidth  = float32(120)
	slotColumnWidth = float32(110)
)

// SlotGrid renders weekday rows against slot columns of read-only checks
type SlotGrid struct {
	table *widget.Table
	grid  scheduler.Grid

	// OnDaySelected is called with the weekday label of a tapped row
	OnDaySelected func(day string)
}

// NewSlotGrid creates an empty slot grid; call Update to fill it
func NewSlotGrid(onDaySelected func(day string)) *SlotGrid {
	g := &SlotGrid{OnDaySelected: onDaySelected}

	g.table = widget.NewTable(
		func() (rows int, cols int) {
			return len(g.grid.Rows), len(g.grid.Slots) + 1
		},
		func() fyne.CanvasObject {
			bg := canvas.NewRectangle(color.Transparent)
			label := widget.NewLabel("Wednesday")
			check := widget.NewCheck("11:00 PM", nil)
			check.Disable()
			return container.NewStack(bg, label, check)
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			g.updateCell(id, obj.(*fyne.Container))
		},
	)

	g.table.OnSelected = func(id widget.TableCellID) {
		g.table.UnselectAll()
		if id.Row < 0 || id.Row >= len(g.grid.Rows) {
			return
		}
		if g.OnDaySelected != nil {
			g.OnDaySelected(g.grid.Rows[id.Row].Day)
		}
	}

	g.table.SetColumnWidth(0, dayColumnWidth)
	return g
}

func (g *SlotGrid) updateCell(id widget.TableCellID, cell *fyne.Container) {
	bg := cell.Objects[0].(*canvas.Rectangle)
	label := cell.Objects[1].(*widget.Label)
	check := cell.Objects[2].(*widget.Check)

	if id.Row >= len(g.grid.Rows) {
		label.Hide()
		check.Hide()
		return
	}
	row := g.grid.Rows[id.Row]

	// Column 0 carries the weekday label
	if id.Col == 0 {
		check.Hide()
		label.Show()
		label.SetText(row.Day)
		label.TextStyle.Bold = row.Selected
		if row.Selected {
			label.Importance = widget.HighImportance
			bg.FillColor = theme.Color(theme.ColorNameHover)
		} else {
			label.Importance = widget.MediumImportance
			bg.FillColor = color.Transparent
		}
		label.Refresh()
		bg.Refresh()
		return
	}

	slot := id.Col - 1
	if slot >= len(row.Cells) {
		label.Hide()
		check.Hide()
		return
	}
	c := row.Cells[slot]

	label.Hide()
	check.Show()
	check.Text = c.Slot
	check.Checked = c.Checked
	check.Refresh()

	switch {
	case c.Highlighted:
		bg.FillColor = theme.Color(theme.ColorNameSelection)
	case row.Selected:
		bg.FillColor = theme.Color(theme.ColorNameHover)
	default:
		bg.FillColor = color.Transparent
	}
	bg.Refresh()
}

// Update replaces the rendered grid
func (g *SlotGrid) Update(grid scheduler.Grid) {
	g.grid = grid
	for col := 1; col <= len(grid.Slots); col++ {
		g.table.SetColumnWidth(col, slotColumnWidth)
	}
	g.table.Refresh()
}

// Grid returns the grid currently rendered
func (g *SlotGrid) Grid() scheduler.Grid {
	return g.grid
}

// Widget returns the canvas object to place in a layout
func (g *SlotGrid) Widget() fyne.CanvasObject {
	return g.table
}
