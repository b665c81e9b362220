package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/week-scheduler/pkg/availability"
	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/borgmon/week-scheduler/pkg/scheduler"
	"github.com/borgmon/week-scheduler/pkg/ui/components"
	"go.uber.org/zap"
)

type SchedulerWindow struct {
	window fyne.Window
	app    fyne.App
	index  *availability.Index
	logger *zap.Logger
	state  scheduler.State

	headerLabel    *widget.Label
	tzSelect       *widget.Select
	calendarHolder *fyne.Container
	calendarMonth  time.Time
	slotGrid       *components.SlotGrid
}

func NewSchedulerWindow(app fyne.App, index *availability.Index, logger *zap.Logger, now time.Time) *SchedulerWindow {
	sw := &SchedulerWindow{
		app:    app,
		index:  index,
		logger: logger,
		state:  scheduler.New(now),
	}

	sw.window = app.NewWindow("Week Scheduler")
	sw.buildUI()

	return sw
}

func (sw *SchedulerWindow) buildUI() {
	sw.headerLabel = widget.NewLabel("")
	sw.headerLabel.TextStyle.Bold = true
	sw.headerLabel.Alignment = fyne.TextAlignCenter

	prevButton := widget.NewButtonWithIcon("Previous Week", theme.NavigateBackIcon(), func() {
		sw.apply(sw.state.PreviousWeek())
	})
	nextButton := widget.NewButtonWithIcon("Next Week", theme.NavigateNextIcon(), func() {
		sw.apply(sw.state.NextWeek())
	})
	nextButton.IconPlacement = widget.ButtonIconTrailingText

	// Assign the callback after the initial selection so it doesn't fire a transition
	sw.tzSelect = widget.NewSelect(models.TimeZoneLabels(), nil)
	sw.tzSelect.SetSelected(sw.state.TimeZone.Label)
	sw.tzSelect.OnChanged = sw.changeTimeZone

	sw.calendarHolder = container.NewStack()
	sw.rebuildCalendar()

	sw.slotGrid = components.NewSlotGrid(sw.selectWeekday)

	navBar := container.NewBorder(
		nil,
		nil,
		prevButton,
		container.NewHBox(sw.tzSelect, nextButton),
		sw.headerLabel,
	)

	gridScroll := container.NewScroll(sw.slotGrid.Widget())
	gridScroll.SetMinSize(fyne.NewSize(700, 260))

	content := container.NewBorder(
		container.NewVBox(navBar, widget.NewSeparator()),
		nil,
		container.NewVBox(sw.calendarHolder),
		nil,
		gridScroll,
	)

	sw.window.SetContent(container.NewPadded(content))
	sw.window.Resize(fyne.NewSize(1200, 480))
	sw.window.CenterOnScreen()

	sw.setupKeyboardShortcuts()

	// Keep running in the tray when the window is closed
	if _, ok := sw.app.(desktop.App); ok {
		sw.window.SetCloseIntercept(func() {
			sw.window.Hide()
		})
	}

	sw.Refresh()
}

// apply commits a state transition and repaints
func (sw *SchedulerWindow) apply(next scheduler.State) {
	sw.state = next
	sw.Refresh()
}

func (sw *SchedulerWindow) jumpTo(date time.Time) {
	sw.apply(sw.state.JumpTo(date))
}

func (sw *SchedulerWindow) goToToday() {
	sw.jumpTo(time.Now().In(sw.state.TimeZone.Location()))
}

func (sw *SchedulerWindow) selectWeekday(day string) {
	next, err := sw.state.SelectWeekday(day)
	if err != nil {
		sw.logger.Warn("Ignoring weekday selection", zap.String("day", day), zap.Error(err))
		return
	}
	sw.apply(next)
}

func (sw *SchedulerWindow) changeTimeZone(label string) {
	if label == sw.state.TimeZone.Label {
		return
	}
	next, err := sw.state.SetTimeZoneByLabel(label)
	if err != nil {
		sw.logger.Warn("Ignoring time zone change", zap.String("label", label), zap.Error(err))
		return
	}
	sw.logger.Debug("Time zone changed",
		zap.String("label", label),
		zap.String("displayed", next.DisplayedDate()))
	sw.apply(next)
}

// Refresh rebuilds the grid from the current state and index
func (sw *SchedulerWindow) Refresh() {
	grid := scheduler.BuildGrid(sw.state, sw.index)

	sw.headerLabel.SetText(grid.Header)
	if sw.tzSelect.Selected != sw.state.TimeZone.Label {
		sw.tzSelect.SetSelected(sw.state.TimeZone.Label)
	}

	month := monthOf(sw.state.Displayed)
	if !month.Equal(sw.calendarMonth) {
		sw.rebuildCalendar()
	}

	sw.slotGrid.Update(grid)
}

// rebuildCalendar swaps in a picker opened on the displayed month
func (sw *SchedulerWindow) rebuildCalendar() {
	sw.calendarMonth = monthOf(sw.state.Displayed)
	calendar := widget.NewCalendar(sw.state.Displayed, sw.jumpTo)
	sw.calendarHolder.Objects = []fyne.CanvasObject{calendar}
	sw.calendarHolder.Refresh()
}

func (sw *SchedulerWindow) setupKeyboardShortcuts() {
	sw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyLeft:
			sw.apply(sw.state.PreviousWeek())
		case fyne.KeyRight:
			sw.apply(sw.state.NextWeek())
		case fyne.KeyT:
			sw.goToToday()
		}
	})
}

// todayOccupied returns up to limit occupied slots of today in the active time zone
func (sw *SchedulerWindow) todayOccupied(limit int) []string {
	today := time.Now().In(sw.state.TimeZone.Location()).Format(scheduler.DateLayout)

	slots := []string{}
	for _, slot := range scheduler.GenerateSlots() {
		if sw.index.IsOccupied(today, slot) {
			slots = append(slots, slot)
			if len(slots) >= limit {
				break
			}
		}
	}
	return slots
}

func (sw *SchedulerWindow) Show() {
	sw.window.Show()
	sw.window.RequestFocus()
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
