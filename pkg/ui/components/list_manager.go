package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/week-scheduler/pkg/models"
)

// SourceListManager shows data sources with add/remove controls
type SourceListManager struct {
	list        *widget.List
	data        []models.DataSource
	selectedIdx int
	onAdd       func()
	onRemove    func(models.DataSource, func())
	onChange    func()
}

// SourceListConfig configures the list manager
type SourceListConfig struct {
	OnAdd    func()                          // Called when the add button is tapped
	OnRemove func(models.DataSource, func()) // Called with the selected source and a confirm func
	OnChange func()                          // Called when list changes
}

// NewSourceListManager creates a new list manager component
func NewSourceListManager(data []models.DataSource, config SourceListConfig) (*SourceListManager, *fyne.Container) {
	lm := &SourceListManager{
		data:        append([]models.DataSource{}, data...),
		selectedIdx: -1,
		onAdd:       config.OnAdd,
		onRemove:    config.OnRemove,
		onChange:    config.OnChange,
	}

	lm.list = widget.NewList(
		func() int {
			return len(lm.data)
		},
		func() fyne.CanvasObject {
			nameLabel := widget.NewLabel("Name")
			nameLabel.TextStyle.Bold = true
			locationLabel := widget.NewLabel("Location")
			locationLabel.Importance = widget.MediumImportance
			return container.NewVBox(nameLabel, locationLabel)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(lm.data) {
				return
			}
			vbox := o.(*fyne.Container)
			vbox.Objects[0].(*widget.Label).SetText(lm.data[i].Name)
			vbox.Objects[1].(*widget.Label).SetText(truncateString(lm.data[i].Location, 60))
		})

	lm.list.OnSelected = func(id widget.ListItemID) {
		lm.selectedIdx = id
	}

	plusButton := widget.NewButton("", func() {
		if lm.onAdd != nil {
			lm.onAdd()
		}
	})
	plusButton.Icon = theme.ContentAddIcon()

	minusButton := widget.NewButton("", func() {
		if lm.selectedIdx < 0 || lm.selectedIdx >= len(lm.data) {
			return
		}
		idx := lm.selectedIdx
		if lm.onRemove != nil {
			lm.onRemove(lm.data[idx], func() { lm.removeAt(idx) })
			return
		}
		lm.removeAt(idx)
	})
	minusButton.Icon = theme.ContentRemoveIcon()

	listScroll := container.NewScroll(lm.list)
	listScroll.SetMinSize(fyne.NewSize(0, 200))

	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		widget.NewSeparator(),
		widget.NewSeparator(),
		listScroll,
	)

	listContainer := container.NewVBox(listWithBorder, container.NewHBox(plusButton, minusButton))

	return lm, listContainer
}

func (lm *SourceListManager) removeAt(idx int) {
	if idx < 0 || idx >= len(lm.data) {
		return
	}
	lm.data = append(lm.data[:idx], lm.data[idx+1:]...)
	lm.list.UnselectAll()
	lm.selectedIdx = -1
	lm.list.Refresh()
	if lm.onChange != nil {
		lm.onChange()
	}
}

// Refresh refreshes the list display
func (lm *SourceListManager) Refresh() {
	lm.list.Refresh()
}

// GetData returns the current data
func (lm *SourceListManager) GetData() []models.DataSource {
	return lm.data
}

// AddItem adds a source to the list
func (lm *SourceListManager) AddItem(source models.DataSource) {
	lm.data = append(lm.data, source)
	lm.list.Refresh()
	if lm.onChange != nil {
		lm.onChange()
	}
}

// HasLocation reports whether a source with the location is already listed
func (lm *SourceListManager) HasLocation(location string) bool {
	for _, s := range lm.data {
		if s.Location == location {
			return true
		}
	}
	return false
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
