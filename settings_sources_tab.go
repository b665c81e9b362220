package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/borgmon/week-scheduler/pkg/ui/components"
)

const reloadedMessage = "Reload started"

func (sw *SettingsWindow) buildSourcesTab() fyne.CanvasObject {
	var listContainer *fyne.Container
	sw.sourceList, listContainer = components.NewSourceListManager(sw.settings.DataSources, components.SourceListConfig{
		OnAdd: func() {
			sw.showAddSourceDialog()
		},
		OnRemove: func(source models.DataSource, remove func()) {
			sw.confirmRemoveSource(source, remove)
		},
		OnChange: func() {
			sw.markChanged()
		},
	})

	reloadStatusLabel := widget.NewLabel("")
	reloadStatusLabel.Importance = widget.MediumImportance

	sw.reloadButton = widget.NewButton("Reload Now", func() {
		if sw.onReload == nil {
			return
		}
		sw.onReload()
		reloadStatusLabel.SetText(reloadedMessage)
		reloadStatusLabel.Refresh()

		go func() {
			time.Sleep(3 * time.Second)
			fyne.Do(func() {
				if reloadStatusLabel.Text == reloadedMessage {
					reloadStatusLabel.SetText("")
					reloadStatusLabel.Refresh()
				}
			})
		}()
	})
	sw.reloadButton.Icon = theme.ViewRefreshIcon()

	sourcesLabel := widget.NewLabel("Data Sources:")
	sourcesHelp := widget.NewLabel("JSON availability files or iCalendar feeds. Occupied slots from all sources are merged.")
	sourcesHelp.Wrapping = fyne.TextWrapWord
	sourcesHelp.Importance = widget.MediumImportance

	reloadLabel := widget.NewLabel("Reload:")
	reloadHelp := widget.NewLabel("Read all saved sources again")
	reloadHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(sourcesLabel, sourcesHelp),
		listContainer,

		container.NewVBox(reloadLabel, reloadHelp),
		container.NewHBox(sw.reloadButton, reloadStatusLabel),
	)

	content := container.NewVBox(
		widget.NewLabel("Data Source Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}
