package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/borgmon/week-scheduler/pkg/ui/components"
	"go.uber.org/zap"
)

const savedMessage = "Settings saved successfully"

type SettingsWindow struct {
	window   fyne.Window
	app      fyne.App
	settings *models.Settings
	logger   *zap.Logger
	onSave   func(*models.Settings) error
	onReload func()

	// General tab
	autoStartCheck *widget.Check

	// Data sources tab
	sourceList   *components.SourceListManager
	reloadButton *widget.Button

	// UI state
	hasUnsavedChanges bool
	saveStatusLabel   *widget.Label
	saveButton        *widget.Button
}

func NewSettingsWindow(app fyne.App, settings *models.Settings, logger *zap.Logger, onSave func(*models.Settings) error, onReload func()) *SettingsWindow {
	sw := &SettingsWindow{
		app:      app,
		settings: settings,
		logger:   logger,
		onSave:   onSave,
		onReload: onReload,
	}

	sw.window = app.NewWindow("Week Scheduler - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", sw.buildGeneralTab()),
		container.NewTabItem("Data Sources", sw.buildSourcesTab()),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable()

	closeButton := widget.NewButton("Close", func() {
		sw.handleClose()
	})

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
		container.NewHBox(),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		tabs,
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(800, 560))
	sw.window.CenterOnScreen()

	sw.setupKeyboardShortcuts()

	sw.window.SetCloseIntercept(func() {
		sw.handleClose()
	})
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.setStatus("Saving...", widget.MediumImportance)

	newSettings := sw.getSettingsFromUI()
	go func() {
		err := sw.onSave(newSettings)
		fyne.Do(func() {
			if err != nil {
				sw.logger.Error("Failed to save settings", zap.Error(err))
				sw.setStatus("Error: "+err.Error(), widget.DangerImportance)
				sw.updateSaveButtonState()
				return
			}

			sw.settings = newSettings
			sw.hasUnsavedChanges = false
			sw.setStatus(savedMessage, widget.SuccessImportance)
			sw.updateSaveButtonState()

			go func() {
				time.Sleep(3 * time.Second)
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == savedMessage {
						sw.setStatus("", widget.SuccessImportance)
					}
				})
			}()
		})
	}()
}

func (sw *SettingsWindow) setStatus(text string, importance widget.Importance) {
	sw.saveStatusLabel.SetText(text)
	sw.saveStatusLabel.Importance = importance
	sw.saveStatusLabel.Refresh()
}

func (sw *SettingsWindow) getSettingsFromUI() *models.Settings {
	return &models.Settings{
		AutoStart:   sw.autoStartCheck.Checked,
		DataSources: append([]models.DataSource{}, sw.sourceList.GetData()...),
	}
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

func (sw *SettingsWindow) markChanged() {
	sw.hasUnsavedChanges = true
	sw.updateSaveButtonState()
}

func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasUnsavedChanges {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// handleClose asks for confirmation when there are unsaved changes
func (sw *SettingsWindow) handleClose() {
	if !sw.hasActualChanges() {
		sw.window.Close()
		return
	}
	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}

// hasActualChanges compares the UI state against the saved settings
func (sw *SettingsWindow) hasActualChanges() bool {
	return settingsDiffer(sw.getSettingsFromUI(), sw.settings)
}

func settingsDiffer(a, b *models.Settings) bool {
	if a.AutoStart != b.AutoStart {
		return true
	}
	if len(a.DataSources) != len(b.DataSources) {
		return true
	}
	for i := range a.DataSources {
		if a.DataSources[i] != b.DataSources[i] {
			return true
		}
	}
	return false
}

func (sw *SettingsWindow) setupKeyboardShortcuts() {
	sw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			sw.handleClose()
		}
	})
}
