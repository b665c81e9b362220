package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/google/uuid"
)

func (sw *SettingsWindow) showAddSourceDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g., Team Availability")
	nameEntry.Validator = func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		return nil
	}

	locationEntry := widget.NewMultiLineEntry()
	locationEntry.SetPlaceHolder("data/data.json or https://calendar.example.com/ical/...")
	locationEntry.Wrapping = fyne.TextWrapBreak
	locationEntry.SetMinRowsVisible(3)
	locationEntry.Validator = func(s string) error {
		return validateSourceLocation(s, sw.sourceList.HasLocation)
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Location", locationEntry),
	}

	addDialog := dialog.NewForm("Add Data Source", "Add", "Cancel", formItems, func(confirmed bool) {
		if !confirmed {
			return
		}

		source := models.DataSource{
			ID:       uuid.New().String(),
			Name:     nameEntry.Text,
			Location: locationEntry.Text,
		}
		if !source.Validate() {
			return
		}
		sw.sourceList.AddItem(source)
	}, sw.window)

	addDialog.Resize(fyne.NewSize(600, 280))
	addDialog.Show()
}

func (sw *SettingsWindow) confirmRemoveSource(source models.DataSource, remove func()) {
	dialog.ShowConfirm("Remove Data Source",
		fmt.Sprintf("Are you sure you want to remove '%s'?", source.Name),
		func(confirmed bool) {
			if confirmed {
				remove()
			}
		}, sw.window)
}

// validateSourceLocation accepts http(s) URLs and paths to existing files
func validateSourceLocation(location string, exists func(string) bool) error {
	if location == "" {
		return errors.New("location is required")
	}
	if exists != nil && exists(location) {
		return errors.New("this data source has already been added")
	}

	source := models.DataSource{Location: location}
	if source.IsRemote() {
		if len(location) < 10 {
			return errors.New("please enter a valid URL (http:// or https://)")
		}
		return nil
	}

	info, err := os.Stat(location)
	if err != nil {
		return fmt.Errorf("file not found: %s", location)
	}
	if info.IsDir() {
		return errors.New("location must be a file, not a directory")
	}
	return nil
}
