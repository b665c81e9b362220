package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const trayBookedLimit = 5

func (ws *WeekScheduler) setupSystemTray() {
	ws.updateSystemTrayMenu()
}

func (ws *WeekScheduler) updateSystemTrayMenu() {
	desk, ok := ws.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	// Occupied slots of today at the top
	booked := ws.schedulerWindow.todayOccupied(trayBookedLimit)
	if len(booked) > 0 {
		headerItem := fyne.NewMenuItem("Booked Today:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, slot := range booked {
			slotItem := fyne.NewMenuItem("  "+slot, nil)
			slotItem.Disabled = true
			menuItems = append(menuItems, slotItem)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Open Scheduler", func() {
			ws.schedulerWindow.Show()
		}),
		fyne.NewMenuItem("Today", func() {
			ws.schedulerWindow.goToToday()
			ws.schedulerWindow.Show()
		}),
		fyne.NewMenuItem("Reload Data", func() {
			ws.reloadData()
		}),
		fyne.NewMenuItem("Settings", func() {
			ws.showSettingsWindow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	quitItem := fyne.NewMenuItem("Quit", func() {
		ws.quit()
	})
	quitItem.IsQuit = true
	menuItems = append(menuItems, quitItem)

	menu := fyne.NewMenu("Week Scheduler", menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.CalendarIcon())
}
