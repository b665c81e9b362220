package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

func newAutostartApp() (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	return &autostart.App{
		Name:        "week-scheduler",
		DisplayName: "Week Scheduler",
		Exec:        []string{execPath},
	}, nil
}

func setupAutostart(enable bool) error {
	app, err := newAutostartApp()
	if err != nil {
		return err
	}

	if enable == app.IsEnabled() {
		return nil
	}
	if enable {
		return app.Enable()
	}
	return app.Disable()
}
