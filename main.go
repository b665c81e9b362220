package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/week-scheduler/pkg/availability"
	"github.com/borgmon/week-scheduler/pkg/config"
	"github.com/borgmon/week-scheduler/pkg/dataset"
	applogger "github.com/borgmon/week-scheduler/pkg/logger"
	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/borgmon/week-scheduler/pkg/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const appID = "com.borgmon.week-scheduler"

type WeekScheduler struct {
	app             fyne.App
	cfg             *config.Config
	logger          *zap.Logger
	settingsStore   *store.SettingsStore
	settings        *models.Settings
	loader          *dataset.Loader
	index           *availability.Index
	schedulerWindow *SchedulerWindow
	settingsWindow  *SettingsWindow
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := applogger.NewZapLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ws := &WeekScheduler{
		app:    app.NewWithID(appID),
		cfg:    cfg,
		logger: logger,
		index:  availability.NewIndex(nil),
	}

	if err := ws.initialize(); err != nil {
		logger.Fatal("Failed to start", zap.Error(err))
	}

	ws.run()
}

func (ws *WeekScheduler) initialize() error {
	ws.settingsStore = store.NewSettingsStore(ws.app)
	ws.settings = ws.settingsStore.Load()

	// First launch: seed the configured dataset path as the only source
	if ws.settings.NeedsConfiguration() && ws.cfg.DataPath != "" {
		ws.settings.DataSources = []models.DataSource{{
			ID:       uuid.New().String(),
			Name:     "Default",
			Location: ws.cfg.DataPath,
		}}
		if err := ws.settingsStore.Save(ws.settings); err != nil {
			return err
		}
	}

	// Sync autostart state with settings on startup
	if err := setupAutostart(ws.settings.AutoStart); err != nil {
		ws.logger.Warn("Failed to setup autostart", zap.Error(err))
	}

	now := time.Now()
	weeks := ws.cfg.RecurWeeks
	ws.loader = dataset.NewLoader(ws.logger,
		dataset.WithHTTPClient(&http.Client{Timeout: ws.cfg.FetchTimeout}),
		dataset.WithRecurrenceWindow(now.AddDate(0, 0, -7*weeks), now.AddDate(0, 0, 7*weeks)),
	)

	// Load synchronously so the first render already has data
	ws.loadData()

	ws.schedulerWindow = NewSchedulerWindow(ws.app, ws.index, ws.logger, now)
	ws.setupSystemTray()

	return nil
}

func (ws *WeekScheduler) run() {
	ws.schedulerWindow.Show()
	ws.app.Run()
}

func (ws *WeekScheduler) loadData() {
	ctx, cancel := context.WithTimeout(context.Background(), ws.cfg.FetchTimeout*time.Duration(len(ws.settings.DataSources)+1))
	defer cancel()

	records := ws.loader.LoadAll(ctx, ws.settings.DataSources)
	ws.index.Replace(records)
}

// reloadData loads datasets in the background and repaints when done
func (ws *WeekScheduler) reloadData() {
	go func() {
		ws.loadData()
		fyne.Do(func() {
			ws.schedulerWindow.Refresh()
			ws.updateSystemTrayMenu()
		})
	}()
}

func (ws *WeekScheduler) showSettingsWindow() {
	// If settings window already exists, just bring it to front
	if ws.settingsWindow != nil {
		ws.settingsWindow.window.RequestFocus()
		ws.settingsWindow.window.Show()
		return
	}

	ws.settingsWindow = NewSettingsWindow(ws.app, ws.settings, ws.logger, func(newSettings *models.Settings) error {
		if err := setupAutostart(newSettings.AutoStart); err != nil {
			return err
		}
		if err := ws.settingsStore.Save(newSettings); err != nil {
			return err
		}
		ws.settings = newSettings
		ws.reloadData()
		return nil
	}, ws.reloadData)

	ws.settingsWindow.window.SetOnClosed(func() {
		ws.settingsWindow = nil
	})

	ws.settingsWindow.Show()
}

func (ws *WeekScheduler) quit() {
	ws.app.Quit()
}
