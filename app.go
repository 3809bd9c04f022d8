// Package main contains the application wiring and the AppManager which
// coordinates the timer loop, alert audio and the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: the timer registry lives inside control.Loop and is
//     only touched by the loop goroutine. The UI never reads it directly;
//     it sends commands through the AppManager and renders the timer.View
//     values the loop publishes. Rendering is marshalled onto the fyne
//     thread with fyne.Do.
//   - Commands are enqueued with a short timeout and dropped when the queue
//     stays full (see control.Loop.Enqueue). The UI waits briefly for the
//     reply so a click is reflected before the next tick in the common case.
//   - `configs` is loaded during startup and is treated as immutable after
//     `NewAppManager` returns.
package main

import (
	"context"
	"time"

	"CoCTimers/config"
	"CoCTimers/control"
	"CoCTimers/timer"
	"CoCTimers/ui"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const replyTimeout = 200 * time.Millisecond

// Renderer displays timer views.
type Renderer interface {
	Render(timer.View)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow Renderer
	loop       *control.Loop
	configs    timer.CategoryConfigs
	alerts     *AlertPlayer

	// runOnMain schedules f on the UI thread.
	runOnMain func(f func())
}

// NewAppManager creates a new application manager.
func NewAppManager(content timer.AppContentReader, sound config.SoundConfig) *AppManager {
	configs, err := timer.LoadCategoryConfigs(content)
	if err != nil {
		log.Fatalf("Failed to load category configs: %v", err)
	}
	log.Printf("Loaded %d category configs.", len(configs))

	a := &AppManager{
		configs:   configs,
		alerts:    NewAlertPlayer(sound),
		runOnMain: fyne.Do,
	}
	a.loop = control.NewLoop(a.onUpdate)
	return a
}

// Start runs the timer loop until ctx is cancelled or the handle is stopped.
func (a *AppManager) Start(ctx context.Context) *control.Handle {
	return a.loop.Start(ctx)
}

// CategoryConfigs returns the category display configuration.
func (a *AppManager) CategoryConfigs() timer.CategoryConfigs {
	return a.configs
}

// AddTimer queues a new timer and reports whether raw parsed to a positive
// duration.
func (a *AppManager) AddTimer(raw string, c timer.Category) bool {
	if timer.Parse(raw) <= 0 {
		return false
	}
	a.send(control.Add(raw, c))
	return true
}

// RemoveTimer removes a timer by id.
func (a *AppManager) RemoveTimer(id uuid.UUID) {
	a.send(control.Remove(id))
}

// ClearAll removes every timer.
func (a *AppManager) ClearAll() {
	a.send(control.Clear())
}

// SetMultiplierEnabled toggles a potion.
func (a *AppManager) SetMultiplierEnabled(c timer.Category, enabled bool) {
	log.WithFields(log.Fields{"category": c, "enabled": enabled}).Debug("potion toggled")
	a.send(control.SetMultiplier(c, enabled))
}

// ApplySettings picks up a reloaded settings file.
func (a *AppManager) ApplySettings(cfg config.Config) {
	log.Printf("Settings reloaded.")
	a.alerts.Apply(cfg.Sound)
}

func (a *AppManager) send(cmd control.Command) {
	reply := make(chan error, 1)
	cmd.Reply = reply
	if !a.loop.Enqueue(cmd) {
		return
	}
	select {
	case <-reply:
	case <-time.After(replyTimeout):
	}
}

func (a *AppManager) onUpdate(v timer.View) {
	if len(v.Expired) > 0 {
		expired := append([]timer.Timer(nil), v.Expired...)
		a.configs.ByPriority(expired)
		first := a.configs[expired[0].Category]
		log.WithField("category", first.Category).Printf("Timer finished, %d expired this tick", len(expired))
		a.alerts.Play(first.AlertHz)
	}

	if a.mainWindow == nil {
		return
	}
	a.runOnMain(func() {
		a.mainWindow.Render(v)
	})
}

var _ ui.App = (*AppManager)(nil)
