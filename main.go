package main

import (
	"context"
	"embed"
	"os"
	"strings"

	"CoCTimers/config"
	"CoCTimers/i18n"
	"CoCTimers/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"
)

//go:embed assets/*
var content embed.FS

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if strings.TrimSpace(os.Getenv("COCTIMERS_DEBUG")) != "" {
		log.SetLevel(log.DebugLevel)
	}

	cfg := *config.DefaultConfig()
	cfgManager, err := config.NewManager("")
	if err != nil {
		log.Printf("Using default settings. %v", err)
	} else {
		cfg = cfgManager.Get()
	}

	i18n.Init(cfg.Language)

	fyneApp := app.New()

	if iconBytes, err := content.ReadFile("assets/icon.png"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.png", iconBytes))
	} else {
		log.Printf("Failed to load icon. %v", err)
	}

	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	a := NewAppManager(content, cfg.Sound)

	w := ui.CreateMainWindow(a, fyneApp)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	a.mainWindow = w

	ctx, cancel := context.WithCancel(context.Background())
	ticker := a.Start(ctx)
	w.SetOnClosed(func() {
		cancel()
		ticker.Stop()
	})

	if cfgManager != nil {
		go func() {
			if err := cfgManager.Watch(ctx, a.ApplySettings); err != nil {
				log.Printf("Settings will not reload. %v", err)
			}
		}()
	}

	w.ShowAndRun()
	cancel()
	ticker.Stop()
}
