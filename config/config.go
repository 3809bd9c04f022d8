// Package config loads the user settings file. Settings cover presentation
// only (language, alert sound, window size); timers themselves are never
// written to disk.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPath overrides the settings file location.
const EnvPath = "COCTIMERS_CONFIG"

const (
	appDir   = "coctimers"
	fileName = "config.yaml"

	minVolume = -5.0
	maxVolume = 2.0
)

type Config struct {
	Language string       `yaml:"language"`
	Sound    SoundConfig  `yaml:"sound"`
	Window   WindowConfig `yaml:"window"`
}

type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is a base-2 exponent: 0 is unchanged, -1 halves, 1 doubles.
	Volume float64 `yaml:"volume"`
	// File is an optional Ogg Vorbis file played instead of the built-in tone.
	File string `yaml:"file"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Sound: SoundConfig{
			Enabled: true,
		},
		Window: WindowConfig{
			Width:  360,
			Height: 520,
		},
	}
}

func (c *Config) normalize() {
	def := DefaultConfig()
	c.Language = strings.TrimSpace(c.Language)
	if c.Sound.Volume < minVolume {
		c.Sound.Volume = minVolume
	}
	if c.Sound.Volume > maxVolume {
		c.Sound.Volume = maxVolume
	}
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
}

// DefaultPath returns $COCTIMERS_CONFIG or config.yaml in the user config dir.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Manager owns the settings file.
type Manager struct {
	mu         sync.RWMutex
	config     *Config
	configPath string
}

// NewManager loads the settings at path, or at DefaultPath when path is
// empty. A missing file is created with the defaults.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	m := &Manager{configPath: path}
	err := m.Load()
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, os.ErrNotExist):
		m.config = DefaultConfig()
		if err := m.Save(); err != nil {
			return nil, err
		}
		log.Printf("Created settings file %s", path)
		return m, nil
	default:
		return nil, err
	}
}

// Load reads the settings file. Keys absent from the file keep their defaults.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return errors.Wrapf(err, "read %s", m.configPath)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse %s", m.configPath)
	}
	cfg.normalize()

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

// Save writes the current settings, creating the directory if needed.
func (m *Manager) Save() error {
	m.mu.RLock()
	data, err := yaml.Marshal(m.config)
	m.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "marshal settings")
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return errors.Wrap(err, "create settings dir")
	}
	return errors.Wrapf(os.WriteFile(m.configPath, data, 0o644), "write %s", m.configPath)
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.config
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.configPath
}

// Watch reloads the settings whenever the file is written and passes the
// new values to fn. It blocks until ctx is done. Parse errors are logged and
// the previous settings are kept.
func (m *Manager) Watch(ctx context.Context, fn func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are noticed.
	if err := w.Add(filepath.Dir(m.configPath)); err != nil {
		return errors.Wrap(err, "watch settings dir")
	}

	target := filepath.Clean(m.configPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := m.Load(); err != nil {
				log.WithError(err).Warn("settings reload failed")
				continue
			}
			fn(m.Get())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("settings watcher error")
		}
	}
}
