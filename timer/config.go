package timer

import (
	"encoding/json"
	"image/color"
	"sort"

	"github.com/pkg/errors"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// CategoryConfigPath is the embedded location of the category configuration.
const CategoryConfigPath = "assets/categories.json"

// UI constants
const (
	FontSizeTitle float32 = 20.0
	FontSizeRow   float32 = 16.0

	// Dimensions
	WindowWidth     = 360
	WindowHeight    = 520
	EntryMinWidth   = 180
	RowSpacing      = 1
	ControlsSpacing = 5
	CornerRadius    = 10.0
)

var (
	// BackgroundColor is the base background color of the window.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	// BoostedColor highlights timers sped up by a potion.
	BoostedColor = color.NRGBA{R: 0x7c, G: 0xd9, B: 0x5a, A: 0xff}
)

// CategoryConfig holds the static display configuration for a category.
type CategoryConfig struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Potion   string   `json:"potion"`
	AlertHz  float64  `json:"alert_hz"`
	Priority int      `json:"priority"`
}

// CategoryConfigs maps each category to its configuration.
type CategoryConfigs map[Category]*CategoryConfig

// LoadCategoryConfigs reads and validates the embedded category configuration.
// Every category must be configured exactly once.
func LoadCategoryConfigs(reader AppContentReader) (CategoryConfigs, error) {
	data, err := reader.ReadFile(CategoryConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "read category configs")
	}

	var list []*CategoryConfig
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "unmarshal category configs")
	}

	configs := make(CategoryConfigs, len(list))
	for _, cfg := range list {
		if _, dup := configs[cfg.Category]; dup {
			return nil, errors.Errorf("category %s configured twice", cfg.Category)
		}
		configs[cfg.Category] = cfg
	}
	for _, c := range Categories {
		if _, ok := configs[c]; !ok {
			return nil, errors.Errorf("category %s not configured", c)
		}
	}
	return configs, nil
}

// Name returns the display name for c, falling back to its identifier.
func (cc CategoryConfigs) Name(c Category) string {
	if cfg, ok := cc[c]; ok && cfg.Name != "" {
		return cfg.Name
	}
	return c.String()
}

// ByPriority sorts timers so the highest priority category comes first.
func (cc CategoryConfigs) ByPriority(timers []Timer) {
	sort.SliceStable(timers, func(i, j int) bool {
		return cc.priority(timers[i].Category) > cc.priority(timers[j].Category)
	})
}

func (cc CategoryConfigs) priority(c Category) int {
	if cfg, ok := cc[c]; ok {
		return cfg.Priority
	}
	return 0
}
