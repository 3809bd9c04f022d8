package timer

import (
	"strings"

	"github.com/pkg/errors"
)

// Category selects which potion multiplier applies to a timer.
type Category int

const (
	Builder Category = iota
	Research
)

// Categories lists every category in display order.
var Categories = []Category{Builder, Research}

// Potion speed-ups.
const (
	BuilderPotionMultiplier  = 10
	ResearchPotionMultiplier = 24
)

// ErrInvalidCategory is returned when decoding an unknown category name.
var ErrInvalidCategory = errors.New("invalid category")

func (c Category) String() string {
	switch c {
	case Builder:
		return "builder"
	case Research:
		return "research"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case Builder, Research:
		return []byte(c.String()), nil
	}
	return nil, errors.Wrapf(ErrInvalidCategory, "%d", int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	cat, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = cat
	return nil
}

// ParseCategory accepts "builder" or "research" in any case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "builder":
		return Builder, nil
	case "research":
		return Research, nil
	}
	return 0, errors.Wrapf(ErrInvalidCategory, "%q", s)
}

// Settings holds the potion toggles. The zero value has both potions off;
// use DefaultSettings for the startup state.
type Settings struct {
	BuilderPotion  bool
	ResearchPotion bool
}

// DefaultSettings returns both potions enabled.
func DefaultSettings() Settings {
	return Settings{BuilderPotion: true, ResearchPotion: true}
}

// Enabled reports whether the potion for c is on.
func (s Settings) Enabled(c Category) bool {
	switch c {
	case Builder:
		return s.BuilderPotion
	case Research:
		return s.ResearchPotion
	}
	return false
}

// With returns a copy of s with the potion for c set to enabled.
func (s Settings) With(c Category, enabled bool) Settings {
	switch c {
	case Builder:
		s.BuilderPotion = enabled
	case Research:
		s.ResearchPotion = enabled
	}
	return s
}

// MultiplierFor returns how many timer seconds elapse per real second.
func MultiplierFor(c Category, s Settings) int {
	switch c {
	case Builder:
		if s.BuilderPotion {
			return BuilderPotionMultiplier
		}
		return 1
	case Research:
		if s.ResearchPotion {
			return ResearchPotionMultiplier
		}
		return 1
	}
	return 1
}
