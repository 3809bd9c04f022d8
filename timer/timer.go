// Package timer contains the domain logic for potion-aware countdowns: the
// duration parser and formatters, the builder/research categories with their
// multipliers, and the Registry that owns the running timers.
//
// Maintenance notes:
//   - Registry is not safe for concurrent use. It is owned by the control
//     loop goroutine, which serializes ticks and user commands; everything
//     else reads the immutable View values it publishes.
//   - Advance is a pure function. Keep decay, pruning and the soonest
//     completion derivation inside it so they stay testable without a clock.
package timer

import (
	"math"

	"github.com/google/uuid"
)

// IdleTitle is shown as the window title when no timer is running.
const IdleTitle = "Clash of Clans Timer App"

// Timer is a single countdown.
type Timer struct {
	ID        uuid.UUID
	Remaining Seconds
	Category  Category
}

// Adjusted returns the wall-clock seconds left under settings s.
func (t Timer) Adjusted(s Settings) float64 {
	return float64(t.Remaining) / float64(MultiplierFor(t.Category, s))
}

// Tick is the outcome of advancing a set of timers by one second.
type Tick struct {
	Timers  []Timer
	Expired []Timer

	// Soonest is the smallest adjusted remaining time among Timers. It is
	// only meaningful when HasSoonest is true.
	Soonest    float64
	HasSoonest bool
}

// Advance decays every timer by its multiplier, prunes the ones that reach
// zero and derives the soonest completion among the survivors. The input
// slice is not modified.
func Advance(timers []Timer, s Settings) Tick {
	var res Tick
	res.Soonest = math.Inf(1)

	for _, t := range timers {
		t.Remaining -= Seconds(MultiplierFor(t.Category, s))
		if t.Remaining <= 0 {
			t.Remaining = 0
			res.Expired = append(res.Expired, t)
			continue
		}
		res.Timers = append(res.Timers, t)

		if adj := t.Adjusted(s); adj < res.Soonest {
			res.Soonest = adj
		}
	}

	res.HasSoonest = len(res.Timers) > 0
	if !res.HasSoonest {
		res.Soonest = 0
	}
	return res
}

// SoonestTitle renders a soonest completion value as MM:SS, rounding up.
func SoonestTitle(soonest float64) string {
	return FormatClock(Seconds(math.Ceil(soonest)))
}

// Registry owns the active timers and the potion settings.
type Registry struct {
	timers   []Timer
	settings Settings

	soonest    float64
	hasSoonest bool

	newID func() uuid.UUID
}

// NewRegistry creates an empty registry with both potions enabled.
func NewRegistry() *Registry {
	return &Registry{
		settings: DefaultSettings(),
		newID:    uuid.New,
	}
}

// Add parses raw and starts a timer of category c. Nothing is created when
// the input parses to zero.
func (r *Registry) Add(raw string, c Category) (uuid.UUID, bool) {
	d := Parse(raw)
	if d <= 0 {
		return uuid.Nil, false
	}

	t := Timer{ID: r.newID(), Remaining: d, Category: c}
	r.timers = append(r.timers, t)
	return t.ID, true
}

// Remove deletes the timer with the given id, if any.
func (r *Registry) Remove(id uuid.UUID) {
	for i, t := range r.timers {
		if t.ID == id {
			r.timers = append(r.timers[:i:i], r.timers[i+1:]...)
			return
		}
	}
}

// Clear drops every timer.
func (r *Registry) Clear() {
	r.timers = nil
}

// SetMultiplierEnabled toggles the potion for c. It takes effect on the
// next tick.
func (r *Registry) SetMultiplierEnabled(c Category, enabled bool) {
	r.settings = r.settings.With(c, enabled)
}

// Settings returns the current potion settings.
func (r *Registry) Settings() Settings {
	return r.settings
}

// Len returns the number of running timers.
func (r *Registry) Len() int {
	return len(r.timers)
}

// Timers returns a copy of the running timers in insertion order.
func (r *Registry) Timers() []Timer {
	out := make([]Timer, len(r.timers))
	copy(out, r.timers)
	return out
}

// Tick advances every timer by one real second.
func (r *Registry) Tick() Tick {
	res := Advance(r.timers, r.settings)
	r.timers = res.Timers
	r.soonest, r.hasSoonest = res.Soonest, res.HasSoonest
	return res
}

// Soonest returns the soonest completion derived on the last tick.
func (r *Registry) Soonest() (float64, bool) {
	return r.soonest, r.hasSoonest
}

// Title returns the soonest completion as MM:SS, or IdleTitle.
func (r *Registry) Title() string {
	if !r.hasSoonest {
		return IdleTitle
	}
	return SoonestTitle(r.soonest)
}

// Row is a render-ready view of one timer.
type Row struct {
	ID         uuid.UUID
	Category   Category
	Remaining  Seconds
	Multiplier int

	// Full is FormatFull(Remaining). Dominant is FormatDominantUnit of the
	// adjusted remaining time.
	Full     string
	Dominant string
}

// Boosted reports whether a potion speeds this timer up.
func (r Row) Boosted() bool {
	return r.Multiplier > 1
}

// View is an immutable snapshot of the registry.
type View struct {
	Rows     []Row
	Settings Settings
	Title    string
	Idle     bool

	// Expired holds the timers pruned by the tick that produced this view.
	Expired []Timer
}

// Snapshot builds a View of the current state.
func (r *Registry) Snapshot() View {
	v := View{
		Rows:     make([]Row, 0, len(r.timers)),
		Settings: r.settings,
		Title:    r.Title(),
		Idle:     !r.hasSoonest,
	}
	for _, t := range r.timers {
		v.Rows = append(v.Rows, NewRow(t, r.settings))
	}
	return v
}

// NewRow renders t under settings s.
func NewRow(t Timer, s Settings) Row {
	return Row{
		ID:         t.ID,
		Category:   t.Category,
		Remaining:  t.Remaining,
		Multiplier: MultiplierFor(t.Category, s),
		Full:       FormatFull(t.Remaining),
		Dominant:   FormatDominantUnit(Seconds(t.Adjusted(s))),
	}
}
