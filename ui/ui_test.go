package ui

import (
	"testing"

	"CoCTimers/timer"

	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addCall struct {
	raw      string
	category timer.Category
}

type toggle struct {
	category timer.Category
	enabled  bool
}

type fakeApp struct {
	added   []addCall
	removed []uuid.UUID
	cleared int
	toggles []toggle
}

func (f *fakeApp) AddTimer(raw string, c timer.Category) bool {
	f.added = append(f.added, addCall{raw, c})
	return timer.Parse(raw) > 0
}

func (f *fakeApp) RemoveTimer(id uuid.UUID) { f.removed = append(f.removed, id) }
func (f *fakeApp) ClearAll()                { f.cleared++ }

func (f *fakeApp) SetMultiplierEnabled(c timer.Category, enabled bool) {
	f.toggles = append(f.toggles, toggle{c, enabled})
}

func (f *fakeApp) CategoryConfigs() timer.CategoryConfigs {
	return timer.CategoryConfigs{
		timer.Builder:  {Category: timer.Builder, Name: "Builder", Potion: "Builder Potion"},
		timer.Research: {Category: timer.Research, Name: "Research", Potion: "Research Potion"},
	}
}

func TestSubmitAddsTimerAndClearsEntry(t *testing.T) {
	f := &fakeApp{}
	w := CreateMainWindow(f, test.NewTempApp(t))

	test.Type(w.entry, "2m")
	test.Tap(w.addButton)
	require.Len(t, f.added, 1)
	assert.Equal(t, addCall{"2m", timer.Builder}, f.added[0])
	assert.Empty(t, w.entry.Text)

	test.Type(w.entry, "junk")
	test.Tap(w.addButton)
	assert.Equal(t, "junk", w.entry.Text)

	w.entry.SetText("")
	w.categoryRadio.SetSelected("Research Timer")
	test.Type(w.entry, "1h")
	w.entry.OnSubmitted(w.entry.Text)
	require.Len(t, f.added, 3)
	assert.Equal(t, addCall{"1h", timer.Research}, f.added[2])
}

func TestPotionChecks(t *testing.T) {
	f := &fakeApp{}
	w := CreateMainWindow(f, test.NewTempApp(t))

	assert.Equal(t, "Use Builder Potion (10x speed)", w.potionChecks[timer.Builder].Text)
	assert.Equal(t, "Use Research Potion (24x speed)", w.potionChecks[timer.Research].Text)
	assert.True(t, w.potionChecks[timer.Builder].Checked)
	assert.Empty(t, f.toggles)

	test.Tap(w.potionChecks[timer.Research])
	assert.Equal(t, []toggle{{timer.Research, false}}, f.toggles)
}

func TestResetButton(t *testing.T) {
	f := &fakeApp{}
	w := CreateMainWindow(f, test.NewTempApp(t))

	test.Tap(w.resetButton)
	test.Tap(w.resetButton)
	assert.Equal(t, 2, f.cleared)
}

func TestRender(t *testing.T) {
	f := &fakeApp{}
	w := CreateMainWindow(f, test.NewTempApp(t))
	assert.Equal(t, timer.IdleTitle, w.Title())

	r := timer.NewRegistry()
	r.Add("2m", timer.Builder)
	r.Add("1h", timer.Research)
	r.Tick()

	w.Render(r.Snapshot())
	assert.Equal(t, 2, w.list.Length())
	assert.Equal(t, "00:11", w.Title())
	assert.False(t, w.emptyLabel.Visible())

	r.Clear()
	r.Tick()
	w.Render(r.Snapshot())
	assert.Equal(t, 0, w.list.Length())
	assert.Equal(t, timer.IdleTitle, w.Title())
	assert.True(t, w.emptyLabel.Visible())
}

func TestRowText(t *testing.T) {
	boosted := timer.NewRow(timer.Timer{Remaining: 5420, Category: timer.Builder}, timer.DefaultSettings())
	assert.Equal(t, "[Builder] 1h 30m 20s (9m)", RowText("Builder", boosted))

	plain := timer.NewRow(timer.Timer{Remaining: 5420, Category: timer.Builder}, timer.Settings{})
	assert.Equal(t, "[Builder] 1h 30m 20s", RowText("Builder", plain))
}

func TestTimerRowRemove(t *testing.T) {
	test.NewTempApp(t)

	var removed bool
	row := NewTimerRow()
	row.SetRow("[Builder] 05s", false, func() { removed = true })
	assert.Equal(t, "[Builder] 05s", row.Text())

	row.Remove()
	assert.True(t, removed)
}
