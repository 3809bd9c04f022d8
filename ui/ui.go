package ui

import (
	"fmt"
	"image/color"

	"CoCTimers/i18n"
	"CoCTimers/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// InputPlaceholder hints at the accepted duration format.
const InputPlaceholder = "1h30m20s / 1w2d3h"

// App is what the window needs from the application.
type App interface {
	// AddTimer reports whether raw parsed to a positive duration.
	AddTimer(raw string, c timer.Category) bool
	RemoveTimer(id uuid.UUID)
	ClearAll()
	SetMultiplierEnabled(c timer.Category, enabled bool)
	CategoryConfigs() timer.CategoryConfigs
}

// MainWindow renders timer views published by the control loop.
type MainWindow struct {
	fyne.Window

	app      App
	configs  timer.CategoryConfigs
	selected timer.Category
	rows     []timer.Row

	potionChecks  map[timer.Category]*widget.Check
	categoryRadio *widget.RadioGroup
	entry         *widget.Entry
	addButton     *widget.Button
	resetButton   *widget.Button
	list          *widget.List
	emptyLabel    *widget.Label
}

// PotionLabel returns the checkbox label for a category's potion.
func PotionLabel(cfg *timer.CategoryConfig) string {
	all := timer.DefaultSettings()
	return i18n.Tf("PotionToggle", "Use {{.Potion}} ({{.Multiplier}}x speed)", map[string]any{
		"Potion":     i18n.T(cfg.Potion),
		"Multiplier": timer.MultiplierFor(cfg.Category, all),
	})
}

// RowText formats one timer line, e.g. "[Builder] 1h 30m 20s (9m)".
func RowText(name string, r timer.Row) string {
	s := fmt.Sprintf("[%s] %s", name, r.Full)
	if r.Boosted() {
		s += fmt.Sprintf(" (%s)", r.Dominant)
	}
	return s
}

// CreateMainWindow builds the main window. Potions start enabled, matching
// timer.DefaultSettings.
func CreateMainWindow(a App, fyneApp fyne.App) *MainWindow {
	w := &MainWindow{
		Window:       fyneApp.NewWindow(i18n.T(timer.IdleTitle)),
		app:          a,
		configs:      a.CategoryConfigs(),
		selected:     timer.Builder,
		potionChecks: make(map[timer.Category]*widget.Check),
	}

	header := canvas.NewText(i18n.T(timer.IdleTitle), color.White)
	header.TextStyle.Bold = true
	header.TextSize = timer.FontSizeTitle
	header.Alignment = fyne.TextAlignCenter

	checks := container.NewVBox()
	defaults := timer.DefaultSettings()
	for _, c := range timer.Categories {
		c := c
		check := widget.NewCheck(PotionLabel(w.configs[c]), nil)
		check.SetChecked(defaults.Enabled(c))
		check.OnChanged = func(on bool) {
			a.SetMultiplierEnabled(c, on)
			w.Canvas().Focus(nil)
		}
		w.potionChecks[c] = check
		checks.Add(check)
	}

	labels := make([]string, 0, len(timer.Categories))
	byLabel := make(map[string]timer.Category)
	for _, c := range timer.Categories {
		label := i18n.T(w.configs.Name(c) + " Timer")
		labels = append(labels, label)
		byLabel[label] = c
	}
	w.categoryRadio = widget.NewRadioGroup(labels, func(s string) {
		if c, ok := byLabel[s]; ok {
			w.selected = c
		}
	})
	w.categoryRadio.Required = true
	w.categoryRadio.SetSelected(labels[0])

	w.entry = widget.NewEntry()
	w.entry.SetPlaceHolder(InputPlaceholder)
	w.entry.OnSubmitted = func(string) { w.submit() }
	w.addButton = widget.NewButton(i18n.T("Add"), w.submit)

	sizeEnforcer := canvas.NewRectangle(color.Transparent)
	sizeEnforcer.SetMinSize(fyne.NewSize(timer.EntryMinWidth, 0))
	inputWrapper := container.New(layout.NewStackLayout(), sizeEnforcer, w.entry)
	inputRow := container.NewHBox(
		layout.NewSpacer(),
		widget.NewLabel(i18n.T("Time Input:")),
		inputWrapper,
		w.addButton,
		layout.NewSpacer(),
	)

	timersHeader := canvas.NewText(i18n.T("Timers"), color.White)
	timersHeader.TextStyle.Bold = true
	timersHeader.TextSize = timer.FontSizeRow
	timersHeader.Alignment = fyne.TextAlignCenter

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, timer.ControlsSpacing))

	top := container.NewVBox(
		header,
		container.NewCenter(checks),
		spacer,
		container.NewCenter(w.categoryRadio),
		inputRow,
		timersHeader,
	)

	w.list = widget.NewList(
		func() int { return len(w.rows) },
		func() fyne.CanvasObject { return NewTimerRow() },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < 0 || i >= len(w.rows) {
				return
			}
			r := w.rows[i]
			row := o.(*TimerRow)
			row.SetRow(RowText(i18n.T(w.configs.Name(r.Category)), r), r.Boosted(), func() {
				a.RemoveTimer(r.ID)
			})
		},
	)
	w.emptyLabel = widget.NewLabel(i18n.T("No timers"))
	w.emptyLabel.Alignment = fyne.TextAlignCenter

	w.resetButton = widget.NewButton(i18n.T("Reset Timers"), a.ClearAll)
	bottom := container.NewCenter(w.resetButton)

	w.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewStack(w.list, w.emptyLabel)))
	w.Resize(fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
	w.Canvas().Focus(w.entry)
	return w
}

func (w *MainWindow) submit() {
	if w.app.AddTimer(w.entry.Text, w.selected) {
		w.entry.SetText("")
	}
}

// Render shows v. It must run on the fyne thread; use fyne.Do from other
// goroutines.
func (w *MainWindow) Render(v timer.View) {
	w.rows = v.Rows
	w.list.Refresh()

	if len(v.Rows) == 0 {
		w.emptyLabel.Show()
	} else {
		w.emptyLabel.Hide()
	}

	if v.Idle {
		w.SetTitle(i18n.T(timer.IdleTitle))
	} else {
		w.SetTitle(v.Title)
	}
}

// TimerRow is one line of the timer list with a remove button.
type TimerRow struct {
	widget.BaseWidget
	label    *widget.Label
	remove   *widget.Button
	onRemove func()
}

func NewTimerRow() *TimerRow {
	r := &TimerRow{label: widget.NewLabel("")}
	r.remove = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if r.onRemove != nil {
			r.onRemove()
		}
	})
	r.remove.Importance = widget.LowImportance
	r.ExtendBaseWidget(r)
	return r
}

func (r *TimerRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, r.remove, r.label))
}

// SetRow updates the text and the remove action.
func (r *TimerRow) SetRow(text string, boosted bool, onRemove func()) {
	r.onRemove = onRemove
	if boosted {
		r.label.Importance = widget.SuccessImportance
	} else {
		r.label.Importance = widget.MediumImportance
	}
	r.label.SetText(text)
}

// Text returns the rendered line.
func (r *TimerRow) Text() string {
	return r.label.Text
}

// Remove triggers the remove button.
func (r *TimerRow) Remove() {
	r.remove.OnTapped()
}
