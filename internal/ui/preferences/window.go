package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	background *widget.Entry
	height     *widget.Entry
	simulate   *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("LoadBar Settings")

	background := widget.NewEntry()
	background.SetText(settings.Background)

	height := widget.NewEntry()
	height.SetText(fmt.Sprintf("%d", settings.HeightPx))

	simulate := widget.NewSlider(1, 10)
	simulate.Value = settings.Simulate.Seconds()
	simulate.Step = 1

	form := container.NewVBox(
		widget.NewLabelWithStyle("Indicator", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Bar color"), background),
		container.NewHBox(widget.NewLabel("Bar height"), height, widget.NewLabel("px")),
		widget.NewLabel("Simulated load length (seconds)"),
		simulate,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 260))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		background: background,
		height:     height,
		simulate:   simulate,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.background.SetText(settings.Background)
	prefs.height.SetText(fmt.Sprintf("%d", settings.HeightPx))
	prefs.simulate.Value = settings.Simulate.Seconds()
	prefs.simulate.Refresh()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if color, ok := parseHexNotation(prefs.background.Text); ok {
		settings.Background = color
	}
	if pixels, ok := parsePositiveInt(prefs.height.Text); ok {
		settings.HeightPx = pixels
	}
	settings.Simulate = time.Duration(prefs.simulate.Value) * time.Second

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func parseHexNotation(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return "", false
	}
	digits := value[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return "", false
	}
	return value, true
}
