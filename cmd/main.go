package main

import (
	"log"
	"time"

	"loadbar/internal/core/indicator"
	"loadbar/internal/storage"
	"loadbar/internal/ui/bar"
	"loadbar/internal/ui/preferences"
	"loadbar/internal/ui/tray"
	"loadbar/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "LoadBar"

func main() {
	fyneApp := app.NewWithID("com.loadbar.demo")
	fyneApp.SetIcon(resources.MustIcon("loadbar.svg"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	window := fyneApp.NewWindow("LoadBar Demo")
	barElement := bar.New(window)
	controller := indicator.New(barElement, indicator.WithStyle(settings.StyleOverrides()))

	var trayManager *tray.Manager
	setLoading := func(loading bool, status string) {
		if trayManager != nil {
			trayManager.SetLoading(loading)
			trayManager.SetStatus(status)
		}
	}

	startLoad := func() {
		controller.Start(false)
		setLoading(true, "loading")
	}
	finishLoad := func() {
		controller.Done(false)
		setLoading(false, "idle")
	}
	cancelLoad := func() {
		controller.Cancel()
		setLoading(false, "idle")
	}
	simulateLoad := func() {
		duration := settings.Simulate
		startLoad()
		go func() {
			time.Sleep(duration)
			fyne.Do(finishLoad)
		}()
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		barElement.SetStyle(indicator.DefaultStyle().Merge(updated.StyleOverrides()))
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	content := container.NewVBox(
		widget.NewLabel("Drive the loading indicator from the buttons below or the system tray."),
		container.NewHBox(
			widget.NewButton("Start", startLoad),
			widget.NewButton("Finish", finishLoad),
			widget.NewButton("Cancel", cancelLoad),
			widget.NewButton("Simulate a load", simulateLoad),
		),
	)
	window.SetContent(barElement.Overlay(content))
	window.Resize(fyne.NewSize(520, 240))

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnStart:       startLoad,
			OnDone:        finishLoad,
			OnCancel:      cancelLoad,
			OnSimulate:    simulateLoad,
			OnPreferences: func() { prefsWindow.Show() },
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon("loadbar.svg"))
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	window.Show()
	fyneApp.Run()
}
