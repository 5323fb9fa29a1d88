package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart       func()
	OnDone        func()
	OnCancel      func()
	OnSimulate    func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	doneItem    *fyne.MenuItem
	cancelItem  *fyne.MenuItem
	callbacks   Callbacks
	loading     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start loading", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})

	manager.doneItem = fyne.NewMenuItem("Finish loading", func() {
		if manager.callbacks.OnDone != nil {
			manager.callbacks.OnDone()
		}
	})
	manager.doneItem.Disabled = true

	manager.cancelItem = fyne.NewMenuItem("Cancel loading", func() {
		if manager.callbacks.OnCancel != nil {
			manager.callbacks.OnCancel()
		}
	})
	manager.cancelItem.Disabled = true

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetLoading toggles the loading-related menu items.
func (manager *Manager) SetLoading(loading bool) {
	manager.loading = loading
	manager.doneItem.Disabled = !loading
	manager.cancelItem.Disabled = !loading
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("LoadBar",
		manager.statusItem,
		manager.startItem,
		manager.doneItem,
		manager.cancelItem,
		fyne.NewMenuItem("Simulate a load", func() {
			if manager.callbacks.OnSimulate != nil {
				manager.callbacks.OnSimulate()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
