package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// SetupTray installs a system tray entry that re-shows the main window on
// demand. Returns false on platforms without a tray; the caller then lets
// the window close normally instead of hiding it.
func SetupTray(app fyne.App, win fyne.Window) bool {
	desk, ok := app.(desktop.App)
	if !ok {
		return false
	}

	menu := fyne.NewMenu("Ring Size Generator",
		fyne.NewMenuItem("Show Ring Size Generator", func() {
			win.Show()
			win.RequestFocus()
		}),
	)
	desk.SetSystemTrayMenu(menu)
	return true
}
