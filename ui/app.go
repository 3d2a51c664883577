package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"ring-tool/internal/sizes"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, tbl *sizes.Table, defaultSystem string) fyne.Window {
	win := app.NewWindow("Ring Size Generator")
	win.Resize(NewWindowSize())

	pickerForm := NewPickerForm(tbl, defaultSystem)
	planeView := NewPlaneView()
	statusLine := NewStatusLine()
	controls := NewControls(pickerForm, planeView, statusLine)

	prefs := app.Preferences()
	pickerForm.LoadPreferences(prefs)

	leftPanel := container.NewVBox(
		pickerForm.Container(),
		controls.Container(),
	)

	rightPanel := container.NewBorder(nil, statusLine.Container(), nil, nil, planeView)

	content := container.NewHSplit(leftPanel, rightPanel)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	hasTray := SetupTray(app, win)

	win.SetCloseIntercept(func() {
		pickerForm.SavePreferences(prefs)
		if hasTray {
			win.Hide()
			return
		}
		win.Close()
	})

	return win
}

// ShowLoadError reports a sizing table failure in a bare window and exits
// the app once the user dismisses it. Used before any picker is shown.
func ShowLoadError(app fyne.App, err error) {
	win := app.NewWindow("Ring Size Generator")
	win.Resize(fyne.NewSize(420, 160))

	d := dialog.NewError(err, win)
	d.SetOnClosed(app.Quit)
	win.Show()
	d.Show()
	app.Run()
}
