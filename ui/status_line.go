package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusLine is the one-line feedback area under the work plane.
type StatusLine struct {
	label     *widget.Label
	container *fyne.Container
}

// NewStatusLine creates the status line with a neutral hint.
func NewStatusLine() *StatusLine {
	sl := &StatusLine{}

	sl.label = widget.NewLabel("Pick a sizing system and a size, then Generate.")
	sl.label.Wrapping = fyne.TextWrapWord

	sl.container = container.NewVBox(widget.NewSeparator(), sl.label)
	return sl
}

// Container returns the status line container.
func (sl *StatusLine) Container() *fyne.Container {
	return sl.container
}

// ShowMessage replaces the status text, safe to call from any goroutine.
func (sl *StatusLine) ShowMessage(msg string) {
	fyne.Do(func() {
		sl.label.Importance = widget.MediumImportance
		sl.label.SetText(msg)
	})
}

// ShowError shows an error in the status line, safe to call from any goroutine.
func (sl *StatusLine) ShowError(err error) {
	fyne.Do(func() {
		sl.label.Importance = widget.DangerImportance
		sl.label.SetText(fmt.Sprintf("Error: %v", err))
	})
}
