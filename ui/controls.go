package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ring-tool/internal/export"
	"ring-tool/internal/flow"
	"ring-tool/internal/format"
)

// Controls manages the Generate/Clear/Save buttons and wires the picker
// to the work plane.
type Controls struct {
	generateBtn *widget.Button
	clearBtn    *widget.Button
	saveBtn     *widget.Button

	pickerForm *PickerForm
	planeView  *PlaneView
	statusLine *StatusLine

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(pf *PickerForm, pv *PlaneView, sl *StatusLine) *Controls {
	c := &Controls{
		pickerForm: pf,
		planeView:  pv,
		statusLine: sl,
	}

	c.generateBtn = widget.NewButton("Generate", c.onGenerate)
	c.generateBtn.Importance = widget.HighImportance
	c.clearBtn = widget.NewButton("Clear", c.onClear)
	c.saveBtn = widget.NewButton("Save SVG", c.onSave)

	c.container = container.NewHBox(c.generateBtn, c.clearBtn, c.saveBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) onGenerate() {
	circle, err := c.pickerForm.Circle()
	if err != nil {
		c.statusLine.ShowError(err)
		return
	}

	if err := c.planeView.DrawCircle(circle); err != nil {
		c.statusLine.ShowError(&flow.DrawError{Circle: circle, Err: err})
		return
	}

	c.statusLine.ShowMessage(format.CreatedMessage(circle))
}

func (c *Controls) onClear() {
	c.planeView.Clear()
	c.statusLine.ShowMessage("Plane cleared.")
}

func (c *Controls) onSave() {
	circle := c.planeView.Circle()
	if circle == nil {
		c.statusLine.ShowMessage("Nothing to save. Generate a circle first.")
		return
	}

	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if saveErr := export.WriteSVG(path, *circle); saveErr != nil {
			c.statusLine.ShowError(saveErr)
			return
		}
		c.statusLine.ShowMessage(fmt.Sprintf("Saved circle to %s", path))
	}, win[0])
	d.SetFileName(export.CircleFileName(*circle, time.Now()))
	d.Show()
}
