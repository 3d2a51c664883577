package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ring-tool/internal/flow"
	"ring-tool/internal/format"
	"ring-tool/internal/sizes"
)

// PickerForm holds the GUI selectors for sizing system and ring size.
type PickerForm struct {
	table *sizes.Table

	systemSelect *widget.Select
	systemName   *widget.Label
	sizeSelect   *widget.Select
	diameter     *widget.Label
	form         *fyne.Container
}

// NewPickerForm creates the selection form over the given table,
// preselecting defaultSystem when the table contains it.
func NewPickerForm(tbl *sizes.Table, defaultSystem string) *PickerForm {
	pf := &PickerForm{table: tbl}

	pf.systemName = widget.NewLabel("")
	pf.systemName.Wrapping = fyne.TextWrapWord
	pf.systemName.TextStyle = fyne.TextStyle{Italic: true}

	pf.diameter = widget.NewLabel("(select size)")

	pf.sizeSelect = widget.NewSelect(nil, pf.onSizeChanged)
	pf.sizeSelect.PlaceHolder = "(select size)"

	pf.systemSelect = widget.NewSelect(tbl.Codes(), pf.onSystemChanged)
	pf.systemSelect.SetSelected(systemOrDefault(tbl, "", defaultSystem))

	pf.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("System", pf.systemSelect),
			widget.NewFormItem("Size", pf.sizeSelect),
		),
		pf.systemName,
		pf.diameter,
	)

	return pf
}

// Container returns the form's Fyne container.
func (pf *PickerForm) Container() *fyne.Container {
	return pf.form
}

// Selection returns the selected system code and size label. Either may
// be empty while nothing is picked yet.
func (pf *PickerForm) Selection() (system, size string) {
	return pf.systemSelect.Selected, pf.sizeSelect.Selected
}

// Circle builds the circle for the current selection.
// Fails when the selection is incomplete or not in the table.
func (pf *PickerForm) Circle() (flow.Circle, error) {
	system, size := pf.Selection()
	return resolveSelection(pf.table, system, size)
}

// LoadPreferences restores the last selections from persistent preferences.
func (pf *PickerForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("picker.system"); v != "" {
		pf.systemSelect.SetSelected(systemOrDefault(pf.table, v, pf.systemSelect.Selected))
	}
	if v := prefs.String("picker.size"); v != "" {
		if sys, ok := pf.table.System(pf.systemSelect.Selected); ok {
			if label := labelOrEmpty(sys, v); label != "" {
				pf.sizeSelect.SetSelected(label)
			}
		}
	}
}

// SavePreferences persists the current selections.
func (pf *PickerForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("picker.system", pf.systemSelect.Selected)
	prefs.SetString("picker.size", pf.sizeSelect.Selected)
}

func (pf *PickerForm) onSystemChanged(code string) {
	sys, ok := pf.table.System(code)
	if !ok {
		return
	}

	pf.systemName.SetText(format.SystemTitle(sys))
	pf.sizeSelect.Options = sys.Labels()
	pf.sizeSelect.SetSelectedIndex(0)
}

func (pf *PickerForm) onSizeChanged(label string) {
	if label == "" {
		pf.diameter.SetText("(select size)")
		return
	}

	sys, ok := pf.table.System(pf.systemSelect.Selected)
	if !ok {
		return
	}
	if d, ok := sys.Lookup(label); ok {
		pf.diameter.SetText(format.DiameterLine(d))
	}
}
