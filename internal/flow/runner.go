package flow

import (
	"fmt"

	"ring-tool/internal/sizes"
)

// Prompt titles shown by every frontend.
const (
	SystemPrompt = "Select country or region"
	SizePrompt   = "Select ring size"
)

// Runner drives one pick-and-draw pass over a sizing table. It keeps no
// state between runs; every Run starts from the system prompt again.
type Runner struct {
	// DefaultSystem is preselected in the system prompt when the table
	// contains it. The prompt is still shown.
	DefaultSystem string
}

// Result reports what a run produced. Cancelled runs carry no circle and
// no error; dismissing a prompt is a normal outcome.
type Result struct {
	Circle    Circle
	Cancelled bool
}

// Run asks for a sizing system, then a size, resolves the diameter and
// hands the circle to the drawer.
func (r Runner) Run(tbl *sizes.Table, ch Chooser, dr Drawer) (Result, error) {
	preferred := ""
	if _, ok := tbl.System(r.DefaultSystem); ok {
		preferred = r.DefaultSystem
	}

	code, ok, err := ch.PresentChoice(SystemPrompt, tbl.Codes(), preferred)
	if err != nil {
		return Result{}, fmt.Errorf("system prompt: %w", err)
	}
	if !ok {
		return Result{Cancelled: true}, nil
	}
	system, found := tbl.System(code)
	if !found {
		return Result{}, fmt.Errorf("%w: %q", sizes.ErrUnknownSystem, code)
	}

	label, ok, err := ch.PresentChoice(SizePrompt, system.Labels(), "")
	if err != nil {
		return Result{}, fmt.Errorf("size prompt: %w", err)
	}
	if !ok {
		return Result{Cancelled: true}, nil
	}
	diameter, found := system.Lookup(label)
	if !found {
		return Result{}, fmt.Errorf("%w: %q in system %q", sizes.ErrUnknownLabel, label, code)
	}

	c := Circle{System: code, Label: label, DiameterMM: diameter}
	if err := dr.DrawCircle(c); err != nil {
		return Result{Circle: c}, &DrawError{Circle: c, Err: err}
	}
	return Result{Circle: c}, nil
}
