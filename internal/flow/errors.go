package flow

import "fmt"

// DrawError reports a circle the host refused to draw. The selection that
// led to it stays attached for error messages.
type DrawError struct {
	Circle Circle
	Err    error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("draw circle for %s size %q (diameter %.1f mm): %v",
		e.Circle.System, e.Circle.Label, e.Circle.DiameterMM, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
