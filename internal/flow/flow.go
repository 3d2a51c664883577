// Package flow walks a user through picking a ring sizing system and a
// size, then asks the host to draw the matching circle. It talks to the
// outside world only through the narrow Chooser and Drawer interfaces, so
// the same flow runs against a GUI, a terminal or a test fake.
package flow

// Circle describes one circle to place on the host's work plane, centered
// at the plane origin.
type Circle struct {
	System     string
	Label      string
	DiameterMM float64
}

// RadiusMM returns the circle radius.
func (c Circle) RadiusMM() float64 {
	return c.DiameterMM / 2
}

// Chooser presents one list of options and reports the selection. ok is
// false when the user dismissed the prompt without choosing; err is
// reserved for prompt failures (a broken terminal, a closed window), not
// for dismissal. preferred names the option to preselect and may be empty
// or absent from options.
type Chooser interface {
	PresentChoice(title string, options []string, preferred string) (choice string, ok bool, err error)
}

// Drawer places a circle on the host's work plane.
type Drawer interface {
	DrawCircle(c Circle) error
}
