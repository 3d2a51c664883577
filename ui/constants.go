package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 780
	WindowHeight = 560
)

// Split ratios
const (
	MainSplitRatio = 0.36 // 36% picker column, 64% work plane
)

// Work plane dimensions
const (
	// PlaneMinSize is the smallest edge of the plane view, in pixels.
	PlaneMinSize = 340

	// PlaneExtentMM is how many millimeters the shorter plane edge spans
	// at minimum zoom.
	PlaneExtentMM = 48.0

	// PlaneGridStepMM is the spacing of the background grid lines.
	PlaneGridStepMM = 5.0

	// PlaneMaxCircleMM is the largest circle diameter the plane accepts,
	// keeping one grid step clear on each side at minimum zoom.
	PlaneMaxCircleMM = PlaneExtentMM - 2*PlaneGridStepMM
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewPlaneMinSize returns the minimum size for the work plane view
func NewPlaneMinSize() fyne.Size {
	return fyne.NewSize(PlaneMinSize, PlaneMinSize)
}
