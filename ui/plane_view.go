package ui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"ring-tool/internal/flow"
)

// Plane colors
var (
	planeBgColor   = color.NRGBA{R: 250, G: 250, B: 247, A: 255}
	planeGridColor = color.NRGBA{R: 214, G: 216, B: 219, A: 255}
	planeAxisColor = color.NRGBA{R: 156, G: 159, B: 164, A: 255}
	planeRingColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// PlaneView renders the work plane: a millimeter grid with origin
// cross-hairs on which the generated circle is placed. It is the drawing
// side of the selection flow.
type PlaneView struct {
	widget.BaseWidget

	mu     sync.Mutex
	circle *flow.Circle // last placed circle, nil when the plane is clear
}

var _ flow.Drawer = (*PlaneView)(nil)

// NewPlaneView creates an empty work plane.
func NewPlaneView() *PlaneView {
	pv := &PlaneView{}
	pv.ExtendBaseWidget(pv)
	return pv
}

// DrawCircle places the circle centered on the plane origin, replacing
// any previous one. Safe to call from any goroutine.
func (pv *PlaneView) DrawCircle(c flow.Circle) error {
	if c.DiameterMM <= 0 {
		return fmt.Errorf("circle diameter %v mm is not positive", c.DiameterMM)
	}
	if c.DiameterMM > PlaneMaxCircleMM {
		return fmt.Errorf("diameter %.1f mm does not fit the work plane (max %.0f mm)",
			c.DiameterMM, PlaneMaxCircleMM)
	}
	if pv.Size().Width <= 0 || pv.Size().Height <= 0 {
		return fmt.Errorf("work plane is not laid out yet")
	}

	pv.mu.Lock()
	cc := c
	pv.circle = &cc
	pv.mu.Unlock()

	fyne.Do(pv.Refresh)
	return nil
}

// Clear removes the circle from the plane, safe to call from any goroutine.
func (pv *PlaneView) Clear() {
	pv.mu.Lock()
	pv.circle = nil
	pv.mu.Unlock()

	fyne.Do(pv.Refresh)
}

// Circle returns a copy of the circle currently on the plane, or nil when
// the plane is clear.
func (pv *PlaneView) Circle() *flow.Circle {
	pv.mu.Lock()
	defer pv.mu.Unlock()
	if pv.circle == nil {
		return nil
	}
	cc := *pv.circle
	return &cc
}

// CreateRenderer returns the work plane renderer.
func (pv *PlaneView) CreateRenderer() fyne.WidgetRenderer {
	pv.ExtendBaseWidget(pv)

	bg := canvas.NewRectangle(planeBgColor)

	axisH := canvas.NewLine(planeAxisColor)
	axisV := canvas.NewLine(planeAxisColor)

	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = planeRingColor
	ring.StrokeWidth = 2
	ring.Hide()

	r := &planeRenderer{
		view: pv,
		bg:   bg,
		axes: [2]*canvas.Line{axisH, axisV},
		ring: ring,
	}
	r.rebuildObjects()
	return r
}

type planeRenderer struct {
	view *PlaneView

	bg      *canvas.Rectangle
	axes    [2]*canvas.Line
	grid    []*canvas.Line
	ring    *canvas.Circle
	objects []fyne.CanvasObject
}

func (r *planeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	center := fyne.NewPos(size.Width/2, size.Height/2)
	scale := planeScale(size)

	r.rebuildGrid(size, center, scale)
	r.layoutRing(center, scale)
}

func (r *planeRenderer) MinSize() fyne.Size {
	return NewPlaneMinSize()
}

func (r *planeRenderer) Refresh() {
	r.Layout(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *planeRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *planeRenderer) Destroy()                     {}

// rebuildGrid lays out the axis cross-hairs and regenerates the grid
// lines for the current view size.
func (r *planeRenderer) rebuildGrid(size fyne.Size, center fyne.Position, scale float32) {
	r.axes[0].Position1 = fyne.NewPos(0, center.Y)
	r.axes[0].Position2 = fyne.NewPos(size.Width, center.Y)
	r.axes[1].Position1 = fyne.NewPos(center.X, 0)
	r.axes[1].Position2 = fyne.NewPos(center.X, size.Height)

	r.grid = r.grid[:0]
	step := scale * PlaneGridStepMM
	if step > 1 {
		for x := center.X + step; x < size.Width; x += step {
			r.grid = append(r.grid, gridLine(fyne.NewPos(x, 0), fyne.NewPos(x, size.Height)))
		}
		for x := center.X - step; x > 0; x -= step {
			r.grid = append(r.grid, gridLine(fyne.NewPos(x, 0), fyne.NewPos(x, size.Height)))
		}
		for y := center.Y + step; y < size.Height; y += step {
			r.grid = append(r.grid, gridLine(fyne.NewPos(0, y), fyne.NewPos(size.Width, y)))
		}
		for y := center.Y - step; y > 0; y -= step {
			r.grid = append(r.grid, gridLine(fyne.NewPos(0, y), fyne.NewPos(size.Width, y)))
		}
	}
	r.rebuildObjects()
}

func (r *planeRenderer) layoutRing(center fyne.Position, scale float32) {
	c := r.view.Circle()
	if c == nil {
		r.ring.Hide()
		return
	}

	radius := float32(c.RadiusMM()) * scale
	r.ring.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	r.ring.Resize(fyne.NewSize(2*radius, 2*radius))
	r.ring.Show()
}

// rebuildObjects refreshes the draw list: background, grid, axes, ring.
func (r *planeRenderer) rebuildObjects() {
	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.bg)
	for _, l := range r.grid {
		r.objects = append(r.objects, l)
	}
	r.objects = append(r.objects, r.axes[0], r.axes[1], r.ring)
}

// planeScale returns the pixel-per-millimeter scale for the given view
// size, keeping PlaneExtentMM visible along the shorter edge.
func planeScale(size fyne.Size) float32 {
	short := size.Width
	if size.Height < short {
		short = size.Height
	}
	if short <= 0 {
		return 1
	}
	return short / PlaneExtentMM
}

func gridLine(a, b fyne.Position) *canvas.Line {
	l := canvas.NewLine(planeGridColor)
	l.Position1 = a
	l.Position2 = b
	return l
}
