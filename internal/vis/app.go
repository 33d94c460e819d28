// Package vis implements a Gio-based static visualization of one
// kinodynamic planner run: the clearance field sliced at a fixed height,
// the nodes the search visited, and the accepted path.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"

	"github.com/basalt-robotics/kinoplan/internal/core"
	"github.com/basalt-robotics/kinoplan/internal/oracle"
	"github.com/basalt-robotics/kinoplan/internal/vis/draw"
)

// Snapshot is everything one frame needs to render a completed search:
// the bounds and oracle it ran against, the nodes it visited, and the
// dense path it produced (if any).
type Snapshot struct {
	Bounds    core.Bounds
	Oracle    oracle.DistanceOracle
	SliceZ    float64 // world Z the clearance field is sampled at
	Visited   []core.Vec3
	Path      []core.Vec3
	GridCells int // clearance field cells along each of the X and Y axes
}

// App is the static single-frame visualization application.
type App struct {
	snap Snapshot
}

// NewApp builds an App for the given snapshot.
func NewApp(snap Snapshot) *App {
	if snap.GridCells <= 0 {
		snap.GridCells = 80
	}
	return &App{snap: snap}
}

// Run starts the event loop and renders the snapshot until the window
// closes.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// projector maps world XY coordinates onto a screen rectangle, preserving
// aspect ratio and leaving a margin.
type projector struct {
	bounds           core.Bounds
	screenW, screenH float32
	margin           float32
}

func newProjector(bounds core.Bounds, screenW, screenH int) projector {
	return projector{bounds: bounds, screenW: float32(screenW), screenH: float32(screenH), margin: 24}
}

func (p projector) toScreen(pos core.Vec3) (float32, float32) {
	spanX := p.bounds.Max[0] - p.bounds.Min[0]
	spanY := p.bounds.Max[1] - p.bounds.Min[1]
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	availW := p.screenW - 2*p.margin
	availH := p.screenH - 2*p.margin
	scale := availW / float32(spanX)
	if s := availH / float32(spanY); s < scale {
		scale = s
	}
	nx := float32(pos[0]-p.bounds.Min[0]) * scale
	ny := float32(pos[1]-p.bounds.Min[1]) * scale
	// flip Y: screen origin is top-left, world Y grows "up".
	return p.margin + nx, p.screenH - p.margin - ny
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 18, G: 18, B: 22, A: 255})

	size := gtx.Constraints.Max
	proj := newProjector(a.snap.Bounds, size.X, size.Y)

	a.drawClearanceField(gtx, proj)
	a.drawVisitedNodes(gtx, proj)
	a.drawPath(gtx, proj)

	return layout.Dimensions{Size: size}
}

func (a *App) drawClearanceField(gtx layout.Context, proj projector) {
	if a.snap.Oracle == nil {
		return
	}
	n := a.snap.GridCells
	b := a.snap.Bounds
	stepX := (b.Max[0] - b.Min[0]) / float64(n)
	stepY := (b.Max[1] - b.Min[1]) / float64(n)
	if stepX <= 0 || stepY <= 0 {
		return
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cx := b.Min[0] + (float64(i)+0.5)*stepX
			cy := b.Min[1] + (float64(j)+0.5)*stepY
			clearance := a.snap.Oracle.Clearance(core.NewVec3(cx, cy, a.snap.SliceZ))

			x0, y0 := proj.toScreen(core.NewVec3(b.Min[0]+float64(i)*stepX, b.Min[1]+float64(j)*stepY, 0))
			x1, y1 := proj.toScreen(core.NewVec3(b.Min[0]+float64(i+1)*stepX, b.Min[1]+float64(j+1)*stepY, 0))
			draw.Cell(gtx, x0, y1, x1, y0, clearanceColor(clearance))
		}
	}
}

// clearanceColor maps a clearance value to a blue-grey gradient, darkest
// at the obstacle and lightest at 3 units of clearance or more.
func clearanceColor(clearance float64) color.NRGBA {
	t := clearance / 3.0
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	shade := uint8(30 + t*60)
	return color.NRGBA{R: shade, G: shade, B: shade + 20, A: 255}
}

func (a *App) drawVisitedNodes(gtx layout.Context, proj projector) {
	col := color.NRGBA{R: 120, G: 160, B: 255, A: 140}
	for _, v := range a.snap.Visited {
		x, y := proj.toScreen(v)
		draw.Circle(gtx, x, y, 2, col)
	}
}

func (a *App) drawPath(gtx layout.Context, proj projector) {
	if len(a.snap.Path) == 0 {
		return
	}
	points := make([][2]float32, len(a.snap.Path))
	for i, v := range a.snap.Path {
		x, y := proj.toScreen(v)
		points[i] = [2]float32{x, y}
	}
	draw.Polyline(gtx, points, 2.5, color.NRGBA{R: 255, G: 210, B: 80, A: 255})

	startCol := color.NRGBA{R: 100, G: 220, B: 120, A: 255}
	endCol := color.NRGBA{R: 230, G: 90, B: 90, A: 255}
	sx, sy := points[0][0], points[0][1]
	ex, ey := points[len(points)-1][0], points[len(points)-1][1]
	draw.Circle(gtx, sx, sy, 5, startCol)
	draw.Circle(gtx, ex, ey, 5, endCol)
}
