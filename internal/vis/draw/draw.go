// Package draw provides the raw Gio drawing primitives the kinoplan
// visualizer composes into a frame: filled cells for the clearance
// field, circles for visited nodes, and polylines for the planned path.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Cell fills an axis-aligned screen-space rectangle, used to render one
// sampled cell of the clearance field.
func Cell(gtx layout.Context, x0, y0, x1, y1 float32, col color.NRGBA) {
	rect := image.Rect(int(x0), int(y0), int(x1), int(y1))
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
}

// Circle fills a filled disc at the given screen coordinates, used for
// visited-node and path-sample markers.
func Circle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	rect := image.Rect(int(cx-radius), int(cy-radius), int(cx+radius), int(cy+radius))
	paint.FillShape(gtx.Ops, col, clip.Ellipse(rect).Op())
}

// Line draws a straight segment of the given width between two screen
// points.
func Line(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// Polyline draws a path of connected segments through points, in order.
func Polyline(gtx layout.Context, points [][2]float32, width float32, col color.NRGBA) {
	for i := 0; i < len(points)-1; i++ {
		Line(gtx, points[i][0], points[i][1], points[i+1][0], points[i+1][1], width, col)
	}
}
