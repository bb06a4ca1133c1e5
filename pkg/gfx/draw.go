package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/prb616/starlight/pkg/geom"
)

// FillQuad paints the quad as its two triangles, matching the corner order
// geom.Quad defines.
func (w *Window) FillQuad(c color.Color, q geom.Quad) {
	w.paint(q.Bounds(), func(dc *gg.Context) {
		for _, t := range q.Triangles() {
			pathTriangle(dc, t)
		}
		dc.SetColor(c)
		dc.Fill()
	})
}

// DrawQuad strokes the quad's outer edges.
func (w *Window) DrawQuad(c color.Color, q geom.Quad) {
	w.paint(q.Bounds(), func(dc *gg.Context) {
		dc.DrawLine(q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
		dc.DrawLine(q.P1.X, q.P1.Y, q.P3.X, q.P3.Y)
		dc.DrawLine(q.P2.X, q.P2.Y, q.P4.X, q.P4.Y)
		dc.DrawLine(q.P3.X, q.P3.Y, q.P4.X, q.P4.Y)
		dc.SetColor(c)
		dc.SetLineWidth(1)
		dc.Stroke()
	})
}

func (w *Window) FillTriangle(c color.Color, t geom.Triangle) {
	w.paint(t.Bounds(), func(dc *gg.Context) {
		pathTriangle(dc, t)
		dc.SetColor(c)
		dc.Fill()
	})
}

func (w *Window) FillRect(c color.Color, x, y, width, height float64) {
	w.paint(geom.NewRect(x, y, x+width, y+height), func(dc *gg.Context) {
		dc.DrawRectangle(x, y, width, height)
		dc.SetColor(c)
		dc.Fill()
	})
}

func (w *Window) DrawRect(c color.Color, x, y, width, height float64) {
	w.paint(geom.NewRect(x, y, x+width, y+height), func(dc *gg.Context) {
		dc.DrawRectangle(x, y, width, height)
		dc.SetColor(c)
		dc.SetLineWidth(1)
		dc.Stroke()
	})
}

func (w *Window) FillCircle(c color.Color, circle geom.Circle) {
	w.paint(circle.Bounds(), func(dc *gg.Context) {
		dc.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		dc.SetColor(c)
		dc.Fill()
	})
}

func (w *Window) FillEllipse(c color.Color, cx, cy, rx, ry float64) {
	w.paint(geom.NewRect(cx-rx, cy-ry, cx+rx, cy+ry), func(dc *gg.Context) {
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.SetColor(c)
		dc.Fill()
	})
}

func (w *Window) DrawEllipse(c color.Color, cx, cy, rx, ry float64) {
	w.paint(geom.NewRect(cx-rx, cy-ry, cx+rx, cy+ry), func(dc *gg.Context) {
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.SetColor(c)
		dc.SetLineWidth(1)
		dc.Stroke()
	})
}

func (w *Window) DrawLine(c color.Color, x1, y1, x2, y2, width float64) {
	if width <= 0 {
		width = 1
	}
	bounds := geom.NewRect(x1, y1, x2, y2)
	bounds.Min.X -= width
	bounds.Min.Y -= width
	bounds.Max.X += width
	bounds.Max.Y += width
	w.paint(bounds, func(dc *gg.Context) {
		dc.DrawLine(x1, y1, x2, y2)
		dc.SetColor(c)
		dc.SetLineWidth(width)
		dc.Stroke()
	})
}

// paint runs one draw operation against the back buffer and marks the
// affected region dirty. The rect is outset to cover antialiased edges.
func (w *Window) paint(bounds geom.Rect, fn func(dc *gg.Context)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	fn(w.dc)
	w.markDirtyLocked(outsetRect(bounds, 2))
}

func pathTriangle(dc *gg.Context, t geom.Triangle) {
	dc.MoveTo(t.A.X, t.A.Y)
	dc.LineTo(t.B.X, t.B.Y)
	dc.LineTo(t.C.X, t.C.Y)
	dc.ClosePath()
}

func outsetRect(r geom.Rect, pad int) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X))-pad,
		int(math.Floor(r.Min.Y))-pad,
		int(math.Ceil(r.Max.X))+pad,
		int(math.Ceil(r.Max.Y))+pad,
	)
}
