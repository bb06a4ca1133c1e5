// Package geom carries the shape vocabulary used by the drawing layer:
// vectors, rectangles, quads, triangles and circles.
package geom

type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

type Vec[T Number] struct {
	X, Y T
}

func NewVec[T Number](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec[T]) Scale(s T) Vec[T] {
	return Vec[T]{X: v.X * s, Y: v.Y * s}
}

func (v Vec[T]) ToF64() Vec[float64] {
	return Vec[float64]{X: float64(v.X), Y: float64(v.Y)}
}

// Rect is an axis-aligned rectangle with canonical Min <= Max corners.
type Rect struct {
	Min, Max Vec[float64]
}

func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: NewVec(x0, y0), Max: NewVec(x1, y1)}.Canon()
}

// Canon returns the rect with Min and Max corners swapped where needed so
// Min <= Max holds on both axes.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

func (r Rect) Contains(p Vec[float64]) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	out := r
	if o.Min.X < out.Min.X {
		out.Min.X = o.Min.X
	}
	if o.Min.Y < out.Min.Y {
		out.Min.Y = o.Min.Y
	}
	if o.Max.X > out.Max.X {
		out.Max.X = o.Max.X
	}
	if o.Max.Y > out.Max.Y {
		out.Max.Y = o.Max.Y
	}
	return out
}

type Circle struct {
	Center Vec[float64]
	Radius float64
}

func NewCircle(x, y, radius float64) Circle {
	return Circle{Center: NewVec(x, y), Radius: radius}
}

func (c Circle) Bounds() Rect {
	return NewRect(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Center.X+c.Radius, c.Center.Y+c.Radius)
}
