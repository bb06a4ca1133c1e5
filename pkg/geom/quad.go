package geom

// Quad is a four-corner polygon. Corners keep the order they were supplied
// in; the surface covered is the pair of triangles (P1,P2,P3) and
// (P2,P3,P4), so opposite corners are P1/P4 and P2/P3. That matches the
// coordinate layout of the diamond examples this package grew out of, where
// the four points are not listed in perimeter order.
type Quad struct {
	P1, P2, P3, P4 Vec[float64]
}

func QuadFrom(x1, y1, x2, y2, x3, y3, x4, y4 float64) Quad {
	return Quad{
		P1: NewVec(x1, y1),
		P2: NewVec(x2, y2),
		P3: NewVec(x3, y3),
		P4: NewVec(x4, y4),
	}
}

func (q Quad) Points() [4]Vec[float64] {
	return [4]Vec[float64]{q.P1, q.P2, q.P3, q.P4}
}

// Triangles splits the quad along the P2-P3 edge.
func (q Quad) Triangles() [2]Triangle {
	return [2]Triangle{
		{A: q.P1, B: q.P2, C: q.P3},
		{A: q.P2, B: q.P3, C: q.P4},
	}
}

func (q Quad) Bounds() Rect {
	pts := q.Points()
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{Min: NewVec(minX, minY), Max: NewVec(maxX, maxY)}
}

func (q Quad) Contains(p Vec[float64]) bool {
	tris := q.Triangles()
	return tris[0].Contains(p) || tris[1].Contains(p)
}

type Triangle struct {
	A, B, C Vec[float64]
}

func TriangleFrom(x1, y1, x2, y2, x3, y3 float64) Triangle {
	return Triangle{A: NewVec(x1, y1), B: NewVec(x2, y2), C: NewVec(x3, y3)}
}

func (t Triangle) Bounds() Rect {
	minX := min(t.A.X, t.B.X, t.C.X)
	maxX := max(t.A.X, t.B.X, t.C.X)
	minY := min(t.A.Y, t.B.Y, t.C.Y)
	maxY := max(t.A.Y, t.B.Y, t.C.Y)
	return Rect{Min: NewVec(minX, minY), Max: NewVec(maxX, maxY)}
}

// Contains reports whether p lies inside the triangle, edges included.
// Degenerate (collinear) triangles contain nothing.
func (t Triangle) Contains(p Vec[float64]) bool {
	d1 := cross(p, t.A, t.B)
	d2 := cross(p, t.B, t.C)
	d3 := cross(p, t.C, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	if hasNeg && hasPos {
		return false
	}
	// all on one line
	if d1 == 0 && d2 == 0 && d3 == 0 {
		return false
	}
	return true
}

func cross(p, a, b Vec[float64]) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
