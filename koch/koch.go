// Package koch generates the triangle mesh of a Koch-style snowflake.
//
// The mesh starts from an equilateral triangle and grows one triangular bump
// on the middle third of every edge, recursively. Output is a flat triangle
// list: every three points form one independent filled triangle, so vertices
// are duplicated between neighbouring triangles.
package koch

import "math"

// DefaultDepth is the recursion depth used by the demo.
const DefaultDepth = 4

// Point is a 2D point in mesh-local coordinates.
type Point struct {
	X, Y float64
}

func (p Point) Sub(o Point) Point    { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Dot(o Point) float64  { return p.X*o.X + p.Y*o.Y }
func (p Point) Dist(o Point) float64 { return math.Hypot(o.X-p.X, o.Y-p.Y) }

// Lerp interpolates from p towards o by t.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{p.X + t*(o.X-p.X), p.Y + t*(o.Y-p.Y)}
}

// Mesh is a triangle list.
type Mesh []Point

// Triangles returns the number of complete triangles in m.
func (m Mesh) Triangles() int { return len(m) / 3 }

// Float32 flattens m into tightly packed x,y pairs.
func (m Mesh) Float32() []float32 {
	out := make([]float32, 0, len(m)*2)
	for _, p := range m {
		out = append(out, float32(p.X), float32(p.Y))
	}
	return out
}

// BaseTriangle returns the equilateral triangle the snowflake grows from.
func BaseTriangle() (p1, p2, p3 Point) {
	p1 = Point{X: 0, Y: 0.5*math.Sqrt(3) - 0.5}
	p2 = Point{X: 0.5, Y: -0.5}
	p3 = Point{X: -0.5, Y: -0.5}
	return p1, p2, p3
}

// CenterY is the y coordinate of the base triangle's centroid.
// The base triangle is symmetric about x=0, so only y needs recentering.
func CenterY() float64 {
	p1, p2, p3 := BaseTriangle()
	return (p1.Y + p2.Y + p3.Y) / 3
}

// DivideSegment returns the points one third and two thirds of the way
// from p1 to p2.
func DivideSegment(p1, p2 Point) (a, b Point) {
	return p1.Lerp(p2, 1.0/3.0), p1.Lerp(p2, 2.0/3.0)
}

// ThirdVertex returns the apex of the equilateral triangle on v1-v2. The
// direction v1->v2 is always rotated by +60 degrees about v1, which fixes the
// side the bump grows on.
func ThirdVertex(v1, v2 Point) Point {
	d := v1.Dist(v2)
	angle := math.Atan2(v2.Y-v1.Y, v2.X-v1.X) + math.Pi/3
	return Point{
		X: v1.X + d*math.Cos(angle),
		Y: v1.Y + d*math.Sin(angle),
	}
}

// maxPreallocDepth bounds the depth whose exact size Generate reserves up
// front. Deeper meshes grow by append, and the closed-form counts overflow
// int long before depth 62.
const maxPreallocDepth = 16

// Generate builds the snowflake mesh: the three base vertices followed by
// the bumps of all three edges at the given depth. The mesh has
// 1+3·(2^(d+1)-3) triangles, so callers should bound depth.
func Generate(depth int) Mesh {
	p1, p2, p3 := BaseTriangle()

	out := make(Mesh, 0, capacityHint(depth))
	out = append(out, p1, p2, p3)
	out = generateEdge(out, p1, p2, depth)
	out = generateEdge(out, p2, p3, depth)
	out = generateEdge(out, p3, p1, depth)
	return out
}

func capacityHint(depth int) int {
	if depth > maxPreallocDepth {
		depth = maxPreallocDepth
	}
	return 3 * Triangles(depth)
}

// generateEdge is the outermost call for one edge of the base triangle. It
// differs from generateBump only in also recursing into the two flanking
// thirds of the edge.
func generateEdge(out Mesh, p1, p2 Point, depth int) Mesh {
	if depth <= 0 {
		return out
	}
	a, b := DivideSegment(p1, p2)
	v3 := ThirdVertex(a, b)
	out = append(out, a, b, v3)

	out = generateBump(out, a, v3, depth-1)
	out = generateBump(out, v3, b, depth-1)

	out = generateBump(out, p1, a, depth-1)
	out = generateBump(out, b, p2, depth-1)
	return out
}

func generateBump(out Mesh, p1, p2 Point, depth int) Mesh {
	if depth <= 0 {
		return out
	}
	a, b := DivideSegment(p1, p2)
	v3 := ThirdVertex(a, b)
	out = append(out, a, b, v3)

	out = generateBump(out, a, v3, depth-1)
	out = generateBump(out, v3, b, depth-1)
	return out
}

// BumpTriangles is the triangle count of one recursive bump call:
// I(d) = 1 + 2*I(d-1) = 2^d - 1.
func BumpTriangles(depth int) int {
	if depth <= 0 {
		return 0
	}
	return 1<<depth - 1
}

// EdgeTriangles is the triangle count of one outermost edge call:
// O(d) = 1 + 4*I(d-1) = 2^(d+1) - 3.
func EdgeTriangles(depth int) int {
	if depth <= 0 {
		return 0
	}
	return 1<<(depth+1) - 3
}

// Triangles is the triangle count of Generate(depth). Valid for depth < 61.
func Triangles(depth int) int {
	return 1 + 3*EdgeTriangles(depth)
}
