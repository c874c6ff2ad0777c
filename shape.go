package stillness

import "math"

// ShapeKind identifies how a Shape was constructed.
type ShapeKind uint8

const (
	KindPath    ShapeKind = iota // Primitive or free-form outline
	KindRect                     // Axis-aligned rectangle
	KindCircle                   // Circle
	KindEllipse                  // Ellipse
	KindPolygon                  // Straight-edged polygon or polyline
	KindStar                     // Star polygon
)

var shapeKindNames = [...]string{
	KindPath:    "Path",
	KindRect:    "Rect",
	KindCircle:  "Circle",
	KindEllipse: "Ellipse",
	KindPolygon: "Polygon",
	KindStar:    "Star",
}

// String returns the string representation of a ShapeKind.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "Unknown"
}

// Shape is a styled outline on the canvas.
//
// Shapes are plain data. A Shape is mutable until the generator that built
// it returns; afterwards renderers and consumers treat it as read-only.
type Shape struct {
	Kind        ShapeKind
	Path        *Path
	Closed      bool
	Fill        Color
	Stroke      Color
	StrokeWidth float64

	// Layer names the part of the composition the shape belongs to.
	Layer string
	// Symmetry is the rotational order of the layer around the canvas
	// centre, or 0 for layers without rotational symmetry.
	Symmetry int
}

func newShape(kind ShapeKind, p *Path) *Shape {
	return &Shape{Kind: kind, Path: p, Closed: p.IsClosed()}
}

// Rect returns a rectangle with top-left corner (x, y) and size w×h.
func Rect(x, y, w, h float64) *Shape {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	return newShape(KindRect, p)
}

// Circle returns a circle of radius r around (cx, cy).
func Circle(cx, cy, r float64) *Shape {
	p := NewPath()
	p.Circle(cx, cy, r)
	return newShape(KindCircle, p)
}

// Ellipse returns an axis-aligned ellipse centred on (cx, cy) with full
// width w and full height h.
func Ellipse(cx, cy, w, h float64) *Shape {
	p := NewPath()
	p.Ellipse(cx, cy, w/2, h/2)
	return newShape(KindEllipse, p)
}

// Polygon returns the closed polygon through pts.
func Polygon(pts ...Point) *Shape {
	p := NewPath()
	p.Polygon(pts, true)
	return newShape(KindPolygon, p)
}

// Polyline returns the open polyline through pts.
func Polyline(pts ...Point) *Shape {
	p := NewPath()
	p.Polygon(pts, false)
	return newShape(KindPolygon, p)
}

// Star returns a star with the given number of points around (cx, cy).
// Its 2*points vertices alternate between radius r1 and r2, starting
// with r1 straight up.
func Star(cx, cy float64, points int, r1, r2 float64) *Shape {
	n := 2 * points
	pts := make([]Point, n)
	for i := range n {
		r := r1
		if i%2 == 1 {
			r = r2
		}
		pts[i] = Polar(cx, cy, r, -90+360*float64(i)/float64(n))
	}
	s := Polygon(pts...)
	s.Kind = KindStar
	return s
}

// RegularPolygon returns a regular n-gon of circumradius r around (cx, cy)
// whose first vertex lies at rotation degrees.
func RegularPolygon(cx, cy float64, n int, r, rotation float64) *Shape {
	pts := make([]Point, n)
	for i := range n {
		pts[i] = Polar(cx, cy, r, rotation+360*float64(i)/float64(n))
	}
	return Polygon(pts...)
}

// Transform applies m to the outline in place and returns s.
func (s *Shape) Transform(m Matrix) *Shape {
	s.Path = s.Path.Transform(m)
	return s
}

// Rotate turns the shape by deg degrees around the centre of its bounds
// and returns s.
func (s *Shape) Rotate(deg float64) *Shape {
	min, max := s.Bounds()
	return s.RotateAbout(deg, min.Lerp(max, 0.5))
}

// RotateAbout turns the shape by deg degrees around pivot and returns s.
func (s *Shape) RotateAbout(deg float64, pivot Point) *Shape {
	return s.Transform(RotateAbout(deg, pivot))
}

// Smooth fits a Catmull-Rom curve through the shape's anchors and
// returns s. See Path.Smooth.
func (s *Shape) Smooth(alpha float64) *Shape {
	s.Path = s.Path.Smooth(alpha)
	s.Kind = KindPath
	return s
}

// Anchors returns the on-curve points of the outline.
func (s *Shape) Anchors() []Point {
	return s.Path.Anchors()
}

// Vertices returns every point of the outline, control points included.
func (s *Shape) Vertices() []Point {
	return s.Path.Vertices()
}

// Bounds returns the corners of the axis-aligned box around the
// flattened outline.
func (s *Shape) Bounds() (min, max Point) {
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	for _, line := range s.Path.Flatten(0) {
		for _, p := range line.Points {
			min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
			max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
		}
	}
	if math.IsInf(min.X, 1) {
		return Point{}, Point{}
	}
	return min, max
}

// Area returns the absolute enclosed area of the flattened outline.
func (s *Shape) Area() float64 {
	a, _ := s.moments()
	return math.Abs(a)
}

// Centroid returns the area centroid of the flattened outline. For
// outlines without area it falls back to the mean of the points.
func (s *Shape) Centroid() Point {
	a, c := s.moments()
	if math.Abs(a) > 1e-9 {
		return c
	}
	var sum Point
	n := 0
	for _, line := range s.Path.Flatten(0) {
		for _, p := range line.Points {
			sum = sum.Add(p)
			n++
		}
	}
	if n == 0 {
		return Point{}
	}
	return sum.Div(float64(n))
}

// moments returns the signed area and the area centroid, summing the
// shoelace terms over every subpath as if it were closed.
func (s *Shape) moments() (float64, Point) {
	var a, cx, cy float64
	for _, line := range s.Path.Flatten(0) {
		pts := line.Points
		for i := range pts {
			p, q := pts[i], pts[(i+1)%len(pts)]
			cross := p.Cross(q)
			a += cross
			cx += (p.X + q.X) * cross
			cy += (p.Y + q.Y) * cross
		}
	}
	a /= 2
	if a == 0 {
		return 0, Point{}
	}
	return a, Pt(cx/(6*a), cy/(6*a))
}
