package stillness

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxPoints = cmpopts.EquateApprox(0, 1e-9)

func TestPathBuilding(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.Close()

	if got := p.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if !p.IsClosed() {
		t.Error("IsClosed() = false, want true")
	}

	wantAnchors := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if diff := cmp.Diff(wantAnchors, p.Anchors()); diff != "" {
		t.Errorf("Anchors() mismatch (-want +got):\n%s", diff)
	}
	wantVertices := []Point{{0, 0}, {10, 0}, {15, 5}, {10, 10}, {8, 12}, {2, 12}, {0, 10}}
	if diff := cmp.Diff(wantVertices, p.Vertices()); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
}

func TestPathIsClosed(t *testing.T) {
	if NewPath().IsClosed() {
		t.Error("empty path IsClosed() = true, want false")
	}
	p := NewPath()
	p.Polygon([]Point{{0, 0}, {1, 0}, {1, 1}}, false)
	if p.IsClosed() {
		t.Error("open polygon IsClosed() = true, want false")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)
	got := p.Transform(Translate(5, 5).Multiply(Scale(2, 2)))

	want := []Point{{5, 5}, {25, 5}, {25, 45}, {5, 45}}
	if diff := cmp.Diff(want, got.Anchors(), approxPoints); diff != "" {
		t.Errorf("Transform() anchors mismatch (-want +got):\n%s", diff)
	}
	if !got.IsClosed() {
		t.Error("Transform() dropped Close")
	}
	if diff := cmp.Diff([]Point{{0, 0}, {10, 0}, {10, 20}, {0, 20}}, p.Anchors()); diff != "" {
		t.Errorf("Transform() modified the receiver (-want +got):\n%s", diff)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	c := p.Clone()
	c.LineTo(5, 5)
	if p.Len() != 5 || c.Len() != 6 {
		t.Errorf("Clone() shares elements: Len() = %d and %d, want 5 and 6", p.Len(), c.Len())
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name       string
		build      func(p *Path)
		wantLines  int
		wantPoints []int
		wantClosed []bool
	}{
		{
			name:       "rectangle",
			build:      func(p *Path) { p.Rectangle(0, 0, 10, 10) },
			wantLines:  1,
			wantPoints: []int{4},
			wantClosed: []bool{true},
		},
		{
			name:       "open polyline",
			build:      func(p *Path) { p.Polygon([]Point{{0, 0}, {5, 5}, {10, 0}}, false) },
			wantLines:  1,
			wantPoints: []int{3},
			wantClosed: []bool{false},
		},
		{
			name: "explicit return to start",
			build: func(p *Path) {
				p.Polygon([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}}, true)
			},
			wantLines:  1,
			wantPoints: []int{3},
			wantClosed: []bool{true},
		},
		{
			name: "two subpaths",
			build: func(p *Path) {
				p.Rectangle(0, 0, 1, 1)
				p.Polygon([]Point{{5, 5}, {6, 6}}, false)
			},
			wantLines:  2,
			wantPoints: []int{4, 2},
			wantClosed: []bool{true, false},
		},
		{
			name:      "empty",
			build:     func(*Path) {},
			wantLines: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			lines := p.Flatten(0)
			if len(lines) != tt.wantLines {
				t.Fatalf("Flatten() returned %d polylines, want %d", len(lines), tt.wantLines)
			}
			for i, line := range lines {
				if len(line.Points) != tt.wantPoints[i] {
					t.Errorf("polyline %d has %d points, want %d", i, len(line.Points), tt.wantPoints[i])
				}
				if line.Closed != tt.wantClosed[i] {
					t.Errorf("polyline %d Closed = %v, want %v", i, line.Closed, tt.wantClosed[i])
				}
			}
		})
	}
}

func TestFlattenCircleTolerance(t *testing.T) {
	const r = 100
	for _, tol := range []float64{1, 0.25, 0.1} {
		p := NewPath()
		p.Circle(0, 0, r)
		lines := p.Flatten(tol)
		if len(lines) != 1 {
			t.Fatalf("Flatten(%v) returned %d polylines, want 1", tol, len(lines))
		}
		pts := lines[0].Points
		if len(pts) < 8 {
			t.Errorf("Flatten(%v) returned %d points, want at least 8", tol, len(pts))
		}
		for i, q := range pts {
			if d := math.Abs(q.Length() - r); d > 0.1 {
				t.Errorf("Flatten(%v) point %d at distance %v from the circle", tol, i, d)
			}
			// Chord midpoints stay within tolerance of the arc.
			mid := q.Lerp(pts[(i+1)%len(pts)], 0.5)
			if d := r - mid.Length(); d > tol+0.05 {
				t.Errorf("Flatten(%v) chord %d sags %v, want <= %v", tol, i, d, tol)
			}
		}
	}
}

func TestFlattenNonFiniteTerminates(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(math.NaN(), 0, math.Inf(1), 1, 10, 10)
	lines := p.Flatten(0.1)
	if len(lines) != 1 {
		t.Fatalf("Flatten() returned %d polylines, want 1", len(lines))
	}
}

func TestSmoothPassesThroughAnchors(t *testing.T) {
	square := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	p := NewPath()
	p.Polygon(square, true)

	s := p.Smooth(0.5)
	if !s.IsClosed() {
		t.Fatal("Smooth() of a closed path is open")
	}
	anchors := s.Anchors()
	// MoveTo plus one cubic per edge, the last returning to the start.
	if len(anchors) != 5 {
		t.Fatalf("Smooth() has %d anchors, want 5", len(anchors))
	}
	if diff := cmp.Diff(square, anchors[:4], approxPoints); diff != "" {
		t.Errorf("Smooth() anchors mismatch (-want +got):\n%s", diff)
	}
	if anchors[4] != square[0] {
		t.Errorf("Smooth() ends at %v, want %v", anchors[4], square[0])
	}

	// The curve bulges outside the square at the edge midpoints.
	min, max := newShape(KindPath, s).Bounds()
	if !(min.X < 0 && min.Y < 0 && max.X > 100 && max.Y > 100) {
		t.Errorf("Smooth() bounds = %v..%v, want a curve bulging past the square", min, max)
	}
}

func TestSmoothOpenCollinear(t *testing.T) {
	p := NewPath()
	p.Polygon([]Point{{0, 0}, {10, 0}, {30, 0}}, false)
	s := p.Smooth(0.5)
	if s.IsClosed() {
		t.Error("Smooth() of an open path is closed")
	}
	for _, q := range s.Vertices() {
		if q.Y != 0 {
			t.Errorf("Smooth() of collinear points left the line at %v", q)
		}
	}
}

func TestSmoothDegenerate(t *testing.T) {
	p := NewPath()
	p.MoveTo(3, 4)
	s := p.Smooth(0.5)
	if diff := cmp.Diff([]Point{{3, 4}}, s.Anchors()); diff != "" {
		t.Errorf("Smooth() of a single point mismatch (-want +got):\n%s", diff)
	}
	if s == p {
		t.Error("Smooth() returned the receiver, want a copy")
	}
}
