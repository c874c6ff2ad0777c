package stillness

import (
	"math"
	"testing"
)

func TestRingSegment(t *testing.T) {
	tests := []struct {
		name        string
		r1, r2      float64
		start, end  float64
		wantAnchors int
		wantArea    float64
	}{
		{"quarter annulus", 100, 200, 0, 90, 48, math.Pi * (200*200 - 100*100) / 4},
		{"reversed sweep", 100, 200, 90, 0, 48, math.Pi * (200*200 - 100*100) / 4},
		{"negative angles", 50, 60, -30, 30, 32, math.Pi * (60*60 - 50*50) / 6},
		{"pie slice from zero radius", 0, 100, 0, 90, 25, math.Pi * 100 * 100 / 4},
		{"negative inner radius is a pie slice", -20, 100, 0, 90, 25, math.Pi * 100 * 100 / 4},
		{"full ring", 100, 110, 0, 360, 182, math.Pi * (110*110 - 100*100)},
		{"sweep past a full turn", 100, 110, 0, 720, 182, math.Pi * (110*110 - 100*100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := RingSegment(400, 400, tt.r1, tt.r2, tt.start, tt.end)
			if s == nil {
				t.Fatal("RingSegment() = nil")
			}
			if !s.Closed || s.Kind != KindPath {
				t.Errorf("RingSegment() Closed = %v, Kind = %v, want true, Path", s.Closed, s.Kind)
			}
			if got := len(s.Anchors()); got != tt.wantAnchors {
				t.Errorf("RingSegment() has %d anchors, want %d", got, tt.wantAnchors)
			}
			if got := s.Area(); math.Abs(got-tt.wantArea) > 0.005*tt.wantArea {
				t.Errorf("RingSegment() Area() = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

func TestRingSegmentEndpoints(t *testing.T) {
	s := RingSegment(400, 400, 100, 200, 30, 60)
	pts := s.Anchors()
	first, outerEnd := pts[0], pts[len(pts)/2-1]
	innerEnd, last := pts[len(pts)/2], pts[len(pts)-1]

	checks := []struct {
		name string
		got  Point
		want Point
	}{
		{"outer start", first, Polar(400, 400, 200, 30)},
		{"outer end", outerEnd, Polar(400, 400, 200, 60)},
		{"inner end", innerEnd, Polar(400, 400, 100, 60)},
		{"inner start", last, Polar(400, 400, 100, 30)},
	}
	for _, c := range checks {
		if !near(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	for i, p := range pts {
		r := p.Distance(Pt(400, 400))
		if math.Abs(r-100) > 1e-9 && math.Abs(r-200) > 1e-9 {
			t.Errorf("anchor %d at radius %v, want 100 or 200", i, r)
		}
	}
}

func TestRingSegmentDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		r1, r2     float64
		start, end float64
	}{
		{"equal radii", 100, 100, 0, 90},
		{"inverted radii", 200, 100, 0, 90},
		{"zero sweep", 100, 200, 45, 45},
		{"NaN angle", 100, 200, math.NaN(), 90},
		{"infinite angle", 100, 200, 0, math.Inf(1)},
		{"NaN radius", math.NaN(), 200, 0, 90},
		{"negative radii", -5, -2, 0, 90},
		{"negative inner, zero outer", -5, 0, 0, 90},
		{"infinite outer radius", 10, math.Inf(1), 0, 90},
		{"NaN outer radius", 0, math.NaN(), 0, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s := RingSegment(0, 0, tt.r1, tt.r2, tt.start, tt.end); s != nil {
				t.Errorf("RingSegment() = %v, want nil", s.Anchors())
			}
		})
	}
}

// mirrorSymmetric reports whether s is symmetric about the ray from
// (cx, cy) at angle deg: in the ray's frame every vertex (x, y) has a
// partner at (x, -y).
func mirrorSymmetric(s *Shape, cx, cy, deg float64) bool {
	axis := Polar(0, 0, 1, deg)
	normal := axis.Perp()
	var local []Point
	for _, v := range s.Vertices() {
		d := v.Sub(Pt(cx, cy))
		local = append(local, Pt(d.Dot(axis), d.Dot(normal)))
	}
	for _, p := range local {
		found := false
		for _, q := range local {
			if near(q, Pt(p.X, -p.Y)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(local) > 0
}

func TestRadialPrimitives(t *testing.T) {
	const (
		cx, cy = 400.0, 400.0
		r      = 100.0
		width  = 20.0
		length = 80.0
	)
	tests := []struct {
		name  string
		build func(cx, cy, r, angle, width, length float64) *Shape
	}{
		{"petal", Petal},
		{"diamond", Diamond},
		{"teardrop", Teardrop},
	}
	for _, tt := range tests {
		for _, angle := range []float64{0, 30, 90, 225} {
			s := tt.build(cx, cy, r, angle, width, length)
			if !s.Closed {
				t.Errorf("%s(%v) is open, want closed", tt.name, angle)
			}
			if s.Kind != KindPath {
				t.Errorf("%s(%v) Kind = %v, want %v", tt.name, angle, s.Kind, KindPath)
			}
			if !mirrorSymmetric(s, cx, cy, angle) {
				t.Errorf("%s(%v) is not symmetric about its ray", tt.name, angle)
			}

			// In the ray's frame the shape spans [r, r+length] along the
			// axis and ±width across it.
			local := &Shape{Path: s.Path.Transform(Rotate(-angle).Multiply(Translate(-cx, -cy)))}
			min, max := local.Bounds()
			if math.Abs(max.X-(r+length)) > 0.01 {
				t.Errorf("%s(%v) reaches radius %v, want %v", tt.name, angle, max.X, r+length)
			}
			if math.Abs(max.Y-width) > 0.2 {
				t.Errorf("%s(%v) half-width = %v, want %v", tt.name, angle, max.Y, width)
			}
			if tt.name != "teardrop" && math.Abs(min.X-r) > 0.01 {
				t.Errorf("%s(%v) starts at radius %v, want %v", tt.name, angle, min.X, r)
			}
		}
	}
}

func TestTeardropRoundedBase(t *testing.T) {
	s := Teardrop(0, 0, 100, 0, 20, 80)
	min, _ := s.Bounds()
	// The rounded end sits at the base; its controls never cross it.
	if min.X < 100-1e-9 {
		t.Errorf("Teardrop extends to x = %v, want >= 100", min.X)
	}
	pts := s.Anchors()
	if !near(pts[0], Pt(180, 0)) {
		t.Errorf("Teardrop starts at %v, want the tip (180, 0)", pts[0])
	}
}

func TestDiamondCorners(t *testing.T) {
	s := Diamond(0, 0, 10, 90, 5, 20)
	want := []Point{{0, 10}, {-5, 20}, {0, 30}, {5, 20}}
	got := s.Anchors()
	if len(got) != len(want) {
		t.Fatalf("Diamond has %d corners, want %d", len(got), len(want))
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}
