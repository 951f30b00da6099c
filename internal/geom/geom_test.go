package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDistanceBox_Overlapping(t *testing.T) {
	a := Box{TopX: 0, TopY: 0, BottomX: 1, BottomY: 1}
	b := Box{TopX: 0.5, TopY: 0.5, BottomX: 1.5, BottomY: 1.5}
	if d := DistanceBox(a, b); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
	if !IntersectsBox(a, b) {
		t.Errorf("expected intersects")
	}
}

func TestDistanceBox_Separated(t *testing.T) {
	a := Box{TopX: 0, TopY: 0, BottomX: 1, BottomY: 1}
	b := Box{TopX: 2, TopY: 0, BottomX: 3, BottomY: 1}
	if d := DistanceBox(a, b); !almostEqual(d, 1) {
		t.Errorf("expected 1, got %v", d)
	}
	if IntersectsBox(a, b) {
		t.Errorf("expected no intersection")
	}
}

func TestOverlapRatio(t *testing.T) {
	a := Box{TopX: 0, TopY: 0, BottomX: 2, BottomY: 2}
	b := Box{TopX: 1, TopY: 1, BottomX: 3, BottomY: 3}
	ratio := OverlapRatio(a, b)
	if !almostEqual(ratio, 0.25) {
		t.Errorf("expected 0.25, got %v", ratio)
	}
}

func TestHighOverlapVertical(t *testing.T) {
	a := Box{TopX: 0, TopY: 0, BottomX: 1, BottomY: 1}
	b := Box{TopX: 0, TopY: 0.1, BottomX: 1, BottomY: 1.1}
	if !HighOverlapVertical(a, b, 0.5) {
		t.Errorf("expected high vertical overlap")
	}
	c := Box{TopX: 0, TopY: 0.95, BottomX: 1, BottomY: 2}
	if HighOverlapVertical(a, c, 0.9) {
		t.Errorf("expected low vertical overlap")
	}
}

func TestDistancePointSegment(t *testing.T) {
	s := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	d := DistancePointSegment(Point{X: 5, Y: 3}, s)
	if !almostEqual(d, 3) {
		t.Errorf("expected 3, got %v", d)
	}
}

func TestSegmentsIntersect_Cross(t *testing.T) {
	a := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 10}}
	b := Segment{Start: Point{X: 0, Y: 10}, End: Point{X: 10, Y: 0}}
	if !segmentsIntersect(a, b) {
		t.Errorf("expected crossing segments to intersect")
	}
}

func TestSegmentsIntersect_Parallel(t *testing.T) {
	a := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	b := Segment{Start: Point{X: 0, Y: 5}, End: Point{X: 10, Y: 5}}
	if segmentsIntersect(a, b) {
		t.Errorf("expected parallel non-touching segments to not intersect")
	}
}

func TestIntersectsThickBox(t *testing.T) {
	thick := Thick{Segment: Segment{Start: Point{X: 0, Y: 0.5}, End: Point{X: 1, Y: 0.5}}, Radius: 0.01}
	box := Box{TopX: 0.4, TopY: 0.45, BottomX: 0.6, BottomY: 0.55}
	if !IntersectsThickBox(thick, box) {
		t.Errorf("expected thick line through box to intersect")
	}
	far := Box{TopX: 0.4, TopY: 0.9, BottomX: 0.6, BottomY: 0.99}
	if IntersectsThickBox(thick, far) {
		t.Errorf("expected far box to not intersect")
	}
}

func TestSides_Order(t *testing.T) {
	b := Box{TopX: 0, TopY: 0, BottomX: 10, BottomY: 10}
	sides := Sides(b)
	top, right, bottom, left := sides[0], sides[1], sides[2], sides[3]
	if top.Start.Y != 0 || top.End.Y != 0 {
		t.Errorf("expected top side at y=0, got %+v", top)
	}
	if bottom.Start.Y != 10 || bottom.End.Y != 10 {
		t.Errorf("expected bottom side at y=10, got %+v", bottom)
	}
	if right.Start.X != 10 && right.End.X != 10 {
		t.Errorf("expected right side at x=10, got %+v", right)
	}
	if left.Start.X != 0 && left.End.X != 0 {
		t.Errorf("expected left side at x=0, got %+v", left)
	}
}

func TestIntersectionPoints(t *testing.T) {
	box := Box{TopX: 0.4, TopY: 0.7, BottomX: 0.6, BottomY: 0.9}
	thick := Thick{Segment: Segment{Start: Point{X: 0.5, Y: 0}, End: Point{X: 0.5, Y: 1}}, Radius: 0}
	p1, p2, ok := IntersectionPoints(thick, box)
	if !ok {
		t.Fatalf("expected intersection points to be found")
	}
	if !almostEqual(p1.Y, 0.7) && !almostEqual(p2.Y, 0.7) {
		t.Errorf("expected one intersection point at the box's top edge, got %+v %+v", p1, p2)
	}
	if !almostEqual(p1.Y, 0.9) && !almostEqual(p2.Y, 0.9) {
		t.Errorf("expected one intersection point at the box's bottom edge, got %+v %+v", p1, p2)
	}
}
