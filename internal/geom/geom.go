// Package geom implements the bounding-box and line-segment geometry the
// graph construction pipeline needs: shortest-distance and intersection
// tests between boxes, segments, and buffered ("thick") segments, plus the
// padding and overlap-ratio helpers used by the symbol-proximity closure.
//
// Distances are plain Euclidean distance in the normalized [0,1]^2 image
// plane. A box is always treated as a filled rectangle, never just its
// outline, matching the shapely polygon semantics the pipeline this was
// ported from relies on.
package geom

import "math"

// Point is a 2D point in normalized image coordinates.
type Point struct {
	X, Y float64
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Box is an axis-aligned filled rectangle, TopX<=BottomX, TopY<=BottomY.
type Box struct {
	TopX, TopY, BottomX, BottomY float64
}

// Segment is a line from Start to End.
type Segment struct {
	Start, End Point
}

// Width returns the box's horizontal extent.
func (b Box) Width() float64 { return b.BottomX - b.TopX }

// Height returns the box's vertical extent.
func (b Box) Height() float64 { return b.BottomY - b.TopY }

// Area returns the box's area.
func (b Box) Area() float64 { return b.Width() * b.Height() }

// Contains reports whether p lies within or on the boundary of b.
func (b Box) Contains(p Point) bool {
	return p.X >= b.TopX && p.X <= b.BottomX && p.Y >= b.TopY && p.Y <= b.BottomY
}

// DistancePoint returns the shortest distance from b to p; 0 if p is inside b.
func (b Box) DistancePoint(p Point) float64 {
	dx := math.Max(b.TopX-p.X, math.Max(p.X-b.BottomX, 0))
	dy := math.Max(b.TopY-p.Y, math.Max(p.Y-b.BottomY, 0))
	return math.Hypot(dx, dy)
}

// DistanceBox returns the shortest distance between two boxes; 0 if they overlap or touch.
func DistanceBox(a, b Box) float64 {
	dx := math.Max(b.TopX-a.BottomX, math.Max(a.TopX-b.BottomX, 0))
	dy := math.Max(b.TopY-a.BottomY, math.Max(a.TopY-b.BottomY, 0))
	return math.Hypot(dx, dy)
}

// IntersectsBox reports whether two boxes touch or overlap.
func IntersectsBox(a, b Box) bool {
	return DistanceBox(a, b) == 0
}

// IntersectionArea returns the area of a ∩ b.
func IntersectionArea(a, b Box) float64 {
	ix := math.Min(a.BottomX, b.BottomX) - math.Max(a.TopX, b.TopX)
	iy := math.Min(a.BottomY, b.BottomY) - math.Max(a.TopY, b.TopY)
	if ix <= 0 || iy <= 0 {
		return 0
	}
	return ix * iy
}

// OverlapRatio returns area(A∩B)/area(A), or 0 if A has zero area.
func OverlapRatio(a, b Box) float64 {
	area := a.Area()
	if area <= 0 {
		return 0
	}
	return IntersectionArea(a, b) / area
}

// DistancePointSegment returns the shortest distance from p to segment s.
func DistancePointSegment(p Point, s Segment) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return dist(p, s.Start)
	}
	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	proj := Point{X: s.Start.X + t*dx, Y: s.Start.Y + t*dy}
	return dist(p, proj)
}

// segmentsIntersect reports whether two segments cross, touch, or overlap.
func segmentsIntersect(a, b Segment) bool {
	o1 := orientation(a.Start, a.End, b.Start)
	o2 := orientation(a.Start, a.End, b.End)
	o3 := orientation(b.Start, b.End, a.Start)
	o4 := orientation(b.Start, b.End, a.End)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(a.Start, b.Start, a.End) {
		return true
	}
	if o2 == 0 && onSegment(a.Start, b.End, a.End) {
		return true
	}
	if o3 == 0 && onSegment(b.Start, a.Start, b.End) {
		return true
	}
	if o4 == 0 && onSegment(b.Start, a.End, b.End) {
		return true
	}
	return false
}

func orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val > 1e-12:
		return 1
	case val < -1e-12:
		return 2
	default:
		return 0
	}
}

func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// DistanceSegment returns the shortest distance between two segments; 0 if they cross or touch.
func DistanceSegment(a, b Segment) float64 {
	if segmentsIntersect(a, b) {
		return 0
	}
	d := DistancePointSegment(a.Start, b)
	d = math.Min(d, DistancePointSegment(a.End, b))
	d = math.Min(d, DistancePointSegment(b.Start, a))
	d = math.Min(d, DistancePointSegment(b.End, a))
	return d
}

// DistanceBoxSegment returns the shortest distance between a box and a segment; 0 if the segment enters the box.
func DistanceBoxSegment(box Box, s Segment) float64 {
	if box.Contains(s.Start) || box.Contains(s.End) {
		return 0
	}
	sides := Sides(box)
	best := math.Inf(1)
	for _, side := range sides {
		if d := DistanceSegment(side, s); d < best {
			best = d
		}
	}
	return best
}

// IntersectsBoxSegment reports whether a box and segment touch or overlap.
func IntersectsBoxSegment(box Box, s Segment) bool {
	return DistanceBoxSegment(box, s) == 0
}

// Thick is a segment buffered by a radius, used for the "extended and
// buffered" polylines candidate matching tests against (graph_line_buffer).
type Thick struct {
	Segment
	Radius float64
}

// DistanceThickBox returns the shortest distance between a thick segment and a box.
func DistanceThickBox(t Thick, box Box) float64 {
	return math.Max(0, DistanceBoxSegment(box, t.Segment)-t.Radius)
}

// IntersectsThickBox reports whether a thick segment and a box touch or overlap.
func IntersectsThickBox(t Thick, box Box) bool {
	return DistanceThickBox(t, box) == 0
}

// DistanceThick returns the shortest distance between two thick segments.
func DistanceThick(a, b Thick) float64 {
	return math.Max(0, DistanceSegment(a.Segment, b.Segment)-a.Radius-b.Radius)
}

// IntersectsThick reports whether two thick segments touch or overlap.
func IntersectsThick(a, b Thick) bool {
	return DistanceThick(a, b) == 0
}

// PadHorizontal extends a box's x-range outward by d on each side, used by
// the symbol-proximity closure to test whether two symbols sit on the same
// row (they "meet" horizontally, then vertical overlap is checked).
func PadHorizontal(b Box, d float64) Box {
	return Box{TopX: b.TopX - d, TopY: b.TopY, BottomX: b.BottomX + d, BottomY: b.BottomY}
}

// PadVertical extends a box's y-range outward by d on each side, the
// vertical-adjacency counterpart to PadHorizontal.
func PadVertical(b Box, d float64) Box {
	return Box{TopX: b.TopX, TopY: b.TopY - d, BottomX: b.BottomX, BottomY: b.BottomY + d}
}

// HighOverlapVertical reports whether a and b overlap highly along the y
// axis relative to either box's height — used to confirm horizontal
// (same-row) adjacency after the x-padded boxes have been shown to intersect.
func HighOverlapVertical(a, b Box, threshold float64) bool {
	iy := math.Min(a.BottomY, b.BottomY) - math.Max(a.TopY, b.TopY)
	if iy <= 0 {
		return false
	}
	ha, hb := a.Height(), b.Height()
	ratio := iy / math.Max(ha, 1e-12)
	if r2 := iy / math.Max(hb, 1e-12); r2 > ratio {
		ratio = r2
	}
	return ratio >= threshold
}

// HighOverlapHorizontal is the x-axis counterpart to HighOverlapVertical,
// used to confirm vertical (same-column) adjacency.
func HighOverlapHorizontal(a, b Box, threshold float64) bool {
	ix := math.Min(a.BottomX, b.BottomX) - math.Max(a.TopX, b.TopX)
	if ix <= 0 {
		return false
	}
	wa, wb := a.Width(), b.Width()
	ratio := ix / math.Max(wa, 1e-12)
	if r2 := ix / math.Max(wb, 1e-12); r2 > ratio {
		ratio = r2
	}
	return ratio >= threshold
}

// Side identifies one of a box's four edges.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Sides returns the box's four edges in Top, Right, Bottom, Left order.
func Sides(b Box) [4]Segment {
	tl := Point{b.TopX, b.TopY}
	tr := Point{b.BottomX, b.TopY}
	br := Point{b.BottomX, b.BottomY}
	bl := Point{b.TopX, b.BottomY}
	return [4]Segment{
		{Start: tl, End: tr}, // top
		{Start: tr, End: br}, // right
		{Start: br, End: bl}, // bottom
		{Start: bl, End: tl}, // left
	}
}

// Length returns a segment's Euclidean length.
func (s Segment) Length() float64 { return dist(s.Start, s.End) }

// Midpoint returns a segment's midpoint.
func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

// IntersectionPoints returns the two endpoints of the sub-segment where a
// thick (buffered) segment crosses a box, approximated by clipping the
// underlying raw segment to the box grown by the radius on every side.
// Returns ok=false if they do not cross.
func IntersectionPoints(t Thick, box Box) (p1, p2 Point, ok bool) {
	padded := Box{TopX: box.TopX - t.Radius, TopY: box.TopY - t.Radius, BottomX: box.BottomX + t.Radius, BottomY: box.BottomY + t.Radius}
	return clipSegmentToBox(t.Segment, padded)
}

// clipSegmentToBox implements Liang-Barsky clipping of a segment to a box.
func clipSegmentToBox(s Segment, box Box) (p1, p2 Point, ok bool) {
	x0, y0 := s.Start.X, s.Start.Y
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y

	tMin, tMax := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - box.TopX, box.BottomX - x0, y0 - box.TopY, box.BottomY - y0}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > tMax {
				return Point{}, Point{}, false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return Point{}, Point{}, false
			}
			if t < tMax {
				tMax = t
			}
		}
	}
	if tMin > tMax {
		return Point{}, Point{}, false
	}
	p1 = Point{X: x0 + tMin*dx, Y: y0 + tMin*dy}
	p2 = Point{X: x0 + tMax*dx, Y: y0 + tMax*dy}
	return p1, p2, true
}
