// Package pid holds the domain types consumed by the graph construction
// pipeline: bounding boxes, line segments, recognized text, and detected
// symbols, along with the small enums attached to them.
package pid

import "fmt"

// BoundingBox is an axis-aligned box in normalized [0,1]^2 image coordinates.
type BoundingBox struct {
	TopX    float64 `json:"topX"`
	TopY    float64 `json:"topY"`
	BottomX float64 `json:"bottomX"`
	BottomY float64 `json:"bottomY"`
}

// Normalize reorders coordinates so TopX<=BottomX and TopY<=BottomY.
func (b BoundingBox) Normalize() BoundingBox {
	if b.TopX > b.BottomX {
		b.TopX, b.BottomX = b.BottomX, b.TopX
	}
	if b.TopY > b.BottomY {
		b.TopY, b.BottomY = b.BottomY, b.TopY
	}
	return b
}

// Valid reports whether the box's coordinates are in [0,1] and ordered.
func (b BoundingBox) Valid() bool {
	if b.TopX < 0 || b.TopY < 0 || b.BottomX > 1 || b.BottomY > 1 {
		return false
	}
	return b.TopX <= b.BottomX && b.TopY <= b.BottomY
}

// LineSegment is a raw detected line in canonical orientation: ordered by
// (x, then y) ascending, so a horizontal line's start is leftmost and a
// vertical line's start is topmost.
type LineSegment struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
}

// Canonicalize reorders endpoints so the invariant in the type doc holds.
func (l LineSegment) Canonicalize() LineSegment {
	if l.StartX > l.EndX || (l.StartX == l.EndX && l.StartY > l.EndY) {
		l.StartX, l.EndX = l.EndX, l.StartX
		l.StartY, l.EndY = l.EndY, l.StartY
	}
	return l
}

// Valid reports whether endpoints are within [0,1].
func (l LineSegment) Valid() bool {
	for _, v := range []float64{l.StartX, l.StartY, l.EndX, l.EndY} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// ToBoundingBox converts a line segment to its axis-aligned bounding box,
// with coordinates reordered by Normalize.
func (l LineSegment) ToBoundingBox() BoundingBox {
	return BoundingBox{TopX: l.StartX, TopY: l.StartY, BottomX: l.EndX, BottomY: l.EndY}.Normalize()
}

// ExtendedLineSegment is a line segment padded outward along its own slope,
// clamped to [0,1] and rounded to 5 decimal places.
type ExtendedLineSegment struct {
	LineSegment
	Slope float64 `json:"slope"`
}

// RecognizedText is an OCR result: a bounding box plus its text content.
type RecognizedText struct {
	BoundingBox
	Text string `json:"text"`
}

// Symbol is a detected plant symbol, optionally pre-correlated with nearby
// text by the upstream symbol/text-correlation collaborator.
type Symbol struct {
	BoundingBox
	ID             int      `json:"id"`
	Label          string   `json:"label"`
	TextAssociated *string  `json:"text_associated,omitempty"`
	Score          *float64 `json:"score,omitempty"`
}

// ArrowDirection is the resolved pointing direction of an arrow symbol.
type ArrowDirection string

const (
	ArrowUnknown ArrowDirection = "unknown"
	ArrowUp      ArrowDirection = "up"
	ArrowLeft    ArrowDirection = "left"
	ArrowDown    ArrowDirection = "down"
	ArrowRight   ArrowDirection = "right"
)

// FlowDirection describes a connection's direction relative to process flow.
type FlowDirection string

const (
	FlowUnknown    FlowDirection = "unknown"
	FlowUpstream   FlowDirection = "upstream"
	FlowDownstream FlowDirection = "downstream"
)

// NodeType discriminates graph node kinds. Text nodes are transient: they
// exist only during candidate matching and are never added to the graph —
// a matched text box is instead materialized as a bridge line node.
type NodeType string

const (
	NodeUnknown NodeType = "unknown"
	NodeLine    NodeType = "line"
	NodeSymbol  NodeType = "symbol"
	NodeText    NodeType = "text"
)

// ImageDetails describes the raster image the detections were computed against.
type ImageDetails struct {
	HeightPx int    `json:"height_px"`
	WidthPx  int    `json:"width_px"`
	Format   string `json:"format"`
}

// MaxDimension returns max(height, width), used to normalize pixel thresholds.
func (d ImageDetails) MaxDimension() float64 {
	if d.HeightPx > d.WidthPx {
		return float64(d.HeightPx)
	}
	return float64(d.WidthPx)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%.5f,%.5f)-(%.5f,%.5f)", b.TopX, b.TopY, b.BottomX, b.BottomY)
}
