package graphcore

import (
	"math"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// slopeBetween returns the slope between two points, or +Inf for a
// vertical line (matches the vertical-line special case below).
func slopeBetween(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	if dx == 0 {
		return math.Inf(1)
	}
	return (y2 - y1) / dx
}

func round5(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1e5) / 1e5
}

// ExtendLines pads every line segment outward along its own slope by
// padding, clamped to [0,1]. Vertical lines are padded only in Y.
func ExtendLines(lines []pid.LineSegment, padding float64) []pid.ExtendedLineSegment {
	out := make([]pid.ExtendedLineSegment, len(lines))
	for i, line := range lines {
		slope := slopeBetween(line.StartX, line.StartY, line.EndX, line.EndY)

		var startX, startY, endX, endY float64
		if math.IsInf(slope, 1) {
			startX = line.StartX
			startY = math.Max(line.StartY-padding, 0)
			endX = line.EndX
			endY = math.Min(line.EndY+padding, 1)
		} else {
			b := line.StartY - slope*line.StartX
			startX = math.Max(line.StartX-padding, 0)
			startY = slope*startX + b
			endX = math.Min(line.EndX+padding, 1)
			endY = slope*endX + b
		}

		out[i] = pid.ExtendedLineSegment{
			LineSegment: pid.LineSegment{
				StartX: round5(startX),
				StartY: round5(startY),
				EndX:   round5(endX),
				EndY:   round5(endY),
			},
			Slope: round5(slope),
		}
	}
	return out
}
