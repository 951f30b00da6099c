package graphcore

import (
	"github.com/pidgraph-labs/pidgraph/internal/geom"
	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// sideDirections maps geom.Sides' Top,Right,Bottom,Left order to the
// resolved arrow direction when the source line enters that side: an
// arrow fed from its top side points down, from its right side points
// left, from its bottom side points up, and from its left side points right.
var sideDirections = [4]pid.ArrowDirection{pid.ArrowDown, pid.ArrowLeft, pid.ArrowUp, pid.ArrowRight}

type arrowCandidate struct {
	lineID string
	dir    pid.ArrowDirection
}

// InferArrowDirections resolves every arrow symbol's pointing direction and
// source line. Returns one ArrowRecord per arrow symbol node, in graph
// insertion order.
func InferArrowDirections(g *Graph, lines []pid.LineSegment, extended []pid.ExtendedLineSegment, th Thresholds) []ArrowRecord {
	arrowNodes := g.SymbolNodesByLabel(th.ArrowSymbolLabel)

	resolved := make(map[string]arrowCandidate)
	claimed := make(map[string]bool)

	for _, arrow := range arrowNodes {
		for _, neighborID := range g.Neighbors(arrow.ID) {
			if NodeTypeFromNodeID(neighborID) != pid.NodeLine {
				continue
			}
			if existing, ok := resolved[arrow.ID]; ok && existing.dir == pid.ArrowUnknown {
				break
			}

			lineIdx, err := IntFromNodeID(neighborID)
			if err != nil || lineIdx < 0 || lineIdx >= len(lines) {
				continue
			}

			candidateMatchForArrow(arrow, neighborID, lines[lineIdx], extended[lineIdx], th, resolved, claimed)
		}
	}

	out := make([]ArrowRecord, 0, len(arrowNodes))
	for _, arrow := range arrowNodes {
		cand, ok := resolved[arrow.ID]
		if !ok {
			cand = arrowCandidate{dir: pid.ArrowUnknown}
		}

		var sources []string
		if cand.lineID != "" {
			sources = []string{cand.lineID}
			arrow.Sources = map[string]bool{cand.lineID: true}
		} else {
			arrow.Sources = map[string]bool{}
		}
		arrow.ArrowDirection = cand.dir

		out = append(out, ArrowRecord{
			NodeID:    arrow.ID,
			Label:     arrow.Label,
			TextAssoc: arrow.TextAssociated,
			Box:       arrow.Box,
			ArrowDir:  cand.dir,
			Sources:   sources,
		})
	}
	return out
}

func candidateMatchForArrow(
	arrow *Node,
	lineNodeID string,
	line pid.LineSegment,
	extLine pid.ExtendedLineSegment,
	th Thresholds,
	resolved map[string]arrowCandidate,
	claimed map[string]bool,
) {
	symbolBox := boxToGeom(arrow.Box)
	extSeg := geom.Segment{Start: pointOf(extLine.StartX, extLine.StartY), End: pointOf(extLine.EndX, extLine.EndY)}

	if !geom.IntersectsBoxSegment(symbolBox, extSeg) {
		return
	}

	p1, p2, ok := geom.IntersectionPoints(geom.Thick{Segment: extSeg, Radius: 0}, symbolBox)
	if !ok {
		return
	}

	startPt := pointOf(line.StartX, line.StartY)
	endPt := pointOf(line.EndX, line.EndY)

	d1 := minf(distPt(p1, startPt), distPt(p1, endPt))
	d2 := minf(distPt(p2, startPt), distPt(p2, endPt))

	closest := p1
	if d2 < d1 {
		closest = p2
	}

	sides := geom.Sides(symbolBox)
	for i, side := range sides {
		if geom.DistancePointSegment(closest, side) > 1e-9 {
			continue
		}
		center := side.Midpoint()
		distance := distPt(center, closest) / (side.Length() / 2)
		if distance < th.CentroidDistanceThreshold {
			if _, already := resolved[arrow.ID]; !already {
				resolved[arrow.ID] = arrowCandidate{lineID: lineNodeID, dir: sideDirections[i]}
			} else {
				resolved[arrow.ID] = arrowCandidate{dir: pid.ArrowUnknown}
			}
		}
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
