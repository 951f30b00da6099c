package graphcore

import (
	"strings"

	"github.com/pidgraph-labs/pidgraph/internal/geom"
	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func hasAnyPrefix(label string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(label, p) {
			return true
		}
	}
	return false
}

func lineBetweenCentroids(a, b pid.BoundingBox) pid.LineSegment {
	return pid.LineSegment{
		StartX: (a.TopX + a.BottomX) / 2, StartY: (a.TopY + a.BottomY) / 2,
		EndX: (b.TopX + b.BottomX) / 2, EndY: (b.TopY + b.BottomY) / 2,
	}
}

// CloseSymbolProximity inserts a synthetic connecting line between pairs
// of close, low-degree (or equipment) symbols whose labels both match a
// configured prefix set. Degree is read at the start of the pass, so
// newly added proximity edges don't feed back into later pairs within the
// same pass - matching a single closure pass, not a fixed point.
func CloseSymbolProximity(g *Graph, symbols []pid.Symbol, th Thresholds) {
	var lowDegree []int
	for i, sym := range symbols {
		if g.Degree(SymbolNodeID(sym.ID)) < 2 || strings.HasPrefix(sym.Label, "Equipment/") {
			lowDegree = append(lowDegree, i)
		}
	}

	for idx, i := range lowDegree {
		for _, j := range lowDegree[idx:] {
			if i == j {
				continue
			}
			si, sj := symbols[i], symbols[j]
			if !hasAnyPrefix(si.Label, th.SymbolLabelPrefixesToConnectIfClose) ||
				!hasAnyPrefix(sj.Label, th.SymbolLabelPrefixesToConnectIfClose) {
				continue
			}
			connectIfClose(g, si, sj, th)
		}
	}
}

func connectIfClose(g *Graph, si, sj pid.Symbol, th Thresholds) {
	boxI := boxToGeom(si.BoundingBox)
	boxJ := boxToGeom(sj.BoundingBox)

	if geom.DistanceBox(boxI, boxJ) > th.GraphSymbolToSymbolDistanceThreshold {
		return
	}

	d := th.GraphSymbolToSymbolDistanceThreshold
	horizMet, vertMet := false, false

	hPadI := geom.PadHorizontal(boxI, d)
	hPadJ := geom.PadHorizontal(boxJ, d)
	if geom.IntersectsBox(hPadI, hPadJ) {
		horizMet = geom.HighOverlapVertical(hPadI, hPadJ, th.GraphSymbolToSymbolOverlapRegionThreshold)
	}

	vPadI := geom.PadVertical(boxI, d)
	vPadJ := geom.PadVertical(boxJ, d)
	if geom.IntersectsBox(vPadI, vPadJ) {
		vertMet = geom.HighOverlapHorizontal(vPadI, vPadJ, th.GraphSymbolToSymbolOverlapRegionThreshold)
	}

	if !horizMet && !vertMet {
		return
	}

	symbolI := SymbolNodeID(si.ID)
	symbolJ := SymbolNodeID(sj.ID)

	newLine := lineBetweenCentroids(si.BoundingBox, sj.BoundingBox)
	_ = g.AddNode(ProximityBridgeNodeID(symbolI, symbolJ), Node{Type: pid.NodeLine, Line: newLine})
	g.AddEdge(symbolI, symbolJ)
}
