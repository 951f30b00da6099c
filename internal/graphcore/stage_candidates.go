package graphcore

import (
	"math"
	"sync"

	"github.com/pidgraph-labs/pidgraph/internal/geom"
	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func distPt(a, b geom.Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// candidateItem is anything a line endpoint can attach to: a symbol or
// a recognized text box, identified by its eventual graph/candidate id.
type candidateItem struct {
	id  string
	typ NodeType
	box geom.Box
}

func boxToGeom(b pid.BoundingBox) geom.Box {
	return geom.Box{TopX: b.TopX, TopY: b.TopY, BottomX: b.BottomX, BottomY: b.BottomY}
}

func pointOf(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

// MatchLineConnectionCandidates finds, for every line segment, the best
// start- and end-endpoint attachment among symbols, texts, and other lines.
// Work is divided into contiguous index batches and processed by a
// fixed pool of goroutines; each goroutine only ever writes to its own
// disjoint slice indices, so no synchronization is needed on the result.
func MatchLineConnectionCandidates(
	lines []pid.LineSegment,
	extended []pid.ExtendedLineSegment,
	symbols []pid.Symbol,
	texts []pid.RecognizedText,
	th Thresholds,
) []EndpointCandidates {
	result := make([]EndpointCandidates, len(lines))
	if len(lines) == 0 {
		return result
	}

	symbolItems := make([]candidateItem, len(symbols))
	for i, s := range symbols {
		symbolItems[i] = candidateItem{id: SymbolNodeID(s.ID), typ: pid.NodeSymbol, box: boxToGeom(s.BoundingBox)}
	}
	textItems := make([]candidateItem, len(texts))
	for i, t := range texts {
		textItems[i] = candidateItem{id: BridgeTextNodeID(i), typ: pid.NodeText, box: boxToGeom(t.BoundingBox)}
	}

	workers := th.WorkersCountForDataBatch
	if workers < 1 {
		workers = 1
	}
	batchSize := len(lines) / workers
	if batchSize < 1 {
		batchSize = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < len(lines); start += batchSize {
		end := start + batchSize
		if end > len(lines) {
			end = len(lines)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				result[i] = matchOneLine(i, lines, extended, symbolItems, textItems, th)
			}
		}(start, end)
	}
	wg.Wait()

	return result
}

func matchOneLine(
	sourceIdx int,
	lines []pid.LineSegment,
	extended []pid.ExtendedLineSegment,
	symbolItems, textItems []candidateItem,
	th Thresholds,
) EndpointCandidates {
	sourceLine := lines[sourceIdx]
	sourceExtended := extended[sourceIdx]

	sourceThick := geom.Thick{
		Segment: geom.Segment{Start: pointOf(sourceExtended.StartX, sourceExtended.StartY), End: pointOf(sourceExtended.EndX, sourceExtended.EndY)},
		Radius:  th.GraphLineBuffer,
	}
	startPt := pointOf(sourceLine.StartX, sourceLine.StartY)
	endPt := pointOf(sourceLine.EndX, sourceLine.EndY)

	var candidates EndpointCandidates

	for _, item := range symbolItems {
		candidates = matchItem(item, sourceThick, startPt, endPt, th.GraphDistanceThresholdForSymbols, candidates)
	}
	for _, item := range textItems {
		candidates = matchItem(item, sourceThick, startPt, endPt, th.GraphDistanceThresholdForText, candidates)
	}
	for targetIdx := range lines {
		if targetIdx == sourceIdx {
			continue
		}
		candidates = matchLineToLine(
			sourceIdx, targetIdx, lines, extended, sourceThick, startPt, endPt,
			th.GraphDistanceThresholdForLines, th.GraphLineBuffer, candidates,
		)
	}

	return candidates
}

// matchItem is the shared line-to-symbol / line-to-text logic.
func matchItem(item candidateItem, sourceThick geom.Thick, startPt, endPt geom.Point, threshold float64, candidates EndpointCandidates) EndpointCandidates {
	if !geom.IntersectsThickBox(sourceThick, item.box) {
		return candidates
	}

	startDist := item.box.DistancePoint(startPt)
	endDist := item.box.DistancePoint(endPt)

	switch {
	case startDist <= endDist && startDist <= threshold &&
		(!candidates.Start.HasDistance || startDist < candidates.Start.Distance):
		candidates.Start = ConnectionCandidate{Node: item.id, Type: item.typ, Distance: startDist, HasDistance: true}
	case endDist < startDist && endDist <= threshold &&
		(!candidates.End.HasDistance || endDist < candidates.End.Distance):
		candidates.End = ConnectionCandidate{Node: item.id, Type: item.typ, Distance: endDist, HasDistance: true}
	}

	return candidates
}

func matchLineToLine(
	sourceIdx, targetIdx int,
	lines []pid.LineSegment,
	extended []pid.ExtendedLineSegment,
	sourceThick geom.Thick,
	sourceStart, sourceEnd geom.Point,
	lineDistanceThreshold, lineBuffer float64,
	candidates EndpointCandidates,
) EndpointCandidates {
	targetLine := lines[targetIdx]
	targetExtended := extended[targetIdx]

	targetRaw := geom.Segment{Start: pointOf(targetLine.StartX, targetLine.StartY), End: pointOf(targetLine.EndX, targetLine.EndY)}
	targetThick := geom.Thick{
		Segment: geom.Segment{Start: pointOf(targetExtended.StartX, targetExtended.StartY), End: pointOf(targetExtended.EndX, targetExtended.EndY)},
		Radius:  lineBuffer,
	}

	if !geom.IntersectsThick(sourceThick, targetThick) {
		return candidates
	}

	targetStart := pointOf(targetLine.StartX, targetLine.StartY)
	targetEnd := pointOf(targetLine.EndX, targetLine.EndY)

	startPointDistance := math.Min(distPt(targetStart, sourceStart), distPt(targetEnd, sourceStart))
	endPointDistance := math.Min(distPt(targetStart, sourceEnd), distPt(targetEnd, sourceEnd))
	startLineDistance := geom.DistancePointSegment(sourceStart, targetRaw)
	endLineDistance := geom.DistancePointSegment(sourceEnd, targetRaw)

	targetID := LineNodeID(targetIdx)

	switch {
	case startPointDistance <= endPointDistance && startPointDistance < lineDistanceThreshold &&
		hasUpdateOnPointDistance(candidates.Start, startPointDistance):
		candidates.Start = ConnectionCandidate{Node: targetID, Type: pid.NodeLine, Distance: startPointDistance, HasDistance: true, Intersection: false}
	case endPointDistance < startPointDistance && endPointDistance < lineDistanceThreshold &&
		hasUpdateOnPointDistance(candidates.End, endPointDistance):
		candidates.End = ConnectionCandidate{Node: targetID, Type: pid.NodeLine, Distance: endPointDistance, HasDistance: true, Intersection: false}
	case startLineDistance <= endLineDistance && startLineDistance < lineDistanceThreshold &&
		hasUpdateOnLineDistance(candidates.Start, startLineDistance):
		candidates.Start = ConnectionCandidate{Node: targetID, Type: pid.NodeLine, Distance: startLineDistance, HasDistance: true, Intersection: true}
	case endLineDistance < startLineDistance && endLineDistance < lineDistanceThreshold &&
		hasUpdateOnLineDistance(candidates.End, endLineDistance):
		candidates.End = ConnectionCandidate{Node: targetID, Type: pid.NodeLine, Distance: endLineDistance, HasDistance: true, Intersection: true}
	}

	return candidates
}

// hasUpdateOnPointDistance decides whether a new endpoint-to-endpoint
// candidate should replace the current one: a prior intersection candidate
// always yields to a non-intersection one, otherwise only a strictly closer
// distance wins.
func hasUpdateOnPointDistance(current ConnectionCandidate, distance float64) bool {
	return current.Intersection || !current.HasDistance || distance < current.Distance
}

// hasUpdateOnLineDistance decides whether a new T-junction candidate should
// replace the current one: once a non-intersection connection is in place it
// is never displaced by a T-junction, but a closer intersection or a
// symbol/text candidate can be.
func hasUpdateOnLineDistance(current ConnectionCandidate, distance float64) bool {
	isSymbolOrText := current.Type == pid.NodeSymbol || current.Type == pid.NodeText
	return (current.Intersection && distance < current.Distance) ||
		(isSymbolOrText && distance < current.Distance) ||
		!current.HasDistance
}
