package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestInferArrowDirections_TopEntryPointsDown(t *testing.T) {
	th := DefaultThresholds()

	arrowBox := pid.BoundingBox{TopX: 0.4, TopY: 0.7, BottomX: 0.6, BottomY: 0.9}
	lines := []pid.LineSegment{{StartX: 0.5, StartY: 0.1, EndX: 0.5, EndY: 0.7}}
	extended := ExtendLines(lines, th.LineSegmentPaddingDefault)

	g, err := InitGraph([]pid.Symbol{
		{ID: 0, BoundingBox: arrowBox, Label: th.ArrowSymbolLabel},
	}, lines)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	g.AddEdge(SymbolNodeID(0), LineNodeID(0))

	records := InferArrowDirections(g, lines, extended, th)
	if len(records) != 1 {
		t.Fatalf("expected 1 arrow record, got %d", len(records))
	}

	r := records[0]
	if r.ArrowDir != pid.ArrowDown {
		t.Errorf("expected arrow_direction=down for a top-side entry, got %v", r.ArrowDir)
	}
	if len(r.Sources) != 1 || r.Sources[0] != "l-0" {
		t.Errorf("expected sources={l-0}, got %v", r.Sources)
	}
}
