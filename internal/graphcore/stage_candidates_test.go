package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestMatchLineConnectionCandidates_TextAndSymbol(t *testing.T) {
	th := DefaultThresholds()
	lines := []pid.LineSegment{{StartX: 0.1, StartY: 0.5, EndX: 0.9, EndY: 0.5}}
	extended := ExtendLines(lines, th.LineSegmentPaddingDefault)
	symbols := []pid.Symbol{
		{ID: 0, BoundingBox: pid.BoundingBox{TopX: 0.0, TopY: 0.0, BottomX: 0.05, BottomY: 0.05}, Label: "Equipment/Tank"},
		{ID: 1, BoundingBox: pid.BoundingBox{TopX: 0.9, TopY: 0.45, BottomX: 1.0, BottomY: 0.55}, Label: "Equipment/Tank"},
	}
	texts := []pid.RecognizedText{
		{BoundingBox: pid.BoundingBox{TopX: 0.1, TopY: 0.5, BottomX: 0.2, BottomY: 0.51}, Text: "TAG"},
	}

	got := MatchLineConnectionCandidates(lines, extended, symbols, texts, th)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}

	c := got[0]
	if c.Start.Node != "l-t-0" || c.Start.Type != pid.NodeText {
		t.Errorf("expected start candidate l-t-0/text, got %+v", c.Start)
	}
	if c.End.Node != "s-1" || c.End.Type != pid.NodeSymbol {
		t.Errorf("expected end candidate s-1/symbol, got %+v", c.End)
	}
}

func TestMatchLineConnectionCandidates_EndToStartAdjacency(t *testing.T) {
	th := DefaultThresholds()
	lines := []pid.LineSegment{
		{StartX: 0.1, StartY: 0.5, EndX: 0.5, EndY: 0.5},
		{StartX: 0.5, StartY: 0.5, EndX: 0.9, EndY: 0.5},
	}
	extended := ExtendLines(lines, th.LineSegmentPaddingDefault)

	got := MatchLineConnectionCandidates(lines, extended, nil, nil, th)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}

	if got[0].End.Node != "l-1" || got[0].End.Intersection {
		t.Errorf("expected line 0's end to reach l-1 as an endpoint match, got %+v", got[0].End)
	}
	if got[1].Start.Node != "l-0" || got[1].Start.Intersection {
		t.Errorf("expected line 1's start to reach l-0 as an endpoint match, got %+v", got[1].Start)
	}
}

func TestMatchLineConnectionCandidates_FourWayCrossDoesNotConnect(t *testing.T) {
	th := DefaultThresholds()
	lines := []pid.LineSegment{
		{StartX: 0.1, StartY: 0.5, EndX: 0.9, EndY: 0.5},
		{StartX: 0.5, StartY: 0.1, EndX: 0.5, EndY: 0.9},
	}
	extended := ExtendLines(lines, th.LineSegmentPaddingDefault)

	got := MatchLineConnectionCandidates(lines, extended, nil, nil, th)

	if got[0].Start.HasDistance || got[0].End.HasDistance {
		t.Errorf("expected horizontal line to have no line-to-line candidate, got %+v", got[0])
	}
	if got[1].Start.HasDistance || got[1].End.HasDistance {
		t.Errorf("expected vertical line to have no line-to-line candidate, got %+v", got[1])
	}
}

func TestMatchLineConnectionCandidates_TJunctionIntersection(t *testing.T) {
	th := DefaultThresholds()
	lines := []pid.LineSegment{
		{StartX: 0.1, StartY: 0.2, EndX: 0.9, EndY: 0.2},
		{StartX: 0.31, StartY: 0.2, EndX: 0.31, EndY: 0.9},
	}
	extended := ExtendLines(lines, th.LineSegmentPaddingDefault)

	got := MatchLineConnectionCandidates(lines, extended, nil, nil, th)

	c := got[1].Start
	if c.Node != "l-0" || !c.Intersection {
		t.Errorf("expected the T-junction branch's start to connect to l-0 as an intersection, got %+v", c)
	}
}
