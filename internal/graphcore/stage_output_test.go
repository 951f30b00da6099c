package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestAssembleOutput(t *testing.T) {
	tag := "FT-101"
	symbols := []pid.Symbol{
		{ID: 0, Label: "Equipment/TankA", TextAssociated: &tag, BoundingBox: pid.BoundingBox{TopX: 0, TopY: 0, BottomX: 0.1, BottomY: 0.1}},
		{ID: 1, Label: "Equipment/TankB", TextAssociated: &tag, BoundingBox: pid.BoundingBox{TopX: 0.8, TopY: 0.8, BottomX: 0.9, BottomY: 0.9}},
	}
	lines := []pid.LineSegment{{StartX: 0.1, StartY: 0.1, EndX: 0.8, EndY: 0.8}}

	g, err := InitGraph(symbols, lines)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}

	a, b, l0 := SymbolNodeID(0), SymbolNodeID(1), LineNodeID(0)

	flowAssets := NewIDSet()
	flowAssets.Add(a)
	flowAssets.Add(b)
	valveAssets := NewIDSet()

	connections := map[string][]TraversalConnection{
		a: {{NodeID: b, FlowDir: pid.FlowDownstream, VisitedIDs: []string{l0}}},
	}

	out := AssembleOutput(g, connections, []string{a, b}, flowAssets, valveAssets)
	if len(out) != 2 {
		t.Fatalf("expected 2 asset items (one per assetOrder entry), got %d", len(out))
	}

	item := out[0]
	if item.ID != 0 || item.Label != "Equipment/TankA" {
		t.Errorf("expected first item to be asset 0, got %+v", item)
	}
	if len(item.Connections) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(item.Connections))
	}
	conn := item.Connections[0]
	if conn.ID != 1 || conn.FlowDirection != pid.FlowDownstream {
		t.Errorf("expected connection to asset 1 downstream, got %+v", conn)
	}
	if len(conn.Segments) != 1 {
		t.Errorf("expected 1 path segment (the line), got %d", len(conn.Segments))
	}
}

func TestAssembleOutput_UnknownFlowWhenNotBothFlowAssets(t *testing.T) {
	tag := "FT-101"
	symbols := []pid.Symbol{
		{ID: 0, Label: "Equipment/TankA", TextAssociated: &tag},
		{ID: 1, Label: "Piping/Fittings/Coupling", TextAssociated: &tag},
	}
	g, err := InitGraph(symbols, nil)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	a, b := SymbolNodeID(0), SymbolNodeID(1)

	flowAssets := NewIDSet()
	flowAssets.Add(a)
	valveAssets := NewIDSet()

	connections := map[string][]TraversalConnection{
		a: {{NodeID: b, FlowDir: pid.FlowDownstream, VisitedIDs: nil}},
	}

	out := AssembleOutput(g, connections, []string{a, b}, flowAssets, valveAssets)
	if out[0].Connections[0].FlowDirection != pid.FlowUnknown {
		t.Errorf("expected flow direction to be suppressed to unknown when destination isn't a flow asset, got %v", out[0].Connections[0].FlowDirection)
	}
}
