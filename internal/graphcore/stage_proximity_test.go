package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestCloseSymbolProximity_ConnectsByVerticalAdjacency(t *testing.T) {
	th := DefaultThresholds()

	// Symbol ids are deliberately not list indices, to pin that node ids
	// are built from Symbol.ID rather than list position.
	symbols := []pid.Symbol{
		{ID: 7, Label: "Instrument/Valve/Gate", BoundingBox: pid.BoundingBox{TopX: 0.1, TopY: 0.1, BottomX: 0.2, BottomY: 0.2}},
		{ID: 9, Label: "Instrument/Valve/Gate", BoundingBox: pid.BoundingBox{TopX: 0.1, TopY: 0.201, BottomX: 0.2, BottomY: 0.3}},
	}

	g, err := InitGraph(symbols, nil)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}

	CloseSymbolProximity(g, symbols, th)

	s7, s9 := SymbolNodeID(7), SymbolNodeID(9)
	if g.Degree(s7) == 0 {
		t.Fatalf("expected s-7 to gain a proximity edge")
	}
	if !g.adj[s7][s9] {
		t.Errorf("expected s-7 connected to s-9 via proximity bridge, adjacency: %v", g.Neighbors(s7))
	}

	bridgeID := ProximityBridgeNodeID(s7, s9)
	if g.Node(bridgeID) == nil {
		t.Errorf("expected bridge node %s to exist", bridgeID)
	}
}
