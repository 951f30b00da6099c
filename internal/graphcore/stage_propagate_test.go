package graphcore

import (
	"reflect"
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// buildDiamondGraph wires A -l0- arrow1 -l1- B, with arrow1 already carrying
// a resolved source (as arrow inference would leave it): fed by l0, so
// flow runs A->B.
func buildDiamondGraph(t *testing.T, th Thresholds) (*Graph, AssetSets, string, string) {
	t.Helper()
	g, err := InitGraph(
		[]pid.Symbol{
			{ID: 0, Label: "Equipment/TankA"},
			{ID: 1, Label: "Equipment/TankB"},
			{ID: 2, Label: th.ArrowSymbolLabel},
		},
		[]pid.LineSegment{
			{StartX: 0.1, StartY: 0.5, EndX: 0.4, EndY: 0.5},
			{StartX: 0.6, StartY: 0.5, EndX: 0.9, EndY: 0.5},
		},
	)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}

	a, b, arrow := SymbolNodeID(0), SymbolNodeID(1), SymbolNodeID(2)
	l0, l1 := LineNodeID(0), LineNodeID(1)

	g.AddEdge(a, l0)
	g.AddEdge(l0, arrow)
	g.AddEdge(arrow, l1)
	g.AddEdge(l1, b)

	g.Node(arrow).Sources[l0] = true

	sets := AssetSets{AssetSymbolIDs: NewIDSet(), AssetValveSymbolIDs: NewIDSet(), FlowDirectionAssetIDs: NewIDSet()}
	sets.AssetSymbolIDs.Add(a)
	sets.AssetSymbolIDs.Add(b)
	sets.FlowDirectionAssetIDs.Add(a)
	sets.FlowDirectionAssetIDs.Add(b)

	return g, sets, a, b
}

func TestPropagateAndFindConnections_DiamondDownstream(t *testing.T) {
	th := DefaultThresholds()
	g, sets, a, b := buildDiamondGraph(t, th)

	Propagate(g, sets, th)

	l0, l1, arrow := LineNodeID(0), LineNodeID(1), SymbolNodeID(2)
	if !g.Node(l0).Sources[a] {
		t.Errorf("expected l-0 to carry source A after publish, got %v", g.Node(l0).Sources)
	}
	if !g.Node(arrow).Sources[l0] {
		t.Errorf("expected arrow to keep its source l-0 after publish, got %v", g.Node(arrow).Sources)
	}
	if !g.Node(l1).Sources[arrow] {
		t.Errorf("expected l-1 to carry source arrow after publish, got %v", g.Node(l1).Sources)
	}
	if !g.Node(b).Sources[l1] {
		t.Errorf("expected B to carry source l-1 after publish, got %v", g.Node(b).Sources)
	}

	connections := FindSymbolConnections(g, sets, th)
	aConns := connections[a]
	if len(aConns) != 1 {
		t.Fatalf("expected 1 connection from A, got %d: %+v", len(aConns), aConns)
	}
	if aConns[0].NodeID != b || aConns[0].FlowDir != pid.FlowDownstream {
		t.Errorf("expected A->B downstream, got %+v", aConns[0])
	}
	wantVisited := []string{l0, arrow, l1}
	if !reflect.DeepEqual(aConns[0].VisitedIDs, wantVisited) {
		t.Errorf("expected visited path %v, got %v", wantVisited, aConns[0].VisitedIDs)
	}
}

func TestConnectedNodes_CycleShortestPathByDefault(t *testing.T) {
	th := DefaultThresholds()
	g, err := InitGraph(
		[]pid.Symbol{{ID: 0, Label: "Equipment/A"}, {ID: 1, Label: "Equipment/B"}},
		[]pid.LineSegment{
			{StartX: 0.0, StartY: 0.0, EndX: 0.1, EndY: 0.0},
			{StartX: 0.1, StartY: 0.0, EndX: 0.2, EndY: 0.0},
			{StartX: 0.0, StartY: 0.1, EndX: 0.1, EndY: 0.1},
			{StartX: 0.1, StartY: 0.1, EndX: 0.2, EndY: 0.1},
		},
	)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}
	a, b := SymbolNodeID(0), SymbolNodeID(1)
	l0, l1, l2, l3 := LineNodeID(0), LineNodeID(1), LineNodeID(2), LineNodeID(3)

	// A --l0--l1-- B, and A --l2--l3--l1-- (rejoins the first path at l1).
	g.AddEdge(a, l0)
	g.AddEdge(l0, l1)
	g.AddEdge(l1, b)
	g.AddEdge(a, l2)
	g.AddEdge(l2, l3)
	g.AddEdge(l3, l1)

	assets := NewIDSet()
	assets.Add(a)
	assets.Add(b)

	shortest := ConnectedNodes(g, a, assets, false, false, IDSet{}, th.ArrowSymbolLabel)
	if len(shortest) != 1 {
		t.Fatalf("expected exactly 1 path with exhaust=false, got %d: %+v", len(shortest), shortest)
	}

	exhaustive := ConnectedNodes(g, a, assets, true, false, IDSet{}, th.ArrowSymbolLabel)
	if len(exhaustive) != 2 {
		t.Fatalf("expected 2 distinct paths with exhaust=true, got %d: %+v", len(exhaustive), exhaustive)
	}
}
