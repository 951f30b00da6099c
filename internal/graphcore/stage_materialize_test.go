package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestMaterializeEdges_TextBridgeAndSymbol(t *testing.T) {
	th := DefaultThresholds()
	lines := []pid.LineSegment{{StartX: 0.1, StartY: 0.5, EndX: 0.9, EndY: 0.5}}
	extended := ExtendLines(lines, th.LineSegmentPaddingDefault)
	symbols := []pid.Symbol{
		{ID: 1, BoundingBox: pid.BoundingBox{TopX: 0.9, TopY: 0.45, BottomX: 1.0, BottomY: 0.55}, Label: "Equipment/Tank"},
	}
	texts := []pid.RecognizedText{
		{BoundingBox: pid.BoundingBox{TopX: 0.1, TopY: 0.5, BottomX: 0.2, BottomY: 0.51}, Text: "TAG"},
	}

	g, err := InitGraph(symbols, lines)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}

	candidates := MatchLineConnectionCandidates(lines, extended, symbols, texts, th)
	if err := MaterializeEdges(g, candidates, lines, texts); err != nil {
		t.Fatalf("MaterializeEdges: %v", err)
	}

	l0 := LineNodeID(0)
	bridgeID := BridgeTextNodeID(0)
	s1 := SymbolNodeID(1)

	if g.Node(bridgeID) == nil {
		t.Fatalf("expected synthesized bridge node %s", bridgeID)
	}
	if !g.adj[l0][bridgeID] {
		t.Errorf("expected edge %s-%s", l0, bridgeID)
	}
	if !g.adj[l0][s1] {
		t.Errorf("expected edge %s-%s", l0, s1)
	}
	lineNode := g.Node(l0)
	if lineNode.TextAssociated == nil || *lineNode.TextAssociated != "TAG" {
		t.Errorf("expected text_associated=TAG on %s, got %v", l0, lineNode.TextAssociated)
	}
}
