package graphcore

import (
	"context"
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestPipeline_Run_EndToEnd(t *testing.T) {
	th := DefaultThresholds()
	tag := "FT-101"

	input := Input{
		Symbols: []pid.Symbol{
			{ID: 0, Label: "Equipment/TankA", TextAssociated: &tag, BoundingBox: pid.BoundingBox{TopX: 0.9, TopY: 0.45, BottomX: 1.0, BottomY: 0.55}},
		},
		Lines: []pid.LineSegment{
			{StartX: 0.1, StartY: 0.5, EndX: 0.9, EndY: 0.5},
		},
		Texts: []pid.RecognizedText{
			{BoundingBox: pid.BoundingBox{TopX: 0.1, TopY: 0.5, BottomX: 0.2, BottomY: 0.51}, Text: "TAG"},
		},
		InclusiveRegion: pid.BoundingBox{TopX: 0, TopY: 0, BottomX: 1, BottomY: 1},
		Image:           pid.ImageDetails{HeightPx: 1000, WidthPx: 1000},
		Thresholds:      th,
	}

	p := NewPipeline(nil)
	out, err := p.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(out.ConnectedSymbols) != 1 {
		t.Fatalf("expected 1 connected-symbols item, got %d", len(out.ConnectedSymbols))
	}
	if out.ConnectedSymbols[0].ID != 0 {
		t.Errorf("expected asset id 0, got %d", out.ConnectedSymbols[0].ID)
	}
}

func TestPipeline_Run_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(nil)
	_, err := p.Run(ctx, Input{Thresholds: DefaultThresholds()})
	if err == nil {
		t.Fatalf("expected an error from a canceled context")
	}
}
