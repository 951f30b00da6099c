package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestExtendLines_Horizontal(t *testing.T) {
	lines := []pid.LineSegment{{StartX: 0.3, StartY: 0.5, EndX: 0.7, EndY: 0.5}}
	out := ExtendLines(lines, 0.1)
	if len(out) != 1 {
		t.Fatalf("expected 1 extended line, got %d", len(out))
	}
	got := out[0]
	if got.StartX != 0.2 || got.EndX != 0.8 {
		t.Errorf("expected x padded to [0.2,0.8], got [%v,%v]", got.StartX, got.EndX)
	}
	if got.StartY != 0.5 || got.EndY != 0.5 {
		t.Errorf("expected y unchanged at 0.5, got [%v,%v]", got.StartY, got.EndY)
	}
}

func TestExtendLines_Vertical(t *testing.T) {
	lines := []pid.LineSegment{{StartX: 0.5, StartY: 0.3, EndX: 0.5, EndY: 0.7}}
	out := ExtendLines(lines, 0.1)
	got := out[0]
	if got.StartX != 0.5 || got.EndX != 0.5 {
		t.Errorf("expected x unchanged at 0.5, got [%v,%v]", got.StartX, got.EndX)
	}
	if got.StartY != 0.2 || got.EndY != 0.8 {
		t.Errorf("expected y padded to [0.2,0.8], got [%v,%v]", got.StartY, got.EndY)
	}
}

func TestExtendLines_ClampsToUnitSquare(t *testing.T) {
	lines := []pid.LineSegment{{StartX: 0.02, StartY: 0.5, EndX: 0.98, EndY: 0.5}}
	out := ExtendLines(lines, 0.1)
	got := out[0]
	if got.StartX != 0 {
		t.Errorf("expected start x clamped to 0, got %v", got.StartX)
	}
	if got.EndX != 1 {
		t.Errorf("expected end x clamped to 1, got %v", got.EndX)
	}
}
