package graphcore

import "testing"

func TestPixelThresholds_Normalize(t *testing.T) {
	p := PixelThresholds{GraphLineBufferPixels: 10, GraphDistanceThresholdForSymbolsPixels: 20}
	norm := p.Normalize(1000)
	if norm.GraphLineBufferPixels != 0.01 {
		t.Errorf("expected 0.01, got %v", norm.GraphLineBufferPixels)
	}
	if norm.GraphDistanceThresholdForSymbolsPixels != 0.02 {
		t.Errorf("expected 0.02, got %v", norm.GraphDistanceThresholdForSymbolsPixels)
	}
}

func TestPixelThresholds_Normalize_ZeroDimension(t *testing.T) {
	p := PixelThresholds{GraphLineBufferPixels: 10}
	norm := p.Normalize(0)
	if norm.GraphLineBufferPixels != 10 {
		t.Errorf("expected unchanged value when maxDimension<=0, got %v", norm.GraphLineBufferPixels)
	}
}

func TestThresholds_WithPixels(t *testing.T) {
	base := DefaultThresholds()
	pixels := PixelThresholds{
		GraphLineBufferPixels:                  5,
		GraphDistanceThresholdForSymbolsPixels: 5,
		GraphDistanceThresholdForTextPixels:    5,
		GraphDistanceThresholdForLinesPixels:   50,
	}
	got := base.WithPixels(pixels, 1000)
	if got.GraphLineBuffer != 0.005 {
		t.Errorf("expected 0.005, got %v", got.GraphLineBuffer)
	}
	if got.GraphDistanceThresholdForLines != 0.05 {
		t.Errorf("expected 0.05, got %v", got.GraphDistanceThresholdForLines)
	}
	if got.ArrowSymbolLabel != base.ArrowSymbolLabel {
		t.Errorf("expected categorical fields to remain unchanged")
	}
}
