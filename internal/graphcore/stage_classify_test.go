package graphcore

import (
	"testing"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

func TestClassifyAssets(t *testing.T) {
	th := DefaultThresholds()
	validTag := "FT-101"
	dimensionNoise := `3/4"`

	symbols := []pid.Symbol{
		{ID: 0, Label: "Equipment/Tank", TextAssociated: &validTag},
		{ID: 1, Label: "Instrument/Valve/Gate", TextAssociated: &validTag},
		{ID: 2, Label: th.ArrowSymbolLabel, TextAssociated: &validTag},
		{ID: 3, Label: "Equipment/Pump", TextAssociated: &dimensionNoise},
		{ID: 4, Label: "Equipment/Tank"},
	}

	g, err := InitGraph(symbols, nil)
	if err != nil {
		t.Fatalf("InitGraph: %v", err)
	}

	sets := ClassifyAssets(g, th)

	tank, valve, arrow, noise, untexted := SymbolNodeID(0), SymbolNodeID(1), SymbolNodeID(2), SymbolNodeID(3), SymbolNodeID(4)

	if !sets.AssetSymbolIDs.Has(tank) {
		t.Errorf("expected tank to be classified as an asset")
	}
	if !sets.FlowDirectionAssetIDs.Has(tank) {
		t.Errorf("expected tank to be a flow-direction asset")
	}
	if !sets.AssetValveSymbolIDs.Has(valve) {
		t.Errorf("expected valve to be classified as a valve asset")
	}
	if sets.AssetSymbolIDs.Has(arrow) {
		t.Errorf("expected the arrow symbol to be excluded from assets")
	}
	if sets.AssetSymbolIDs.Has(noise) {
		t.Errorf("expected dimension-noise text to disqualify the asset")
	}
	if sets.AssetSymbolIDs.Has(untexted) {
		t.Errorf("expected a symbol with no associated text to be excluded")
	}
}
