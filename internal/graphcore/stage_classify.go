package graphcore

import "strings"

func lowerPrefixes(prefixes []string) []string {
	out := make([]string, len(prefixes))
	for i, p := range prefixes {
		out[i] = strings.ToLower(p)
	}
	return out
}

// ClassifyAssets partitions symbol nodes into asset, valve-asset, and
// flow-direction-asset sets by label prefix and text validity. Arrows
// and symbols without associated text are skipped entirely.
func ClassifyAssets(g *Graph, th Thresholds) AssetSets {
	sets := AssetSets{
		AssetSymbolIDs:        NewIDSet(),
		AssetValveSymbolIDs:   NewIDSet(),
		FlowDirectionAssetIDs: NewIDSet(),
	}

	flowPrefixes := lowerPrefixes(th.FlowDirectionAssetPrefixes)
	textPrefixes := lowerPrefixes(th.SymbolLabelPrefixesWithText)
	valvePrefix := strings.ToLower(th.ValveSymbolPrefix)

	for _, n := range g.SymbolNodes() {
		if n.Label == th.ArrowSymbolLabel || n.TextAssociated == nil {
			continue
		}

		lowerLabel := strings.ToLower(n.Label)

		if hasAnyPrefix(lowerLabel, flowPrefixes) {
			sets.FlowDirectionAssetIDs.Add(n.ID)
		}

		text := *n.TextAssociated
		if containsLetterAndDigit(text) && !isSymbolTextInvalid(text) && hasAnyPrefix(lowerLabel, textPrefixes) {
			sets.AssetSymbolIDs.Add(n.ID)
			if strings.HasPrefix(lowerLabel, valvePrefix) {
				sets.AssetValveSymbolIDs.Add(n.ID)
			}
		}
	}

	return sets
}
