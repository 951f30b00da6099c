package graphcore

// Propagate runs the flow-direction propagation pass: for every
// flow-direction asset, traverse the graph and record provisional source
// relations on every visited node, then publish them (clearing any node
// whose claimed sources all claim that node as their own source).
func Propagate(g *Graph, sets AssetSets, th Thresholds) {
	junctionArrows := NewIDSet()
	for _, id := range g.ArrowSymbolsAtTJunction(th.ArrowSymbolLabel) {
		junctionArrows.Add(id)
	}

	nonValveAssets := sets.AssetSymbolIDs.Difference(sets.AssetValveSymbolIDs)

	for _, symbolNodeID := range sets.FlowDirectionAssetIDs.Slice() {
		connections := ConnectedNodes(g, symbolNodeID, nonValveAssets, th.ExhaustiveSearch, true, junctionArrows, th.ArrowSymbolLabel)

		var filtered []TraversalConnection
		for _, conn := range connections {
			if sets.FlowDirectionAssetIDs.Has(conn.NodeID) || junctionArrows.Has(conn.NodeID) {
				filtered = append(filtered, conn)
			}
		}

		g.PropagateFlowDirection(symbolNodeID, filtered)
	}

	g.PublishSources()
}

// FindSymbolConnections runs the connectivity pass: for every asset
// symbol, BFS to other assets honoring the now-published source relations.
// The returned map's iteration is non-deterministic; callers that need
// ordering should iterate sets.AssetSymbolIDs.Slice() instead of the map.
func FindSymbolConnections(g *Graph, sets AssetSets, th Thresholds) map[string][]TraversalConnection {
	out := make(map[string][]TraversalConnection, sets.AssetSymbolIDs.Len())
	for _, assetSymbolID := range sets.AssetSymbolIDs.Slice() {
		out[assetSymbolID] = ConnectedNodes(g, assetSymbolID, sets.AssetSymbolIDs, false, false, IDSet{}, th.ArrowSymbolLabel)
	}
	return out
}
