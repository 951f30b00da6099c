package graphcore

import "github.com/pidgraph-labs/pidgraph/internal/pid"

func nodeToBoundingBox(n *Node) pid.BoundingBox {
	if n.Type == pid.NodeSymbol {
		return n.Box
	}
	return pid.BoundingBox{TopX: n.Line.StartX, TopY: n.Line.StartY, BottomX: n.Line.EndX, BottomY: n.Line.EndY}
}

// AssembleOutput transforms the connectivity traversal results into the
// external asset-connection record, in the deterministic order given by
// assetOrder (use sets.AssetSymbolIDs.Slice()).
func AssembleOutput(
	g *Graph,
	symbolConnections map[string][]TraversalConnection,
	assetOrder []string,
	flowDirectionAssetIDs, assetValveSymbolIDs IDSet,
) []ConnectedSymbolsItem {
	processFlowAssets := NewIDSet()
	for _, id := range flowDirectionAssetIDs.Slice() {
		processFlowAssets.Add(id)
	}
	for _, id := range assetValveSymbolIDs.Slice() {
		processFlowAssets.Add(id)
	}

	var output []ConnectedSymbolsItem
	for _, assetSymbolID := range assetOrder {
		containerNode := g.Node(assetSymbolID)
		if containerNode == nil {
			continue
		}

		var connections []ConnectedSymbolsConnectionItem
		for _, traversal := range symbolConnections[assetSymbolID] {
			shouldHaveFlowDirection := processFlowAssets.Has(assetSymbolID) && processFlowAssets.Has(traversal.NodeID)

			flowDirection := traversal.FlowDir
			if !shouldHaveFlowDirection {
				flowDirection = pid.FlowUnknown
			}

			segments := make([]pid.BoundingBox, 0, len(traversal.VisitedIDs))
			for _, visitedID := range traversal.VisitedIDs {
				if vn := g.Node(visitedID); vn != nil {
					segments = append(segments, nodeToBoundingBox(vn))
				}
			}

			assetData := g.Node(traversal.NodeID)
			if assetData == nil {
				continue
			}

			connID, err := IntFromNodeID(traversal.NodeID)
			if err != nil {
				continue
			}

			connections = append(connections, ConnectedSymbolsConnectionItem{
				ID:             connID,
				Label:          assetData.Label,
				TextAssociated: assetData.TextAssociated,
				Segments:       segments,
				FlowDirection:  flowDirection,
				BoundingBox:    assetData.Box,
			})
		}

		assetID, err := IntFromNodeID(assetSymbolID)
		if err != nil {
			continue
		}

		output = append(output, ConnectedSymbolsItem{
			ID:             assetID,
			Label:          containerNode.Label,
			TextAssociated: containerNode.TextAssociated,
			BoundingBox:    containerNode.Box,
			Connections:    connections,
		})
	}

	return output
}
