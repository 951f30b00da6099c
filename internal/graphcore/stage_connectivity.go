package graphcore

import "github.com/pidgraph-labs/pidgraph/internal/pid"

type queueEntry struct {
	nodeID     string
	flowDir    pid.FlowDirection
	visitedIDs []string
}

// ConnectedNodes is the shared breadth-first traversal used by both the
// flow-direction propagation pass and the connectivity pass. It walks the
// undirected graph from startNode, honoring already-published `sources`
// relations to infer direction, and stops descending at any node in
// assetSymbolIDs (or, in a propagation pass, at a T-junction arrow).
//
// With exhaustPaths=false, a node is visited at most once globally,
// matching a shortest-path-style traversal. With exhaustPaths=true, a node
// may be revisited along different paths (only rejected if already on the
// current path) - this is slower but finds every distinct path.
func ConnectedNodes(
	g *Graph,
	startNode string,
	assetSymbolIDs IDSet,
	exhaustPaths bool,
	propagationPass bool,
	junctionArrowIDs IDSet,
	arrowLabel string,
) []TraversalConnection {
	queue := []queueEntry{{nodeID: startNode, flowDir: pid.FlowUnknown}}
	visited := map[string]bool{startNode: true}

	var out []TraversalConnection

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		currentVisitedSet := map[string]bool{}
		for _, v := range current.visitedIDs {
			currentVisitedSet[v] = true
		}

		for _, neighbor := range g.Neighbors(current.nodeID) {
			if exhaustPaths {
				if currentVisitedSet[neighbor] {
					continue
				}
			} else if visited[neighbor] {
				continue
			}
			if neighbor == startNode {
				continue
			}

			visited[neighbor] = true

			newVisitedIDs := append([]string{}, current.visitedIDs...)
			newFlowDir := current.flowDir

			neighborNode := g.Node(neighbor)
			lastNode := g.Node(current.nodeID)

			if lastNode != nil && lastNode.Sources[neighbor] {
				continue
			}

			if neighborNode != nil && neighborNode.Sources[current.nodeID] {
				newFlowDir = pid.FlowDownstream
				if propagationPass && neighborNode.Label == arrowLabel && junctionArrowIDs.Has(neighbor) {
					out = append(out, TraversalConnection{NodeID: neighbor, FlowDir: newFlowDir, VisitedIDs: newVisitedIDs})
					continue
				}
			}

			if neighborNode != nil && neighborNode.Type == pid.NodeSymbol && assetSymbolIDs.Has(neighbor) {
				out = append(out, TraversalConnection{NodeID: neighbor, FlowDir: newFlowDir, VisitedIDs: newVisitedIDs})
				continue
			}

			newVisitedIDs = append(newVisitedIDs, neighbor)
			queue = append(queue, queueEntry{nodeID: neighbor, flowDir: newFlowDir, visitedIDs: newVisitedIDs})
		}
	}

	return out
}
