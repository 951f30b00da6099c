package graphcore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// LineNodeID returns the node id for line segment index i.
func LineNodeID(i int) string { return fmt.Sprintf("l-%d", i) }

// SymbolNodeID returns the node id for symbol index i.
func SymbolNodeID(i int) string { return fmt.Sprintf("s-%d", i) }

// BridgeTextNodeID returns the node id for the synthetic line bridging text
// box i into the graph.
func BridgeTextNodeID(i int) string { return fmt.Sprintf("l-t-%d", i) }

// ProximityBridgeNodeID returns the node id for the synthetic line
// connecting two close symbols, symbolI and symbolJ (in that order).
func ProximityBridgeNodeID(symbolI, symbolJ string) string {
	return fmt.Sprintf("l-%s-%s", symbolI, symbolJ)
}

// IntFromNodeID extracts the trailing integer id from any node id shape.
func IntFromNodeID(nodeID string) (int, error) {
	parts := strings.Split(nodeID, "-")
	return strconv.Atoi(parts[len(parts)-1])
}

// NodeTypeFromNodeID dispatches on the node id's prefix.
func NodeTypeFromNodeID(nodeID string) pid.NodeType {
	switch strings.SplitN(nodeID, "-", 2)[0] {
	case "s":
		return pid.NodeSymbol
	case "l":
		return pid.NodeLine
	default:
		return pid.NodeUnknown
	}
}
