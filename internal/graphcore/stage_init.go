package graphcore

import "github.com/pidgraph-labs/pidgraph/internal/pid"

// InitGraph creates one symbol node per detected symbol and one line node
// per detected line segment. Symbols are added first so symbol node
// ids are stable regardless of how many lines were detected.
func InitGraph(symbols []pid.Symbol, lines []pid.LineSegment) (*Graph, error) {
	g := NewGraph()

	for _, sym := range symbols {
		if err := g.AddNode(SymbolNodeID(sym.ID), Node{
			Type:           pid.NodeSymbol,
			Box:            sym.BoundingBox,
			Label:          sym.Label,
			TextAssociated: sym.TextAssociated,
		}); err != nil {
			return nil, err
		}
	}

	for i, line := range lines {
		if err := g.AddNode(LineNodeID(i), Node{
			Type: pid.NodeLine,
			Line: line,
		}); err != nil {
			return nil, err
		}
	}

	return g, nil
}
