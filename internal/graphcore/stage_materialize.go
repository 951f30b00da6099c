package graphcore

import "github.com/pidgraph-labs/pidgraph/internal/pid"

// createLineFromBoundingBox builds the short bridge segment connecting a
// line's nearer endpoint to a text box, extending the line's own direction
// toward whichever side of the box it approaches from.
func createLineFromBoundingBox(box pid.BoundingBox, line pid.LineSegment) pid.LineSegment {
	switch {
	case line.StartX < box.TopX:
		return pid.LineSegment{
			StartX: line.EndX, StartY: line.EndY,
			EndX: line.EndX + (box.BottomX - box.TopX), EndY: line.EndY,
		}
	case line.EndX > box.BottomX:
		return pid.LineSegment{
			StartX: line.StartX - (box.BottomX - box.TopX), StartY: line.StartY,
			EndX: line.StartX, EndY: line.StartY,
		}
	case line.StartY < box.TopY:
		return pid.LineSegment{
			StartX: line.EndX, StartY: line.EndY,
			EndX: line.EndX, EndY: line.EndY + (box.BottomY - box.TopY),
		}
	default:
		return pid.LineSegment{
			StartX: line.StartX, StartY: line.StartY - (box.BottomY - box.TopY),
			EndX: line.StartX, EndY: line.StartY,
		}
	}
}

// MaterializeEdges turns each line's matched endpoint candidates into graph
// edges: symbol and line candidates become a direct edge, text candidates
// get a synthetic bridge line node (reused across both endpoints of the
// same text box) and the source line's text_associated is set from the
// matched text.
func MaterializeEdges(g *Graph, candidates []EndpointCandidates, lines []pid.LineSegment, texts []pid.RecognizedText) error {
	seenText := make(map[string]bool)

	for lineIdx, ec := range candidates {
		lineNodeID := LineNodeID(lineIdx)
		line := lines[lineIdx]

		for _, cand := range []ConnectionCandidate{ec.Start, ec.End} {
			if !cand.HasDistance {
				continue
			}

			var targetID string
			switch cand.Type {
			case pid.NodeText:
				textIdx, err := IntFromNodeID(cand.Node)
				if err != nil {
					return err
				}
				targetID = BridgeTextNodeID(textIdx)
				if !seenText[cand.Node] {
					textInfo := texts[textIdx]
					bridgeLine := createLineFromBoundingBox(textInfo.BoundingBox, line)
					if err := g.AddNode(targetID, Node{Type: pid.NodeLine, Line: bridgeLine}); err != nil {
						return err
					}
					if n := g.Node(lineNodeID); n != nil {
						text := textInfo.Text
						n.TextAssociated = &text
					}
					seenText[cand.Node] = true
				}
			case pid.NodeLine:
				targetID = cand.Node
			case pid.NodeSymbol:
				targetID = cand.Node
			}

			g.AddEdge(lineNodeID, targetID)
		}
	}

	return nil
}
