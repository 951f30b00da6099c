package graphcore

import "github.com/pidgraph-labs/pidgraph/internal/pid"

// FilterTextInRegion drops recognized text boxes that fall outside the
// user-provided inclusive region. A text box is kept only if it is
// fully contained within region.
func FilterTextInRegion(texts []pid.RecognizedText, region pid.BoundingBox) []pid.RecognizedText {
	out := make([]pid.RecognizedText, 0, len(texts))
	for _, t := range texts {
		if t.TopX >= region.TopX && t.TopY >= region.TopY &&
			t.BottomX <= region.BottomX && t.BottomY <= region.BottomY {
			out = append(out, t)
		}
	}
	return out
}
