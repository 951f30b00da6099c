package handler

import (
	"fmt"

	"github.com/pidgraph-labs/pidgraph/internal/graphcore"
	"github.com/pidgraph-labs/pidgraph/pkg/apierr"
	"github.com/pidgraph-labs/pidgraph/pkg/models"
)

func validateJobSubmitRequest(req models.JobSubmitRequest) *apierr.Error {
	if req.Image.HeightPx == 0 || req.Image.WidthPx == 0 {
		return apierr.MissingField("image")
	}
	if !req.BoundingBoxInclusive.Valid() {
		return apierr.InvalidBoundingBox("bounding_box_inclusive")
	}
	for i, l := range req.LineSegments {
		if !l.Valid() {
			return apierr.InvalidCoordinates(fmt.Sprintf("line_segments[%d]", i))
		}
	}
	for i, t := range req.AllText {
		if !t.BoundingBox.Valid() {
			return apierr.InvalidBoundingBox(fmt.Sprintf("all_text[%d]", i))
		}
	}
	for i, s := range req.TextAndSymbolsAssociated {
		if !s.BoundingBox.Valid() {
			return apierr.InvalidBoundingBox(fmt.Sprintf("text_and_symbols_associated[%d]", i))
		}
	}
	return nil
}

// toGraphcoreInput converts a submitted job body into the core pipeline's
// Input, applying the per-request pixel thresholds.
func toGraphcoreInput(req models.JobSubmitRequest, th graphcore.Thresholds) graphcore.Input {
	return graphcore.Input{
		Symbols:         req.TextAndSymbolsAssociated,
		Lines:           req.LineSegments,
		Texts:           req.AllText,
		InclusiveRegion: req.BoundingBoxInclusive,
		Image:           req.Image,
		Thresholds:      th,
	}
}
