package graphcore

// PixelThresholds carries every geometry-related config option in its
// raw, image-pixel form, as given by the operator. Normalize converts them
// to the [0,1] working units the pipeline operates in.
type PixelThresholds struct {
	LineSegmentPaddingDefault                  float64
	GraphLineBufferPixels                      float64
	GraphDistanceThresholdForSymbolsPixels     float64
	GraphDistanceThresholdForTextPixels        float64
	GraphDistanceThresholdForLinesPixels       float64
	GraphSymbolToSymbolDistanceThresholdPixels float64
}

// Thresholds holds every normalized numeric and categorical knob the
// pipeline stages read. Pixel-denominated fields have already been divided
// by max(image_height, image_width) by the time a Thresholds reaches a stage.
type Thresholds struct {
	ArrowSymbolLabel                          string
	CentroidDistanceThreshold                 float64
	FlowDirectionAssetPrefixes                []string
	ValveSymbolPrefix                         string
	SymbolLabelPrefixesWithText                []string
	SymbolLabelPrefixesToConnectIfClose        []string
	SymbolLabelForConnectors                   []string
	LineSegmentPaddingDefault                  float64
	GraphLineBuffer                            float64
	GraphDistanceThresholdForSymbols           float64
	GraphDistanceThresholdForText              float64
	GraphDistanceThresholdForLines             float64
	GraphSymbolToSymbolDistanceThreshold       float64
	GraphSymbolToSymbolOverlapRegionThreshold  float64
	SymbolOverlapThreshold                     float64
	WorkersCountForDataBatch                   int
	ExhaustiveSearch                           bool
}

// Normalize converts pixel thresholds to normalized [0,1] units given the
// image's longest dimension: every *_pixels value is divided by
// max(image_height, image_width) before a pipeline run starts.
func (p PixelThresholds) Normalize(maxDimension float64) PixelThresholds {
	if maxDimension <= 0 {
		return p
	}
	return PixelThresholds{
		LineSegmentPaddingDefault:                  p.LineSegmentPaddingDefault,
		GraphLineBufferPixels:                      p.GraphLineBufferPixels / maxDimension,
		GraphDistanceThresholdForSymbolsPixels:      p.GraphDistanceThresholdForSymbolsPixels / maxDimension,
		GraphDistanceThresholdForTextPixels:         p.GraphDistanceThresholdForTextPixels / maxDimension,
		GraphDistanceThresholdForLinesPixels:        p.GraphDistanceThresholdForLinesPixels / maxDimension,
		GraphSymbolToSymbolDistanceThresholdPixels:  p.GraphSymbolToSymbolDistanceThresholdPixels / maxDimension,
	}
}

// WithPixels overlays normalized pixel-derived fields onto a base
// Thresholds (typically DefaultThresholds or a config-loaded value),
// returning the Thresholds a pipeline Run should actually use.
func (base Thresholds) WithPixels(pixels PixelThresholds, maxDimension float64) Thresholds {
	norm := pixels.Normalize(maxDimension)
	base.LineSegmentPaddingDefault = norm.LineSegmentPaddingDefault
	base.GraphLineBuffer = norm.GraphLineBufferPixels
	base.GraphDistanceThresholdForSymbols = norm.GraphDistanceThresholdForSymbolsPixels
	base.GraphDistanceThresholdForText = norm.GraphDistanceThresholdForTextPixels
	base.GraphDistanceThresholdForLines = norm.GraphDistanceThresholdForLinesPixels
	base.GraphSymbolToSymbolDistanceThreshold = norm.GraphSymbolToSymbolDistanceThresholdPixels
	return base
}

// DefaultThresholds returns the project's documented default tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ArrowSymbolLabel:                     "Piping/Fittings/Mid arrow flow direction",
		CentroidDistanceThreshold:            0.5,
		FlowDirectionAssetPrefixes:           []string{"Equipment/", "Piping/Endpoint/Pagination"},
		ValveSymbolPrefix:                    "Instrument/Valve/",
		SymbolLabelPrefixesWithText:          []string{"Equipment/", "Instrument/", "Piping/Endpoint/Pagination"},
		SymbolLabelPrefixesToConnectIfClose:  []string{"Equipment", "Instrument/Valve/", "Piping/Fittings/Mid arrow flow direction", "Piping/Fittings/Flanged connection"},
		SymbolLabelForConnectors:             []string{"Piping/Endpoint/Pagination"},
		LineSegmentPaddingDefault:            0.2,
		GraphLineBuffer:                      5.0 / 1000,
		GraphDistanceThresholdForSymbols:     5.0 / 1000,
		GraphDistanceThresholdForText:        5.0 / 1000,
		GraphDistanceThresholdForLines:       50.0 / 1000,
		GraphSymbolToSymbolDistanceThreshold: 10.0 / 1000,
		GraphSymbolToSymbolOverlapRegionThreshold: 0.7,
		SymbolOverlapThreshold:               0.6,
		WorkersCountForDataBatch:             3,
		ExhaustiveSearch:                     false,
	}
}
