package graphcore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// Input is everything the pipeline needs to construct a graph for one P&ID
// sheet: the three detected-entity streams plus the region and thresholds
// that scope and tune every stage.
type Input struct {
	Symbols         []pid.Symbol
	Lines           []pid.LineSegment
	Texts           []pid.RecognizedText
	InclusiveRegion pid.BoundingBox
	Image           pid.ImageDetails
	Pixels          PixelThresholds
	Thresholds      Thresholds
}

// Output is the pipeline's external deliverable: the asset connectivity
// graph and every arrow's resolved direction.
type Output struct {
	ConnectedSymbols []ConnectedSymbolsItem
	ArrowNodes       []ArrowRecord
}

// RunContext carries one pipeline invocation's input, intermediate state,
// and final output across all eleven stages.
type RunContext struct {
	Input Input

	ExtendedLines     []pid.ExtendedLineSegment
	FilteredTexts     []pid.RecognizedText
	Graph             *Graph
	Candidates        []EndpointCandidates
	AssetSets         AssetSets
	ArrowRecords      []ArrowRecord
	SymbolConnections map[string][]TraversalConnection

	Output Output
}

// Stage is one pipeline step. Stages run strictly in sequence and share
// state only through the RunContext - no stage reaches into another's
// internals.
type Stage interface {
	Name() string
	Execute(ctx context.Context, rc *RunContext) error
}

type funcStage struct {
	name string
	fn   func(ctx context.Context, rc *RunContext) error
}

func (s funcStage) Name() string                                      { return s.name }
func (s funcStage) Execute(ctx context.Context, rc *RunContext) error { return s.fn(ctx, rc) }

// Pipeline runs the ordered sequence of graph construction stages.
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

// NewPipeline returns the standard eleven-stage graph construction pipeline.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, stages: defaultStages()}
}

func defaultStages() []Stage {
	return []Stage{
		funcStage{"extend-lines", stageExtendLines},
		funcStage{"filter-text", stageFilterText},
		funcStage{"init-graph", stageInitGraph},
		funcStage{"match-candidates", stageMatchCandidates},
		funcStage{"materialize-edges", stageMaterializeEdges},
		funcStage{"close-proximity", stageCloseProximity},
		funcStage{"infer-arrows", stageInferArrows},
		funcStage{"classify-assets", stageClassifyAssets},
		funcStage{"propagate", stagePropagate},
		funcStage{"find-connections", stageFindConnections},
		funcStage{"assemble-output", stageAssembleOutput},
	}
}

// Run executes every stage in order against a fresh RunContext built from
// input, returning the assembled output.
func (p *Pipeline) Run(ctx context.Context, input Input) (Output, error) {
	rc := &RunContext{Input: input}

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return Output{}, err
		}
		p.logger.DebugContext(ctx, "running stage", "stage", stage.Name())
		if err := stage.Execute(ctx, rc); err != nil {
			return Output{}, fmt.Errorf("graphcore: stage %s: %w", stage.Name(), err)
		}
	}

	return rc.Output, nil
}

func stageExtendLines(_ context.Context, rc *RunContext) error {
	rc.ExtendedLines = ExtendLines(rc.Input.Lines, rc.Input.Thresholds.LineSegmentPaddingDefault)
	return nil
}

func stageFilterText(_ context.Context, rc *RunContext) error {
	rc.FilteredTexts = FilterTextInRegion(rc.Input.Texts, rc.Input.InclusiveRegion)
	return nil
}

func stageInitGraph(_ context.Context, rc *RunContext) error {
	g, err := InitGraph(rc.Input.Symbols, rc.Input.Lines)
	if err != nil {
		return err
	}
	rc.Graph = g
	return nil
}

func stageMatchCandidates(_ context.Context, rc *RunContext) error {
	rc.Candidates = MatchLineConnectionCandidates(rc.Input.Lines, rc.ExtendedLines, rc.Input.Symbols, rc.FilteredTexts, rc.Input.Thresholds)
	return nil
}

func stageMaterializeEdges(_ context.Context, rc *RunContext) error {
	return MaterializeEdges(rc.Graph, rc.Candidates, rc.Input.Lines, rc.FilteredTexts)
}

func stageCloseProximity(_ context.Context, rc *RunContext) error {
	CloseSymbolProximity(rc.Graph, rc.Input.Symbols, rc.Input.Thresholds)
	return nil
}

func stageInferArrows(_ context.Context, rc *RunContext) error {
	rc.ArrowRecords = InferArrowDirections(rc.Graph, rc.Input.Lines, rc.ExtendedLines, rc.Input.Thresholds)
	return nil
}

func stageClassifyAssets(_ context.Context, rc *RunContext) error {
	rc.AssetSets = ClassifyAssets(rc.Graph, rc.Input.Thresholds)
	return nil
}

func stagePropagate(_ context.Context, rc *RunContext) error {
	Propagate(rc.Graph, rc.AssetSets, rc.Input.Thresholds)
	return nil
}

func stageFindConnections(_ context.Context, rc *RunContext) error {
	rc.SymbolConnections = FindSymbolConnections(rc.Graph, rc.AssetSets, rc.Input.Thresholds)
	return nil
}

func stageAssembleOutput(_ context.Context, rc *RunContext) error {
	rc.Output = Output{
		ConnectedSymbols: AssembleOutput(rc.Graph, rc.SymbolConnections, rc.AssetSets.AssetSymbolIDs.Slice(), rc.AssetSets.FlowDirectionAssetIDs, rc.AssetSets.AssetValveSymbolIDs),
		ArrowNodes:       rc.ArrowRecords,
	}
	return nil
}
