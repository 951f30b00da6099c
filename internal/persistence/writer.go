package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pidgraph-labs/pidgraph/internal/graphcore"
)

// WriteOutput persists one pipeline run's graphcore.Output under the given
// pid/sheet names: Connector-labeled symbols write to Connector, everything
// else to Asset; flow_direction=downstream writes a directed Inputs/Outputs
// pair, flow_direction=unknown writes an undirected Connected edge only. A
// connector sharing its text_associated tag with any other connector of the
// same pnid (on this sheet or another) gets a Refers edge to it.
func WriteOutput(ctx context.Context, q *Queries, pidName, sheetName string, out graphcore.Output, connectorLabelPrefixes []string) error {
	pnidID, err := q.UpsertPNID(ctx, pidName)
	if err != nil {
		return fmt.Errorf("upsert pnid: %w", err)
	}
	sheetID, err := q.UpsertSheet(ctx, pnidID, sheetName)
	if err != nil {
		return fmt.Errorf("upsert sheet: %w", err)
	}
	if err := q.InsertBelongs(ctx, sheetID, pnidID); err != nil {
		return fmt.Errorf("insert belongs: %w", err)
	}

	assetIDs := make(map[int]uuid.UUID)
	connectorIDs := make(map[int]uuid.UUID)

	for _, item := range out.ConnectedSymbols {
		nodeID := graphcore.SymbolNodeID(item.ID)

		if hasAnyConnectorPrefix(item.Label, connectorLabelPrefixes) {
			id, err := q.InsertConnector(ctx, InsertConnectorParams{
				SheetID:        sheetID,
				NodeID:         nodeID,
				Label:          item.Label,
				TextAssociated: item.TextAssociated,
				TopX:           item.BoundingBox.TopX,
				TopY:           item.BoundingBox.TopY,
				BottomX:        item.BoundingBox.BottomX,
				BottomY:        item.BoundingBox.BottomY,
			})
			if err != nil {
				return fmt.Errorf("insert connector %d: %w", item.ID, err)
			}
			connectorIDs[item.ID] = id
			if err := q.InsertResides(ctx, id, sheetID); err != nil {
				return fmt.Errorf("insert resides %d: %w", item.ID, err)
			}
			if item.TextAssociated != nil && *item.TextAssociated != "" {
				matches, err := q.FindConnectorsByTextAssociated(ctx, pnidID, *item.TextAssociated, id)
				if err != nil {
					return fmt.Errorf("find connector references %d: %w", item.ID, err)
				}
				for _, matchID := range matches {
					if err := q.InsertRefers(ctx, id, matchID); err != nil {
						return fmt.Errorf("insert refers %d: %w", item.ID, err)
					}
				}
			}
			continue
		}

		assetTypeID, err := q.UpsertAssetType(ctx, item.Label)
		if err != nil {
			return fmt.Errorf("upsert asset type %q: %w", item.Label, err)
		}
		id, err := q.InsertAsset(ctx, InsertAssetParams{
			SheetID:        sheetID,
			NodeID:         nodeID,
			Label:          item.Label,
			TextAssociated: item.TextAssociated,
			TopX:           item.BoundingBox.TopX,
			TopY:           item.BoundingBox.TopY,
			BottomX:        item.BoundingBox.BottomX,
			BottomY:        item.BoundingBox.BottomY,
		})
		if err != nil {
			return fmt.Errorf("insert asset %d: %w", item.ID, err)
		}
		assetIDs[item.ID] = id
		if err := q.InsertIsPartOf(ctx, id, sheetID); err != nil {
			return fmt.Errorf("insert is_part_of %d: %w", item.ID, err)
		}
		if err := q.InsertLabeled(ctx, id, assetTypeID); err != nil {
			return fmt.Errorf("insert labeled %d: %w", item.ID, err)
		}
	}

	for _, item := range out.ConnectedSymbols {
		sourceID, ok := assetIDs[item.ID]
		if !ok {
			continue // connectors don't participate in flow/connected edges
		}
		for _, conn := range item.Connections {
			targetID, ok := assetIDs[conn.ID]
			if !ok {
				continue
			}
			segments, err := json.Marshal(conn.Segments)
			if err != nil {
				return fmt.Errorf("marshal segments %d->%d: %w", item.ID, conn.ID, err)
			}

			switch conn.FlowDirection {
			case "downstream":
				if err := q.InsertInputs(ctx, InsertFlowEdgeParams{
					SheetID: sheetID, SourceAssetID: sourceID, TargetAssetID: targetID, SegmentsJSON: segments,
				}); err != nil {
					return fmt.Errorf("insert inputs %d->%d: %w", item.ID, conn.ID, err)
				}
				if err := q.InsertOutputs(ctx, InsertFlowEdgeParams{
					SheetID: sheetID, SourceAssetID: sourceID, TargetAssetID: targetID, SegmentsJSON: segments,
				}); err != nil {
					return fmt.Errorf("insert outputs %d->%d: %w", item.ID, conn.ID, err)
				}
			default:
				a, b := sourceID, targetID
				if a.String() > b.String() {
					a, b = b, a
				}
				if err := q.InsertConnected(ctx, InsertConnectedParams{
					SheetID: sheetID, AssetAID: a, AssetBID: b, SegmentsJSON: segments,
				}); err != nil {
					return fmt.Errorf("insert connected %d-%d: %w", item.ID, conn.ID, err)
				}
			}
		}
	}

	return nil
}

func hasAnyConnectorPrefix(label string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(label, p) {
			return true
		}
	}
	return false
}
