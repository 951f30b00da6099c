package persistence

import (
	"context"

	"github.com/google/uuid"
)

// InsertBelongs records that a Sheet belongs to a PNID.
func (q *Queries) InsertBelongs(ctx context.Context, sheetID, pnidID uuid.UUID) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO belongs (sheet_id, pnid_id) VALUES ($1, $2)
		 ON CONFLICT (sheet_id, pnid_id) DO NOTHING`,
		sheetID, pnidID)
	return err
}

// InsertIsPartOf records that an Asset is part of a Sheet.
func (q *Queries) InsertIsPartOf(ctx context.Context, assetID, sheetID uuid.UUID) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO is_part_of (asset_id, sheet_id) VALUES ($1, $2)
		 ON CONFLICT (asset_id, sheet_id) DO NOTHING`,
		assetID, sheetID)
	return err
}

// InsertResides records that a Connector resides on a Sheet.
func (q *Queries) InsertResides(ctx context.Context, connectorID, sheetID uuid.UUID) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO resides (connector_id, sheet_id) VALUES ($1, $2)
		 ON CONFLICT (connector_id, sheet_id) DO NOTHING`,
		connectorID, sheetID)
	return err
}

// InsertLabeled records that an Asset carries an AssetType label.
func (q *Queries) InsertLabeled(ctx context.Context, assetID, assetTypeID uuid.UUID) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO labeled (asset_id, asset_type_id) VALUES ($1, $2)
		 ON CONFLICT (asset_id, asset_type_id) DO NOTHING`,
		assetID, assetTypeID)
	return err
}

type InsertConnectedParams struct {
	SheetID      uuid.UUID
	AssetAID     uuid.UUID
	AssetBID     uuid.UUID
	SegmentsJSON []byte
}

// InsertConnected records an undirected connection whose flow direction
// resolved to unknown, carrying the traversed path as JSON segments.
func (q *Queries) InsertConnected(ctx context.Context, arg InsertConnectedParams) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO connected (id, sheet_id, asset_a_id, asset_b_id, segments, created_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, now())
		 ON CONFLICT (sheet_id, asset_a_id, asset_b_id) DO UPDATE SET segments = EXCLUDED.segments`,
		arg.SheetID, arg.AssetAID, arg.AssetBID, arg.SegmentsJSON)
	return err
}

type InsertFlowEdgeParams struct {
	SheetID       uuid.UUID
	SourceAssetID uuid.UUID
	TargetAssetID uuid.UUID
	SegmentsJSON  []byte
}

// InsertInputs records a directed downstream flow edge from the Inputs
// side: TargetAssetID receives flow from SourceAssetID.
func (q *Queries) InsertInputs(ctx context.Context, arg InsertFlowEdgeParams) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO inputs (id, sheet_id, source_asset_id, target_asset_id, segments, created_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, now())
		 ON CONFLICT (sheet_id, source_asset_id, target_asset_id) DO UPDATE SET segments = EXCLUDED.segments`,
		arg.SheetID, arg.SourceAssetID, arg.TargetAssetID, arg.SegmentsJSON)
	return err
}

// InsertOutputs records the mirror Outputs row from the source side:
// SourceAssetID sends flow to TargetAssetID.
func (q *Queries) InsertOutputs(ctx context.Context, arg InsertFlowEdgeParams) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO outputs (id, sheet_id, source_asset_id, target_asset_id, segments, created_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, now())
		 ON CONFLICT (sheet_id, source_asset_id, target_asset_id) DO UPDATE SET segments = EXCLUDED.segments`,
		arg.SheetID, arg.SourceAssetID, arg.TargetAssetID, arg.SegmentsJSON)
	return err
}

// InsertRefers records a Connector-to-Connector reference, e.g. a
// pagination endpoint continuing on another sheet.
func (q *Queries) InsertRefers(ctx context.Context, fromConnectorID, toConnectorID uuid.UUID) error {
	_, err := q.db.Exec(ctx,
		`INSERT INTO refers (id, from_connector_id, to_connector_id, created_at)
		 VALUES (gen_random_uuid(), $1, $2, now())
		 ON CONFLICT (from_connector_id, to_connector_id) DO NOTHING`,
		fromConnectorID, toConnectorID)
	return err
}
