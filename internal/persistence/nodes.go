package persistence

import (
	"context"

	"github.com/google/uuid"
)

// UpsertPNID ensures a PNID row exists for the given drawing-package name,
// returning its id either way.
func (q *Queries) UpsertPNID(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx,
		`INSERT INTO pnid (id, name, created_at)
		 VALUES (gen_random_uuid(), $1, now())
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name).Scan(&id)
	return id, err
}

// UpsertSheet ensures a Sheet row exists under pnidID for the given sheet
// name, returning its id either way.
func (q *Queries) UpsertSheet(ctx context.Context, pnidID uuid.UUID, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx,
		`INSERT INTO sheet (id, pnid_id, name, created_at)
		 VALUES (gen_random_uuid(), $1, $2, now())
		 ON CONFLICT (pnid_id, name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		pnidID, name).Scan(&id)
	return id, err
}

// UpsertAssetType ensures an AssetType row exists for the given symbol
// label, returning its id either way.
func (q *Queries) UpsertAssetType(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx,
		`INSERT INTO asset_type (id, name)
		 VALUES (gen_random_uuid(), $1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name).Scan(&id)
	return id, err
}

type InsertAssetParams struct {
	SheetID        uuid.UUID
	NodeID         string
	Label          string
	TextAssociated *string
	TopX, TopY     float64
	BottomX        float64
	BottomY        float64
}

// InsertAsset inserts a resolved asset symbol, returning its id.
func (q *Queries) InsertAsset(ctx context.Context, arg InsertAssetParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx,
		`INSERT INTO asset (id, sheet_id, node_id, label, text_associated, top_x, top_y, bottom_x, bottom_y, created_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, now())
		 ON CONFLICT (sheet_id, node_id) DO UPDATE SET label = EXCLUDED.label, text_associated = EXCLUDED.text_associated
		 RETURNING id`,
		arg.SheetID, arg.NodeID, arg.Label, arg.TextAssociated, arg.TopX, arg.TopY, arg.BottomX, arg.BottomY).Scan(&id)
	return id, err
}

type InsertConnectorParams struct {
	SheetID        uuid.UUID
	NodeID         string
	Label          string
	TextAssociated *string
	TopX, TopY     float64
	BottomX        float64
	BottomY        float64
}

// InsertConnector inserts a symbol matching symbol_label_for_connectors,
// returning its id.
func (q *Queries) InsertConnector(ctx context.Context, arg InsertConnectorParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx,
		`INSERT INTO connector (id, sheet_id, node_id, label, text_associated, top_x, top_y, bottom_x, bottom_y, created_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, now())
		 ON CONFLICT (sheet_id, node_id) DO UPDATE SET label = EXCLUDED.label, text_associated = EXCLUDED.text_associated
		 RETURNING id`,
		arg.SheetID, arg.NodeID, arg.Label, arg.TextAssociated, arg.TopX, arg.TopY, arg.BottomX, arg.BottomY).Scan(&id)
	return id, err
}

// FindConnectorsByTextAssociated returns every other connector on the same
// pnid whose text_associated matches text, e.g. a shared "TO SHEET 4" tag
// linking an off-page connector to its continuation.
func (q *Queries) FindConnectorsByTextAssociated(ctx context.Context, pnidID uuid.UUID, text string, excludeConnectorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.db.Query(ctx,
		`SELECT c.id FROM connector c
		 JOIN sheet s ON s.id = c.sheet_id
		 WHERE s.pnid_id = $1 AND c.text_associated = $2 AND c.id != $3`,
		pnidID, text, excludeConnectorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
