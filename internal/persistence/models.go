package persistence

import (
	"time"

	"github.com/google/uuid"
)

// PNID is a single piping-and-instrumentation drawing package.
type PNID struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Sheet is one page within a PNID.
type Sheet struct {
	ID        uuid.UUID
	PNIDID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// AssetType is a symbol label category, e.g. "Equipment/Tank".
type AssetType struct {
	ID   uuid.UUID
	Name string
}

// Asset is a non-connector symbol resolved to an asset by the pipeline:
// everything except symbols matching symbol_label_for_connectors.
type Asset struct {
	ID             uuid.UUID
	SheetID        uuid.UUID
	NodeID         string
	Label          string
	TextAssociated *string
	TopX, TopY     float64
	BottomX        float64
	BottomY        float64
	CreatedAt      time.Time
}

// Connector is a symbol matching symbol_label_for_connectors (e.g. a
// pagination endpoint that continues on another sheet).
type Connector struct {
	ID             uuid.UUID
	SheetID        uuid.UUID
	NodeID         string
	Label          string
	TextAssociated *string
	TopX, TopY     float64
	BottomX        float64
	BottomY        float64
	CreatedAt      time.Time
}

// Connected is an undirected asset-to-asset connection whose flow direction
// could not be resolved, carrying the traversed path segments as a JSON
// payload.
type Connected struct {
	ID           uuid.UUID
	SheetID      uuid.UUID
	AssetAID     uuid.UUID
	AssetBID     uuid.UUID
	SegmentsJSON []byte
	CreatedAt    time.Time
}

// FlowEdge is a directed Inputs or Outputs row: SourceAssetID flows into
// TargetAssetID (Outputs is the mirror row written from the source side).
type FlowEdge struct {
	ID             uuid.UUID
	SheetID        uuid.UUID
	SourceAssetID  uuid.UUID
	TargetAssetID  uuid.UUID
	SegmentsJSON   []byte
	CreatedAt      time.Time
}

// Refers records a Connector-to-Connector reference, e.g. a pagination
// endpoint on one sheet pointing at its continuation on another.
type Refers struct {
	ID              uuid.UUID
	FromConnectorID uuid.UUID
	ToConnectorID   uuid.UUID
	CreatedAt       time.Time
}
