// Package graphcore implements the graph construction pipeline: it fuses
// detected symbols, recognized text, and detected line segments into a
// typed asset-connectivity graph with flow-direction annotations.
//
// The package is organized as eleven pipeline stages, each operating on a
// shared RunContext. Stages never talk to a database, a blob store, or a
// job queue directly - those are external collaborators wired in by the
// caller.
package graphcore

import "github.com/pidgraph-labs/pidgraph/internal/pid"

// NodeType mirrors pid.NodeType but is graph-local: text is never a
// persisted graph node type, it is always resolved to a bridge line before
// edges are materialized, so graphcore only ever stores line and symbol
// nodes.
type NodeType = pid.NodeType

// ConnectionCandidate is the best attachment found so far for one endpoint
// of a line segment during candidate matching.
type ConnectionCandidate struct {
	Node         string
	Type         NodeType
	Distance     float64
	HasDistance  bool
	Intersection bool
}

// EndpointCandidates holds the start and end attachment candidates for a
// single source line, the per-line working state of candidate matching.
type EndpointCandidates struct {
	Start ConnectionCandidate
	End   ConnectionCandidate
}

// TraversalConnection is one result record from a CONNECTED-NODES BFS: the
// id reached, the flow direction inferred along the path, and the
// intermediate node ids visited to get there (excluding the start, including
// the destination only implicitly via NodeID).
type TraversalConnection struct {
	NodeID     string
	FlowDir    pid.FlowDirection
	VisitedIDs []string
}

// AssetSets is the output of asset classification: the three symbol-id
// partitions that drive flow-direction propagation and connectivity
// traversal. Each partition keeps both an insertion-ordered id slice (for
// deterministic iteration) and a membership set (for O(1) lookup).
type AssetSets struct {
	AssetSymbolIDs        IDSet
	AssetValveSymbolIDs   IDSet
	FlowDirectionAssetIDs IDSet
}

// IDSet is an insertion-ordered set of node ids.
type IDSet struct {
	ids  []string
	has  map[string]bool
}

// NewIDSet returns an empty IDSet.
func NewIDSet() IDSet { return IDSet{has: make(map[string]bool)} }

// Add inserts id if not already present.
func (s *IDSet) Add(id string) {
	if s.has == nil {
		s.has = make(map[string]bool)
	}
	if !s.has[id] {
		s.has[id] = true
		s.ids = append(s.ids, id)
	}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool { return s.has[id] }

// Slice returns the set's members in insertion order.
func (s IDSet) Slice() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of members.
func (s IDSet) Len() int { return len(s.ids) }

// Difference returns a new IDSet of members of s not in other, in s's order.
func (s IDSet) Difference(other IDSet) IDSet {
	out := NewIDSet()
	for _, id := range s.ids {
		if !other.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// ArrowRecord is one arrow symbol's resolved direction and source line,
// carried through to output assembly.
type ArrowRecord struct {
	NodeID        string
	Label         string
	TextAssoc     *string
	Box           pid.BoundingBox
	ArrowDir      pid.ArrowDirection
	Sources       []string
}

// ConnectedSymbolsConnectionItem is one edge of the final asset-connectivity
// output: the neighboring asset reached, the path of boxes visited to get
// there, and the flow direction of that path.
type ConnectedSymbolsConnectionItem struct {
	ID             int                `json:"id"`
	Label          string             `json:"label"`
	TextAssociated *string            `json:"text_associated,omitempty"`
	Segments       []pid.BoundingBox  `json:"segments"`
	FlowDirection  pid.FlowDirection  `json:"flow_direction"`
	BoundingBox    pid.BoundingBox    `json:"bounding_box"`
}

// ConnectedSymbolsItem is the final per-asset deliverable: its identity
// plus every other asset it connects to.
type ConnectedSymbolsItem struct {
	ID             int                              `json:"id"`
	Label          string                           `json:"label"`
	TextAssociated *string                          `json:"text_associated,omitempty"`
	BoundingBox    pid.BoundingBox                  `json:"bounding_box"`
	Connections    []ConnectedSymbolsConnectionItem `json:"connections"`
}
