package graphcore

import (
	"fmt"

	"github.com/pidgraph-labs/pidgraph/internal/pid"
)

// Node is one graph vertex: either a line (geometric segment) or a symbol
// (geometric box plus label). Sources encodes directionality on this
// otherwise-undirected graph: it names the neighbor node ids considered
// immediately upstream of this node in process flow.
type Node struct {
	ID             string
	Type           NodeType
	Box            pid.BoundingBox
	Line           pid.LineSegment
	Label          string
	TextAssociated *string
	ArrowDirection pid.ArrowDirection
	Sources        map[string]bool
	tempSources    map[string]bool
	hasTempSources bool
}

// Graph is a deterministic, insertion-ordered adjacency-list graph. It is
// not backed by a graph database - persistence of the finished graph is
// handled by a separate store once the pipeline returns its output.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	adj      map[string]map[string]bool
	adjOrder map[string][]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		adj:      make(map[string]map[string]bool),
		adjOrder: make(map[string][]string),
	}
}

// AddNode inserts a node. Symbol nodes must carry a non-empty label.
func (g *Graph) AddNode(id string, n Node) error {
	if n.Type == pid.NodeSymbol && n.Label == "" {
		return fmt.Errorf("graphcore: symbol node %q must have a label", id)
	}
	n.ID = id
	n.Sources = make(map[string]bool)
	if _, exists := g.nodes[id]; !exists {
		g.order = append(g.order, id)
		g.adj[id] = make(map[string]bool)
	}
	g.nodes[id] = &n
	return nil
}

// AddEdge inserts an undirected edge between two existing nodes.
func (g *Graph) AddEdge(a, b string) {
	if g.adj[a] == nil {
		g.adj[a] = make(map[string]bool)
	}
	if g.adj[b] == nil {
		g.adj[b] = make(map[string]bool)
	}
	if !g.adj[a][b] {
		g.adj[a][b] = true
		g.adjOrder[a] = append(g.adjOrder[a], b)
	}
	if !g.adj[b][a] {
		g.adj[b][a] = true
		g.adjOrder[b] = append(g.adjOrder[b], a)
	}
}

// Node returns the node with the given id, or nil if absent.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) int { return len(g.adjOrder[id]) }

// Neighbors returns the neighbor ids of id in the order they were added.
func (g *Graph) Neighbors(id string) []string {
	out := g.adjOrder[id]
	cp := make([]string, len(out))
	copy(cp, out)
	return cp
}

// NodeIDs returns every node id in insertion order.
func (g *Graph) NodeIDs() []string {
	cp := make([]string, len(g.order))
	copy(cp, g.order)
	return cp
}

// SymbolNodes returns every symbol node in insertion order.
func (g *Graph) SymbolNodes() []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.Type == pid.NodeSymbol {
			out = append(out, n)
		}
	}
	return out
}

// SymbolNodesByLabel returns every symbol node whose Label equals label.
func (g *Graph) SymbolNodesByLabel(label string) []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.Type == pid.NodeSymbol && n.Label == label {
			out = append(out, n)
		}
	}
	return out
}

// ArrowSymbolsAtTJunction returns arrow-labeled symbols with degree > 2 and
// more than two line-typed neighbors - the branch points flow-direction
// propagation treats specially.
func (g *Graph) ArrowSymbolsAtTJunction(arrowLabel string) []string {
	const degreeCriteria = 2
	var out []string
	for _, n := range g.SymbolNodesByLabel(arrowLabel) {
		if g.Degree(n.ID) <= degreeCriteria {
			continue
		}
		lineCount := 0
		for _, neighbor := range g.Neighbors(n.ID) {
			if nb := g.nodes[neighbor]; nb != nil && nb.Type == pid.NodeLine {
				lineCount++
			}
		}
		if lineCount > degreeCriteria {
			out = append(out, n.ID)
		}
	}
	return out
}

// setTempSource returns id's scratch sources set used during propagation,
// creating it on first use and seeding it from the node's already-published
// sources. Callers add provisional upstream relations to the returned set.
func (g *Graph) setTempSource(id string) map[string]bool {
	n := g.nodes[id]
	if !n.hasTempSources {
		n.tempSources = make(map[string]bool, len(n.Sources))
		for s := range n.Sources {
			n.tempSources[s] = true
		}
		n.hasTempSources = true
	}
	return n.tempSources
}

// PropagateFlowDirection walks each traversal's visited-id chain, recording
// the predecessor as a scratch source on every node along the path,
// including the final destination.
func (g *Graph) PropagateFlowDirection(symbolNodeID string, connections []TraversalConnection) {
	for _, conn := range connections {
		for _, visited := range conn.VisitedIDs {
			g.setTempSource(visited)
		}
		g.setTempSource(conn.NodeID)

		if conn.FlowDir == pid.FlowUnknown {
			continue
		}

		last := symbolNodeID
		for _, visited := range conn.VisitedIDs {
			temp := g.setTempSource(visited)
			temp[last] = true
			last = visited
		}
		temp := g.setTempSource(conn.NodeID)
		temp[last] = true
	}
}

// untraceableNodeIDs returns nodes whose every claimed scratch source names
// the node back as its own scratch source, i.e. each upstream claim is
// contradicted by a reverse claim. A single source s of n that has no
// scratch sources recorded, or whose scratch sources don't name n, keeps n
// out of the result. Nodes with no scratch sources are included.
func (g *Graph) untraceableNodeIDs() []string {
	var out []string
	for _, id := range g.order {
		n := g.nodes[id]
		blocking := true
		for source := range n.tempSources {
			sourceNode := g.nodes[source]
			if sourceNode == nil || !sourceNode.hasTempSources {
				blocking = false
				break
			}
			if !sourceNode.tempSources[id] {
				blocking = false
				break
			}
		}
		if blocking {
			out = append(out, id)
		}
	}
	return out
}

// PublishSources clears untraceable nodes' scratch sources, then copies
// every node's scratch sources into its real, externally-visible Sources.
func (g *Graph) PublishSources() {
	for _, id := range g.untraceableNodeIDs() {
		n := g.nodes[id]
		n.tempSources = nil
		n.hasTempSources = false
	}
	for _, id := range g.order {
		n := g.nodes[id]
		if n.hasTempSources {
			n.Sources = n.tempSources
			n.tempSources = nil
			n.hasTempSources = false
		}
	}
}
