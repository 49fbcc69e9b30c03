package pathgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the curriculum DAG with precomputed indices.
// Successor lists are ordered (by node Order, then ID) so that branch
// presentation is deterministic.
type Graph struct {
	nodes      []Node
	byID       map[string]*Node
	successors map[string][]string
	roots      []string
	topoOrder  []string
	topoIndex  map[string]int
}

// New constructs a Graph from a slice of nodes.
// It builds all indices including topological order (Kahn's algorithm).
// Returns an error if the node set fails structural validation.
func New(nodes []Node) (*Graph, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}

	g := &Graph{
		nodes:      nodes,
		byID:       make(map[string]*Node, len(nodes)),
		successors: make(map[string][]string),
		topoIndex:  make(map[string]int, len(nodes)),
	}

	for i := range g.nodes {
		g.byID[g.nodes[i].ID] = &g.nodes[i]
	}

	// Reverse edges: prerequisite -> dependents.
	for i := range g.nodes {
		for _, prereqID := range g.nodes[i].Prerequisites {
			g.successors[prereqID] = append(g.successors[prereqID], g.nodes[i].ID)
		}
	}

	// Order successor lists by node Order then ID for stable branching.
	for id, succ := range g.successors {
		sort.Slice(succ, func(i, j int) bool {
			ni, nj := g.byID[succ[i]], g.byID[succ[j]]
			if ni.Order != nj.Order {
				return ni.Order < nj.Order
			}
			return ni.ID < nj.ID
		})
		g.successors[id] = succ
	}

	// Topological sort (Kahn's algorithm) with sorted queues for
	// deterministic ordering.
	inDegree := make(map[string]int, len(nodes))
	for i := range nodes {
		inDegree[nodes[i].ID] = len(nodes[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoOrder = append(g.topoOrder, id)

		succ := slices.Clone(g.successors[id])
		sort.Strings(succ)
		for _, depID := range succ {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	for i, id := range g.topoOrder {
		g.topoIndex[id] = i
	}

	for i := range g.nodes {
		if len(g.nodes[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.nodes[i].ID)
		}
	}
	sort.Strings(g.roots)

	return g, nil
}

// Node returns a node by ID, or an error if not found.
func (g *Graph) Node(id string) (Node, error) {
	n, ok := g.byID[id]
	if !ok {
		return Node{}, fmt.Errorf("node not found: %q", id)
	}
	return *n, nil
}

// Has reports whether the graph contains a node with the given ID.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Nodes returns all nodes in topological order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.topoOrder))
	for _, id := range g.topoOrder {
		out = append(out, *g.byID[id])
	}
	return out
}

// Roots returns the IDs of all nodes with no prerequisites.
func (g *Graph) Roots() []string {
	return slices.Clone(g.roots)
}

// Successors returns the ordered successor node IDs of the given node.
func (g *Graph) Successors(id string) []string {
	return slices.Clone(g.successors[id])
}

// IsUnlocked reports whether all prerequisites of the given node are in
// the completed set.
func (g *Graph) IsUnlocked(id string, completed map[string]bool) bool {
	n, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range n.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// UnlockedSuccessors returns the successors of the given node that are
// unlocked under the completed set and not themselves completed, in
// successor order.
func (g *Graph) UnlockedSuccessors(id string, completed map[string]bool) []string {
	var out []string
	for _, succID := range g.successors[id] {
		if !completed[succID] && g.IsUnlocked(succID, completed) {
			out = append(out, succID)
		}
	}
	return out
}

// Reachable reports whether the given node is reachable under the
// completed set: either completed itself or unlocked.
func (g *Graph) Reachable(id string, completed map[string]bool) bool {
	return completed[id] || g.IsUnlocked(id, completed)
}
