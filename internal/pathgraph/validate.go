package pathgraph

import (
	"fmt"
	"strings"
)

// validateNodes performs all structural checks on the given node set.
// Returns a combined error describing all problems found, or nil if valid.
func validateNodes(nodes []Node) error {
	var errs []string

	if len(nodes) == 0 {
		return fmt.Errorf("path graph validation failed:\n  node set is empty")
	}

	idSet := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			errs = append(errs, "node with empty ID")
			continue
		}
		if idSet[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		idSet[n.ID] = true
	}

	// Dangling prerequisites.
	for _, n := range nodes {
		for _, prereqID := range n.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("node %q references nonexistent prerequisite %q", n.ID, prereqID))
			}
		}
	}

	// Cycle detection via Kahn's algorithm.
	inDegree := make(map[string]int, len(nodes))
	adj := make(map[string][]string)
	for _, n := range nodes {
		inDegree[n.ID] = len(n.Prerequisites)
		for _, prereqID := range n.Prerequisites {
			adj[prereqID] = append(adj[prereqID], n.ID)
		}
	}

	var queue []string
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adj[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	if visited < len(nodes) {
		var cycleNodes []string
		for _, n := range nodes {
			if inDegree[n.ID] > 0 {
				cycleNodes = append(cycleNodes, n.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving nodes: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root.
	hasRoot := false
	for _, n := range nodes {
		if len(n.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root nodes found (at least one node must have no prerequisites)")
	}

	// Channel task coverage: every node must define a task per channel.
	for _, n := range nodes {
		for _, ch := range AllChannels() {
			if _, ok := n.ChannelTasks[ch]; !ok {
				errs = append(errs, fmt.Sprintf("node %q has no task for channel %s", n.ID, ch))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("path graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
