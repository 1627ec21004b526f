// Package rank implements weighted personalized PageRank by power iteration.
// A directed multigraph is reduced to a stochastic transition model, then a
// probability vector is iterated under the damped transition until the total
// per-node change falls below tolerance.
// references:
// https://github.com/alixaxel/pagerank
// https://networkx.org/documentation/stable/reference/algorithms/link_analysis.html
package rank

import "fmt"

// Graph holds node and edge data. Parallel edges between the same ordered
// pair are additive; only the aggregate weight per distinct neighbor matters
// to the transition model. The graph is owned by the caller and is never
// mutated by rank computation.
type Graph struct {
	nodes  map[string]struct{}
	edges  map[string](map[string]float64)
	degree map[string]float64 // sum of all outgoing weights per node
}

// NewGraph initializes and returns a new graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:  make(map[string]struct{}),
		edges:  make(map[string](map[string]float64)),
		degree: make(map[string]float64),
	}
}

// AddNode ensures the node exists. Adding a node twice is a no-op.
func (graph *Graph) AddNode(id string) {
	graph.nodes[id] = struct{}{}
}

// Link creates a weighted edge between a source-target node pair.
// If the edge already exists, the weight is incremented. Both endpoints are
// added to the node set. Weights must be non-negative.
func (graph *Graph) Link(source, target string, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %s -> %s (%f)", ErrNegativeWeight, source, target, weight)
	}

	graph.nodes[source] = struct{}{}
	graph.nodes[target] = struct{}{}

	if _, ok := graph.edges[source]; !ok {
		graph.edges[source] = map[string]float64{}
	}
	graph.edges[source][target] += weight
	graph.degree[source] += weight

	return nil
}

// Len returns the number of nodes in the graph.
func (graph *Graph) Len() int {
	return len(graph.nodes)
}

// Nodes returns the node identifiers in unspecified order.
func (graph *Graph) Nodes() []string {
	ids := make([]string, 0, len(graph.nodes))
	for id := range graph.nodes {
		ids = append(ids, id)
	}
	return ids
}
