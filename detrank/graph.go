// Package detrank is a deterministic fixed-point implementation of the
// weighted personalized PageRank in package rank. All arithmetic uses
// cosmos-sdk unsigned integers scaled by 10^Decimals, so results are
// bit-identical across architectures and runs, at the cost of the small
// rounding drift inherent to integer division.
// references:
// https://github.com/alixaxel/pagerank
// https://networkx.org/documentation/stable/reference/algorithms/link_analysis.html
package detrank

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Decimals is the number of decimal places carried by every scaled value.
const Decimals = 18

// precision is the fixed-point scale: 10^Decimals represents 1.0.
var precision = sdk.NewUintFromBigInt(sdk.NewIntWithDecimal(1, Decimals).BigInt())

// Precision returns the fixed-point representation of 1.0.
func Precision() sdk.Uint {
	return precision
}

// Graph holds node and edge data. Parallel edges between the same ordered
// pair are additive. Weights are unsigned, so there is no negative-weight
// failure mode in this variant.
type Graph struct {
	nodes  map[string]struct{}
	edges  map[string](map[string]sdk.Uint)
	degree map[string]sdk.Uint
}

// NewGraph initializes and returns a new graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:  make(map[string]struct{}),
		edges:  make(map[string](map[string]sdk.Uint)),
		degree: make(map[string]sdk.Uint),
	}
}

// AddNode ensures the node exists. Adding a node twice is a no-op.
func (graph *Graph) AddNode(id string) {
	graph.nodes[id] = struct{}{}
}

// Link creates a weighted edge between a source-target node pair.
// If the edge already exists, the weight is incremented.
func (graph *Graph) Link(source, target string, weight sdk.Uint) {
	graph.nodes[source] = struct{}{}
	graph.nodes[target] = struct{}{}

	if _, ok := graph.edges[source]; !ok {
		graph.edges[source] = map[string]sdk.Uint{}
	}
	if _, ok := graph.edges[source][target]; !ok {
		graph.edges[source][target] = sdk.ZeroUint()
	}
	graph.edges[source][target] = graph.edges[source][target].Add(weight)

	if _, ok := graph.degree[source]; !ok {
		graph.degree[source] = sdk.ZeroUint()
	}
	graph.degree[source] = graph.degree[source].Add(weight)
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
