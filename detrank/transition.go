package detrank

import (
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Arc is one entry of a node's outgoing probability distribution. P is
// scaled by Precision, so a node's arcs sum to Precision up to the rounding
// lost in integer division.
type Arc struct {
	Target string
	P      sdk.Uint
}

// Transition is the stochastic model derived from a graph. Immutable once
// built.
type Transition struct {
	nodes    []string
	out      map[string][]Arc
	dangling []string
}

// NewTransition derives the transition model and dangling set from a graph.
// Returns ErrEmptyGraph if the graph has no nodes.
func NewTransition(graph *Graph) (*Transition, error) {
	if graph.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	t := &Transition{
		nodes: graph.Nodes(),
		out:   make(map[string][]Arc, len(graph.edges)),
	}
	sort.Strings(t.nodes)

	for _, source := range t.nodes {
		total, ok := graph.degree[source]
		if !ok || total.IsZero() {
			t.dangling = append(t.dangling, source)
			continue
		}

		arcs := make([]Arc, 0, len(graph.edges[source]))
		for target, weight := range graph.edges[source] {
			arcs = append(arcs, Arc{Target: target, P: weight.Mul(precision).Quo(total)})
		}
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].Target < arcs[j].Target })
		t.out[source] = arcs
	}

	return t, nil
}

// Len returns the number of nodes in the model.
func (t *Transition) Len() int {
	return len(t.nodes)
}

// Nodes returns the node identifiers in sorted order. The returned slice is
// shared and must not be modified.
func (t *Transition) Nodes() []string {
	return t.nodes
}

// Dangling returns the identifiers of nodes with no outgoing mass, sorted.
func (t *Transition) Dangling() []string {
	return t.dangling
}

// Out returns the outgoing distribution of a node, or nil for dangling nodes.
func (t *Transition) Out(id string) []Arc {
	return t.out[id]
}
