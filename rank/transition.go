package rank

import "sort"

// Arc is one entry of a node's outgoing probability distribution.
type Arc struct {
	Target string
	P      float64
}

// Transition is the stochastic model derived from a graph: every node with
// positive outgoing weight carries a distribution over its neighbors summing
// to 1, every other node is in the dangling set. The model is immutable once
// built and safe for concurrent readers.
type Transition struct {
	nodes    []string // all node ids, sorted for deterministic sweeps
	out      map[string][]Arc
	dangling []string
}

// NewTransition derives the transition model and dangling set from a graph.
// The graph itself is only read, never modified. Returns ErrEmptyGraph if
// the graph has no nodes; a graph consisting solely of dangling nodes is
// valid and degenerates to personalization-only behavior.
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
		// A node whose outgoing weights sum to zero cannot pass mass
		// along edges and counts as dangling.
		total := graph.degree[source]
		if total <= 0 {
			t.dangling = append(t.dangling, source)
			continue
		}

		arcs := make([]Arc, 0, len(graph.edges[source]))
		for target, weight := range graph.edges[source] {
			arcs = append(arcs, Arc{Target: target, P: weight / total})
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
