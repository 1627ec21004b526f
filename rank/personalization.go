package rank

import "fmt"

// Personalization maps every node to a non-negative jump weight. A valid
// vector covers the full node set and sums to 1. The same vector governs
// both the random-jump step and the redistribution of dangling mass, so a
// skewed vector funnels dangling mass preferentially into its target set.
type Personalization map[string]float64

// Uniform returns the personalization vector assigning 1/N to every node.
func Uniform(t *Transition) Personalization {
	p := make(Personalization, t.Len())
	weight := 1.0 / float64(t.Len())
	for _, id := range t.Nodes() {
		p[id] = weight
	}
	return p
}

// FromWeights builds a personalization vector from externally supplied raw
// weights. Every node of the model must have an entry; entries for unknown
// nodes are ignored. The result is renormalized to sum to 1 over the node
// set. Returns ErrIncompletePersonalization if a node has no entry and
// ErrDegeneratePersonalization if the restricted weights sum to zero.
func FromWeights(t *Transition, raw map[string]float64) (Personalization, error) {
	var sum float64
	for _, id := range t.Nodes() {
		weight, ok := raw[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncompletePersonalization, id)
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: negative weight for %s", ErrDegeneratePersonalization, id)
		}
		sum += weight
	}
	if sum <= 0 {
		return nil, ErrDegeneratePersonalization
	}

	p := make(Personalization, t.Len())
	for _, id := range t.Nodes() {
		p[id] = raw[id] / sum
	}
	return p, nil
}
