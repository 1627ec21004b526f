package detrank

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Personalization maps every node to a jump weight scaled by Precision.
// A valid vector covers the full node set and sums to Precision up to
// integer-division rounding.
type Personalization map[string]sdk.Uint

// Uniform returns the personalization vector assigning Precision/N to every
// node.
func Uniform(t *Transition) Personalization {
	p := make(Personalization, t.Len())
	weight := precision.Quo(sdk.NewUint(uint64(t.Len())))
	for _, id := range t.Nodes() {
		p[id] = weight
	}
	return p
}

// FromWeights builds a personalization vector from externally supplied raw
// weights. Every node of the model must have an entry; entries for unknown
// nodes are ignored. The result is renormalized to sum to Precision over
// the node set.
func FromWeights(t *Transition, raw map[string]sdk.Uint) (Personalization, error) {
	sum := sdk.ZeroUint()
	for _, id := range t.Nodes() {
		weight, ok := raw[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncompletePersonalization, id)
		}
		sum = sum.Add(weight)
	}
	if sum.IsZero() {
		return nil, ErrDegeneratePersonalization
	}

	p := make(Personalization, t.Len())
	for _, id := range t.Nodes() {
		p[id] = raw[id].Mul(precision).Quo(sum)
	}
	return p, nil
}
