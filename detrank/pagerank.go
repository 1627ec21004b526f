package detrank

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Options configures the power iteration. Damping and Epsilon are scaled by
// Precision.
type Options struct {
	Damping       sdk.Uint
	Epsilon       sdk.Uint
	MaxIterations int
}

// DefaultOptions returns the standard parameters: damping 0.85,
// epsilon 1e-6, max 150 iterations, all in fixed point.
func DefaultOptions() Options {
	return Options{
		Damping:       FtoBD(0.85),
		Epsilon:       FtoBD(0.000001),
		MaxIterations: 150,
	}
}

// Rank runs the damped power iteration over the transition model until the
// total per-node change falls below Len()*Epsilon, and returns the converged
// rank vector, scaled by Precision. A nil personalization means uniform.
// The sweep is strictly sequential in sorted node order; determinism is the
// point of this variant. ctx is checked once per iteration boundary.
//
// Returns ErrMaxIterations, with no vector, if the iteration does not
// converge within Options.MaxIterations.
func Rank(ctx context.Context, t *Transition, p Personalization, opts Options) (map[string]sdk.Uint, error) {
	n := sdk.NewUint(uint64(t.Len()))

	if p == nil {
		p = Uniform(t)
	}

	β := opts.Damping
	oneMinusβ := precision.Sub(β)
	tolerance := opts.Epsilon.Mul(n)

	prev := make(map[string]sdk.Uint, t.Len())
	initial := precision.Quo(n)
	for _, id := range t.nodes {
		prev[id] = initial
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		danglingMass := sdk.ZeroUint()
		for _, id := range t.dangling {
			danglingMass = danglingMass.Add(prev[id])
		}
		danglingMass = β.Mul(danglingMass).Quo(precision)

		next := make(map[string]sdk.Uint, t.Len())
		for _, id := range t.nodes {
			next[id] = sdk.ZeroUint()
		}
		for _, source := range t.nodes {
			for _, arc := range t.out[source] {
				// multiply everything out before dividing to keep precision
				flow := β.Mul(prev[source]).Mul(arc.P).Quo(precision).Quo(precision)
				next[arc.Target] = next[arc.Target].Add(flow)
			}
		}
		for _, id := range t.nodes {
			jump := danglingMass.Add(oneMinusβ).Mul(p[id]).Quo(precision)
			next[id] = next[id].Add(jump)
		}

		Δ := sdk.ZeroUint()
		for _, id := range t.nodes {
			Δ = Δ.Add(absDiff(next[id], prev[id]))
		}
		if Δ.LT(tolerance) {
			return next, nil
		}
		prev = next
	}

	return nil, fmt.Errorf("%w within %d iterations", ErrMaxIterations, opts.MaxIterations)
}

func absDiff(a, b sdk.Uint) sdk.Uint {
	if a.GT(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}
