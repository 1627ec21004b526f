package rank

import (
	"context"
	"fmt"
	"math"
	"sync"
)

// Options configures the power iteration.
type Options struct {
	Damping       float64 // probability of following an edge; typically 0.85
	Epsilon       float64 // per-node convergence tolerance
	MaxIterations int     // upper bound on iterations before giving up
	Workers       int     // sweep parallelism; <= 1 runs sequentially
}

// DefaultOptions returns the standard parameters:
// damping 0.85, epsilon 1e-6, max 150 iterations, sequential sweep.
func DefaultOptions() Options {
	return Options{
		Damping:       0.85,
		Epsilon:       1e-6,
		MaxIterations: 150,
		Workers:       1,
	}
}

// Rank runs the damped power iteration over the transition model until the
// total per-node change falls below Len()*Epsilon, and returns the converged
// rank vector. A nil personalization means uniform. The iteration is a hard
// barrier: ctx is checked once per iteration boundary, never mid-sweep.
//
// Returns ErrInvalidDamping if Options.Damping is outside (0,1), and
// ErrMaxIterations, with no vector, if the iteration does not converge
// within Options.MaxIterations.
func Rank(ctx context.Context, t *Transition, p Personalization, opts Options) (map[string]float64, error) {
	if opts.Damping <= 0 || opts.Damping >= 1 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidDamping, opts.Damping)
	}

	n := t.Len()
	nf := float64(n)

	if p == nil {
		p = Uniform(t)
	}

	prev := make(map[string]float64, n)
	for _, id := range t.Nodes() {
		prev[id] = 1.0 / nf
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := t.sweep(prev, p, opts)

		var Δ float64
		for _, id := range t.Nodes() {
			Δ += math.Abs(next[id] - prev[id])
		}
		if Δ < nf*opts.Epsilon {
			return next, nil
		}
		prev = next
	}

	return nil, fmt.Errorf("%w within %d iterations", ErrMaxIterations, opts.MaxIterations)
}

// sweep applies one damped transition step: dangling mass and the random
// jump are both redistributed according to the personalization vector, so
// total mass is conserved.
func (t *Transition) sweep(prev map[string]float64, p Personalization, opts Options) map[string]float64 {
	β := opts.Damping

	danglingMass := float64(0)
	for _, id := range t.dangling {
		danglingMass += prev[id]
	}
	danglingMass *= β

	var next map[string]float64
	if opts.Workers > 1 {
		next = t.parallelFlow(prev, β, opts.Workers)
	} else {
		next = make(map[string]float64, len(t.nodes))
		for _, source := range t.nodes {
			for _, arc := range t.out[source] {
				next[arc.Target] += β * prev[source] * arc.P
			}
		}
	}

	for _, id := range t.nodes {
		next[id] += danglingMass*p[id] + (1-β)*p[id]
	}

	return next
}

// parallelFlow distributes the edge sweep across workers. Each worker
// accumulates into a private partial vector over a contiguous slice of
// source nodes; the partials are merged after the join barrier, in worker
// order, so a fixed worker count yields identical results on every run.
func (t *Transition) parallelFlow(prev map[string]float64, β float64, workers int) map[string]float64 {
	if workers > len(t.nodes) {
		workers = len(t.nodes)
	}
	partials := make([]map[string]float64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		// balanced partition; every bound stays within [0, len]
		lo := w * len(t.nodes) / workers
		hi := (w + 1) * len(t.nodes) / workers
		partials[w] = make(map[string]float64)

		wg.Add(1)
		go func(part map[string]float64, sources []string) {
			defer wg.Done()
			for _, source := range sources {
				for _, arc := range t.out[source] {
					part[arc.Target] += β * prev[source] * arc.P
				}
			}
		}(partials[w], t.nodes[lo:hi])
	}
	wg.Wait()

	next := make(map[string]float64, len(t.nodes))
	for _, part := range partials {
		for id, mass := range part {
			next[id] += mass
		}
	}
	return next
}
