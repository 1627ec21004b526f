package rank

import "errors"

// ErrEmptyGraph is returned when a transition model is derived from a graph
// with no nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// ErrNegativeWeight is returned when a link is added with a negative weight.
var ErrNegativeWeight = errors.New("negative edge weight")

// ErrIncompletePersonalization is returned when supplied personalization
// weights omit a node present in the graph. Missing nodes are never
// zero-filled; that would silently bias the jump step.
var ErrIncompletePersonalization = errors.New("personalization weights missing node")

// ErrDegeneratePersonalization is returned when supplied personalization
// weights sum to zero over the graph's node set.
var ErrDegeneratePersonalization = errors.New("personalization weights sum to zero")

// ErrInvalidDamping is returned when the damping factor is outside (0,1).
var ErrInvalidDamping = errors.New("damping factor out of range")

// ErrMaxIterations is returned when the power iteration does not converge
// within the configured iteration cap. No rank vector is returned; an
// unconverged estimate is not presented as a result.
var ErrMaxIterations = errors.New("rank computation did not converge")
