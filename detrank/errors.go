package detrank

import "errors"

// ErrEmptyGraph is returned when a transition model is derived from a graph
// with no nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// ErrIncompletePersonalization is returned when supplied personalization
// weights omit a node present in the graph.
var ErrIncompletePersonalization = errors.New("personalization weights missing node")

// ErrDegeneratePersonalization is returned when supplied personalization
// weights sum to zero over the graph's node set.
var ErrDegeneratePersonalization = errors.New("personalization weights sum to zero")

// ErrMaxIterations is returned when the power iteration does not converge
// within the configured iteration cap.
var ErrMaxIterations = errors.New("rank computation did not converge")
