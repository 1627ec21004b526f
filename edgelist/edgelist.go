// Package edgelist reads whitespace-separated edge-list and node-label
// files into the structures the rank engine consumes. Lines starting with
// '#' and blank lines are skipped, so SNAP-style datasets (wiki-Vote.txt
// and friends) parse as-is.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/surfgraph/pagerank/rank"
)

// Edge is one parsed edge-list entry. Weight defaults to 1 when the line
// carries no weight column.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// Parse reads "source target [weight]" triples. Duplicate pairs are kept;
// aggregation is the graph's job. A malformed line is an error naming the
// line number.
func Parse(r io.Reader) ([]Edge, error) {
	var edges []Edge

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch len(fields) {
		case 2:
			edges = append(edges, Edge{Source: fields[0], Target: fields[1], Weight: 1.0})
		case 3:
			weight, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("edge list line %d: bad weight %q: %w", line, fields[2], err)
			}
			edges = append(edges, Edge{Source: fields[0], Target: fields[1], Weight: weight})
		default:
			return nil, fmt.Errorf("edge list line %d: expected 2 or 3 fields, got %d", line, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}

	return edges, nil
}

// ParseLabels reads "node category" pairs. A node listed twice keeps its
// last category.
func ParseLabels(r io.Reader) (map[string]string, error) {
	labels := make(map[string]string)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("label file line %d: expected 2 fields, got %d", line, len(fields))
		}
		labels[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading labels: %w", err)
	}

	return labels, nil
}

// CategoryWeights turns a label lookup into raw personalization weights:
// 1 for members of the category, 0 for everyone else. Feeding the result to
// rank.FromWeights yields the restriction-set personalization; a category
// with no members fails there as degenerate, which is the correct outcome.
func CategoryWeights(labels map[string]string, category string) map[string]float64 {
	weights := make(map[string]float64, len(labels))
	for node, label := range labels {
		if label == category {
			weights[node] = 1.0
		} else {
			weights[node] = 0.0
		}
	}
	return weights
}

// Build folds parsed edges into a graph. Duplicate pairs aggregate
// additively.
func Build(edges []Edge) (*rank.Graph, error) {
	graph := rank.NewGraph()
	for _, e := range edges {
		if err := graph.Link(e.Source, e.Target, e.Weight); err != nil {
			return nil, err
		}
	}
	return graph, nil
}
