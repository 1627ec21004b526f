package rank

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphLink(t *testing.T) {
	t.Parallel()

	graph := NewGraph()
	if err := graph.Link("a", "b", 2.0); err != nil {
		t.Fatal(err)
	}
	if err := graph.Link("a", "b", 0.5); err != nil {
		t.Fatal(err)
	}
	graph.AddNode("c")
	graph.AddNode("c")

	if graph.Len() != 3 {
		t.Errorf("Len() = %d, want 3", graph.Len())
	}

	nodes := graph.Nodes()
	sort.Strings(nodes)
	if diff := cmp.Diff([]string{"a", "b", "c"}, nodes); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}

	if got := graph.edges["a"]["b"]; got != 2.5 {
		t.Errorf("aggregate weight a->b = %f, want 2.5", got)
	}
	if got := graph.degree["a"]; got != 2.5 {
		t.Errorf("degree of a = %f, want 2.5", got)
	}
}

func TestGraphLinkNegativeWeight(t *testing.T) {
	t.Parallel()

	graph := NewGraph()
	err := graph.Link("a", "b", -1.0)
	if !errors.Is(err, ErrNegativeWeight) {
		t.Fatalf("Link with negative weight err = %v, want ErrNegativeWeight", err)
	}
	if graph.Len() != 0 {
		t.Errorf("rejected link mutated the graph: %d nodes", graph.Len())
	}
}
