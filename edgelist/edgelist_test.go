package edgelist

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	input := `# Directed graph: out.wiki-Vote
# FromNodeId	ToNodeId
30	1412
30	3352	2.5

3352	30
`
	edges, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Edge{
		{Source: "30", Target: "1412", Weight: 1.0},
		{Source: "30", Target: "3352", Weight: 2.5},
		{Source: "3352", Target: "30", Weight: 1.0},
	}
	if diff := cmp.Diff(want, edges); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"bad weight", "a b nope\n"},
		{"single field", "lonely\n"},
		{"too many fields", "a b 1.0 extra\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			} else if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error should name the line: %v", err)
			}
		})
	}
}

func TestParseLabels(t *testing.T) {
	t.Parallel()

	input := `# node	category
30	students
31	docs
30	faculty
`
	labels, err := ParseLabels(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLabels: %v", err)
	}

	want := map[string]string{"30": "faculty", "31": "docs"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("ParseLabels mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryWeights(t *testing.T) {
	t.Parallel()

	labels := map[string]string{"a": "students", "b": "docs", "c": "students"}

	want := map[string]float64{"a": 1, "b": 0, "c": 1}
	if diff := cmp.Diff(want, CategoryWeights(labels, "students")); diff != "" {
		t.Errorf("CategoryWeights mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	graph, err := Build([]Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "a", Target: "b", Weight: 2},
		{Source: "b", Target: "c", Weight: 1},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if graph.Len() != 3 {
		t.Errorf("Len() = %d, want 3", graph.Len())
	}

	if _, err := Build([]Edge{{Source: "a", Target: "b", Weight: -1}}); err == nil {
		t.Error("Build with negative weight succeeded, want error")
	}
}
