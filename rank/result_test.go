package rank

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrder(t *testing.T) {
	t.Parallel()

	ranks := map[string]float64{
		"d": 0.1,
		"b": 0.4,
		"a": 0.4,
		"c": 0.1,
	}

	want := []Scored{
		{ID: "a", Rank: 0.4},
		{ID: "b", Rank: 0.4},
		{ID: "c", Rank: 0.1},
		{ID: "d", Rank: 0.1},
	}
	if diff := cmp.Diff(want, Order(ranks)); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderIdempotent(t *testing.T) {
	t.Parallel()

	ranks := map[string]float64{"a": 0.2, "b": 0.5, "c": 0.3}

	first := Order(ranks)
	second := Order(ranks)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Order diverged (-first +second):\n%s", diff)
	}
}

func TestOrderEmpty(t *testing.T) {
	t.Parallel()

	if got := Order(nil); len(got) != 0 {
		t.Errorf("Order(nil) = %v, want empty", got)
	}
}
