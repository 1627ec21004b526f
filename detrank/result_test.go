package detrank

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestOrder(t *testing.T) {
	t.Parallel()

	ranks := map[string]sdk.Uint{
		"c": FtoBD(0.25),
		"a": FtoBD(0.5),
		"b": FtoBD(0.25),
	}

	ordered := Order(ranks)
	wantIDs := []string{"a", "b", "c"}
	for i, scored := range ordered {
		if scored.ID != wantIDs[i] {
			t.Errorf("position %d: got %q, want %q", i, scored.ID, wantIDs[i])
		}
	}
	if !ordered[0].Rank.Equal(Precision().Quo(sdk.NewUint(2))) {
		t.Errorf("top rank = %s, want half of precision", ordered[0].Rank)
	}
}
