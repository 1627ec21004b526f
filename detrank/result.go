package detrank

import (
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Scored is a node paired with its computed rank, scaled by Precision.
type Scored struct {
	ID   string
	Rank sdk.Uint
}

// Order sorts a rank vector into a deterministic sequence: descending by
// rank, ties broken by ascending node identifier.
func Order(ranks map[string]sdk.Uint) []Scored {
	ordered := make([]Scored, 0, len(ranks))
	for id, r := range ranks {
		ordered = append(ordered, Scored{ID: id, Rank: r})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].Rank.Equal(ordered[j].Rank) {
			return ordered[i].Rank.GT(ordered[j].Rank)
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}
