package rank

import "sort"

// Scored is a node paired with its computed rank.
type Scored struct {
	ID   string
	Rank float64
}

// Order sorts a rank vector into a deterministic sequence: descending by
// rank, ties broken by ascending node identifier. Pure; the input map is
// not modified and an empty input yields an empty sequence.
func Order(ranks map[string]float64) []Scored {
	ordered := make([]Scored, 0, len(ranks))
	for id, r := range ranks {
		ordered = append(ordered, Scored{ID: id, Rank: r})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Rank != ordered[j].Rank {
			return ordered[i].Rank > ordered[j].Rank
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}
