package leaderboard

import (
	"sort"

	"github.com/bitmark-inc/commute-leaderboard/schema"
)

// RankedEntry - a leaderboard record with its position
type RankedEntry struct {
	Rank int `json:"rank"`
	schema.LeaderboardRecord
}

// Rank orders records by distance, then by number of commutes and then by name.
// Records with the same distance and commutes share a rank, and the next rank
// skips the shared positions.
func Rank(records []schema.LeaderboardRecord) []RankedEntry {
	sorted := make([]schema.LeaderboardRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Distance != b.Distance {
			return a.Distance > b.Distance
		}
		if a.NCommutes != b.NCommutes {
			return a.NCommutes > b.NCommutes
		}
		return a.Name < b.Name
	})

	ranked := make([]RankedEntry, 0, len(sorted))
	for i, r := range sorted {
		rank := i + 1
		if i > 0 {
			prev := ranked[i-1]
			if prev.Distance == r.Distance && prev.NCommutes == r.NCommutes {
				rank = prev.Rank
			}
		}
		ranked = append(ranked, RankedEntry{
			Rank:              rank,
			LeaderboardRecord: r,
		})
	}

	return ranked
}
