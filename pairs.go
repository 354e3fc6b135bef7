package coevol

import (
	"sort"
)

// SitePair is an unordered pair of site indices stored with the smaller index
// first.
type SitePair [2]int

// NewSitePair will normalize i,j into a SitePair with i < j
func NewSitePair(i, j int) SitePair {
	if j < i {
		i, j = j, i
	}
	return SitePair{i, j}
}

// PairScore associates a site pair (I < J) with a real-valued score.
type PairScore struct {
	I, J  int
	Score float64
}

// Pair will return the score's site pair
func (p PairScore) Pair() SitePair {
	return NewSitePair(p.I, p.J)
}

// allPairs enumerates every site pair i<j in ascending (i,j) order. All
// scorers emit their results in this order, which is also the tie-break order
// for ranking.
func allPairs(nsites int) []SitePair {
	var pairs []SitePair
	for i := 0; i < nsites; i++ {
		for j := i + 1; j < nsites; j++ {
			pairs = append(pairs, SitePair{i, j})
		}
	}
	return pairs
}

// RankPairs will return a new slice sorted descending by score. The sort is
// stable, so equal scores keep their enumeration order and a ranking is
// reproducible run to run.
func RankPairs(scores []PairScore) []PairScore {
	ranked := make([]PairScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked
}
