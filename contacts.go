package coevol

import (
	"gonum.org/v1/gonum/mat"
)

// DefaultContactCutoff is the distance below which two residues count as a
// structural contact.
const DefaultContactCutoff = 8.0

// DefaultTopN is the default number of ranked predictions to evaluate.
const DefaultTopN = 50

// ContactSet will store the site pairs whose residues sit below a distance
// cutoff in the folded structure. Membership checks are hashed; the insertion
// order is kept so enumeration stays deterministic.
type ContactSet struct {
	members map[SitePair]bool
	order   []SitePair
}

// NewContactSet will build a contact set from explicit pairs. Pairs are
// normalized to i < j; duplicates collapse to one entry.
func NewContactSet(pairs []SitePair) *ContactSet {
	cs := new(ContactSet)
	cs.members = make(map[SitePair]bool)
	for _, p := range pairs {
		cs.add(NewSitePair(p[0], p[1]))
	}
	return cs
}

func (cs *ContactSet) add(p SitePair) {
	if cs.members[p] {
		return
	}
	cs.members[p] = true
	cs.order = append(cs.order, p)
}

// Has will report whether sites i and j are in contact
func (cs *ContactSet) Has(i, j int) bool {
	return cs.members[NewSitePair(i, j)]
}

// Len will return the number of contacts
func (cs *ContactSet) Len() int {
	return len(cs.order)
}

// Pairs will return the contacts in enumeration order
func (cs *ContactSet) Pairs() []SitePair {
	out := make([]SitePair, len(cs.order))
	copy(out, cs.order)
	return out
}

// ContactsFromDistances will derive the contact set from a pairwise distance
// matrix: every pair i<j with d(i,j) < cutoff is a contact. Enumeration order
// is ascending (i,j).
func ContactsFromDistances(d *mat.SymDense, cutoff float64) *ContactSet {
	cs := new(ContactSet)
	cs.members = make(map[SitePair]bool)
	n, _ := d.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.At(i, j) < cutoff {
				cs.add(SitePair{i, j})
			}
		}
	}
	return cs
}

// Evaluation holds the three-way partition of a contact prediction: the top-N
// predicted pairs split into true and false positives, plus the contacts the
// top N missed. The three slices are pairwise disjoint.
type Evaluation struct {
	TruePositives  []SitePair
	FalsePositives []SitePair
	OtherContacts  []SitePair
}

// EvaluateContacts will classify the top n ranked pairs against the contact
// set. ranked must already be sorted descending by score (see RankPairs).
// Predicted pairs in the contact set become true positives and the rest false
// positives, both in rank order; contacts outside the top n come back as
// OtherContacts in the set's enumeration order. n is clamped: when it exceeds
// len(ranked) every ranked pair is evaluated, and n <= 0 predicts nothing so
// all contacts are returned as OtherContacts.
func EvaluateContacts(contacts *ContactSet, ranked []PairScore, n int) *Evaluation {
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	ev := new(Evaluation)
	predicted := make(map[SitePair]bool)
	for _, ps := range ranked[:n] {
		p := ps.Pair()
		predicted[p] = true
		if contacts.Has(p[0], p[1]) {
			ev.TruePositives = append(ev.TruePositives, p)
		} else {
			ev.FalsePositives = append(ev.FalsePositives, p)
		}
	}
	for _, p := range contacts.Pairs() {
		if !predicted[p] {
			ev.OtherContacts = append(ev.OtherContacts, p)
		}
	}
	return ev
}
