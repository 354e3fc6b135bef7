package coevol

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Node is a node in a bifurcating phylogeny. Tips carry the simulated
// sequences; internal nodes hold the intermediate ancestral states.
type Node struct {
	NAME string
	LEN  float64 // branch length to the parent
	PAR  *Node
	CHLD []*Node
	SEQ  []Residue
}

// PreorderArray will return a preorder traversal of the subtree rooted at n
func (n *Node) PreorderArray() (ret []*Node) {
	ret = append(ret, n)
	for _, chld := range n.CHLD {
		ret = append(ret, chld.PreorderArray()...)
	}
	return
}

// Tips will return the tip nodes of the subtree rooted at n, in preorder
func (n *Node) Tips() (tips []*Node) {
	for _, nd := range n.PreorderArray() {
		if len(nd.CHLD) == 0 {
			tips = append(tips, nd)
		}
	}
	return
}

// PhyloSim will simulate sequences down a random bifurcating tree. Sister
// taxa inherit most of their sequence from a shared ancestor, so the
// resulting alignment covaries between sites without any selective
// interaction between them. Scoring such an alignment with CovarianceScores
// shows how far shared ancestry alone inflates covariation.
type PhyloSim struct {
	NTax      int
	NSites    int
	Mu        float64 // substitution probability scale per unit branch length
	MeanBrlen float64 // mean of the exponential branch length draw
	Alpha     Alphabet
	Seed      uint64
}

// Simulate will generate the tree and the alignment at its tips
func (s *PhyloSim) Simulate() (*Alignment, *Node, error) {
	if s.NTax < 2 {
		return nil, nil, fmt.Errorf("need at least 2 taxa, got %d", s.NTax)
	}
	if s.NSites < 1 {
		return nil, nil, fmt.Errorf("need at least 1 site, got %d", s.NSites)
	}
	if s.Alpha.Len() == 0 {
		return nil, nil, fmt.Errorf("empty alphabet")
	}
	mean := s.MeanBrlen
	if mean <= 0. {
		mean = 0.1
	}
	src := rand.NewSource(s.Seed)
	rng := rand.New(src)
	brlen := distuv.Exponential{Rate: 1. / mean, Src: src}

	tree := growClade(s.NTax, rng, brlen)
	tree.LEN = 0.
	tipnum := 0
	for _, nd := range tree.PreorderArray() {
		if len(nd.CHLD) == 0 {
			nd.NAME = fmt.Sprintf("tax%d", tipnum)
			tipnum++
		}
	}

	tree.SEQ = make([]Residue, s.NSites)
	for i := range tree.SEQ {
		tree.SEQ[i] = s.Alpha[rng.Intn(s.Alpha.Len())]
	}
	s.evolve(tree, rng)

	var seqs []Sequence
	for _, tip := range tree.Tips() {
		seqs = append(seqs, Sequence{Name: tip.NAME, Residues: tip.SEQ})
	}
	aln, err := NewAlignment(seqs, s.Alpha)
	if err != nil {
		return nil, nil, err
	}
	return aln, tree, nil
}

// RandomAlignment will draw an i.i.d. null alignment: every residue uniform
// over the alphabet, independent across sequences and sites. Its covariance
// spectrum is the noise baseline the Marčenko–Pastur density describes, with
// none of the shared-ancestry structure PhyloSim introduces.
func RandomAlignment(nseq, nsites int, alpha Alphabet, seed uint64) (*Alignment, error) {
	if nseq < 1 {
		return nil, fmt.Errorf("need at least 1 sequence, got %d", nseq)
	}
	if nsites < 1 {
		return nil, fmt.Errorf("need at least 1 site, got %d", nsites)
	}
	if alpha.Len() == 0 {
		return nil, fmt.Errorf("empty alphabet")
	}
	rng := rand.New(rand.NewSource(seed))
	var seqs []Sequence
	for i := 0; i < nseq; i++ {
		res := make([]Residue, nsites)
		for j := range res {
			res[j] = alpha[rng.Intn(alpha.Len())]
		}
		seqs = append(seqs, Sequence{Name: fmt.Sprintf("rand%d", i), Residues: res})
	}
	return NewAlignment(seqs, alpha)
}

// growClade builds a random bifurcating topology over ntax tips by splitting
// the tip count uniformly at each internal node.
func growClade(ntax int, rng *rand.Rand, brlen distuv.Exponential) *Node {
	n := new(Node)
	n.LEN = brlen.Rand()
	if ntax == 1 {
		return n
	}
	left := 1 + rng.Intn(ntax-1)
	for _, sub := range []int{left, ntax - left} {
		chld := growClade(sub, rng, brlen)
		chld.PAR = n
		n.CHLD = append(n.CHLD, chld)
	}
	return n
}

// evolve copies each node's sequence to its children with per-site
// substitutions at probability 1-exp(-Mu*LEN), drawing replacements uniformly
// from the alphabet.
func (s *PhyloSim) evolve(n *Node, rng *rand.Rand) {
	for _, chld := range n.CHLD {
		pmut := 1. - math.Exp(-s.Mu*chld.LEN)
		chld.SEQ = make([]Residue, len(n.SEQ))
		copy(chld.SEQ, n.SEQ)
		for i := range chld.SEQ {
			if rng.Float64() < pmut {
				chld.SEQ[i] = s.Alpha[rng.Intn(s.Alpha.Len())]
			}
		}
		s.evolve(chld, rng)
	}
}
