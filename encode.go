package coevol

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// EncodedAlignment will store the one-hot encoding of an alignment along with
// the alphabet and site count that fix its block layout. Column
// site*K + Alpha.Index(r) is 1 when the sequence carries residue r at that
// site, so every (sequence, site) block of width K holds exactly one 1.
type EncodedAlignment struct {
	M      *mat.Dense // nseq x nsites*K indicator matrix
	Alpha  Alphabet
	NSites int
}

// OneHot will encode an alignment as a binary indicator matrix. The checks of
// NewAlignment are repeated here so an Alignment assembled by hand still fails
// eagerly rather than producing a silently misaligned encoding.
func OneHot(aln *Alignment) (*EncodedAlignment, error) {
	if aln.NSeq() == 0 {
		return nil, ErrEmptyAlignment
	}
	if aln.NSites == 0 {
		return nil, ErrNoSites
	}
	k := aln.Alpha.Len()
	if k == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidSymbol)
	}
	enc := new(EncodedAlignment)
	enc.Alpha = aln.Alpha
	enc.NSites = aln.NSites
	enc.M = mat.NewDense(aln.NSeq(), aln.NSites*k, nil)
	for row, s := range aln.Seqs {
		if s.Len() != aln.NSites {
			return nil, fmt.Errorf("%w: sequence %q has %d sites, want %d", ErrInconsistentLength, s.Name, s.Len(), aln.NSites)
		}
		for site, r := range s.Residues {
			ind := aln.Alpha.Index(r)
			if ind < 0 {
				return nil, fmt.Errorf("%w: %q at site %d of sequence %q", ErrInvalidSymbol, byte(r), site, s.Name)
			}
			enc.M.Set(row, site*k+ind, 1.0)
		}
	}
	return enc, nil
}

// NSeq will return the number of encoded sequences
func (enc *EncodedAlignment) NSeq() int {
	r, _ := enc.M.Dims()
	return r
}

// NCols will return the total column count, nsites*K
func (enc *EncodedAlignment) NCols() int {
	_, c := enc.M.Dims()
	return c
}
