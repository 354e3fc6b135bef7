package coevol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sequence is a single named row of an alignment.
type Sequence struct {
	Name     string
	Residues []Residue
}

// Len will return the number of residues in the sequence
func (s Sequence) Len() int {
	return len(s.Residues)
}

func (s Sequence) String() string {
	b := make([]byte, len(s.Residues))
	for i, r := range s.Residues {
		b[i] = byte(r)
	}
	return string(b)
}

// Alignment will store a multiple sequence alignment together with the
// alphabet its residues are drawn from. All sequences have the same number of
// sites. An Alignment is never mutated after construction.
type Alignment struct {
	Seqs   []Sequence
	Alpha  Alphabet
	NSites int
}

// NewAlignment will validate a set of sequences against the alphabet and wrap
// them in an Alignment. It fails with ErrInconsistentLength on ragged input,
// ErrInvalidSymbol when a residue is not a member of alpha, and ErrNoSites
// when the sequences are empty (a headers-only FASTA parses into exactly
// that).
func NewAlignment(seqs []Sequence, alpha Alphabet) (*Alignment, error) {
	if len(seqs) == 0 {
		return nil, ErrEmptyAlignment
	}
	nsites := seqs[0].Len()
	if nsites == 0 {
		return nil, ErrNoSites
	}
	for _, s := range seqs {
		if s.Len() != nsites {
			return nil, fmt.Errorf("%w: sequence %q has %d sites, want %d", ErrInconsistentLength, s.Name, s.Len(), nsites)
		}
		for site, r := range s.Residues {
			if alpha.Index(r) < 0 {
				return nil, fmt.Errorf("%w: %q at site %d of sequence %q", ErrInvalidSymbol, byte(r), site, s.Name)
			}
		}
	}
	aln := new(Alignment)
	aln.Seqs = seqs
	aln.Alpha = alpha
	aln.NSites = nsites
	return aln, nil
}

// NSeq will return the number of sequences in the alignment
func (aln *Alignment) NSeq() int {
	return len(aln.Seqs)
}

// ReadFasta will read a FASTA-formatted alignment. Lines beginning with '>'
// start a new sequence; sequence lines belonging to the same record are
// concatenated, so wrapped alignments are fine. The result is validated with
// NewAlignment.
func ReadFasta(r io.Reader, alpha Alphabet) (*Alignment, error) {
	var seqs []Sequence
	var cur *Sequence
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			seqs = append(seqs, Sequence{Name: strings.TrimSpace(line[1:])})
			cur = &seqs[len(seqs)-1]
			continue
		}
		if cur == nil { // residues before any header
			seqs = append(seqs, Sequence{})
			cur = &seqs[len(seqs)-1]
		}
		for i := 0; i < len(line); i++ {
			cur.Residues = append(cur.Residues, Residue(line[i]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewAlignment(seqs, alpha)
}

// ReadFastaFile will read a FASTA alignment from a path
func ReadFastaFile(path string, alpha Alphabet) (*Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFasta(f, alpha)
}
