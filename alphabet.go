package coevol

// Residue is a single symbol in a biological sequence.
type Residue byte

// Alphabet is an ordered set of residues. The order is load-bearing: it fixes
// the column layout of every one-hot block, so the encoder and the downstream
// block reductions must be handed the same Alphabet value.
type Alphabet []Residue

// NewAlphabet will build an alphabet from an explicit residue order
func NewAlphabet(residues ...Residue) Alphabet {
	return Alphabet(residues)
}

// AlphaProtein is the standard 20-letter amino-acid alphabet plus the gap
// character, in the order used throughout this package.
var AlphaProtein = NewAlphabet(
	'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y',
	'-',
)

// Len will return the number of symbols in the alphabet
func (a Alphabet) Len() int {
	return len(a)
}

// Index will return the position of r in the alphabet, or -1 if r is not a
// member.
func (a Alphabet) Index(r Residue) int {
	for i, cur := range a {
		if cur == r {
			return i
		}
	}
	return -1
}
