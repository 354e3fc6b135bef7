package coevol

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// columnCovariance will compute the sample covariance matrix of the encoded
// alignment's columns. Normalization is N-1 throughout this package; the
// choice is pinned by a numerics test rather than left to a library default.
func columnCovariance(enc *EncodedAlignment) (*mat.SymDense, error) {
	if enc.NSeq() < 2 {
		return nil, ErrTooFewSequences
	}
	cov := mat.NewSymDense(enc.NCols(), nil)
	stat.CovarianceMatrix(cov, enc.M, nil)
	return cov, nil
}

// blockSumSquares will reduce a (nsites*K)^2 matrix to one score per site
// pair: the sum of squared entries of the K x K cross block between site i's
// and site j's columns. Only the off-diagonal i<j blocks enter; the score is
// symmetric by construction so each pair is computed once. Scores come back
// in ascending (i,j) enumeration order.
func blockSumSquares(m mat.Matrix, nsites, k int) []PairScore {
	var scores []PairScore
	for _, p := range allPairs(nsites) {
		i, j := p[0], p[1]
		sum := 0.
		for a := 0; a < k; a++ {
			for b := 0; b < k; b++ {
				cur := m.At(i*k+a, j*k+b)
				sum += cur * cur
			}
		}
		scores = append(scores, PairScore{I: i, J: j, Score: sum})
	}
	return scores
}

// CovarianceScores will score every site pair by the summed squared
// covariance between the two sites' one-hot blocks. Strong scores flag
// covarying site pairs, but indirect interactions inflate them; see
// CouplingScores for the corrected variant.
func CovarianceScores(enc *EncodedAlignment) ([]PairScore, error) {
	cov, err := columnCovariance(enc)
	if err != nil {
		return nil, err
	}
	return blockSumSquares(cov, enc.NSites, enc.Alpha.Len()), nil
}
