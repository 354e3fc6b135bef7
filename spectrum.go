package coevol

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CovarianceSpectrum will return the eigenvalues of the column covariance
// matrix of an encoded alignment, in ascending order. Comparing this spectrum
// to the Marčenko–Pastur density for the alignment's aspect ratio separates
// sampling-noise eigenvalues from ones carrying real signal.
func CovarianceSpectrum(enc *EncodedAlignment) ([]float64, error) {
	cov, err := columnCovariance(enc)
	if err != nil {
		return nil, err
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(cov, false); !ok {
		return nil, fmt.Errorf("eigendecomposition of the covariance matrix failed")
	}
	return eig.Values(nil), nil
}

// AspectRatio will return q = columns/rows for the encoded alignment, the
// shape parameter of the Marčenko–Pastur law
func (enc *EncodedAlignment) AspectRatio() float64 {
	return float64(enc.NCols()) / float64(enc.NSeq())
}

// MarchenkoPasturBounds will return the support [lo, hi] of the
// Marčenko–Pastur density for aspect ratio q and element variance sigma2:
// sigma2*(1 -/+ sqrt(q))^2.
func MarchenkoPasturBounds(q, sigma2 float64) (lo, hi float64) {
	s := math.Sqrt(q)
	lo = sigma2 * (1. - s) * (1. - s)
	hi = sigma2 * (1. + s) * (1. + s)
	return
}

// MarchenkoPasturDensity will evaluate the Marčenko–Pastur eigenvalue density
// at x for aspect ratio q and element variance sigma2. Outside the support,
// and for non-positive x or q, the density is 0. The point mass at 0 that
// appears when q > 1 is not included.
func MarchenkoPasturDensity(x, q, sigma2 float64) float64 {
	if x <= 0. || q <= 0. || sigma2 <= 0. {
		return 0.
	}
	lo, hi := MarchenkoPasturBounds(q, sigma2)
	if x <= lo || x >= hi {
		return 0.
	}
	return math.Sqrt((hi-x)*(x-lo)) / (2. * math.Pi * sigma2 * q * x)
}
