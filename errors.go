package coevol

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidSymbol      = errors.New("residue not in alphabet")
	ErrInconsistentLength = errors.New("sequences differ in length")
	ErrEmptyAlignment     = errors.New("alignment has no sequences")
	ErrNoSites            = errors.New("alignment has no sites")
	ErrTooFewSequences    = errors.New("need at least two sequences to estimate covariance")
	ErrSingularMatrix     = errors.New("regularized covariance matrix is singular")
)
