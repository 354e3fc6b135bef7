package coevol_test

import (
	"errors"
	"testing"

	coevol "github.com/johnbarton/coevol"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCouplingScores(t *testing.T) {
	Convey("Given an alignment with a zero-variance site", t, func() {
		ab := coevol.NewAlphabet('A', 'B')
		// site 1 is constant, so its covariance rows are all zero
		aln := mustAlignment(t, []string{"AA", "BA"}, ab)
		enc, err := coevol.OneHot(aln)
		So(err, ShouldBeNil)

		Convey("When lambda is 0", func() {
			_, err := coevol.CouplingScores(enc, 0)

			Convey("Then inversion fails with ErrSingularMatrix", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, coevol.ErrSingularMatrix), ShouldBeTrue)
			})
		})

		Convey("When lambda is the default 0.05", func() {
			scores, err := coevol.CouplingScores(enc, coevol.DefaultLambda)

			Convey("Then the regularized matrix inverts", func() {
				So(err, ShouldBeNil)
				So(len(scores), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a well-behaved alignment", t, func() {
		ab := coevol.NewAlphabet('A', 'B')
		aln := mustAlignment(t, []string{"ABAB", "BABA", "AABB", "BBAA", "ABBA"}, ab)
		enc, err := coevol.OneHot(aln)
		So(err, ShouldBeNil)

		Convey("When scored at increasing regularization strengths", func() {
			weak, err1 := coevol.CouplingScores(enc, 1)
			strong, err2 := coevol.CouplingScores(enc, 1000)
			extreme, err3 := coevol.CouplingScores(enc, 1e6)
			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(err3, ShouldBeNil)

			Convey("Then the inverse approaches (1/lambda)*I and scores shrink toward 0", func() {
				So(len(weak), ShouldEqual, len(strong))
				for n := range weak {
					So(strong[n].Score, ShouldBeLessThan, weak[n].Score)
					So(extreme[n].Score, ShouldBeLessThan, 1e-9)
				}
			})
		})

		Convey("When scored with the default lambda", func() {
			scores, err := coevol.CouplingScores(enc, coevol.DefaultLambda)
			So(err, ShouldBeNil)

			Convey("Then every pair i<j appears exactly once, in enumeration order", func() {
				So(len(scores), ShouldEqual, 6)
				want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
				for n, ps := range scores {
					So(ps.I, ShouldEqual, want[n][0])
					So(ps.J, ShouldEqual, want[n][1])
					So(ps.Score, ShouldBeGreaterThanOrEqualTo, 0)
				}
			})

			Convey("And scoring twice is bit-identical", func() {
				again, err := coevol.CouplingScores(enc, coevol.DefaultLambda)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, scores)
			})
		})
	})

	Convey("Given a single-sequence alignment", t, func() {
		ab := coevol.NewAlphabet('A', 'B')
		aln := mustAlignment(t, []string{"AB"}, ab)
		enc, err := coevol.OneHot(aln)
		So(err, ShouldBeNil)

		Convey("When the coupling scores are computed", func() {
			_, err := coevol.CouplingScores(enc, coevol.DefaultLambda)

			Convey("Then scoring fails with ErrTooFewSequences", func() {
				So(errors.Is(err, coevol.ErrTooFewSequences), ShouldBeTrue)
			})
		})
	})
}
