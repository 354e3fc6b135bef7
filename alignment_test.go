package coevol_test

import (
	"errors"
	"strings"
	"testing"

	coevol "github.com/johnbarton/coevol"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReadFasta(t *testing.T) {
	Convey("Given a FASTA alignment with wrapped sequence lines", t, func() {
		src := `>seq1
ACD-
GH
>seq2
ACDE
GH
`
		Convey("When it is read", func() {
			aln, err := coevol.ReadFasta(strings.NewReader(src), coevol.AlphaProtein)

			Convey("Then both records are present with concatenated residues", func() {
				So(err, ShouldBeNil)
				So(aln.NSeq(), ShouldEqual, 2)
				So(aln.NSites, ShouldEqual, 6)
				So(aln.Seqs[0].Name, ShouldEqual, "seq1")
				So(aln.Seqs[0].String(), ShouldEqual, "ACD-GH")
				So(aln.Seqs[1].String(), ShouldEqual, "ACDEGH")
			})
		})

		Convey("When the records have unequal lengths", func() {
			ragged := ">a\nACDE\n>b\nAC\n"
			_, err := coevol.ReadFasta(strings.NewReader(ragged), coevol.AlphaProtein)

			Convey("Then reading fails with ErrInconsistentLength", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, coevol.ErrInconsistentLength), ShouldBeTrue)
			})
		})

		Convey("When a residue is outside the alphabet", func() {
			bad := ">a\nACXE\n"
			_, err := coevol.ReadFasta(strings.NewReader(bad), coevol.AlphaProtein)

			Convey("Then reading fails with ErrInvalidSymbol", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, coevol.ErrInvalidSymbol), ShouldBeTrue)
			})
		})

		Convey("When the source is empty", func() {
			_, err := coevol.ReadFasta(strings.NewReader(""), coevol.AlphaProtein)

			Convey("Then reading fails with ErrEmptyAlignment", func() {
				So(errors.Is(err, coevol.ErrEmptyAlignment), ShouldBeTrue)
			})
		})

		Convey("When the source holds only headers", func() {
			_, err := coevol.ReadFasta(strings.NewReader(">a\n>b\n"), coevol.AlphaProtein)

			Convey("Then reading fails with ErrNoSites instead of panicking downstream", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, coevol.ErrNoSites), ShouldBeTrue)
			})
		})
	})
}

func TestNewAlignment(t *testing.T) {
	Convey("Given hand-built sequences", t, func() {
		ab := coevol.NewAlphabet('A', 'B')

		Convey("When every residue is in the alphabet and lengths agree", func() {
			aln, err := coevol.NewAlignment([]coevol.Sequence{
				{Name: "s1", Residues: []coevol.Residue{'A', 'B'}},
				{Name: "s2", Residues: []coevol.Residue{'B', 'B'}},
			}, ab)

			Convey("Then the alignment is accepted", func() {
				So(err, ShouldBeNil)
				So(aln.NSeq(), ShouldEqual, 2)
				So(aln.NSites, ShouldEqual, 2)
			})
		})

		Convey("When a sequence carries a residue from outside the alphabet", func() {
			_, err := coevol.NewAlignment([]coevol.Sequence{
				{Name: "s1", Residues: []coevol.Residue{'A', 'C'}},
			}, ab)

			Convey("Then construction fails with ErrInvalidSymbol", func() {
				So(errors.Is(err, coevol.ErrInvalidSymbol), ShouldBeTrue)
			})
		})
	})
}
