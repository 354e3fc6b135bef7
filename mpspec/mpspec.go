package main

import (
	"flag"
	"fmt"
	"log"

	coevol "github.com/johnbarton/coevol"
)

func main() {
	alnArg := flag.String("a", "", "alignment FASTA file")
	randArg := flag.Bool("random", false, "use a random i.i.d. null alignment instead of -a")
	seqArg := flag.Int("nseq", 500, "sequences in the random null alignment")
	siteArg := flag.Int("nsites", 50, "sites in the random null alignment")
	seedArg := flag.Uint64("seed", 1, "random seed for the null alignment")
	binArg := flag.Int("bins", 30, "number of histogram bins")
	flag.Parse()

	var aln *coevol.Alignment
	var err error
	switch {
	case *randArg:
		aln, err = coevol.RandomAlignment(*seqArg, *siteArg, coevol.AlphaProtein, *seedArg)
	case *alnArg != "":
		aln, err = coevol.ReadFastaFile(*alnArg, coevol.AlphaProtein)
	default:
		fmt.Println("need an alignment (-a) or -random")
		flag.PrintDefaults()
		return
	}
	if err != nil {
		log.Fatalln("could not build alignment:", err)
	}
	enc, err := coevol.OneHot(aln)
	if err != nil {
		log.Fatalln("could not encode alignment:", err)
	}
	vals, err := coevol.CovarianceSpectrum(enc)
	if err != nil {
		log.Fatalln("could not compute spectrum:", err)
	}

	q := enc.AspectRatio()
	sigma2 := meanVariance(vals)
	lo, hi := coevol.MarchenkoPasturBounds(q, sigma2)
	fmt.Printf("%d eigenvalues, q = %.3f, mean variance = %.4f\n", len(vals), q, sigma2)
	fmt.Printf("Marchenko-Pastur support: [%.4f, %.4f]\n", lo, hi)

	outliers := 0
	for _, v := range vals {
		if v > hi {
			outliers++
		}
	}
	fmt.Println(outliers, "eigenvalues above the MP edge")

	min, max := vals[0], vals[len(vals)-1]
	if max <= min {
		return
	}
	width := (max - min) / float64(*binArg)
	counts := make([]int, *binArg)
	for _, v := range vals {
		b := int((v - min) / width)
		if b >= *binArg {
			b = *binArg - 1
		}
		counts[b]++
	}
	total := float64(len(vals))
	fmt.Println("bin center   empirical   MP density")
	for b := 0; b < *binArg; b++ {
		center := min + (float64(b)+0.5)*width
		empirical := float64(counts[b]) / (total * width)
		mp := coevol.MarchenkoPasturDensity(center, q, sigma2)
		fmt.Printf("%10.4f  %10.4f  %10.4f\n", center, empirical, mp)
	}
}

// meanVariance estimates the element variance for the MP null from the trace
// of the covariance matrix (the mean eigenvalue).
func meanVariance(vals []float64) float64 {
	sum := 0.
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
