package main

import (
	"flag"
	"fmt"
	"log"

	coevol "github.com/johnbarton/coevol"
)

func main() {
	taxArg := flag.Int("ntax", 64, "number of taxa to simulate")
	siteArg := flag.Int("nsites", 50, "number of sites per sequence")
	muArg := flag.Float64("mu", 1.0, "substitution rate per unit branch length")
	brlenArg := flag.Float64("bl", 0.1, "mean branch length")
	seedArg := flag.Uint64("seed", 1, "random seed")
	topArg := flag.Int("n", 10, "number of top covarying pairs to print")
	flag.Parse()

	sim := &coevol.PhyloSim{
		NTax:      *taxArg,
		NSites:    *siteArg,
		Mu:        *muArg,
		MeanBrlen: *brlenArg,
		Alpha:     coevol.AlphaProtein,
		Seed:      *seedArg,
	}
	aln, tree, err := sim.Simulate()
	if err != nil {
		log.Fatalln("simulation failed:", err)
	}
	ntips := len(tree.Tips())
	fmt.Println("simulated", ntips, "taxa x", aln.NSites, "sites")

	enc, err := coevol.OneHot(aln)
	if err != nil {
		log.Fatalln("could not encode alignment:", err)
	}
	scores, err := coevol.CovarianceScores(enc)
	if err != nil {
		log.Fatalln("scoring failed:", err)
	}
	ranked := coevol.RankPairs(scores)

	// every one of these pairs covaries through shared ancestry alone
	n := *topArg
	if n > len(ranked) {
		n = len(ranked)
	}
	fmt.Println("top spuriously covarying pairs:")
	for _, ps := range ranked[:n] {
		fmt.Printf("%4d %4d  %f\n", ps.I, ps.J, ps.Score)
	}
}
