package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coevol "github.com/johnbarton/coevol"
)

type config struct {
	Alignment string  `koanf:"alignment"`
	Coords    string  `koanf:"coords"`
	Method    string  `koanf:"method"`
	Lambda    float64 `koanf:"lambda"`
	Cutoff    float64 `koanf:"cutoff"`
	TopN      int     `koanf:"top_n"`
}

func defaults() *config {
	return &config{
		Method: "dca",
		Lambda: coevol.DefaultLambda,
		Cutoff: coevol.DefaultContactCutoff,
		TopN:   coevol.DefaultTopN,
	}
}

// loadConfig layers defaults, an optional YAML file, and COEVOL_-prefixed
// env vars. Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML) from -conf or COEVOL_CONFIG
//  3. env (prefix COEVOL_)
//
// Flags set explicitly on the command line override all of these.
func loadConfig(path string) (*config, error) {
	cfg := defaults()
	k := koanf.New(".")
	if path == "" {
		path = os.Getenv("COEVOL_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}
	envProvider := env.Provider("COEVOL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "coevol_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	header := make(table.Row, len(headers))
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i := range row {
			r[i] = row[i]
		}
		tw.AppendRow(r)
	}
	var columnConfigs []table.ColumnConfig
	for i := range headers {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)
	return tw.Render()
}

func main() {
	alnArg := flag.String("a", "", "alignment FASTA file")
	coordArg := flag.String("d", "", "residue coordinate file (one x y z line per site)")
	methodArg := flag.String("method", "", "pair scoring method:\ncov\traw covariance\ndca\tregularized inverse covariance (default)")
	lambdaArg := flag.Float64("l", -1., "regularization constant for the dca method")
	cutoffArg := flag.Float64("c", -1., "contact distance cutoff")
	topArg := flag.Int("n", -1, "number of top-ranked pairs to evaluate")
	confArg := flag.String("conf", "", "optional YAML config file (flags override)")
	flag.Parse()

	cfg, err := loadConfig(*confArg)
	if err != nil {
		log.Fatalln("could not load config:", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Alignment = *alnArg
		case "d":
			cfg.Coords = *coordArg
		case "method":
			cfg.Method = *methodArg
		case "l":
			cfg.Lambda = *lambdaArg
		case "c":
			cfg.Cutoff = *cutoffArg
		case "n":
			cfg.TopN = *topArg
		}
	})
	if cfg.Alignment == "" || cfg.Coords == "" {
		fmt.Println("need both an alignment (-a) and residue coordinates (-d)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	aln, err := coevol.ReadFastaFile(cfg.Alignment, coevol.AlphaProtein)
	if err != nil {
		log.Fatalln("could not read alignment:", err)
	}
	fmt.Println("read", aln.NSeq(), "sequences of", aln.NSites, "sites")

	coords, err := coevol.ReadCoordsFile(cfg.Coords)
	if err != nil {
		log.Fatalln("could not read coordinates:", err)
	}
	if len(coords) != aln.NSites {
		log.Fatalln("coordinate count", len(coords), "does not match alignment sites", aln.NSites)
	}
	contacts := coevol.ContactsFromDistances(coevol.DistancesFromCoords(coords), cfg.Cutoff)
	fmt.Println("found", contacts.Len(), "contacts below", cfg.Cutoff)

	enc, err := coevol.OneHot(aln)
	if err != nil {
		log.Fatalln("could not encode alignment:", err)
	}

	var scores []coevol.PairScore
	switch cfg.Method {
	case "cov":
		scores, err = coevol.CovarianceScores(enc)
	case "dca":
		scores, err = coevol.CouplingScores(enc, cfg.Lambda)
	default:
		log.Fatalln("unknown method:", cfg.Method)
	}
	if err != nil {
		log.Fatalln("scoring failed:", err)
	}

	ranked := coevol.RankPairs(scores)
	ev := coevol.EvaluateContacts(contacts, ranked, cfg.TopN)

	n := cfg.TopN
	if n > len(ranked) {
		n = len(ranked)
	}
	var rows [][]string
	for rank, ps := range ranked[:n] {
		status := "FP"
		if contacts.Has(ps.I, ps.J) {
			status = "TP"
		}
		rows = append(rows, []string{
			strconv.Itoa(rank + 1),
			strconv.Itoa(ps.I),
			strconv.Itoa(ps.J),
			strconv.FormatFloat(ps.Score, 'f', 6, 64),
			status,
		})
	}
	fmt.Println(renderTable([]string{"rank", "i", "j", "score", "status"}, rows))
	fmt.Println("true positives: ", len(ev.TruePositives))
	fmt.Println("false positives:", len(ev.FalsePositives))
	fmt.Println("missed contacts:", len(ev.OtherContacts))
}
