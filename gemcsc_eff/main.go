package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pkg/profile"

	"github.com/decibelcooper/gemdqm/config"
	"github.com/decibelcooper/gemdqm/edm"
	"github.com/decibelcooper/gemdqm/efficiency"
	"github.com/decibelcooper/gemdqm/geometry"
	"github.com/decibelcooper/gemdqm/magfield"
	"github.com/decibelcooper/gemdqm/table"
)

var (
	cfgFile = flag.String("config", "", "YAML job configuration")
	geoFile = flag.String("geometry", "", "YAML geometry description (default: ideal station 1)")
	output  = flag.String("output", "gem.csv", "output table")
	prof    = flag.Bool("profile", false, "write a CPU profile")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <yaml-event-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	log.SetPrefix("gemcsc_eff: ")
	log.SetFlags(0)

	if *prof {
		defer profile.Start().Stop()
	}

	job := config.Default()
	if *cfgFile != "" {
		var err error
		job, err = config.LoadFile(*cfgFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := job.InitLogging(os.Stderr); err != nil {
		log.Fatal(err)
	}

	setup := &edm.MemSetup{
		Field:       magfield.CMS,
		Propagators: edm.DefaultPropagators(),
	}
	if *geoFile != "" {
		csc, gem, err := geometry.LoadFile(*geoFile)
		if err != nil {
			log.Fatal(err)
		}
		setup.CSC, setup.GEM = csc, gem
	} else {
		setup.CSC, setup.GEM = geometry.NewIdealStation1(geometry.DefaultStation1)
	}

	tbl, err := table.Create(*output)
	if err != nil {
		log.Fatal(err)
	}

	summary := efficiency.NewSummary()
	analyzer := efficiency.New(job.Analyzer, efficiency.Writers{tbl, summary}, nil)

	nEvents := 0
	for _, filename := range flag.Args() {
		nEvents += process(filename, analyzer, setup)
	}

	if err := tbl.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("%d events, %d segments written to %s", nEvents, tbl.Len(), *output)

	printSummary(os.Stdout, summary)
}

func process(filename string, analyzer *efficiency.Analyzer, setup *edm.MemSetup) int {
	f, err := os.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src := edm.NewYAMLSource(f)
	nEvents := 0
	for {
		evt, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		nEvents++

		setup.Run = evt.Run
		if _, err := analyzer.Analyze(evt, setup); err != nil && !errors.Is(err, efficiency.ErrMissingInput) {
			log.Fatal(err)
		}
	}
	return nEvents
}

func printSummary(w io.Writer, summary *efficiency.Summary) {
	layer1 := efficiency.Ratio(summary.ChamberLayer1, summary.Chamber, efficiency.NChambers, 0.5, efficiency.NChambers+0.5)
	layer2 := efficiency.Ratio(summary.ChamberLayer2, summary.Chamber, efficiency.NChambers, 0.5, efficiency.NChambers+0.5)

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "chamber\tsegments\tlayer 1\t\tlayer 2\t\t\n")
	for i := range layer1 {
		_, n := summary.Chamber.XY(i)
		fmt.Fprintf(tw, "%d\t%.0f\t%.3f\t± %.3f\t%.3f\t± %.3f\t\n",
			i+1, n,
			layer1[i].Y, layer1[i].YErr,
			layer2[i].Y, layer2[i].YErr,
		)
	}
	tw.Flush()
}
