package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/gemdqm"
	"github.com/decibelcooper/gemdqm/efficiency"
	"github.com/decibelcooper/gemdqm/table"
)

var (
	versus = flag.String("x", "chamber", "efficiency versus chamber or eta")
	layer  = flag.Int("layer", 1, "GEM layer, 1 or 2")
	title  = flag.String("title", "", "plot title")
	prefix = flag.String("prefix", "out", "output file prefix")
	pTMin  = gemdqm.FloatArrayFlags{Array: []float64{0}}
)

func init() {
	flag.Var(&pTMin, "minpt", "minimum muon transverse momentum, one curve per value")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <gemcsc-eff-tables>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 || (*layer != 1 && *layer != 2) {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	log.SetPrefix("eff_plot: ")
	log.SetFlags(0)

	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	p.Title.Text = *title
	p.Y.Label.Text = fmt.Sprintf("GE1/1 layer %d efficiency", *layer)
	p.Y.Min = 0
	p.Y.Max = 1.05
	p.X.Tick.Marker = gemdqm.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = gemdqm.PreciseTicks{NSuggestedTicks: 5}

	switch *versus {
	case "chamber":
		p.X.Label.Text = "CSC chamber"
	case "eta":
		p.X.Label.Text = "muon |eta|"
	default:
		printUsage()
		log.Fatalf("Invalid -x %q", *versus)
	}

	curve := 0
	for _, filename := range flag.Args() {
		summaries := make([]*efficiency.Summary, len(pTMin.Array))
		for i := range summaries {
			summaries[i] = efficiency.NewSummary()
		}

		err := table.Scan(filename, func(rec *efficiency.Record) error {
			for i, cut := range pTMin.Array {
				if float64(rec.MuonPt) < cut {
					continue
				}
				summaries[i].Append(rec)
			}
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}

		for i, summary := range summaries {
			log.Printf("%s: pT > %g GeV, color %d", filename, pTMin.Array[i], curve)
			xerr, yerr, err := gemdqm.ErrorBars(points(summary), gemdqm.LineColor(curve))
			if err != nil {
				log.Fatal(err)
			}
			p.Add(xerr, yerr)
			curve++
		}
	}

	p.Save(6*vg.Inch, 4*vg.Inch, *prefix+".pdf")
	p.Save(6*vg.Inch, 4*vg.Inch, *prefix+".png")
}

func points(summary *efficiency.Summary) []efficiency.Point {
	var pass, total *hbook.H1D
	switch *versus {
	case "eta":
		pass, total = summary.EtaLayer1, summary.Eta
		if *layer == 2 {
			pass = summary.EtaLayer2
		}
		return efficiency.Ratio(pass, total, efficiency.NEtaBins, efficiency.MinAbsEta, efficiency.MaxAbsEta)
	default:
		pass, total = summary.ChamberLayer1, summary.Chamber
		if *layer == 2 {
			pass = summary.ChamberLayer2
		}
		return efficiency.Ratio(pass, total, efficiency.NChambers, 0.5, efficiency.NChambers+0.5)
	}
}
