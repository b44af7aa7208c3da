package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/gemdqm"
	"github.com/decibelcooper/gemdqm/efficiency"
	"github.com/decibelcooper/gemdqm/table"
)

var (
	variable = flag.String("var", "cls", "GEM hit variable, cls or bx")
	matched  = flag.Bool("matched", false, "only segments matched with a standalone muon")
	output   = flag.String("output", "out.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <gemcsc-eff-table>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	log.SetPrefix("gem_cls: ")
	log.SetFlags(0)

	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	p.X.Tick.Marker = gemdqm.PreciseTicks{NSuggestedTicks: 5}

	var hists [2]*hbook.H1D
	var value func(rec *efficiency.Record, layer int) int
	switch *variable {
	case "cls":
		p.X.Label.Text = "GE1/1 cluster size"
		for i := range hists {
			hists[i] = hbook.NewH1D(16, 0.5, 16.5)
		}
		value = func(rec *efficiency.Record, layer int) int {
			if layer == 1 {
				return rec.GEMLayer1CLS
			}
			return rec.GEMLayer2CLS
		}
	case "bx":
		p.X.Label.Text = "GE1/1 bunch crossing"
		for i := range hists {
			hists[i] = hbook.NewH1D(9, -4.5, 4.5)
		}
		value = func(rec *efficiency.Record, layer int) int {
			if layer == 1 {
				return rec.GEMLayer1BX
			}
			return rec.GEMLayer2BX
		}
	default:
		printUsage()
		log.Fatalf("Invalid -var %q", *variable)
	}

	err = table.Scan(flag.Arg(0), func(rec *efficiency.Record) error {
		if *matched && !rec.IsMatchedWithMuon {
			return nil
		}
		if rec.GEMHasLayer1 {
			hists[0].Fill(float64(value(rec, 1)), 1)
		}
		if rec.GEMHasLayer2 {
			hists[1].Fill(float64(value(rec, 2)), 1)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	for i, hist := range hists {
		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = gemdqm.LineColor(i)
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
	}

	p.Save(6*vg.Inch, 4*vg.Inch, *output)
}
