package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/gemdqm"
	"github.com/decibelcooper/gemdqm/config"
	"github.com/decibelcooper/gemdqm/edm"
	"github.com/decibelcooper/gemdqm/gen"
	"github.com/decibelcooper/gemdqm/genfilter"
	"github.com/decibelcooper/gemdqm/geometry"
	"github.com/decibelcooper/gemdqm/magfield"
)

var (
	cfgFile  = flag.String("config", "", "YAML job configuration")
	geoFile  = flag.String("geometry", "", "YAML geometry description (default: ideal station 1)")
	format   = flag.String("format", "", "input format, hepmc or proio (default: from the file extension)")
	output   = flag.String("output", "", "file listing the accepted event numbers (default: stdout)")
	plotFile = flag.String("plot", "", "muon eta plot of all and accepted events")
	etaLimit = flag.Float64("etalimit", 4, "maximum absolute value of eta in the plot")
	nBins    = flag.Int("nbins", 80, "number of bins in the plot")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <hepmc-or-proio-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

type source interface {
	Next() (*gen.Event, error)
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	log.SetPrefix("me11_filter: ")
	log.SetFlags(0)

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
		Run:         1,
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

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	allEta := hbook.NewH1D(*nBins, -*etaLimit, *etaLimit)
	acceptedEta := hbook.NewH1D(*nBins, -*etaLimit, *etaLimit)

	filter := genfilter.New(job.Filter, nil)
	for _, filename := range flag.Args() {
		src, closer := open(filename)
		for {
			genEvt, err := src.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				log.Fatal(err)
			}

			evt := &edm.MemEvent{Run: setup.Run, Number: genEvt.Number}
			evt.PutGenParticles(job.Filter.GenParticleTag, genEvt.Particles)

			accepted := filter.Filter(evt, setup)
			if accepted {
				fmt.Fprintln(w, genEvt.Number)
			}

			for i := range genEvt.Particles {
				part := &genEvt.Particles[i]
				if part.Status != gen.StatusFinal || (part.PdgID != 13 && part.PdgID != -13) {
					continue
				}
				eta := part.Momentum.Eta()
				allEta.Fill(eta, 1)
				if accepted {
					acceptedEta.Fill(eta, 1)
				}
			}
		}
		closer()
	}

	log.Printf("%d events, %d accepted", filter.Seen(), filter.Accepted())

	if *plotFile != "" {
		savePlot(*plotFile, allEta, acceptedEta)
	}
}

func open(filename string) (source, func()) {
	kind := *format
	if kind == "" {
		kind = "hepmc"
		if filepath.Ext(filename) == ".proio" {
			kind = "proio"
		}
	}

	switch kind {
	case "proio":
		src, err := gen.OpenProio(filename)
		if err != nil {
			log.Fatal(err)
		}
		return src, func() { src.Close() }
	case "hepmc":
		f, err := os.Open(filename)
		if err != nil {
			log.Fatal(err)
		}
		return gen.NewHepMCSource(bufio.NewReader(f)), func() { f.Close() }
	}
	log.Fatalf("unknown input format %q", kind)
	return nil, nil
}

func savePlot(filename string, hists ...*hbook.H1D) {
	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	p.X.Label.Text = "muon eta"
	p.X.Tick.Marker = gemdqm.PreciseTicks{NSuggestedTicks: 5}

	for i, hist := range hists {
		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = gemdqm.LineColor(i)
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
}
