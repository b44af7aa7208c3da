package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/decibelcooper/gemdqm"
	"github.com/decibelcooper/gemdqm/efficiency"
	"github.com/decibelcooper/gemdqm/table"
)

var (
	layer   = flag.Int("layer", 1, "probed GEM layer, 1 or 2")
	nRolls  = flag.Int("nrolls", 8, "number of eta partitions per chamber")
	minPT   = flag.Float64("minpt", 0, "minimum muon transverse momentum")
	effLow  = flag.Float64("efflow", 0.8, "minimum efficiency in the color map")
	title   = flag.String("title", "", "plot title")
	output  = flag.String("output", "out.png", "output file")
	matched = flag.Bool("matched", true, "only segments matched with a standalone muon")
)

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
	log.SetPrefix("eff_map: ")
	log.SetFlags(0)

	p, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	p.Title.Text = *title
	p.X.Label.Text = "CSC chamber"
	p.Y.Label.Text = "GE1/1 ieta"
	p.X.Tick.Marker = gemdqm.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = gemdqm.PreciseTicks{NSuggestedTicks: 5}

	grid := NewEffGrid(efficiency.NChambers, *nRolls)
	grid.Floor = *effLow
	for _, filename := range flag.Args() {
		err := table.Scan(filename, func(rec *efficiency.Record) error {
			if *matched && !rec.IsMatchedWithMuon {
				return nil
			}
			if float64(rec.MuonPt) < *minPT {
				return nil
			}
			grid.Fill(rec, *layer)
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(*effLow)
	colorMap.SetMax(1)
	pal := colorMap.Palette(1000)
	heatMap := plotter.NewHeatMap(grid, pal)
	heatMap.Min = *effLow
	heatMap.Max = 1
	p.Add(heatMap)

	p.Draw(dc0)

	p, err = plot.New()
	if err != nil {
		log.Fatal(err)
	}

	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	p.Add(colorBar)
	p.HideX()
	p.Y.Padding = 0

	p.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Fatal(err)
	}
}
