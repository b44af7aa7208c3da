package gemdqm

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/decibelcooper/gemdqm/efficiency"
)

// LineColor returns the color of the i-th curve of a plot.
func LineColor(i int) color.Color {
	switch i {
	case 1:
		return color.RGBA{G: 255, A: 255}
	case 2:
		return color.RGBA{B: 255, A: 255}
	case 3:
		return color.RGBA{R: 255, B: 127, G: 127, A: 255}
	}
	return color.RGBA{A: 255}
}

// ErrorBars draws efficiency points as crosses of the given color.
func ErrorBars(points []efficiency.Point, c color.Color) (*plotter.XErrorBars, *plotter.YErrorBars, error) {
	xys := make(plotter.XYs, len(points))
	xErrors := make(plotter.XErrors, len(points))
	yErrors := make(plotter.YErrors, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
		xErrors[i].Low = pt.XErr
		xErrors[i].High = pt.XErr
		yErrors[i].Low = pt.YErr
		yErrors[i].High = pt.YErr
	}

	errPoints := plotutil.ErrorPoints{XYs: xys, XErrors: xErrors, YErrors: yErrors}
	xerr, err := plotter.NewXErrorBars(errPoints)
	if err != nil {
		return nil, nil, err
	}
	yerr, err := plotter.NewYErrorBars(errPoints)
	if err != nil {
		return nil, nil, err
	}
	xerr.LineStyle.Color = c
	yerr.LineStyle.Color = c
	return xerr, yerr, nil
}
