// Package gemdqm holds the plotting helpers shared by the GE1/1 efficiency
// commands.
package gemdqm

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks labels major ticks with just enough digits for the tick
// spacing, and fills in unlabeled minor ticks.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = 4
	}

	if max <= min {
		panic("illegal range")
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	mult := int(n / float64(t.NSuggestedTicks-1))
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	major := float64(mult) * tens

	ticks, last := majorTicks(min, max, major)
	prec := int(math.Ceil(math.Log10(last)) - math.Floor(math.Log10(major)))
	for i := range ticks {
		ticks[i].Value = roundTo(ticks[i].Value, prec)
		ticks[i].Label = strconv.FormatFloat(ticks[i].Value, 'g', -1, 64)
	}

	minor := major / 2
	switch mult {
	case 3, 6:
		minor = major / 3
	case 5:
		minor = major / 5
	}
	return append(ticks, minorTicks(min, max, minor, ticks)...)
}

// majorTicks returns the multiples of delta in [min, max], and the first
// multiple past max.
func majorTicks(min, max, delta float64) ([]plot.Tick, float64) {
	var ticks []plot.Tick
	val := math.Floor(min/delta) * delta
	for ; val <= max; val += delta {
		if val >= min {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks, val
}

func minorTicks(min, max, delta float64, major []plot.Tick) []plot.Tick {
	var ticks []plot.Tick
	for val := math.Floor(min/delta) * delta; val <= max; val += delta {
		if val < min || isMajor(val, major) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: val})
	}
	return ticks
}

func isMajor(val float64, major []plot.Tick) bool {
	for _, t := range major {
		if t.Value == val {
			return true
		}
	}
	return false
}

// roundTo rounds x half away from zero to prec decimal digits.
func roundTo(x float64, prec int) float64 {
	if x == 0 {
		// no negative zero
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}
	if x == 0 {
		return 0
	}
	return x / pow
}
