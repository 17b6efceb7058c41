// Plotcore: high-performance 2D scientific plotting engine

// Copyright (C) 2024 The plotcore authors.

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// Package ticks implements "nice number" tick generation, label formatting,
// and alignment between data and pixel positions, for Linear, Log10 and
// SymLog axis scales.
package ticks

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cparo/plotcore/internal/scale"
	"github.com/cparo/plotcore/internal/xform"
)

// Tick is a single tick mark, aligned by construction between data and
// pixel space.
type Tick struct {
	DataPos  float64
	PixelPos float32
	Label    string
	Minor    bool
}

// Layout is the aligned set of tick positions in both coordinate systems,
// plus their formatted labels, and the data/pixel extents they were
// computed over.
type Layout struct {
	Major    []Tick
	Minor    []Tick
	DataMin  float64
	DataMax  float64
	PixelMin float32
	PixelMax float32
}

// niceMultiplier selects the smallest "nice" step multiplier in {1,2,5,10}
// that is >= rough.
func niceMultiplier(rough float64) float64 {
	switch {
	case rough <= 1:
		return 1
	case rough <= 2:
		return 2
	case rough <= 5:
		return 5
	default:
		return 10
	}
}

func niceStep(dataMin, dataMax float64, targetTicks int) float64 {
	if targetTicks < 2 {
		targetTicks = 2
	}
	rng := dataMax - dataMin
	if rng == 0 {
		return 1
	}
	rough := rng / float64(targetTicks-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	return niceMultiplier(rough/magnitude) * magnitude
}

// roundToStep cleans floating-point artifacts by rounding v to the
// step's own decimal magnitude.
func roundToStep(v, step float64) float64 {
	if step == 0 {
		return v
	}
	decimals := int(math.Max(0, -math.Floor(math.Log10(step))+6))
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func linearTicks(dataMin, dataMax float64, targetTicks int) []float64 {
	if dataMax < dataMin {
		dataMin, dataMax = dataMax, dataMin
	}
	step := niceStep(dataMin, dataMax, targetTicks)
	first := math.Ceil(dataMin/step) * step
	var out []float64
	for v := first; v <= dataMax+step*1e-9; v += step {
		out = append(out, roundToStep(v, step))
	}
	return out
}

func linearMinors(majors []float64, perGap int) []float64 {
	if len(majors) < 2 || perGap < 1 {
		return nil
	}
	step := majors[1] - majors[0]
	var out []float64
	sub := step / float64(perGap+1)
	for i := 0; i < len(majors)-1; i++ {
		for k := 1; k <= perGap; k++ {
			out = append(out, majors[i]+sub*float64(k))
		}
	}
	return out
}

func log10Ticks(dataMin, dataMax float64, targetTicks int) (majors, minors []float64) {
	loDec := int(math.Floor(math.Log10(dataMin)))
	hiDec := int(math.Ceil(math.Log10(dataMax)))
	decadeCount := hiDec - loDec + 1

	addDecade := func(k int) {
		v := math.Pow(10, float64(k))
		if v >= dataMin && v <= dataMax {
			majors = append(majors, v)
		}
	}

	switch {
	case decadeCount <= targetTicks:
		for k := loDec; k <= hiDec; k++ {
			addDecade(k)
		}
	case decadeCount <= targetTicks*2:
		for k := loDec; k <= hiDec; k++ {
			addDecade(k)
			for _, m := range []float64{2, 5} {
				v := m * math.Pow(10, float64(k))
				if v >= dataMin && v <= dataMax {
					minors = append(minors, v)
				}
			}
		}
	default:
		stride := int(math.Ceil(float64(decadeCount) / float64(targetTicks)))
		if stride < 1 {
			stride = 1
		}
		for k := loDec; k <= hiDec; k += stride {
			addDecade(k)
		}
	}

	// Minor ticks between decades: 2..9 x 10^k, for decades not already
	// expanded above.
	if decadeCount <= targetTicks || decadeCount > targetTicks*2 {
		for k := loDec; k <= hiDec; k++ {
			for m := 2; m <= 9; m++ {
				v := float64(m) * math.Pow(10, float64(k))
				if v >= dataMin && v <= dataMax {
					minors = append(minors, v)
				}
			}
		}
	}
	return majors, minors
}

func symlogTicks(dataMin, dataMax, linthresh float64) (majors []float64) {
	if dataMin <= 0 && dataMax >= 0 {
		majors = append(majors, 0)
	}
	if dataMin < -linthresh {
		majors = append(majors, -linthresh)
	}
	if dataMax > linthresh {
		majors = append(majors, linthresh)
	}
	// Positive log decades.
	if dataMax > linthresh {
		hi := int(math.Ceil(math.Log10(dataMax / linthresh)))
		for k := 1; k <= hi; k++ {
			v := linthresh * math.Pow(10, float64(k))
			if v <= dataMax {
				majors = append(majors, v)
			}
		}
	}
	// Negative log decades.
	if dataMin < -linthresh {
		lo := int(math.Ceil(math.Log10(-dataMin / linthresh)))
		for k := 1; k <= lo; k++ {
			v := -linthresh * math.Pow(10, float64(k))
			if v >= dataMin {
				majors = append(majors, v)
			}
		}
	}
	return majors
}

// FormatLabel formats a data value as a tick label: scientific notation for
// |v| >= 1e5 or (0 < |v| < 1e-3); otherwise decimal with trailing zeros
// stripped. Log-scale integer decades are special-cased by FormatLog10.
func FormatLabel(v float64) string {
	av := math.Abs(v)
	if v == 0 {
		return "0"
	}
	if av >= 1e5 || av < 1e-3 {
		s := strconv.FormatFloat(v, 'e', 2, 64)
		return cleanExponent(s)
	}
	decimals := 2
	switch {
	case av >= 100:
		decimals = 0
	case av >= 10:
		decimals = 1
	case av >= 1:
		decimals = 2
	default:
		decimals = 4
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	return stripTrailingZeros(s)
}

func stripTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

func cleanExponent(s string) string {
	// strconv gives e.g. "1.00e+05"; trim trailing zero mantissa digits.
	parts := strings.SplitN(s, "e", 2)
	if len(parts) != 2 {
		return s
	}
	mantissa := stripTrailingZeros(parts[0])
	exp := parts[1]
	exp = strings.Replace(exp, "+0", "+", 1)
	exp = strings.Replace(exp, "-0", "-", 1)
	return fmt.Sprintf("%se%s", mantissa, exp)
}

// FormatLog10 formats a decade value as "10^k", special-casing decade 0/1
// to "1"/"10".
func FormatLog10(v float64) string {
	k := math.Round(math.Log10(v))
	switch k {
	case 0:
		return "1"
	case 1:
		return "10"
	default:
		return fmt.Sprintf("10^%d", int(k))
	}
}

func isDecade(v float64) bool {
	if v <= 0 {
		return false
	}
	l := math.Log10(v)
	return math.Abs(l-math.Round(l)) < 1e-9
}

// Compute builds a TickLayout for the X axis: positions in data and pixel
// space, aligned by construction. Every data position is first normalized
// through sc.Transform (so Log10/SymLog ticks land where the scale actually
// places them, not where linear interpolation over [dataMin,dataMax] would),
// then the normalized [0,1] value is mapped into pixel space by the same
// xform.Transform the render orchestrator uses for that axis — ticks and
// plotted data can never disagree on pixel placement since both go through
// this one normalized-to-pixel step.
func Compute(dataMin, dataMax, pixelMin, pixelMax float64, sc scale.Scale, targetTicks int) Layout {
	tr := xform.New(
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: pixelMin, Max: pixelMax},
		xform.Range{Min: 0, Max: 1},
		false,
	)
	return computeAxis(dataMin, dataMax, pixelMin, pixelMax, sc, targetTicks, tr, false)
}

// ComputeY builds a TickLayout for the Y axis, where pixel space runs from
// pixelTop to pixelBottom (top-down screen space) and data increases
// upward — handled via Y-inversion in the coordinate transform used to
// align pixel positions.
func ComputeY(dataMin, dataMax, pixelTop, pixelBottom float64, sc scale.Scale, targetTicks int) Layout {
	tr := xform.New(
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: 0, Max: 1},
		xform.Range{Min: pixelTop, Max: pixelBottom},
		true,
	)
	return computeAxis(dataMin, dataMax, pixelTop, pixelBottom, sc, targetTicks, tr, true)
}

func computeAxis(dataMin, dataMax, pixelA, pixelB float64, sc scale.Scale, targetTicks int, tr xform.Transform, isY bool) Layout {
	toPixel := func(d float64) float32 {
		t := sc.Transform(d)
		if isY {
			_, sy := tr.DataToScreen(0, t)
			return sy
		}
		sx, _ := tr.DataToScreen(t, 0)
		return sx
	}

	var majorVals, minorVals []float64
	var logMode bool

	switch s := sc.(type) {
	case scale.Linear:
		majorVals = linearTicks(dataMin, dataMax, targetTicks)
		minorVals = linearMinors(majorVals, 4)
	case scale.Log10Scale:
		logMode = true
		majorVals, minorVals = log10Ticks(dataMin, dataMax, targetTicks)
	case scale.SymLogScale:
		majorVals = symlogTicks(dataMin, dataMax, s.Linthresh())
	default:
		majorVals = linearTicks(dataMin, dataMax, targetTicks)
		minorVals = linearMinors(majorVals, 4)
	}

	layout := Layout{
		DataMin:  dataMin,
		DataMax:  dataMax,
		PixelMin: float32(math.Min(pixelA, pixelB)),
		PixelMax: float32(math.Max(pixelA, pixelB)),
	}
	for _, v := range majorVals {
		label := FormatLabel(v)
		if logMode && isDecade(v) {
			label = FormatLog10(v)
		}
		layout.Major = append(layout.Major, Tick{DataPos: v, PixelPos: toPixel(v), Label: label})
	}
	for _, v := range minorVals {
		layout.Minor = append(layout.Minor, Tick{DataPos: v, PixelPos: toPixel(v), Minor: true})
	}
	return layout
}
