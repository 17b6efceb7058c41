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

// Package theme defines named themes, palette cycling, and straight-alpha
// RGBA compositing. Color keeps the teacher's 8-bit-per-channel RGBA idiom
// (cparo-perspective/common.go's color.RGBA usage) rather than a premultiplied
// representation.
package theme

import "image/color"

// Color is an 8-bit-per-channel straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA converts to the stdlib color.RGBA used by image.RGBA canvases.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// WithAlpha returns a copy of c with A replaced.
func (c Color) WithAlpha(a uint8) Color { return Color{c.R, c.G, c.B, a} }

// Over composites src over dst using straight (non-premultiplied) alpha:
// dst <- src*alpha + dst*(1-alpha). Destination alpha is taken as fully
// opaque output per spec §4.6's blend contract.
func Over(dst, src Color) Color {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return src
	}
	a := float64(src.A) / 255
	blend := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a))
	}
	return Color{
		R: blend(dst.R, src.R),
		G: blend(dst.G, src.G),
		B: blend(dst.B, src.B),
		A: 255,
	}
}

// Theme bundles the visual defaults a render resolves once at the start of
// the pipeline: background/foreground/grid colors, a palette cycle, and
// typographic/line defaults.
type Theme struct {
	Name          string
	Background    Color
	Foreground    Color
	Grid          Color
	Palette       []Color
	FontFamily    string
	FontSize      float64
	LineWidth     float64
	TickLength    float64
	MarkerDefault string
}

// PaletteColor returns the i-th color in the theme's ordered cycle, wrapping
// around (palette cycling is position-based over declaration order).
func (t Theme) PaletteColor(i int) Color {
	if len(t.Palette) == 0 {
		return t.Foreground
	}
	return t.Palette[i%len(t.Palette)]
}

var (
	lightPalette = []Color{
		{31, 119, 180, 255}, {255, 127, 14, 255}, {44, 160, 44, 255},
		{214, 39, 40, 255}, {148, 103, 189, 255}, {140, 86, 75, 255},
		{227, 119, 194, 255}, {127, 127, 127, 255},
	}
	darkPalette = []Color{
		{100, 181, 246, 255}, {255, 183, 77, 255}, {129, 199, 132, 255},
		{229, 115, 115, 255}, {186, 104, 200, 255}, {161, 136, 127, 255},
		{240, 98, 146, 255}, {224, 224, 224, 255},
	}
	seabornPalette = []Color{
		{76, 114, 176, 255}, {221, 132, 82, 255}, {85, 168, 104, 255},
		{196, 78, 82, 255}, {129, 114, 179, 255}, {147, 120, 96, 255},
	}
	publicationPalette = []Color{
		{0, 0, 0, 255}, {90, 90, 90, 255}, {160, 160, 160, 255},
		{30, 30, 30, 255},
	}
	minimalPalette = []Color{
		{50, 50, 50, 255}, {130, 130, 130, 255},
	}
)

// Light is the default light theme.
func Light() Theme {
	return Theme{
		Name: "light", Background: Color{255, 255, 255, 255}, Foreground: Color{20, 20, 20, 255},
		Grid: Color{225, 225, 225, 255}, Palette: lightPalette, FontFamily: "sans-serif",
		FontSize: 12, LineWidth: 1.5, TickLength: 5, MarkerDefault: "circle",
	}
}

// Dark is a dark-background theme.
func Dark() Theme {
	return Theme{
		Name: "dark", Background: Color{18, 18, 18, 255}, Foreground: Color{230, 230, 230, 255},
		Grid: Color{55, 55, 55, 255}, Palette: darkPalette, FontFamily: "sans-serif",
		FontSize: 12, LineWidth: 1.5, TickLength: 5, MarkerDefault: "circle",
	}
}

// Publication is a grayscale, print-ready theme.
func Publication() Theme {
	return Theme{
		Name: "publication", Background: Color{255, 255, 255, 255}, Foreground: Color{0, 0, 0, 255},
		Grid: Color{235, 235, 235, 255}, Palette: publicationPalette, FontFamily: "serif",
		FontSize: 11, LineWidth: 1, TickLength: 4, MarkerDefault: "square",
	}
}

// Seaborn mimics the seaborn library's muted default palette.
func Seaborn() Theme {
	return Theme{
		Name: "seaborn", Background: Color{234, 234, 242, 255}, Foreground: Color{40, 40, 40, 255},
		Grid: Color{255, 255, 255, 255}, Palette: seabornPalette, FontFamily: "sans-serif",
		FontSize: 12, LineWidth: 1.75, TickLength: 4, MarkerDefault: "circle",
	}
}

// Minimal strips grid and most chrome.
func Minimal() Theme {
	return Theme{
		Name: "minimal", Background: Color{255, 255, 255, 255}, Foreground: Color{60, 60, 60, 255},
		Grid: Color{255, 255, 255, 255}, Palette: minimalPalette, FontFamily: "sans-serif",
		FontSize: 11, LineWidth: 1.25, TickLength: 0, MarkerDefault: "circle",
	}
}

// Named resolves a theme by its canonical name, falling back to Light if
// unrecognized.
func Named(name string) Theme {
	switch name {
	case "dark":
		return Dark()
	case "publication":
		return Publication()
	case "seaborn":
		return Seaborn()
	case "minimal":
		return Minimal()
	default:
		return Light()
	}
}
