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

package encode

import (
	"fmt"
	"os"
	"strings"

	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/theme"
)

// ElementKind identifies which SVG element a recorded primitive lowers
// to.
type ElementKind int

const (
	ElementLine ElementKind = iota
	ElementPolyline
	ElementPolygon
	ElementCircle
	ElementRect
	ElementText
)

// Point2D is a pixel-space coordinate pair, independent of raster's and
// xform's internal Point types so this package stays free of an import
// cycle back into the rendering core.
type Point2D struct{ X, Y float64 }

// Element is one recorded drawing command in pixel space, in the order
// the orchestrator issued it. Only the fields relevant to Kind are
// populated.
type Element struct {
	Kind        ElementKind
	Points      []Point2D // Line (2 points), Polyline, Polygon
	CX, CY, R   float64   // Circle
	X, Y, W, H  float64   // Rect
	Text        string    // Text
	FontSize    float64   // Text
	Color       theme.Color
	Fill        bool
	StrokeWidth float64
}

// Document records every primitive drawn during a render, in draw
// order, so it can be re-expressed as SVG instead of rasterized
// pixels (spec §4.14's "alternative orchestrator mode").
type Document struct {
	Width, Height int
	Elements      []Element
}

// NewDocument constructs an empty recording of the given pixel
// dimensions (the SVG viewBox).
func NewDocument(width, height int) *Document {
	return &Document{Width: width, Height: height}
}

// Add appends a recorded element.
func (d *Document) Add(e Element) { d.Elements = append(d.Elements, e) }

// WriteSVG serializes doc as an SVG document to path, emitting
// elements in recorded order with stroke widths in user units. I/O
// failures never leave a partial file: the document is built in memory
// first.
func WriteSVG(doc *Document, path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height)

	for _, e := range doc.Elements {
		writeElement(&b, e)
	}
	b.WriteString("</svg>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return ploterr.IoError("failed to write SVG file", err)
	}
	return nil
}

func writeElement(b *strings.Builder, e Element) {
	switch e.Kind {
	case ElementLine:
		if len(e.Points) < 2 {
			return
		}
		fmt.Fprintf(b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" />`+"\n",
			e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y, svgColor(e.Color), strokeWidth(e.StrokeWidth))
	case ElementPolyline:
		fmt.Fprintf(b, `  <polyline points="%s" fill="none" stroke="%s" stroke-width="%g" />`+"\n",
			svgPoints(e.Points), svgColor(e.Color), strokeWidth(e.StrokeWidth))
	case ElementPolygon:
		fillAttr := "none"
		if e.Fill {
			fillAttr = svgColor(e.Color)
		}
		strokeAttr := svgColor(e.Color)
		if e.Fill {
			strokeAttr = "none"
		}
		fmt.Fprintf(b, `  <polygon points="%s" fill="%s" stroke="%s" stroke-width="%g" />`+"\n",
			svgPoints(e.Points), fillAttr, strokeAttr, strokeWidth(e.StrokeWidth))
	case ElementCircle:
		fillAttr := "none"
		strokeAttr := svgColor(e.Color)
		if e.Fill {
			fillAttr = svgColor(e.Color)
			strokeAttr = "none"
		}
		fmt.Fprintf(b, `  <circle cx="%g" cy="%g" r="%g" fill="%s" stroke="%s" />`+"\n",
			e.CX, e.CY, e.R, fillAttr, strokeAttr)
	case ElementRect:
		fillAttr := "none"
		strokeAttr := svgColor(e.Color)
		if e.Fill {
			fillAttr = svgColor(e.Color)
			strokeAttr = "none"
		}
		fmt.Fprintf(b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s" />`+"\n",
			e.X, e.Y, e.W, e.H, fillAttr, strokeAttr)
	case ElementText:
		fmt.Fprintf(b, `  <text x="%g" y="%g" font-size="%g" fill="%s">%s</text>`+"\n",
			e.X, e.Y, e.FontSize, svgColor(e.Color), escapeXML(e.Text))
	}
}

func strokeWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}

func svgPoints(pts []Point2D) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g,%g", p.X, p.Y)
	}
	return b.String()
}

func svgColor(c theme.Color) string {
	if c.A == 0 {
		return "none"
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
