package text

import (
	"image"

	"github.com/cparo/plotcore/internal/theme"
)

// RenderTextRotated rasterizes s into an off-screen buffer, rotates it 90
// degrees counter-clockwise, and blits the result onto dst anchored at
// (x,y) (the rotated text's bottom-left corner), clamping to dst's bounds.
// DPI-scaled padding is added around the off-screen buffer before rotation
// so glyph margins (ascenders/descenders, side-bearings) are never clipped
// by the rotation step.
func (r *Renderer) RenderTextRotated(dst *image.RGBA, family, s string, x, y, size float64, col theme.Color) error {
	w, h, err := r.MeasureText(family, s, size)
	if err != nil {
		return err
	}
	pad := r.dpi / 96 * 4 // DPI-scaled margin for ascenders/descenders
	bw := int(w+2*pad) + 1
	bh := int(h+2*pad) + 1
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}

	offscreen := image.NewRGBA(image.Rect(0, 0, bw, bh))
	if err := r.RenderText(offscreen, family, s, pad, pad+h*0.8, size, col); err != nil {
		return err
	}

	rotated := rotate90CCW(offscreen)
	trimmed := trimPadding(rotated, int(pad))
	blitClamped(dst, trimmed, int(x), int(y)-trimmed.Bounds().Dy())
	return nil
}

// rotate90CCW returns a new image rotated 90 degrees counter-clockwise:
// (x,y) in src maps to (y, w-1-x) in the rotated image, where w is src's
// width.
func rotate90CCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			so := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			dx := y
			dy := w - 1 - x
			do := dst.PixOffset(dx, dy)
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
		}
	}
	return dst
}

// trimPadding removes a uniform border of pad pixels from each side of a
// rotated buffer (the padding added pre-rotation becomes a border of the
// same width post-rotation since 90-degree rotation preserves distances).
func trimPadding(img *image.RGBA, pad int) *image.RGBA {
	b := img.Bounds()
	r := image.Rect(b.Min.X+pad, b.Min.Y+pad, b.Max.X-pad, b.Max.Y-pad)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		so := img.PixOffset(r.Min.X, y)
		do := out.PixOffset(0, y-r.Min.Y)
		copy(out.Pix[do:do+4*r.Dx()], img.Pix[so:so+4*r.Dx()])
	}
	return out
}

// blitClamped composites src onto dst at origin (ox,oy), clamping the
// blitted region to dst's canvas bounds.
func blitClamped(dst *image.RGBA, src *image.RGBA, ox, oy int) {
	sb := src.Bounds()
	db := dst.Bounds()
	for y := 0; y < sb.Dy(); y++ {
		dy := oy + y
		if dy < db.Min.Y || dy >= db.Max.Y {
			continue
		}
		for x := 0; x < sb.Dx(); x++ {
			dx := ox + x
			if dx < db.Min.X || dx >= db.Max.X {
				continue
			}
			so := src.PixOffset(sb.Min.X+x, sb.Min.Y+y)
			a := src.Pix[so+3]
			if a == 0 {
				continue
			}
			do := dst.PixOffset(dx, dy)
			srcCol := theme.Color{R: src.Pix[so], G: src.Pix[so+1], B: src.Pix[so+2], A: a}
			dstCol := theme.Color{R: dst.Pix[do], G: dst.Pix[do+1], B: dst.Pix[do+2], A: dst.Pix[do+3]}
			out := theme.Over(dstCol, srcCol)
			dst.Pix[do], dst.Pix[do+1], dst.Pix[do+2], dst.Pix[do+3] = out.R, out.G, out.B, out.A
		}
	}
}
