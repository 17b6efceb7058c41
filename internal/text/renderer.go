package text

import (
	"image"
	"image/draw"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/cparo/plotcore/internal/theme"
)

// ligatures is the small, best-effort substitution table applied before
// shaping; real ligature selection is a font-level GSUB feature that
// golang.org/x/image/font does not expose, so this engine approximates it
// with a fixed rune-pair table.
var ligatures = map[string]rune{
	"fi": 0xFB01,
	"fl": 0xFB02,
}

type glyphKey struct {
	font    string
	size    float64
	r       rune
	subpx   uint8 // quantized fractional X position, 4 phases
}

type glyphEntry struct {
	mask   *image.Alpha
	bounds image.Rectangle
}

// Renderer discovers system fonts once at construction, shapes and
// rasterizes text with kerning and a small ligature table, and caches
// rendered glyph coverage masks by (font, size, glyph, subpixel-phase).
type Renderer struct {
	mu        sync.Mutex
	faces     map[string]font.Face // family|size -> face
	fontBytes map[string][]byte
	discovered map[string]string
	fallback  font.Face
	glyphs    map[glyphKey]glyphEntry
	dpi       float64
}

// NewRenderer discovers system fonts and constructs a Renderer. It never
// fails: if no TrueType/OpenType font is discovered at all, the renderer
// falls back to the embedded basicfont bitmap face so callers always get a
// usable sans-serif fallback, per spec §4.6's FontUnavailable contract
// (the error is only surfaced when a *specific* family is requested and
// neither it nor the sans-serif fallback resolve — see Face).
func NewRenderer(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = 96
	}
	return &Renderer{
		faces:      make(map[string]font.Face),
		fontBytes:  make(map[string][]byte),
		discovered: discoverFonts(),
		fallback:   basicfont.Face7x13,
		glyphs:     make(map[glyphKey]glyphEntry),
		dpi:        dpi,
	}
}

// Face resolves (and caches) the font.Face for the given family and
// point size, loading and parsing the backing font file on first use.
// Returns FontUnavailable-classed error only when a concrete (non-generic)
// family was requested and could not be resolved or parsed; "sans-serif"
// always resolves to at least the embedded bitmap fallback.
func (r *Renderer) Face(family string, size float64) (font.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := family + "|" + formatSize(size)
	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	path := resolveFamily(r.discovered, family)
	if path == "" {
		if family == "" || family == "sans-serif" || family == "serif" || family == "monospace" {
			r.faces[key] = r.fallback
			return r.fallback, nil
		}
		return nil, &unavailableError{family: family}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &unavailableError{family: family, cause: err}
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, &unavailableError{family: family, cause: err}
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size: size,
		DPI:  r.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &unavailableError{family: family, cause: err}
	}
	r.faces[key] = face
	return face, nil
}

type unavailableError struct {
	family string
	cause  error
}

func (e *unavailableError) Error() string {
	if e.cause != nil {
		return "text: font unavailable for family " + e.family + ": " + e.cause.Error()
	}
	return "text: font unavailable for family " + e.family
}

func (e *unavailableError) Unwrap() error { return e.cause }

func formatSize(size float64) string {
	// Quantize to hundredths to bound the face cache's key space.
	i := int64(size * 100)
	out := make([]byte, 0, 8)
	if i < 0 {
		out = append(out, '-')
		i = -i
	}
	return string(appendInt(out, i))
}

func appendInt(b []byte, i int64) []byte {
	if i == 0 {
		return append(b, '0')
	}
	var tmp [20]byte
	p := len(tmp)
	for i > 0 {
		p--
		tmp[p] = byte('0' + i%10)
		i /= 10
	}
	return append(b, tmp[p:]...)
}

func applyLigatures(s string) []rune {
	runes := []rune(s)
	var out []rune
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			pair := string(runes[i : i+2])
			if lig, ok := ligatures[pair]; ok {
				out = append(out, lig)
				i++
				continue
			}
		}
		out = append(out, runes[i])
	}
	return out
}

// MeasureText returns the pixel width and height the string would occupy
// at the given font size, without rasterizing.
func (r *Renderer) MeasureText(family string, s string, size float64) (w, h float64, err error) {
	face, err := r.Face(family, size)
	if err != nil {
		return 0, 0, err
	}
	runes := applyLigatures(s)
	var advance fixed.Int26_6
	var prev rune
	hasPrev := false
	for _, rn := range runes {
		if hasPrev {
			advance += face.Kern(prev, rn)
		}
		a, ok := face.GlyphAdvance(rn)
		if ok {
			advance += a
		}
		prev, hasPrev = rn, true
	}
	m := face.Metrics()
	return fixedToFloat(advance), fixedToFloat(m.Height), nil
}

func fixedToFloat(f fixed.Int26_6) float64 { return float64(f) / 64 }

// glyphFor returns the cached (or freshly rasterized) coverage mask for
// rune r at the given dot position, quantizing the dot's fractional pixel
// offset into 4 subpixel phases. Cached bounds are kept relative to the
// dot's whole-pixel origin and moved to the current dot on every lookup.
func (r *Renderer) glyphFor(key string, face font.Face, size float64, rn rune, dot fixed.Point26_6) (glyphEntry, fixed.Int26_6, bool) {
	subpx := uint8((dot.X & 0x3F) / 16) // 64 units per pixel -> 4 phases
	gk := glyphKey{font: key, size: size, r: rn, subpx: subpx}
	quantizedDot := fixed.Point26_6{X: (dot.X / 16) * 16, Y: dot.Y}
	origin := image.Point{X: quantizedDot.X.Floor(), Y: quantizedDot.Y.Floor()}

	r.mu.Lock()
	if e, ok := r.glyphs[gk]; ok {
		r.mu.Unlock()
		adv, _ := face.GlyphAdvance(rn)
		e.bounds = e.bounds.Add(origin)
		return e, adv, true
	}
	r.mu.Unlock()

	dr, mask, maskp, advance, ok := face.Glyph(quantizedDot, rn)
	if !ok {
		return glyphEntry{}, 0, false
	}
	alpha := image.NewAlpha(dr.Sub(dr.Min))
	draw.Draw(alpha, alpha.Bounds(), mask, maskp, draw.Src)

	entry := glyphEntry{mask: alpha, bounds: dr.Sub(origin)}
	r.mu.Lock()
	r.glyphs[gk] = entry
	r.mu.Unlock()
	entry.bounds = dr
	return entry, advance, true
}

// RenderText rasterizes s at pixel (x,y) — the left end of the text
// baseline — into dst, blending glyph coverage with straight-alpha over.
func (r *Renderer) RenderText(dst *image.RGBA, family, s string, x, y, size float64, col theme.Color) error {
	face, err := r.Face(family, size)
	if err != nil {
		return err
	}
	r.drawRunes(dst, face, family, applyLigatures(s), x, y, size, col)
	return nil
}

func (r *Renderer) drawRunes(dst *image.RGBA, face font.Face, key string, runes []rune, x, y, size float64, col theme.Color) {
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	var prev rune
	hasPrev := false
	for _, rn := range runes {
		if hasPrev {
			dot.X += face.Kern(prev, rn)
		}
		entry, advance, ok := r.glyphFor(key, face, size, rn, dot)
		if ok {
			blendMask(dst, entry.bounds, entry.mask, col)
			dot.X += advance
		}
		prev, hasPrev = rn, true
	}
}

func blendMask(dst *image.RGBA, bounds image.Rectangle, mask *image.Alpha, col theme.Color) {
	db := dst.Bounds()
	r0 := bounds.Intersect(db)
	for y := r0.Min.Y; y < r0.Max.Y; y++ {
		for x := r0.Min.X; x < r0.Max.X; x++ {
			a := mask.AlphaAt(x-bounds.Min.X, y-bounds.Min.Y).A
			if a == 0 {
				continue
			}
			src := col.WithAlpha(scaleAlpha(col.A, a))
			o := dst.PixOffset(x, y)
			dstCol := theme.Color{R: dst.Pix[o], G: dst.Pix[o+1], B: dst.Pix[o+2], A: dst.Pix[o+3]}
			out := theme.Over(dstCol, src)
			dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3] = out.R, out.G, out.B, out.A
		}
	}
}

func scaleAlpha(base, coverage uint8) uint8 {
	return uint8(uint32(base) * uint32(coverage) / 255)
}
