package text

import (
	"image"
	"testing"

	"github.com/cparo/plotcore/internal/theme"
)

func TestFallbackFaceResolvesForSansSerif(t *testing.T) {
	r := NewRenderer(96)
	face, err := r.Face("sans-serif", 12)
	if err != nil {
		t.Fatalf("expected sans-serif to resolve to fallback, got %v", err)
	}
	if face == nil {
		t.Fatal("expected non-nil face")
	}
}

func TestMeasureTextNonZeroForNonEmptyString(t *testing.T) {
	r := NewRenderer(96)
	w, h, err := r.MeasureText("sans-serif", "hello", 12)
	if err != nil {
		t.Fatal(err)
	}
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive measured dimensions, got w=%v h=%v", w, h)
	}
}

func TestRenderTextBlendsOntoCanvas(t *testing.T) {
	r := NewRenderer(96)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 30))
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}
	if err := r.RenderText(dst, "sans-serif", "Hi", 5, 20, 12, theme.Color{0, 0, 0, 255}); err != nil {
		t.Fatal(err)
	}
	darkened := false
	for _, p := range dst.Pix {
		if p < 255 {
			darkened = true
			break
		}
	}
	if !darkened {
		t.Fatal("expected some darkened pixels from rendered glyphs")
	}
}

func TestUnknownConcreteFamilyIsUnavailable(t *testing.T) {
	r := NewRenderer(96)
	r.discovered = map[string]string{} // no system sans-serif fallback either
	_, err := r.Face("ThisFontDefinitelyDoesNotExist123", 12)
	if err == nil {
		t.Fatal("expected FontUnavailable-classed error for an unresolvable concrete family")
	}
}
