package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cparo/plotcore/internal/raster"
	"github.com/cparo/plotcore/internal/theme"
)

func TestWritePNGProducesValidSignatureAndPHYSChunk(t *testing.T) {
	canvas := raster.New(20, 10, theme.Color{255, 255, 255, 255}, 192)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	if err := WritePNG(canvas, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if string(data[:8]) != string(sig) {
		t.Fatal("expected PNG signature at start of file")
	}
	if !containsBytes(data, []byte("pHYs")) {
		t.Fatal("expected a pHYs chunk to be embedded")
	}
}

func containsBytes(haystack, needle []byte) bool {
	return strings.Contains(string(haystack), string(needle))
}

func TestWriteSVGEmitsElementsInOrder(t *testing.T) {
	doc := NewDocument(100, 50)
	doc.Add(Element{Kind: ElementLine, Points: []Point2D{{X: 0, Y: 0}, {X: 10, Y: 10}}, Color: theme.Color{0, 0, 0, 255}})
	doc.Add(Element{Kind: ElementText, Text: "hi", X: 5, Y: 5, FontSize: 12, Color: theme.Color{0, 0, 0, 255}})

	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	if err := WriteSVG(doc, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `viewBox="0 0 100 50"`) {
		t.Fatal("expected viewBox matching document dimensions")
	}
	lineIdx := strings.Index(s, "<line")
	textIdx := strings.Index(s, "<text")
	if lineIdx == -1 || textIdx == -1 || lineIdx > textIdx {
		t.Fatal("expected line element before text element, in recorded order")
	}
}

func TestWriteSVGEscapesText(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.Add(Element{Kind: ElementText, Text: "a < b & c", X: 0, Y: 0, Color: theme.Color{0, 0, 0, 255}})
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	if err := WriteSVG(doc, path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "a < b & c") {
		t.Fatal("expected raw angle brackets/ampersand to be escaped")
	}
}
