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

// Package encode implements the encoder sinks that turn a finished
// render into a file: PNG (the rasterized pixel buffer, via the
// stdlib image/png encoder, same idiom the teacher uses for its own
// image.RGBA canvases) and SVG (a primitive-by-primitive vector
// re-expression of the same drawing commands).
package encode

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image/png"
	"io"
	"os"

	"github.com/cparo/plotcore/internal/ploterr"
	"github.com/cparo/plotcore/internal/raster"
)

// pngPHYSUnitMeter is the unit flag png's pHYs chunk uses to mark pixel
// density as pixels-per-meter rather than an unspecified aspect ratio.
const pngPHYSUnitMeter = 1

// WritePNG encodes canvas as PNG to path, embedding a pHYs chunk
// derived from canvas's configured DPI so downstream viewers print it
// at the intended physical size. A failure leaves no partial file: the
// image is encoded to an in-memory buffer first and only written out
// once encoding succeeds.
func WritePNG(canvas *raster.Canvas, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.Img); err != nil {
		return ploterr.IoError("failed to encode PNG", err)
	}
	data, err := injectPHYS(buf.Bytes(), canvas.DPI())
	if err != nil {
		return ploterr.IoError("failed to embed DPI metadata", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ploterr.IoError("failed to write PNG file", err)
	}
	return nil
}

// Write encodes canvas as PNG directly to w, without DPI metadata (used
// by callers streaming to a non-seekable sink where a pHYs chunk isn't
// worth the buffering).
func Write(w io.Writer, canvas *raster.Canvas) error {
	if err := png.Encode(w, canvas.Img); err != nil {
		return ploterr.IoError("failed to encode PNG", err)
	}
	return nil
}

// injectPHYS splices a pHYs chunk (pixels-per-meter derived from dpi)
// into an already-encoded PNG byte stream, immediately after the IHDR
// chunk as the PNG spec requires for ancillary chunks preceding IDAT.
func injectPHYS(pngBytes []byte, dpi float64) ([]byte, error) {
	const sigLen = 8
	if len(pngBytes) < sigLen+8 {
		return pngBytes, nil
	}
	ihdrLen := binary.BigEndian.Uint32(pngBytes[sigLen : sigLen+4])
	ihdrEnd := sigLen + 12 + int(ihdrLen) // length+type+data+crc

	if dpi <= 0 {
		dpi = 96
	}
	pixelsPerMeter := uint32(dpi / 0.0254)

	chunkData := make([]byte, 9)
	binary.BigEndian.PutUint32(chunkData[0:4], pixelsPerMeter)
	binary.BigEndian.PutUint32(chunkData[4:8], pixelsPerMeter)
	chunkData[8] = pngPHYSUnitMeter

	chunk := encodeChunk("pHYs", chunkData)

	out := make([]byte, 0, len(pngBytes)+len(chunk))
	out = append(out, pngBytes[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, pngBytes[ihdrEnd:]...)
	return out, nil
}

func encodeChunk(chunkType string, data []byte) []byte {
	buf := make([]byte, 0, 12+len(data))
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))
	buf = append(buf, length...)
	buf = append(buf, chunkType...)
	buf = append(buf, data...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	crcBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(crcBytes, crc.Sum32())
	buf = append(buf, crcBytes...)
	return buf
}
