// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package gif

import (
	"io"

	"github.com/aculnaig/gifdecode/internal/lzw"
)

// Frame is one raw, transparency-resolved sub-rectangle of decoded pixels:
// the geometry from its ImageDescriptor plus the disposal and timing
// metadata from the Graphic Control Extension that preceded it, if any.
// It has not yet been overlaid onto a canvas — see Compositor for that.
type Frame struct {
	Left, Top, Width, Height uint16
	Pixels                   []RGBA
	Disposal                 DisposalMethod
	DelayCS                  uint16
	TransparentIndex         *byte
}

// interlacePass describes one of the four interleaved raster passes GIF
// uses for progressive display: rows start at Start and advance by Step.
type interlacePass struct {
	Start, Step int
}

var interlacePasses = [4]interlacePass{
	{Start: 0, Step: 8},
	{Start: 4, Step: 8},
	{Start: 2, Step: 4},
	{Start: 1, Step: 2},
}

// FrameIterator pulls successive raw Frames out of a Decoder's image
// records, handling local/global palette resolution, LZW decompression,
// and interlace deinterleaving.
type FrameIterator struct {
	d *Decoder
}

// NewFrameIterator wraps d to yield raw frames via NextFrame.
func NewFrameIterator(d *Decoder) *FrameIterator {
	return &FrameIterator{d: d}
}

// NextFrame returns the next decoded frame, or (nil, nil) once the
// trailer is reached. A non-nil error ends the stream for all practical
// purposes; the underlying Decoder should not be used further.
func (fi *FrameIterator) NextFrame() (*Frame, error) {
	d := fi.d

	rec, err := d.NextRecord()
	if err != nil {
		return nil, err
	}
	if rec.Kind == RecordTrailer {
		return nil, nil
	}

	desc := rec.Image
	if uint32(desc.Left)+uint32(desc.Width) > uint32(d.Screen.Width) ||
		uint32(desc.Top)+uint32(desc.Height) > uint32(d.Screen.Height) {
		return nil, formatError("image frame bounds (%d,%d)+(%d,%d) exceed screen %dx%d",
			desc.Left, desc.Top, desc.Width, desc.Height, d.Screen.Width, d.Screen.Height)
	}

	palette, err := fi.resolvePalette(desc)
	if err != nil {
		return nil, err
	}

	minCodeSize, err := d.readByte()
	if err != nil {
		return nil, err
	}

	sub := newSubBlockReader(d.src)
	lz := lzw.NewDecoder(sub, minCodeSize)

	indices, err := decodeIndices(lz, int(desc.Width), int(desc.Height), desc.Interlaced())
	if err != nil {
		return nil, err
	}

	if err := sub.consumeToEnd(); err != nil {
		return nil, ioError(err)
	}

	pixels := make([]RGBA, len(indices))
	if err := MapIndicesToRGBA(indices, palette, rec.GCE, pixels); err != nil {
		return nil, err
	}

	frame := &Frame{
		Left:   desc.Left,
		Top:    desc.Top,
		Width:  desc.Width,
		Height: desc.Height,
		Pixels: pixels,
	}
	if rec.GCE != nil {
		frame.Disposal = rec.GCE.Disposal
		frame.DelayCS = rec.GCE.DelayCS
		frame.TransparentIndex = rec.GCE.TransparentIndex
	}
	return frame, nil
}

func (fi *FrameIterator) resolvePalette(desc ImageDescriptor) (Palette, error) {
	d := fi.d
	if desc.HasLocalPalette() {
		return d.readPalette(desc.LocalPaletteEntries())
	}
	if d.GlobalPalette != nil {
		return d.GlobalPalette, nil
	}
	return nil, formatError("image has no local palette and no global palette is present")
}

// decodeIndices decompresses width*height pixel indices from lz. The LZW
// stream is always emitted in the pass order of the image (sequential raster
// order for a non-interlaced frame, pass-by-pass for an interlaced one), so
// decoding is always a single linear run; for an interlaced frame the linear
// run is then redistributed onto the final row-major buffer according to
// the four-pass schedule.
func decodeIndices(lz *lzw.Decoder, width, height int, interlaced bool) ([]byte, error) {
	total := width * height
	linear := make([]byte, total)

	n, err := lz.DecodeBytes(linear)
	if err != nil {
		return nil, formatErrorWrap(err, "invalid LZW data")
	}
	if n < total {
		return nil, formatErrorWrap(io.ErrUnexpectedEOF, "truncated LZW data: decoded %d of %d pixels", n, total)
	}

	if !interlaced || width == 0 {
		return linear, nil
	}

	out := make([]byte, total)
	pos := 0
	for _, pass := range interlacePasses {
		for y := pass.Start; y < height; y += pass.Step {
			copy(out[y*width:y*width+width], linear[pos:pos+width])
			pos += width
		}
	}
	return out, nil
}
