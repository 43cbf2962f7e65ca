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

// MapIndicesToRGBA converts a buffer of palette indices into RGBA pixels.
// gce may be nil (no Graphic Control Extension applied to this frame); if
// it declares a transparent index, every pixel derived from that index
// gets alpha 0, all others alpha 255. An index beyond the palette's length
// maps to opaque black, matching a malformed-but-tolerated stream rather
// than failing the whole frame.
func MapIndicesToRGBA(indices []byte, palette Palette, gce *GraphicControl, out []RGBA) error {
	if len(out) != len(indices) {
		return formatError("palette mapper: output buffer length %d does not match index buffer length %d", len(out), len(indices))
	}

	var transparent *byte
	if gce != nil {
		transparent = gce.TransparentIndex
	}

	for i, idx := range indices {
		alpha := byte(255)
		if transparent != nil && idx == *transparent {
			alpha = 0
		}

		var c Color
		if int(idx) < len(palette) {
			c = palette[idx]
		}

		out[i] = RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
	}
	return nil
}
