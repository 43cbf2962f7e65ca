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

import "image"

// ToNRGBA wraps a raw frame's transparency-resolved pixels as a standard
// image.NRGBA, positioned at the frame's (Left, Top) offset. It is pure
// glue for callers that want to hand a frame to anything speaking the
// stdlib image vocabulary; it introduces no new decoding semantics.
func (f *Frame) ToNRGBA() *image.NRGBA {
	r := image.Rect(int(f.Left), int(f.Top), int(f.Left)+int(f.Width), int(f.Top)+int(f.Height))
	img := image.NewNRGBA(r)
	for i, px := range f.Pixels {
		o := i * 4
		img.Pix[o+0] = px.R
		img.Pix[o+1] = px.G
		img.Pix[o+2] = px.B
		img.Pix[o+3] = px.A
	}
	return img
}

// ToNRGBA wraps a full compositor canvas as a standard image.NRGBA.
func (c *Canvas) ToNRGBA() *image.NRGBA {
	r := image.Rect(0, 0, c.Width, c.Height)
	img := image.NewNRGBA(r)
	for i, px := range c.Pixels {
		o := i * 4
		img.Pix[o+0] = px.R
		img.Pix[o+1] = px.G
		img.Pix[o+2] = px.B
		img.Pix[o+3] = px.A
	}
	return img
}
