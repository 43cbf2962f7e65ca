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

// Package ppm writes RGB images as binary (P6) Portable Pixmap files, a
// trivial lossless format useful for dumping decoded GIF frames without
// pulling in an encoder for some other container format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"os"
)

// WriteFile writes img to filePath as a binary P6 pixmap, compositing
// against opaque black wherever a pixel's alpha is less than fully opaque.
// It creates or truncates the file and writes through a 32KB buffer.
func WriteFile(filePath string, img *image.NRGBA) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", filePath, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 32*1024)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	row := make([]byte, width*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			r, g, b, a := px.R, px.G, px.B, px.A
			if a == 0 {
				r, g, b = 0, 0, 0
			} else if a != 255 {
				r = byte(uint16(r) * uint16(a) / 255)
				g = byte(uint16(g) * uint16(a) / 255)
				b = byte(uint16(b) * uint16(a) / 255)
			}
			o := (x - bounds.Min.X) * 3
			row[o] = r
			row[o+1] = g
			row[o+2] = b
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Flush()
}
