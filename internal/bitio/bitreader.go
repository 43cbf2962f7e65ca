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

// Package bitio implements an LSB-first variable-width bit reader over an
// io.Reader, as used by GIF's variable-width LZW code stream.
package bitio

import "io"

// Reader extracts bit fields of 1 to 16 bits, least-significant bit first,
// from an underlying byte reader. Bytes are pulled from the source only
// when more bits are needed to satisfy a request.
type Reader struct {
	src    io.Reader
	buffer uint64
	held   uint8

	byteBuf [1]byte
}

// NewReader wraps src for LSB-first bit extraction.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadBits returns the next n bits from the stream as the low n bits of the
// result, least-significant bit first. n must be between 1 and 16
// inclusive; calling with a larger n is a programming error and panics.
//
// If the underlying reader returns an error before n bits are available,
// that error is returned. If the underlying reader reaches EOF before n
// bits are available, io.ErrUnexpectedEOF is returned.
func (r *Reader) ReadBits(n uint8) (uint16, error) {
	if n < 1 || n > 16 {
		panic("bitio: ReadBits: n must be in [1, 16]")
	}

	for r.held < n {
		read, err := r.src.Read(r.byteBuf[:])
		if read == 0 {
			if err == nil || err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}

		r.buffer |= uint64(r.byteBuf[0]) << r.held
		r.held += 8
	}

	result := uint16(r.buffer & ((1 << n) - 1))
	r.buffer >>= n
	r.held -= n

	return result, nil
}
