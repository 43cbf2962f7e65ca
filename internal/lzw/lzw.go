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

// Package lzw implements the variable-width LZW decompression used by GIF
// image data: a prefix/suffix dictionary driven by reserved clear and end
// codes, with the code width growing as the dictionary fills.
package lzw

import (
	"errors"
	"io"

	"github.com/aculnaig/gifdecode/internal/bitio"
)

const (
	maxCodes = 4096
	maxWidth = 12
	invalid  = 0xFFFF // sentinel for "no previous code"
)

// ErrInvalidCode is returned when a code outside the currently valid range
// is read from the bit stream.
var ErrInvalidCode = errors.New("lzw: invalid code")

// ErrStackOverflow is returned when reconstructing a dictionary entry would
// overflow the fixed-size pixel stack, which can only happen on a corrupt
// or cyclic dictionary.
var ErrStackOverflow = errors.New("lzw: pixel stack overflow")

// Decoder decompresses a GIF LZW-coded pixel index stream.
//
// The dictionary is represented as an implicit forest over two parallel
// fixed-size arrays (prefix and suffix); reconstructing an entry walks the
// chain from a code down to a root and pushes bytes onto a LIFO stack so
// they can be emitted in the correct order without per-code allocation.
type Decoder struct {
	bits *bitio.Reader

	minCodeSize byte
	clearCode   uint16
	endCode     uint16
	firstFree   uint16

	codeSize  uint8
	nextCode  uint16
	oldCode   uint16
	firstByte byte

	prefix [maxCodes]uint16
	suffix [maxCodes]byte

	stack    [maxCodes]byte
	stackTop int
}

// NewDecoder creates an LZW decoder reading codes from r, whose image data
// was compressed with the given minimum code size (2..=8, the first byte of
// a GIF image's LZW data).
func NewDecoder(r io.Reader, minCodeSize byte) *Decoder {
	clearCode := uint16(1) << minCodeSize
	d := &Decoder{
		bits:        bitio.NewReader(r),
		minCodeSize: minCodeSize,
		clearCode:   clearCode,
		endCode:     clearCode + 1,
		firstFree:   clearCode + 2,
	}
	d.resetDictionary()
	return d
}

func (d *Decoder) resetDictionary() {
	d.codeSize = d.minCodeSize + 1
	d.nextCode = d.firstFree
	d.oldCode = invalid

	for i := uint16(0); i < d.clearCode; i++ {
		d.prefix[i] = invalid
		d.suffix[i] = byte(i)
	}
}

// DecodeBytes fills out with decoded pixel indices and returns the count
// written. It returns fewer bytes than len(out) only at end of stream,
// either because the end code was read or because the underlying bit
// stream ended (I/O error, including EOF).
func (d *Decoder) DecodeBytes(out []byte) (int, error) {
	written := 0

	for written < len(out) {
		if d.stackTop > 0 {
			n := d.stackTop
			if room := len(out) - written; n > room {
				n = room
			}
			for i := 0; i < n; i++ {
				d.stackTop--
				out[written] = d.stack[d.stackTop]
				written++
			}
			if written == len(out) {
				return written, nil
			}
		}

		code, err := d.bits.ReadBits(d.codeSize)
		if err != nil {
			return written, nil
		}

		if code == d.clearCode {
			d.resetDictionary()
			continue
		}
		if code == d.endCode {
			return written, nil
		}

		var current uint16
		switch {
		case code < d.nextCode:
			current = code
		case code == d.nextCode && d.oldCode != invalid:
			d.push(d.firstByte)
			current = d.oldCode
		default:
			return written, ErrInvalidCode
		}

		for current >= d.clearCode {
			if err := d.push(d.suffix[current]); err != nil {
				return written, err
			}
			current = d.prefix[current]
		}

		d.firstByte = d.suffix[current]
		if err := d.push(d.firstByte); err != nil {
			return written, err
		}

		if d.oldCode != invalid && d.nextCode < maxCodes {
			d.prefix[d.nextCode] = d.oldCode
			d.suffix[d.nextCode] = d.firstByte
			d.nextCode++

			if d.nextCode == (uint16(1)<<d.codeSize) && d.codeSize < maxWidth {
				d.codeSize++
			}
		}

		d.oldCode = code
	}

	return written, nil
}

func (d *Decoder) push(b byte) error {
	if d.stackTop >= maxCodes {
		return ErrStackOverflow
	}
	d.stack[d.stackTop] = b
	d.stackTop++
	return nil
}
