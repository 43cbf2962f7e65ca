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
package gif_test

import (
	"bytes"
	"testing"

	"github.com/aculnaig/gifdecode"
	"github.com/stretchr/testify/require"
)

// a single 2x1 frame, global palette {red, green}, indices [0, 1] encoded
// as LZW codes clear(4), 0, 1, end(5) at minCodeSize 2.
func oneFrameGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x02, 0x00, // screen width 2
		0x01, 0x00, // screen height 1
		0x80,       // global palette present, 2 entries
		0x00, 0x00, // bg index, pixel aspect ratio
		255, 0, 0, // palette[0] = red
		0, 255, 0, // palette[1] = green

		0x2C,       // image descriptor
		0x00, 0x00, // left 0
		0x00, 0x00, // top 0
		0x02, 0x00, // width 2
		0x01, 0x00, // height 1
		0x00, // packed: no local palette, not interlaced

		0x02,             // LZW minimum code size
		0x02, 0x44, 0x0A, // sub-block: length 2, data
		0x00, // sub-block terminator

		0x3B, // trailer
	}
}

func TestFrameIterator_DecodesIndexedPixels(t *testing.T) {
	dec, err := gif.NewDecoder(bytes.NewReader(oneFrameGIF()))
	require.NoError(t, err)

	frames := gif.NewFrameIterator(dec)

	frame, err := frames.NextFrame()
	require.NoError(t, err)
	require.NotNil(t, frame)
	require.EqualValues(t, 2, frame.Width)
	require.EqualValues(t, 1, frame.Height)
	require.Equal(t, []gif.RGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
	}, frame.Pixels)

	frame, err = frames.NextFrame()
	require.NoError(t, err)
	require.Nil(t, frame)
}

// a 1x4 interlaced frame, global palette of 4 distinct grays, indices
// [0,1,2,3] top to bottom. GIF transmits interlaced rows in pass order
// (row 0, row 2, row 1, row 3 for a 4-row image), so the LZW stream
// carries raw indices 0,2,1,3 and decodeIndices must redistribute them
// back onto row-major order.
func interlacedFrameGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00, // screen width 1
		0x04, 0x00, // screen height 4
		0x81,       // global palette present, 4 entries
		0x00, 0x00, // bg index, pixel aspect ratio
		10, 10, 10, // palette[0]
		20, 20, 20, // palette[1]
		30, 30, 30, // palette[2]
		40, 40, 40, // palette[3]

		0x2C,       // image descriptor
		0x00, 0x00, // left 0
		0x00, 0x00, // top 0
		0x01, 0x00, // width 1
		0x04, 0x00, // height 4
		0x40, // packed: interlaced, no local palette

		0x03,                   // LZW minimum code size
		0x03, 0x08, 0x12, 0x93, // sub-block: length 3, data (clear,0,2,1,3,end)
		0x00, // sub-block terminator

		0x3B, // trailer
	}
}

func TestFrameIterator_DecodesInterlacedFrame(t *testing.T) {
	dec, err := gif.NewDecoder(bytes.NewReader(interlacedFrameGIF()))
	require.NoError(t, err)

	frames := gif.NewFrameIterator(dec)

	frame, err := frames.NextFrame()
	require.NoError(t, err)
	require.NotNil(t, frame)
	require.EqualValues(t, 1, frame.Width)
	require.EqualValues(t, 4, frame.Height)

	// row-major order must match the non-interlaced encoding of the same
	// pixel grid: row 0 gray(10), row 1 gray(20), row 2 gray(30), row 3 gray(40).
	require.Equal(t, []gif.RGBA{
		{R: 10, G: 10, B: 10, A: 255},
		{R: 20, G: 20, B: 20, A: 255},
		{R: 30, G: 30, B: 30, A: 255},
		{R: 40, G: 40, B: 40, A: 255},
	}, frame.Pixels)
}

func TestFrameIterator_OutOfBoundsFrame(t *testing.T) {
	data := oneFrameGIF()
	// widen the image descriptor's declared width past the screen width.
	data[24] = 0x03

	dec, err := gif.NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)

	frames := gif.NewFrameIterator(dec)
	_, err = frames.NextFrame()
	require.Error(t, err)
}
