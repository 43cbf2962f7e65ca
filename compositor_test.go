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
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCompositor(width, height int) *Compositor {
	n := width * height
	return &Compositor{
		width:      width,
		height:     height,
		canvas:     make([]RGBA, n),
		lastCanvas: make([]RGBA, n),
	}
}

func TestCompositor_OverlaySkipsTransparentPixels(t *testing.T) {
	c := newTestCompositor(2, 1)

	frame := &Frame{
		Left: 0, Top: 0, Width: 2, Height: 1,
		Pixels: []RGBA{{R: 1, G: 2, B: 3, A: 255}, {}},
	}
	c.overlay(frame)

	require.Equal(t, RGBA{R: 1, G: 2, B: 3, A: 255}, c.canvas[0])
	require.Equal(t, RGBA{}, c.canvas[1])
}

func TestCompositor_DisposeRestoreBackground(t *testing.T) {
	c := newTestCompositor(2, 1)
	c.canvas[0] = RGBA{R: 9, G: 9, B: 9, A: 255}
	c.canvas[1] = RGBA{R: 9, G: 9, B: 9, A: 255}

	c.lastDisposal = DisposalRestoreBackground
	c.lastRect = rect{x: 0, y: 0, w: 2, h: 1}

	c.disposePrevious()

	require.Equal(t, c.bgColor, c.canvas[0])
	require.Equal(t, c.bgColor, c.canvas[1])
}

func TestCompositor_DisposeRestorePrevious(t *testing.T) {
	c := newTestCompositor(1, 1)
	c.lastCanvas[0] = RGBA{R: 7, G: 7, B: 7, A: 255}
	c.canvas[0] = RGBA{R: 9, G: 9, B: 9, A: 255}

	c.lastDisposal = DisposalRestorePrevious
	c.lastRect = rect{x: 0, y: 0, w: 1, h: 1}

	c.disposePrevious()

	require.Equal(t, RGBA{R: 7, G: 7, B: 7, A: 255}, c.canvas[0])
}

func TestCompositor_DisposeNoActionLeavesCanvas(t *testing.T) {
	c := newTestCompositor(1, 1)
	c.canvas[0] = RGBA{R: 9, G: 9, B: 9, A: 255}

	c.lastDisposal = DisposalNoAction
	c.lastRect = rect{x: 0, y: 0, w: 1, h: 1}

	c.disposePrevious()

	require.Equal(t, RGBA{R: 9, G: 9, B: 9, A: 255}, c.canvas[0])
}
