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
	"github.com/aculnaig/gifdecode/internal/logger"
)

// Canvas is a full logical-screen RGBA image, as produced once per frame
// by Compositor.Next.
type Canvas struct {
	Width, Height int
	Pixels        []RGBA
}

// rect is the (left, top, width, height) of the most recently drawn frame,
// kept so the next frame's disposal step knows what to undo.
type rect struct {
	x, y, w, h int
}

// Compositor applies the GIF disposal state machine to successive raw
// frames from a FrameIterator, producing full-canvas RGBA images. The
// GIF-declared background color index is intentionally treated as the
// transparent sentinel rather than resolved against the global palette:
// this matches how most modern viewers composite animations over a page,
// and is a deliberate, non-configurable choice carried over from this
// decoder's design (see SPEC_FULL.md).
type Compositor struct {
	frames *FrameIterator

	width, height int

	canvas     []RGBA
	lastCanvas []RGBA

	lastDisposal DisposalMethod
	lastRect     rect

	bgColor RGBA

	log *logger.Logger
}

// NewCompositor wraps d's frames into a full-canvas RGBA stream.
func NewCompositor(d *Decoder) *Compositor {
	width := int(d.Screen.Width)
	height := int(d.Screen.Height)
	n := width * height

	return &Compositor{
		frames:     NewFrameIterator(d),
		width:      width,
		height:     height,
		canvas:     make([]RGBA, n),
		lastCanvas: make([]RGBA, n),
		bgColor:    RGBA{},
	}
}

// SetLogger attaches an optional diagnostic logger; disposal actions and
// every overlay (with whether it was clipped) are reported at Debug level. A nil logger (the default)
// disables this entirely — decoding never depends on logging.
func (c *Compositor) SetLogger(l *logger.Logger) {
	c.log = l
}

// Next disposes the previous frame's rectangle, overlays the next raw
// frame onto the canvas, and returns a snapshot of the full canvas. It
// returns (nil, nil) once the underlying frame stream is exhausted.
func (c *Compositor) Next() (*Canvas, error) {
	frame, err := c.frames.NextFrame()
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, nil
	}

	c.disposePrevious()

	if frame.Disposal == DisposalRestorePrevious {
		copy(c.lastCanvas, c.canvas)
	}

	c.overlay(frame)

	c.lastDisposal = frame.Disposal
	c.lastRect = rect{x: int(frame.Left), y: int(frame.Top), w: int(frame.Width), h: int(frame.Height)}

	out := make([]RGBA, len(c.canvas))
	copy(out, c.canvas)
	return &Canvas{Width: c.width, Height: c.height, Pixels: out}, nil
}

func (c *Compositor) disposePrevious() {
	r := c.lastRect

	switch c.lastDisposal {
	case DisposalNoAction, DisposalDoNotDispose, DisposalReserved:
		// no-op: reserved values are treated as no-op for forward compatibility.

	case DisposalRestoreBackground:
		if c.log != nil {
			c.log.Disposal(logger.DisposalEvent{
				Method: "background",
				Region: logger.Rect{X: r.x, Y: r.y, W: r.w, H: r.h},
			})
		}
		for row := 0; row < r.h; row++ {
			y := r.y + row
			if y >= c.height {
				break
			}
			for col := 0; col < r.w; col++ {
				x := r.x + col
				if x >= c.width {
					break
				}
				c.canvas[y*c.width+x] = c.bgColor
			}
		}

	case DisposalRestorePrevious:
		if c.log != nil {
			c.log.Disposal(logger.DisposalEvent{Method: "previous"})
		}
		copy(c.canvas, c.lastCanvas)
	}
}

func (c *Compositor) overlay(frame *Frame) {
	width := int(frame.Width)
	clipped := false
	for i, px := range frame.Pixels {
		if px.A == 0 {
			continue
		}

		lx := i % width
		ly := i / width

		gx := int(frame.Left) + lx
		gy := int(frame.Top) + ly
		if gx >= c.width || gy >= c.height {
			clipped = true
			continue
		}

		c.canvas[gy*c.width+gx] = px
	}

	if c.log != nil {
		c.log.Overlay(logger.OverlayEvent{
			Region:  logger.Rect{X: int(frame.Left), Y: int(frame.Top), W: int(frame.Width), H: int(frame.Height)},
			Clipped: clipped,
		})
	}
}
