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

// Package gif implements a streaming GIF87a/GIF89a decoder: a block
// structured container parser, a variable-width LZW decompressor, and a
// frame compositor that applies the GIF disposal state machine to produce
// full-canvas RGBA images.
//
// The decoder is strictly single-threaded and sequential: it consumes an
// io.Reader byte source in order and holds no internal goroutines or
// timers. Animation timing, file opening, and rendering are left to the
// caller; NewDecoder only requires something that implements io.Reader.
package gif

// Color is a palette entry: an opaque RGB triple. It has no alpha channel
// of its own — transparency is resolved per-frame via a GraphicControl's
// transparent index, see MapIndicesToRGBA.
type Color struct {
	R, G, B byte
}

// Palette is an ordered sequence of up to 256 Colors, indexed by a pixel's
// palette index.
type Palette []Color

// RGBA is a single composited pixel. The zero value, (0,0,0,0), is the
// transparent sentinel used throughout this package.
type RGBA struct {
	R, G, B, A byte
}

// DisposalMethod describes the post-frame action applied to the canvas
// region of a just-displayed frame before the next frame is drawn.
type DisposalMethod int

const (
	DisposalNoAction DisposalMethod = iota
	DisposalDoNotDispose
	DisposalRestoreBackground
	DisposalRestorePrevious
	DisposalReserved
)

// ParseDisposalMethod maps the 3-bit disposal field of a Graphic Control
// Extension's packed byte to a DisposalMethod. Values of 4 and above are
// reserved by the GIF89a specification and are mapped to DisposalReserved,
// which the compositor treats as a no-op — a forward-compatibility choice,
// not an error.
func ParseDisposalMethod(n byte) DisposalMethod {
	switch n {
	case 0:
		return DisposalNoAction
	case 1:
		return DisposalDoNotDispose
	case 2:
		return DisposalRestoreBackground
	case 3:
		return DisposalRestorePrevious
	default:
		return DisposalReserved
	}
}

// LogicalScreen is the GIF logical screen descriptor: the canvas dimensions
// and the global palette's shape, if any. It is constructed once from the
// header and is immutable for the life of the Decoder.
type LogicalScreen struct {
	Width, Height        uint16
	Packed               byte
	BackgroundColorIndex byte
	PixelAspectRatio     byte
}

// HasGlobalPalette reports whether bit 7 of Packed is set.
func (s LogicalScreen) HasGlobalPalette() bool {
	return s.Packed&0x80 != 0
}

// GlobalPaletteEntries returns 1 << ((Packed & 0x07) + 1).
func (s LogicalScreen) GlobalPaletteEntries() int {
	return 1 << ((s.Packed & 0x07) + 1)
}

// GraphicControl carries the per-frame disposal, delay, and transparency
// metadata declared by a Graphic Control Extension. It applies to exactly
// the one ImageDescriptor that follows it and is then consumed.
type GraphicControl struct {
	Disposal         DisposalMethod
	UserInput        bool
	DelayCS          uint16
	TransparentIndex *byte
}

// ImageDescriptor is a GIF image descriptor: the sub-rectangle geometry of
// one frame and whether it carries a local palette or is interlaced.
type ImageDescriptor struct {
	Left, Top, Width, Height uint16
	Packed                   byte
}

// HasLocalPalette reports whether bit 7 of Packed is set.
func (d ImageDescriptor) HasLocalPalette() bool {
	return d.Packed&0x80 != 0
}

// Interlaced reports whether bit 6 of Packed is set.
func (d ImageDescriptor) Interlaced() bool {
	return d.Packed&0x40 != 0
}

// LocalPaletteEntries returns 1 << ((Packed & 0x07) + 1).
func (d ImageDescriptor) LocalPaletteEntries() int {
	return 1 << ((d.Packed & 0x07) + 1)
}
