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
)

// Section indicators.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
	sPadding         = 0x00
)

// Extension labels.
const (
	eGraphicControl = 0xF9
	eApplication    = 0xFF
	eComment        = 0xFE
	ePlainText      = 0x01
)

// RecordKind identifies what NextRecord produced.
type RecordKind int

const (
	RecordImage RecordKind = iota
	RecordTrailer
)

// Record is one unit of progress through the container: either an image
// (with the Graphic Control Extension that applied to it, if any) or the
// trailer marking the end of the stream.
type Record struct {
	Kind  RecordKind
	Image ImageDescriptor
	GCE   *GraphicControl
}

// Decoder parses the GIF block structure: header, logical screen
// descriptor, global palette, and the extension/image/trailer records that
// follow. It owns its byte source exclusively for its whole lifetime;
// sub-block and LZW adapters constructed during frame decoding hold only
// scoped, transient borrows of it that must end (via consumeToEnd) before
// NextRecord is called again.
type Decoder struct {
	src io.Reader

	Screen        LogicalScreen
	GlobalPalette Palette

	pendingGCE *GraphicControl

	onUnknownExtension func(label byte, data []byte)

	tmp [768]byte // scratch: big enough for a full 256-entry palette (3 * 256)
}

// NewDecoder reads the 6-byte signature, the 7-byte logical screen
// descriptor, and the global palette if one is declared, returning a
// Decoder positioned to read the first extension/image/trailer record.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{src: r}

	if _, err := io.ReadFull(d.src, d.tmp[:6]); err != nil {
		return nil, ioError(err)
	}
	sig := string(d.tmp[:6])
	if sig != "GIF87a" && sig != "GIF89a" {
		return nil, ErrInvalidSignature
	}

	if _, err := io.ReadFull(d.src, d.tmp[:7]); err != nil {
		return nil, ioError(err)
	}
	d.Screen = LogicalScreen{
		Width:                le16(d.tmp[0], d.tmp[1]),
		Height:               le16(d.tmp[2], d.tmp[3]),
		Packed:               d.tmp[4],
		BackgroundColorIndex: d.tmp[5],
		PixelAspectRatio:     d.tmp[6],
	}

	if d.Screen.HasGlobalPalette() {
		palette, err := d.readPalette(d.Screen.GlobalPaletteEntries())
		if err != nil {
			return nil, err
		}
		d.GlobalPalette = palette
	}

	return d, nil
}

// OnUnknownExtension registers a callback invoked with the raw sub-block
// bytes of every Application (0xFF), Comment (0xFE), Plain Text (0x01), or
// otherwise-unrecognized extension, just before they are discarded. It is
// never invoked for Graphic Control Extensions, which the container parser
// always consumes itself. Registering nil (the default) restores the
// plain skip-and-discard behavior.
func (d *Decoder) OnUnknownExtension(f func(label byte, data []byte)) {
	d.onUnknownExtension = f
}

// NextRecord advances through padding and extension blocks until it can
// return an image record (with any Graphic Control Extension that applied
// to it) or the trailer. After an Image record, the caller must read the
// local palette (if HasLocalPalette), decode the LZW data, and drain the
// sub-block reader to its terminator before calling NextRecord again.
func (d *Decoder) NextRecord() (Record, error) {
	for {
		introducer, err := d.readByte()
		if err != nil {
			return Record{}, err
		}

		switch introducer {
		case sPadding:
			continue

		case sImageDescriptor:
			desc, err := d.readImageDescriptor()
			if err != nil {
				return Record{}, err
			}
			gce := d.pendingGCE
			d.pendingGCE = nil
			return Record{Kind: RecordImage, Image: desc, GCE: gce}, nil

		case sExtension:
			label, err := d.readByte()
			if err != nil {
				return Record{}, err
			}
			if err := d.readExtension(label); err != nil {
				return Record{}, err
			}

		case sTrailer:
			return Record{Kind: RecordTrailer}, nil

		default:
			return Record{}, formatError("unknown block introducer: 0x%02X", introducer)
		}
	}
}

func (d *Decoder) readExtension(label byte) error {
	if label == eGraphicControl {
		gce, err := d.readGraphicControl()
		if err != nil {
			return err
		}
		d.pendingGCE = gce
		return nil
	}
	return d.skipExtensionBlocks(label)
}

func (d *Decoder) readGraphicControl() (*GraphicControl, error) {
	// [size=4][packed][delay_lo][delay_hi][trans_idx][terminator=0]
	if _, err := io.ReadFull(d.src, d.tmp[:6]); err != nil {
		return nil, ioError(err)
	}
	if d.tmp[0] != 4 {
		return nil, formatError("invalid graphic control extension size: %d", d.tmp[0])
	}
	if d.tmp[5] != 0 {
		return nil, formatError("invalid graphic control extension terminator: %d", d.tmp[5])
	}

	packed := d.tmp[1]
	gce := &GraphicControl{
		Disposal:  ParseDisposalMethod((packed >> 2) & 0x07),
		UserInput: packed&0x02 != 0,
		DelayCS:   le16(d.tmp[2], d.tmp[3]),
	}
	if packed&0x01 != 0 {
		idx := d.tmp[4]
		gce.TransparentIndex = &idx
	}
	return gce, nil
}

// skipExtensionBlocks reads and discards length-prefixed sub-blocks until
// the zero-length terminator, optionally handing each sub-block's payload
// to onUnknownExtension first.
func (d *Decoder) skipExtensionBlocks(label byte) error {
	var lenBuf [1]byte
	for {
		if _, err := io.ReadFull(d.src, lenBuf[:]); err != nil {
			return ioError(err)
		}
		n := int(lenBuf[0])
		if n == 0 {
			return nil
		}

		if _, err := io.ReadFull(d.src, d.tmp[:n]); err != nil {
			return ioError(err)
		}
		if d.onUnknownExtension != nil {
			data := make([]byte, n)
			copy(data, d.tmp[:n])
			d.onUnknownExtension(label, data)
		}
	}
}

func (d *Decoder) readImageDescriptor() (ImageDescriptor, error) {
	if _, err := io.ReadFull(d.src, d.tmp[:9]); err != nil {
		return ImageDescriptor{}, ioError(err)
	}
	return ImageDescriptor{
		Left:   le16(d.tmp[0], d.tmp[1]),
		Top:    le16(d.tmp[2], d.tmp[3]),
		Width:  le16(d.tmp[4], d.tmp[5]),
		Height: le16(d.tmp[6], d.tmp[7]),
		Packed: d.tmp[8],
	}, nil
}

func (d *Decoder) readPalette(entries int) (Palette, error) {
	n := 3 * entries
	if _, err := io.ReadFull(d.src, d.tmp[:n]); err != nil {
		return nil, ioError(err)
	}
	palette := make(Palette, entries)
	for i := 0; i < entries; i++ {
		palette[i] = Color{R: d.tmp[3*i], G: d.tmp[3*i+1], B: d.tmp[3*i+2]}
	}
	return palette, nil
}

func (d *Decoder) readByte() (byte, error) {
	if _, err := io.ReadFull(d.src, d.tmp[:1]); err != nil {
		return 0, ioError(err)
	}
	return d.tmp[0], nil
}

func le16(lo, hi byte) uint16 {
	return uint16(lo) | uint16(hi)<<8
}
