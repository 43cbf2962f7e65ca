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

import "io"

// subBlockReader presents GIF's length-prefixed sub-blocks
// ([len byte][len bytes]...[0x00 terminator]) as a flat byte stream. It
// holds an exclusive transient borrow of the underlying reader: callers
// must drain it with consumeToEnd before reading anything else from src,
// so the container parser can rely on src being positioned exactly after
// the terminator.
type subBlockReader struct {
	src       io.Reader
	remaining int
	finished  bool
	lenBuf    [1]byte
}

func newSubBlockReader(src io.Reader) *subBlockReader {
	return &subBlockReader{src: src}
}

// Read implements io.Reader. Reaching EOF on src in the middle of a
// sub-block is treated as stream corruption (io.ErrUnexpectedEOF) (GIF guarantees each sub-block's declared length bytes
// follow its length byte); a clean EOF while waiting for the next length
// byte is tolerated and ends the stream, since some encoders omit the
// final zero-length terminator.
func (r *subBlockReader) Read(buf []byte) (int, error) {
	if r.finished {
		return 0, io.EOF
	}

	if r.remaining == 0 {
		n, err := r.src.Read(r.lenBuf[:])
		if n == 0 {
			if err == nil || err == io.EOF {
				r.finished = true
				return 0, io.EOF
			}
			return 0, err
		}

		length := int(r.lenBuf[0])
		if length == 0 {
			r.finished = true
			return 0, io.EOF
		}
		r.remaining = length
	}

	max := len(buf)
	if max > r.remaining {
		max = r.remaining
	}

	n, err := r.src.Read(buf[:max])
	if n == 0 {
		if err == nil {
			err = io.ErrUnexpectedEOF
		} else if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if err != nil && err != io.EOF {
		return 0, err
	}

	r.remaining -= n
	return n, nil
}

// consumeToEnd drains and discards any bytes remaining in the sub-block
// stream until the terminator is reached. It must be called after LZW
// decoding finishes, because the LZW end code may legally arrive before
// the sub-block stream is exhausted.
func (r *subBlockReader) consumeToEnd() error {
	var scratch [255]byte
	for !r.finished {
		if _, err := r.Read(scratch[:]); err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}
