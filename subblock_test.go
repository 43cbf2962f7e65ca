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
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubBlockReader_FlattensBlocks(t *testing.T) {
	src := bytes.NewReader([]byte{3, 'a', 'b', 'c', 2, 'd', 'e', 0, 'X'})

	r := newSubBlockReader(src)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("abcde"), got)

	// the terminator is consumed; the trailing 'X' belongs to the caller.
	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, []byte("X"), rest)
}

func TestSubBlockReader_NoTerminatorTolerated(t *testing.T) {
	src := bytes.NewReader([]byte{2, 'h', 'i'})

	r := newSubBlockReader(src)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), got)
}

func TestSubBlockReader_MidBlockTruncation(t *testing.T) {
	// a declared length of 3 but only 1 byte follows before EOF.
	src := bytes.NewReader([]byte{3, 'x'})

	r := newSubBlockReader(src)
	_, err := io.ReadAll(r)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSubBlockReader_ConsumeToEnd(t *testing.T) {
	src := bytes.NewReader([]byte{2, 'h', 'i', 0, 'Y'})

	r := newSubBlockReader(src)
	buf := make([]byte, 1)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, r.consumeToEnd())

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, []byte("Y"), rest)
}
