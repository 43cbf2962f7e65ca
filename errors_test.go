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
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeError_WrapsCauseForErrorsIs(t *testing.T) {
	err := formatErrorWrap(io.ErrUnexpectedEOF, "truncated LZW data: decoded %d of %d pixels", 3, 10)

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Contains(t, err.Error(), "truncated LZW data: decoded 3 of 10 pixels")
	require.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())
}

func TestDecodeError_FormatOnly(t *testing.T) {
	err := formatError("bad thing: %d", 42)
	require.Equal(t, "gif: format: bad thing: 42", err.Error())
	require.Nil(t, errors.Unwrap(err))
}

func TestDecodeError_IOKind(t *testing.T) {
	cause := errors.New("disk exploded")
	err := ioError(cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, KindIO, err.Kind)
}
