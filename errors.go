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

import "fmt"

// Kind classifies a DecodeError, mirroring the decoder's error taxonomy:
// I/O failures, an unrecognized signature, structural format violations,
// and features the decoder deliberately declines to support.
type Kind int

const (
	KindIO Kind = iota
	KindInvalidSignature
	KindFormat
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindInvalidSignature:
		return "invalid signature"
	case KindFormat:
		return "format"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// DecodeError is the single error type returned by this package. Callers
// that need to distinguish failure modes should switch on Kind or use
// errors.Is against the ErrInvalidSignature / ErrInvalidCode-style sentinels
// documented alongside each component, rather than matching on Error()'s
// text.
type DecodeError struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, set for KindIO and by formatErrorWrap
}

func (e *DecodeError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("gif: %s: %s: %s", e.Kind, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("gif: %s: %s", e.Kind, e.Err)
	default:
		return fmt.Sprintf("gif: %s: %s", e.Kind, e.Msg)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrInvalidSignature is returned by NewDecoder when the stream does not
// begin with "GIF87a" or "GIF89a".
var ErrInvalidSignature = &DecodeError{Kind: KindInvalidSignature, Msg: "not a GIF87a/GIF89a stream"}

func ioError(err error) *DecodeError {
	return &DecodeError{Kind: KindIO, Err: err}
}

func formatError(format string, args ...any) *DecodeError {
	return &DecodeError{Kind: KindFormat, Msg: fmt.Sprintf(format, args...)}
}

func formatErrorWrap(cause error, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: KindFormat, Msg: fmt.Sprintf(format, args...), Err: cause}
}
