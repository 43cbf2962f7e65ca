package lzw_test

import (
	"bytes"
	"testing"

	"github.com/aculnaig/gifdecode/internal/lzw"
	"github.com/stretchr/testify/require"
)

// TestDecoder_SingleCodeThenEnd decodes the two-pixel index stream [0, 1]
// from codes clear(4), 0, 1, end(5) at minCodeSize 2 (code width 3).
func TestDecoder_SingleCodeThenEnd(t *testing.T) {
	dec := lzw.NewDecoder(bytes.NewReader([]byte{0x44, 0x0A}), 2)

	out := make([]byte, 2)
	n, err := dec.DecodeBytes(out)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0, 1}, out)
}

// TestDecoder_KwKwK exercises the self-referential code case: codes
// clear(4), 0, 0, <nextCode>(7) at minCodeSize 2 must decode to four
// zero-valued pixels, the second pair produced entirely from the KwKwK
// resolution of a code equal to the dictionary's next free slot.
func TestDecoder_KwKwK(t *testing.T) {
	dec := lzw.NewDecoder(bytes.NewReader([]byte{0x04, 0x5E}), 2)

	out := make([]byte, 4)
	n, err := dec.DecodeBytes(out)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0, 0, 0, 0}, out)
}

// TestDecoder_TruncatedStream stops at whatever has been decoded when the
// bit stream ends before the requested number of bytes is reached, rather
// than returning an error; truncation is the caller's responsibility to
// detect by comparing n against the expected pixel count.
func TestDecoder_TruncatedStream(t *testing.T) {
	// clear(4), 0 -- no end code, stream simply runs out.
	dec := lzw.NewDecoder(bytes.NewReader([]byte{0x04}), 2)

	out := make([]byte, 4)
	n, err := dec.DecodeBytes(out)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0), out[0])
}

func TestDecoder_InvalidCode(t *testing.T) {
	// a code equal to nextCode (6, the first free dictionary slot at
	// minCodeSize 2) is only valid as a KwKwK resolution immediately after
	// a real preceding code; as the very first code read it is out of range.
	dec := lzw.NewDecoder(bytes.NewReader([]byte{0x06}), 2)

	out := make([]byte, 1)
	_, err := dec.DecodeBytes(out)
	require.ErrorIs(t, err, lzw.ErrInvalidCode)
}
