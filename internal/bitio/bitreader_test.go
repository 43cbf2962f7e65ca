package bitio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/aculnaig/gifdecode/internal/bitio"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadBits(t *testing.T) {
	// codes 5,3,7 packed LSB-first as 3-bit fields.
	r := bitio.NewReader(bytes.NewReader([]byte{0xDD, 0x01}))

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 5, v)

	v, err = r.ReadBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 3, v)

	v, err = r.ReadBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 7, v)
}

func TestReader_MixedWidths(t *testing.T) {
	// a 3-bit field (4) followed by a 12-bit field (0xABC), LSB-first:
	// the 15-bit stream 4 | (0xABC << 3) == 0x55E4, stored little-endian.
	r := bitio.NewReader(bytes.NewReader([]byte{0xE4, 0x55}))

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 4, v)

	v, err = r.ReadBits(12)
	require.NoError(t, err)
	require.EqualValues(t, 0xABC, v)
}

func TestReader_UnexpectedEOF(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader(nil))

	_, err := r.ReadBits(1)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReader_PartialByteThenEOF(t *testing.T) {
	// one byte holds 8 bits; asking for 9 must fail once the source is empty.
	r := bitio.NewReader(bytes.NewReader([]byte{0xFF}))

	_, err := r.ReadBits(9)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReader_ReadBitsPanicsOnBadWidth(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader(nil))

	require.Panics(t, func() { _, _ = r.ReadBits(0) })
	require.Panics(t, func() { _, _ = r.ReadBits(17) })
}
