package ebml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadVariableID1Byte(t *testing.T) {
	r := openReader(t, []byte{0xBF})
	id, n, err := ReadVariableID(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0xBF), id)
	require.Equal(t, 1, n)
}

func TestReadVariableID4Byte(t *testing.T) {
	r := openReader(t, []byte{0x1A, 0x45, 0xDF, 0xA3})
	id, n, err := ReadVariableID(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1A45DFA3), id)
	require.Equal(t, 4, n)
}

func TestReadVariableIntStripsMarker(t *testing.T) {
	// 2-byte length VINT: 0x40 | 0x01, 0x00 -> marker stripped value 0x0100
	r := openReader(t, []byte{0x41, 0x00})
	v, n, err := ReadVariableInt(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0100), v)
	require.Equal(t, 2, n)
}

func TestReadVariableIntAllOneIsUnknownSizeMarker(t *testing.T) {
	r := openReader(t, []byte{0xFF})
	_, _, err := ReadVariableInt(r)
	require.ErrorIs(t, err, ErrVIntAllOne)
}

func TestReadVariableIDAllZeroIsReserved(t *testing.T) {
	r := openReader(t, []byte{0x80})
	_, _, err := ReadVariableID(r)
	require.ErrorIs(t, err, ErrVIntAllZero)
}

func TestVIntOutOfRange(t *testing.T) {
	r := openReader(t, []byte{0x00})
	_, _, err := ReadVariableID(r)
	require.ErrorIs(t, err, ErrVIntOutOfRange)
}

func TestVIntLength8Byte(t *testing.T) {
	r := openReader(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x09})
	id, n, err := ReadVariableID(r)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, uint64(0x0102030405060709), id)
}
