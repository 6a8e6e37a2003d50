package value

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepch/boxml/ioprim"
)

func open(t *testing.T, b []byte) *ioprim.Reader {
	t.Helper()
	r, err := ioprim.Open(bytes.NewReader(b))
	require.NoError(t, err)
	return r
}

func TestDecodeUnsigned(t *testing.T) {
	v, err := DecodeUnsigned(open(t, []byte{0x01, 0x02}), 2)
	require.NoError(t, err)
	require.Equal(t, KindUnsigned, v.Kind)
	require.Equal(t, uint64(0x0102), v.Unsigned)

	v, err = DecodeUnsigned(open(t, nil), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v.Unsigned)

	_, err = DecodeUnsigned(open(t, nil), 9)
	require.ErrorIs(t, err, ErrUnsignedInvalidLength)
}

func TestDecodeSignedNegative(t *testing.T) {
	v, err := DecodeSigned(open(t, []byte{0xFF, 0xFF}), 2)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v.Signed)

	v, err = DecodeSigned(open(t, []byte{0x00, 0x01}), 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Signed)
}

func TestDecodeFloat(t *testing.T) {
	v, err := DecodeFloat(open(t, []byte{0x40, 0x49, 0x0f, 0xdb}), 4)
	require.NoError(t, err)
	require.InDelta(t, 3.14159, v.Float, 1e-5)

	_, err = DecodeFloat(open(t, []byte{0x00}), 1)
	require.ErrorIs(t, err, ErrFloatInvalidLength)
}

func TestDecodePrintableString(t *testing.T) {
	v, err := DecodePrintableString(open(t, []byte("hi\x00\x00")), 4)
	require.NoError(t, err)
	require.Equal(t, "hi", v.Str)

	_, err = DecodePrintableString(open(t, []byte{0x01}), 1)
	require.ErrorIs(t, err, ErrUnprintableString)
}

func TestDecodeUTF8String(t *testing.T) {
	v, err := DecodeUTF8String(open(t, []byte("caf\xc3\xa9\x00")), 6)
	require.NoError(t, err)
	require.Equal(t, "café", v.Str)
}

func TestDecodeBinary(t *testing.T) {
	v, err := DecodeBinary(open(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}), 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, v.Binary)
}

func TestDecodeUUID(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	v, err := DecodeUUID(open(t, raw), 16)
	require.NoError(t, err)
	require.Equal(t, KindUUID, v.Kind)
	require.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10", v.UUID.String())

	_, err = DecodeUUID(open(t, raw), 8)
	require.ErrorIs(t, err, ErrSegmentUIDInvalidLength)
}

func TestDecodeMatroskaTime(t *testing.T) {
	v, err := DecodeMatroskaTime(open(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}), 8)
	require.NoError(t, err)
	require.Equal(t, matroskaEpochBiasNs, v.Time)
}

func TestDecodeBMFFDate(t *testing.T) {
	v, err := DecodeBMFFDate(open(t, []byte{0, 0, 0, 0}), 4)
	require.NoError(t, err)
	require.Equal(t, bmffEpochBiasSeconds*1_000_000_000, v.Time)

	_, err = DecodeBMFFDate(open(t, []byte{0, 0}), 2)
	require.Error(t, err)
}

func TestDecodeFixed(t *testing.T) {
	v, err := DecodeFixed(open(t, []byte{0x01, 0x80}), 2)
	require.NoError(t, err)
	require.InDelta(t, 1.5, v.Fixed, 1e-9)

	v, err = DecodeFixed(open(t, []byte{0x00, 0x01, 0x80, 0x00}), 4)
	require.NoError(t, err)
	require.InDelta(t, 1.5, v.Fixed, 1e-9)

	_, err = DecodeFixed(open(t, []byte{0x00}), 1)
	require.ErrorIs(t, err, ErrFixedInvalidLength)
}

func TestDecodeLanguage(t *testing.T) {
	// "eng": letter_k = 0x60 + ((code >> (5*(2-k))) & 31)
	// e=0x65->5, n=0x6e->14, g=0x67->7 => code = 5<<10 | 14<<5 | 7
	code := uint16(5)<<10 | uint16(14)<<5 | uint16(7)
	v, err := DecodeLanguage(open(t, []byte{byte(code >> 8), byte(code)}), 2)
	require.NoError(t, err)
	require.Equal(t, "eng", v.Language.String())

	_, err = DecodeLanguage(open(t, []byte{0x00}), 1)
	require.ErrorIs(t, err, ErrLanguageInvalidLength)
}

func TestDecodeEnum(t *testing.T) {
	v, err := DecodeEnum(open(t, []byte{0x02}), 1)
	require.NoError(t, err)
	require.Equal(t, KindEnum, v.Kind)
	require.Equal(t, uint64(2), v.Enum)
}

func TestSkip(t *testing.T) {
	r := open(t, []byte{1, 2, 3, 4})
	require.NoError(t, Skip(r, 2))
	b, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, byte(3), b)
}
