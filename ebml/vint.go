package ebml

import (
	"io"

	"github.com/icza/bitio"

	"github.com/deepch/boxml/ioprim"
)

// vint is a decoded EBML variable-length integer before any caller-specific
// interpretation (marker kept vs. stripped). length is the total byte count
// (1..8), derived from the leading zero-bit count of the first byte
// (spec.md §4.2).
type vint struct {
	raw    uint64 // the full on-wire value, marker bits included
	length int
}

// dataBits is the number of information bits carried by a VINT of this
// length: 8*length total bits minus the length marker bits (length-1 zero
// bits plus the 1 marker bit both occupy the leading `length` bit positions
// of the first byte, per RFC 8794's framing).
func (v vint) dataBits() uint {
	return uint(7 * v.length)
}

func (v vint) dataMask() uint64 {
	return (uint64(1) << v.dataBits()) - 1
}

// data strips the marker, leaving the numeric payload.
func (v vint) data() uint64 {
	return v.raw & v.dataMask()
}

func (v vint) isAllZero() bool { return v.data() == 0 }
func (v vint) isAllOne() bool  { return v.data() == v.dataMask() }

// vintLength returns the total byte length a VINT's first byte declares, by
// counting leading zero bits until the marker `1` bit (spec.md §4.2): a `1`
// in the top bit means length 1, and so on down to a marker in the bottom
// bit meaning length 8. A first byte of 0x00 has no marker bit at all within
// the 8-byte ceiling and is out of range.
func vintLength(first byte) (int, bool) {
	for i := 0; i < 8; i++ {
		if first&(0x80>>uint(i)) != 0 {
			return i + 1, true
		}
	}
	return 0, false
}

// readVint reads the VINT at the reader's current position, returning it
// with marker bits intact. A VINT is always a whole number of bytes, so its
// byte-at-a-time extraction is the one spot in the decoder suited to
// bitio's deferred-error Try idiom (ioprim.Reader.BitReader): every byte is
// pulled with TryReadByte and the accumulated TryError is checked once,
// after the full length is known, instead of after each byte.
func readVint(r *ioprim.Reader) (vint, error) {
	br := r.BitReader()

	first := br.TryReadByte()
	if err := takeBitioErr(br); err != nil {
		return vint{}, err
	}

	length, ok := vintLength(first)
	if !ok {
		return vint{}, ErrVIntOutOfRange
	}

	v := uint64(first)
	if length > 1 {
		for i := 0; i < length-1; i++ {
			b := br.TryReadByte()
			v = v<<8 | uint64(b)
		}
		if err := takeBitioErr(br); err != nil {
			return vint{}, err
		}
	}

	return vint{raw: v, length: length}, nil
}

// takeBitioErr clears and translates br's accumulated Try error (set by one
// or more preceding TryReadByte calls), if any.
func takeBitioErr(br *bitio.Reader) error {
	err := br.TryError
	if err == nil {
		return nil
	}
	br.TryError = nil
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ioprim.ErrEOF
	}
	return err
}

// ReadVariableID decodes an EBML element ID (spec.md §4.2): the returned
// value keeps its marker bits, matching what an ID table compares against,
// and length is the VINT's total byte count. All-zero and all-one IDs are
// reserved by RFC 8794 and surfaced as errors rather than silently decoded.
func ReadVariableID(r *ioprim.Reader) (uint64, int, error) {
	v, err := readVint(r)
	if err != nil {
		return 0, 0, err
	}
	if v.isAllZero() {
		return 0, 0, ErrVIntAllZero
	}
	if v.isAllOne() {
		return 0, 0, ErrVIntAllOne
	}
	return v.raw, v.length, nil
}

// ReadVariableInt decodes an EBML element length (spec.md §4.2): the marker
// bit is stripped, leaving the numeric payload. An all-zero value is a valid
// zero length; the all-one value (the unknown-size marker) is surfaced as
// ErrVIntAllOne. The caller (the schema layer, per spec.md) is responsible
// for comparing the result against the document's MaxSizeLength; this codec
// does not enforce that bound.
func ReadVariableInt(r *ioprim.Reader) (uint64, int, error) {
	v, err := readVint(r)
	if err != nil {
		return 0, 0, err
	}
	if v.isAllOne() {
		return 0, 0, ErrVIntAllOne
	}
	return v.data(), v.length, nil
}
