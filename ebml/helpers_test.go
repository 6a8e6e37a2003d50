package ebml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepch/boxml/ioprim"
)

// idBytes packs an EBML ID constant (marker bits already included, as the
// matroska.go/header.go tables declare them) into its minimal-width
// on-wire big-endian form.
func idBytes(id uint64) []byte {
	n := 1
	for id>>(8*uint(n)) != 0 {
		n++
	}
	b := make([]byte, n)
	v := id
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// vintLenBytes encodes a length value as a VINT of the given byte width,
// marker bit included (spec.md §4.2).
func vintLenBytes(v uint64, width int) []byte {
	b := make([]byte, width)
	full := v
	for i := width - 1; i >= 0; i-- {
		b[i] = byte(full)
		full >>= 8
	}
	b[0] |= byte(0x80 >> uint(width-1))
	return b
}

// minimalLen picks the smallest VINT width that can hold n (7 bits per byte
// available once the marker bit is excluded, and the all-ones value of each
// width reserved as the unknown-size marker).
func minimalLen(n int) []byte {
	v := uint64(n)
	width := 1
	for v >= (uint64(1)<<uint(7*width))-1 {
		width++
	}
	return vintLenBytes(v, width)
}

// elem builds a complete EBML element: id, minimal-width length, payload.
func elem(id uint64, payload []byte) []byte {
	var b []byte
	b = append(b, idBytes(id)...)
	b = append(b, minimalLen(len(payload))...)
	b = append(b, payload...)
	return b
}

// u encodes n as a big-endian unsigned integer using the fewest bytes that
// represent it without leading-zero truncation below 1 byte.
func u(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte(n)}, b...)
		n >>= 8
	}
	return b
}

// ebmlHeader builds a minimal valid EBML header element declaring docType.
func ebmlHeader(docType string) []byte {
	children := elem(idEBMLVersion, []byte{1})
	children = append(children, elem(idEBMLReadVersion, []byte{1})...)
	children = append(children, elem(idEBMLMaxIDLength, []byte{4})...)
	children = append(children, elem(idEBMLMaxSizeLength, []byte{8})...)
	children = append(children, elem(idDocType, []byte(docType))...)
	children = append(children, elem(idDocTypeVersion, []byte{1})...)
	children = append(children, elem(idDocTypeReadVersion, []byte{1})...)
	return elem(idEBML, children)
}

func openReader(t *testing.T, data []byte) *ioprim.Reader {
	t.Helper()
	r, err := ioprim.Open(bytes.NewReader(data))
	require.NoError(t, err)
	return r
}
