package bmff

import "encoding/binary"

// FourCC is a BMFF box type, stored the way the wire encodes it: four ASCII
// (or, for iTunes tags, Latin-1) bytes packed big-endian into a uint32.
type FourCC uint32

func (f FourCC) String() string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(f))
	return string(b[:])
}

// ParseFourCC packs a 4-byte ASCII string into a FourCC.
func ParseFourCC(s string) FourCC {
	var b [4]byte
	copy(b[:], s)
	return FourCC(binary.BigEndian.Uint32(b[:]))
}

// Recognised box types (spec.md §4.6).
const (
	FTYP FourCC = 0x66747970 // "ftyp"
	STYP FourCC = 0x73747970 // "styp"
	MOOV FourCC = 0x6d6f6f76
	TRAK FourCC = 0x7472616b
	EDTS FourCC = 0x65647473
	MDIA FourCC = 0x6d646961
	MINF FourCC = 0x6d696e66
	UDTA FourCC = 0x75647461
	MOOF FourCC = 0x6d6f6f66
	TRAF FourCC = 0x74726166
	MECO FourCC = 0x6d65636f
	MVHD FourCC = 0x6d766864
	TKHD FourCC = 0x746b6864
	MDHD FourCC = 0x6d646864
	ELST FourCC = 0x656c7374
	HDLR FourCC = 0x68646c72
	META FourCC = 0x6d657461
	ILST FourCC = 0x696c7374
	CHPL FourCC = 0x6368706c
	MDAT FourCC = 0x6d646174
	FREE FourCC = 0x66726565
	UUID FourCC = 0x75756964 // "uuid"

	// iTunes metadata, scoped under moov.udta.meta.ilst (spec.md §4.7).
	itunesData = 0x64617461 // "data"
	itunesMean = 0x6d65616e // "mean"
	itunesName = 0x6e616d65 // "name"
	itunesExt  = 0x2d2d2d2d // "----"
	itunesTrkn = 0x74726b6e // "trkn"
	itunesDisk = 0x6469736b // "disk"
	itunesCovr = 0x636f7672 // "covr"
)

var containerTypes = map[FourCC]bool{
	MOOV: true, TRAK: true, EDTS: true, MDIA: true, MINF: true,
	UDTA: true, MOOF: true, TRAF: true, MECO: true, META: true,
}

func isContainer(t FourCC) bool {
	return containerTypes[t]
}
