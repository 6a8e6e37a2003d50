// Package value implements the payload decoders shared by bmff and ebml
// (spec.md §4.3) and the tagged-union type a decoded payload is interned
// into. The union is a closed struct with a Kind tag, not an interface
// hierarchy — leaves are data, not polymorphic types (spec.md §9).
package value

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deepch/boxml/ioprim"
)

// Kind tags which field of Value is live.
type Kind uint8

const (
	KindNone Kind = iota
	KindUnsigned
	KindSigned
	KindFloat
	KindPrintableString
	KindUTF8String
	KindBinary
	KindUUID
	KindTime
	KindFixed
	KindLanguage
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	case KindPrintableString:
		return "printable-string"
	case KindUTF8String:
		return "utf8-string"
	case KindBinary:
		return "binary"
	case KindUUID:
		return "uuid"
	case KindTime:
		return "time"
	case KindFixed:
		return "fixed"
	case KindLanguage:
		return "language"
	case KindEnum:
		return "enum"
	default:
		return "none"
	}
}

// Language is an unpacked ISO-639-2 three-letter code (spec.md §4.3).
type Language struct {
	L0, L1, L2 byte
}

func (l Language) String() string {
	return string([]byte{l.L0, l.L1, l.L2})
}

// Value is the tagged union a decoded payload is interned into. Exactly one
// field is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Unsigned uint64
	Signed   int64
	Float    float64
	Str      string // PrintableString or UTF8String, selected by Kind
	Binary   []byte
	UUID     uuid.UUID
	Time     int64 // Unix-epoch nanoseconds, after rebasing
	Fixed    float64
	Language Language
	Enum     uint64
}

func (v Value) String() string {
	switch v.Kind {
	case KindUnsigned:
		return fmt.Sprintf("%d", v.Unsigned)
	case KindSigned:
		return fmt.Sprintf("%d", v.Signed)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindPrintableString, KindUTF8String:
		return v.Str
	case KindBinary:
		return fmt.Sprintf("<%d bytes>", len(v.Binary))
	case KindUUID:
		return v.UUID.String()
	case KindTime:
		return fmt.Sprintf("t=%d", v.Time)
	case KindFixed:
		return fmt.Sprintf("%g", v.Fixed)
	case KindLanguage:
		return v.Language.String()
	case KindEnum:
		return fmt.Sprintf("enum(%d)", v.Enum)
	default:
		return "<none>"
	}
}

var (
	// ErrUnsignedInvalidLength is raised for unsigned-int payloads outside 0..8 bytes.
	ErrUnsignedInvalidLength = fmt.Errorf("boxml: unsigned int payload length must be 0..8")
	// ErrSignedInvalidLength is raised for signed-int payloads outside 0..8 bytes.
	ErrSignedInvalidLength = fmt.Errorf("boxml: signed int payload length must be 0..8")
	// ErrFloatInvalidLength is raised for float payloads that are not 0, 4 or 8 bytes.
	ErrFloatInvalidLength = fmt.Errorf("boxml: float payload length must be 0, 4 or 8")
	// ErrUnprintableString is raised when a printable-ASCII string contains a
	// byte outside {0x20..0x7E, NUL}.
	ErrUnprintableString = fmt.Errorf("boxml: unprintable string")
	// ErrSegmentUIDInvalidLength is raised when a UUID payload is not exactly
	// 16 bytes (named for its most common Matroska use, SegmentUID, per the
	// error taxonomy this module follows for the generic UUID decoder too).
	ErrSegmentUIDInvalidLength = fmt.Errorf("boxml: uuid payload must be exactly 16 bytes")
	// ErrFixedInvalidLength is raised when a fixed-point payload is not 2 or 4 bytes.
	ErrFixedInvalidLength = fmt.Errorf("boxml: fixed-point payload must be 2 or 4 bytes")
	// ErrLanguageInvalidLength is raised when an ISO-639-2 payload is not exactly 2 bytes.
	ErrLanguageInvalidLength = fmt.Errorf("boxml: language payload must be exactly 2 bytes")
)

// DecodeUnsigned reads a big-endian unsigned integer of 0..8 bytes
// (spec.md §4.3); a zero-length payload decodes to 0.
func DecodeUnsigned(r *ioprim.Reader, n int) (Value, error) {
	if n < 0 || n > 8 {
		return Value{}, ErrUnsignedInvalidLength
	}
	b, err := r.ReadSlice(n)
	if err != nil {
		return Value{}, err
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return Value{Kind: KindUnsigned, Unsigned: v}, nil
}

// DecodeSigned reads a big-endian two's-complement integer of 0..8 bytes,
// sign-extended from the top bit of the first byte.
func DecodeSigned(r *ioprim.Reader, n int) (Value, error) {
	if n < 0 || n > 8 {
		return Value{}, ErrSignedInvalidLength
	}
	b, err := r.ReadSlice(n)
	if err != nil {
		return Value{}, err
	}
	if len(b) == 0 {
		return Value{Kind: KindSigned, Signed: 0}, nil
	}
	var v int64
	if b[0]&0x80 != 0 {
		v = -1
	}
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	return Value{Kind: KindSigned, Signed: v}, nil
}

// DecodeFloat reads a big-endian IEEE-754 value of 0, 4 or 8 bytes; a
// zero-length payload decodes to 0.0.
func DecodeFloat(r *ioprim.Reader, n int) (Value, error) {
	switch n {
	case 0:
		return Value{Kind: KindFloat, Float: 0}, nil
	case 4:
		f, err := r.ReadFloat32BE()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFloat, Float: float64(f)}, nil
	case 8:
		f, err := r.ReadFloat64BE()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFloat, Float: f}, nil
	default:
		return Value{}, ErrFloatInvalidLength
	}
}

func truncateAtNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// DecodePrintableString reads n bytes, truncates at the first NUL, and
// fails if any remaining byte falls outside {0x20..0x7E, NUL}.
func DecodePrintableString(r *ioprim.Reader, n int) (Value, error) {
	b, err := r.ReadSlice(n)
	if err != nil {
		return Value{}, err
	}
	s := truncateAtNUL(b)
	for _, c := range s {
		if c < 0x20 || c > 0x7E {
			return Value{}, ErrUnprintableString
		}
	}
	return Value{Kind: KindPrintableString, Str: string(s)}, nil
}

// DecodeUTF8String reads n bytes and truncates at the first NUL, without
// the printable-ASCII restriction.
func DecodeUTF8String(r *ioprim.Reader, n int) (Value, error) {
	b, err := r.ReadSlice(n)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindUTF8String, Str: string(truncateAtNUL(b))}, nil
}

// DecodeBinary reads n bytes verbatim.
func DecodeBinary(r *ioprim.Reader, n int) (Value, error) {
	b, err := r.ReadSlice(n)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindBinary, Binary: b}, nil
}

// DecodeUUID reads exactly 16 bytes and unpacks them as an RFC 4122 UUID.
func DecodeUUID(r *ioprim.Reader, n int) (Value, error) {
	if n != 16 {
		return Value{}, ErrSegmentUIDInvalidLength
	}
	b, err := r.ReadSlice(n)
	if err != nil {
		return Value{}, err
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return Value{}, fmt.Errorf("boxml: %w", err)
	}
	return Value{Kind: KindUUID, UUID: id}, nil
}

// matroskaEpochBiasNs is the offset in nanoseconds from the Unix epoch
// (1970-01-01) to the Matroska epoch (2001-01-01), per spec.md §4.3.
const matroskaEpochBiasNs = int64(978307200) * 1_000_000_000

// DecodeMatroskaTime reads a signed integer of n bytes as nanoseconds since
// 2001-01-01T00:00:00 UTC and rebases it onto the Unix epoch.
func DecodeMatroskaTime(r *ioprim.Reader, n int) (Value, error) {
	signed, err := DecodeSigned(r, n)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindTime, Time: signed.Signed + matroskaEpochBiasNs}, nil
}

const secondsPerDay = int64(86400)

// bmffEpochBiasSeconds rebases BMFF's 1904-01-01 UTC epoch onto the Unix
// epoch, per the exact arithmetic in spec.md §4.3 (integer division
// truncating toward zero): -24107 days.
var bmffEpochBiasSeconds = (-66*365 + -66/4 - -66/100 + -66/400 - 1) * secondsPerDay

// DecodeBMFFDate reads 4 or 8 bytes as seconds since 1904-01-01 UTC and
// rebases them onto the Unix epoch.
func DecodeBMFFDate(r *ioprim.Reader, n int) (Value, error) {
	var secs uint64
	switch n {
	case 4:
		v, err := r.ReadU32BE()
		if err != nil {
			return Value{}, err
		}
		secs = uint64(v)
	case 8:
		v, err := r.ReadU64BE()
		if err != nil {
			return Value{}, err
		}
		secs = v
	default:
		return Value{}, fmt.Errorf("boxml: bmff date payload must be 4 or 8 bytes")
	}
	unixSeconds := int64(secs) + bmffEpochBiasSeconds
	return Value{Kind: KindTime, Time: unixSeconds * 1_000_000_000}, nil
}

// DecodeFixed reads a 2-byte (Fixed_8_8) or 4-byte (Fixed_16_16) unsigned
// Q-fractional fixed-point value. Every 4-byte value is decoded as 16.16;
// Fixed_2_30 values are not told apart and come out in 16.16 scaling.
func DecodeFixed(r *ioprim.Reader, n int) (Value, error) {
	switch n {
	case 2:
		v, err := r.ReadU16BE()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFixed, Fixed: float64(v>>8) + float64(v&0xFF)/256.0}, nil
	case 4:
		v, err := r.ReadU32BE()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFixed, Fixed: float64(v>>16) + float64(v&0xFFFF)/65536.0}, nil
	default:
		return Value{}, ErrFixedInvalidLength
	}
}

// DecodeLanguage unpacks a 2-byte ISO-639-2 code per spec.md §4.3's
// bit-packing rule.
func DecodeLanguage(r *ioprim.Reader, n int) (Value, error) {
	if n != 2 {
		return Value{}, ErrLanguageInvalidLength
	}
	code, err := r.ReadU16BE()
	if err != nil {
		return Value{}, err
	}
	letter := func(k uint) byte {
		return byte(0x60 + ((code >> (5 * (2 - k))) & 31))
	}
	return Value{Kind: KindLanguage, Language: Language{letter(0), letter(1), letter(2)}}, nil
}

// DecodeEnum reads an unsigned value of n bytes and keeps it tagged as an
// enum rather than a plain unsigned integer (used for TrackType and
// similarly constrained small fields).
func DecodeEnum(r *ioprim.Reader, n int) (Value, error) {
	u, err := DecodeUnsigned(r, n)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindEnum, Enum: u.Unsigned}, nil
}

// Skip advances the reader past n bytes without allocating or interning
// anything, for payloads deliberately not kept (spec.md §4.3).
func Skip(r *ioprim.Reader, n int) error {
	return r.Skip(int64(n))
}
