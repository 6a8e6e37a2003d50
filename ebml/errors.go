package ebml

import "errors"

// VINT codec errors, spec.md §4.2 / §7.
var (
	ErrVIntAllZero    = errors.New("boxml/ebml: vint is reserved all-zero")
	ErrVIntAllOne     = errors.New("boxml/ebml: vint is reserved all-one")
	ErrVIntOutOfRange = errors.New("boxml/ebml: vint length byte out of range")
)

// CRC-32 errors, spec.md §4.4 / §7.
var (
	ErrInvalidCRCSize = errors.New("boxml/ebml: crc-32 payload must be exactly 4 bytes")
	ErrInvalidCRC     = errors.New("boxml/ebml: crc-32 mismatch")
)

// EBML header errors, spec.md §4.8 / §7.
var (
	ErrEBMLHeaderMissingOrCorrupt      = errors.New("boxml/ebml: EBML header missing or corrupt")
	ErrEBMLHeaderDuplicated            = errors.New("boxml/ebml: EBML header duplicated")
	ErrEBMLHeaderUnexpectedFieldLength = errors.New("boxml/ebml: EBML header field has unexpected length")
	ErrUnsupportedEBMLVersion          = errors.New("boxml/ebml: unsupported EBML version")
	ErrDocTypeEmpty                    = errors.New("boxml/ebml: doctype is empty")
	ErrDocTypeTooLong                  = errors.New("boxml/ebml: doctype exceeds 1024 bytes")
	ErrDocTypeVersionInvalid           = errors.New("boxml/ebml: doctype version invalid")
	ErrDocTypeReadVersionInvalid       = errors.New("boxml/ebml: doctype read version invalid")
	ErrMaxIDLengthInvalid              = errors.New("boxml/ebml: EBMLMaxIDLength out of [4,8]")
	ErrMaxSizeLengthInvalid            = errors.New("boxml/ebml: EBMLMaxSizeLength out of [1,8]")
	ErrFileEndedEarly                  = errors.New("boxml/ebml: file ended early")
)

// Matroska-specific errors, spec.md §4.10 / §7.
var (
	ErrMatroskaBodyRootWrongID         = errors.New("boxml/ebml: matroska body root has wrong ID")
	ErrMatroskaBrokenSeekPosition      = errors.New("boxml/ebml: SeekPosition outside Seek/SeekHead")
	ErrMatroskaSegmentUIDInvalidLength = errors.New("boxml/ebml: matroska UID element must be exactly 16 bytes")
	ErrMatroskaTrackTypeInvalidLength  = errors.New("boxml/ebml: TrackType must be exactly 1 byte")
)
