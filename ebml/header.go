// Package ebml implements a from-scratch reader for IETF RFC 8794's
// Extensible Binary Meta Language, the envelope format for Matroska (MKV)
// and WebM, plus Matroska's own schema interpretation of EBML element IDs.
// Like bmff, it builds a tree.Node tree out of a single pass over the file,
// sharing the generic offset-range parent discovery and the value decoders.
package ebml

import (
	"fmt"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
	"github.com/deepch/boxml/value"
)

// EBML header element IDs, RFC 8794 §11.2.
const (
	idEBML                    uint64 = 0x1A45DFA3
	idEBMLVersion             uint64 = 0x4286
	idEBMLReadVersion         uint64 = 0x42F7
	idEBMLMaxIDLength         uint64 = 0x42F2
	idEBMLMaxSizeLength       uint64 = 0x42F3
	idDocType                 uint64 = 0x4282
	idDocTypeVersion          uint64 = 0x4287
	idDocTypeReadVersion      uint64 = 0x4285
	idDocTypeExtension        uint64 = 0x4281
	idDocTypeExtensionName    uint64 = 0x4283
	idDocTypeExtensionVersion uint64 = 0x4284
	idVoid                    uint64 = 0xEC
	idCRC32                   uint64 = 0xBF
)

// Document carries the seven header-derived fields spec.md §3 names, plus
// the parsed header and body roots.
type Document struct {
	Header *tree.Node
	Body   *tree.Node

	Version            uint64
	ReadVersion        uint64
	MaxIDLength        uint64
	MaxSizeLength      uint64
	DocType            string
	DocTypeVersion     uint64
	DocTypeReadVersion uint64
}

// ParseHeader implements spec.md §4.8: reads the fixed EBML master element
// at offset, interns its version/max-size/doctype fields with their bounds
// checks, and returns the header node plus the seeded Document. An EBML
// element found among the header's own children fails with
// ErrEBMLHeaderDuplicated; an EBML element after the header's end is not
// looked at here (Parse treats it as the start of a new Document).
func ParseHeader(r *ioprim.Reader, offset int64) (*tree.Node, *Document, error) {
	node, err := readElementHeader(r, offset)
	if err != nil {
		return nil, nil, err
	}
	if node.TypeID != idEBML {
		return nil, nil, ErrEBMLHeaderMissingOrCorrupt
	}
	node.Name = "EBML"

	doc := &Document{
		Version:       1,
		ReadVersion:   1,
		MaxIDLength:   4,
		MaxSizeLength: 8,
	}

	err = readChildrenUntil(r, node, func(child, parent *tree.Node) error {
		return dispatchHeaderField(r, child, doc)
	})
	if err != nil {
		return nil, nil, err
	}

	if doc.DocType == "" {
		return nil, nil, ErrDocTypeEmpty
	}
	if doc.DocTypeReadVersion > doc.DocTypeVersion {
		return nil, nil, ErrDocTypeReadVersionInvalid
	}

	node.Payload = value.Value{Kind: value.KindNone}
	doc.Header = node
	return node, doc, nil
}

// dispatchHeaderField implements spec.md §4.8 step 4's per-ID table.
func dispatchHeaderField(r *ioprim.Reader, node *tree.Node, doc *Document) error {
	switch node.TypeID {
	case idEBMLVersion:
		node.Name = "EBMLVersion"
		v, err := decodeFixedUnsigned(r, node, 1)
		if err != nil {
			return err
		}
		doc.Version = v
		if v != 1 {
			return fmt.Errorf("%w: got %d", ErrUnsupportedEBMLVersion, v)
		}

	case idEBMLReadVersion:
		node.Name = "EBMLReadVersion"
		v, err := decodeFixedUnsigned(r, node, 1)
		if err != nil {
			return err
		}
		doc.ReadVersion = v
		if v > 1 {
			return fmt.Errorf("%w: got %d", ErrUnsupportedEBMLVersion, v)
		}

	case idEBMLMaxIDLength:
		node.Name = "EBMLMaxIDLength"
		v, err := decodeFixedUnsigned(r, node, 1)
		if err != nil {
			return err
		}
		doc.MaxIDLength = v
		if v < 4 || v > 8 {
			return ErrMaxIDLengthInvalid
		}

	case idEBMLMaxSizeLength:
		node.Name = "EBMLMaxSizeLength"
		v, err := decodeFixedUnsigned(r, node, 1)
		if err != nil {
			return err
		}
		doc.MaxSizeLength = v
		if v < 1 || v > 8 {
			return ErrMaxSizeLengthInvalid
		}

	case idDocType:
		node.Name = "DocType"
		if node.PayloadSize > 1024 {
			return ErrDocTypeTooLong
		}
		s, err := value.DecodePrintableString(r, int(node.PayloadSize))
		if err != nil {
			return err
		}
		node.Payload = s
		if s.Str == "" {
			return ErrDocTypeEmpty
		}
		doc.DocType = s.Str

	case idDocTypeVersion:
		node.Name = "DocTypeVersion"
		v, err := decodeFixedUnsigned(r, node, 1)
		if err != nil {
			return err
		}
		doc.DocTypeVersion = v
		if v < 1 {
			return ErrDocTypeVersionInvalid
		}

	case idDocTypeReadVersion:
		node.Name = "DocTypeReadVersion"
		v, err := decodeFixedUnsigned(r, node, 1)
		if err != nil {
			return err
		}
		doc.DocTypeReadVersion = v
		if v < 1 {
			return ErrDocTypeReadVersionInvalid
		}

	case idDocTypeExtension:
		node.Name = "DocTypeExtension"
		node.Payload = value.Value{Kind: value.KindNone}

	case idDocTypeExtensionName:
		node.Name = "DocTypeExtensionName"
		s, err := value.DecodeUTF8String(r, int(node.PayloadSize))
		if err != nil {
			return err
		}
		node.Payload = s

	case idDocTypeExtensionVersion:
		node.Name = "DocTypeExtensionVersion"
		_, err := decodeFixedUnsigned(r, node, int(node.PayloadSize))
		return err

	case idEBML:
		return ErrEBMLHeaderDuplicated

	case idCRC32:
		node.Name = "CRC-32"
		b, err := value.DecodeBinary(r, int(node.PayloadSize))
		if err != nil {
			return err
		}
		node.Payload = b

	case idVoid:
		node.Name = "Void"
		node.Payload = value.Value{Kind: value.KindNone}
		return value.Skip(r, int(node.PayloadSize))

	default:
		node.Payload = value.Value{Kind: value.KindNone}
		return value.Skip(r, int(node.PayloadSize))
	}
	return nil
}

// decodeFixedUnsigned enforces the exact-length checks spec.md §4.8
// requires for several header fields (e.g. "EBMLVersion, length must be
// 1") before decoding; wantLen<0 skips the length check.
func decodeFixedUnsigned(r *ioprim.Reader, node *tree.Node, wantLen int) (uint64, error) {
	if wantLen >= 0 && int64(wantLen) != node.PayloadSize {
		return 0, fmt.Errorf("%w: %s wants length %d, got %d", ErrEBMLHeaderUnexpectedFieldLength, node.Name, wantLen, node.PayloadSize)
	}
	v, err := value.DecodeUnsigned(r, int(node.PayloadSize))
	if err != nil {
		return 0, err
	}
	node.Payload = v
	return v.Unsigned, nil
}
