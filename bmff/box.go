// Package bmff implements a from-scratch reader for ISO/IEC 14496-12 Base
// Media File Format streams (MP4, M4A, HEIF) plus the Apple iTunes
// ilst metadata extension. It builds a tree.Node tree out of a flat,
// single pass over the file, discovering containment by offset range
// rather than by recursive descent, so that containers which close several
// levels at once (spec.md §4.5) need no explicit stack.
package bmff

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
	"github.com/deepch/boxml/value"
)

// Options carries the BMFF parse flags (spec.md §6's flag-bearing parse
// form).
type Options struct {
	ParseMetadata bool
}

// FileSummary captures the file-level fields spec.md §4.6 calls out as
// side effects of dispatch: ftyp, moov, mvhd, mdat, itunes metadata and the
// movie timescale.
type FileSummary struct {
	FTYP           *tree.Node
	MOOV           *tree.Node
	MVHD           *tree.Node
	MDAT           *tree.Node
	ITunesMetadata *tree.Node
	TimeScale      uint32
}

// Parse reads r start to end and returns the synthetic root of the parsed
// tree, plus the file-level summary.
func Parse(r *ioprim.Reader, opts Options) (*tree.Node, *FileSummary, error) {
	fileSize := r.FileSize()
	root := tree.NewRoot(fileSize)
	summary := &FileSummary{}

	prev := root

	if fileSize >= 8 {
		if err := r.SetPosition(0); err != nil {
			return nil, nil, err
		}
		firstType, err := peekType(r)
		if err != nil {
			return nil, nil, err
		}
		if firstType != FTYP {
			synth := synthesizeFTYP()
			tree.AppendChild(root, synth)
			summary.FTYP = synth
			prev = synth
		}
	}

	if err := r.SetPosition(0); err != nil {
		return nil, nil, err
	}

	for {
		pos, err := r.Position()
		if err != nil {
			return nil, nil, err
		}
		if pos >= fileSize {
			break
		}

		node, err := readBoxHeader(r, pos)
		if err != nil {
			return nil, nil, fmt.Errorf("boxml/bmff: %w at offset %d", ErrFileEndedEarly, pos)
		}
		if node.End() >= fileSize {
			return nil, nil, fmt.Errorf("boxml/bmff: %w at offset %d", ErrFileEndedEarly, pos)
		}

		parent := tree.DiscoverParent(prev, pos)
		tree.AppendChild(parent, node)
		prev = node

		if err := dispatch(r, node, parent, summary); err != nil {
			return nil, nil, err
		}

		if FourCC(node.TypeID) == ILST && opts.ParseMetadata {
			if err := ParseITunesMetadata(r, node); err != nil {
				return nil, nil, err
			}
			summary.ITunesMetadata = node
		}

		if isContainer(FourCC(node.TypeID)) {
			if err := r.SetPosition(node.PayloadOffset); err != nil {
				return nil, nil, err
			}
		} else {
			if err := r.SetPosition(node.End() + 1); err != nil {
				return nil, nil, err
			}
		}
	}

	return root, summary, nil
}

// peekType reads the box type at the reader's current position without
// consuming it, tolerating the extended-size u32be==1 prefix.
func peekType(r *ioprim.Reader) (FourCC, error) {
	pos, err := r.Position()
	if err != nil {
		return 0, err
	}
	if _, err := r.ReadU32BE(); err != nil {
		return 0, err
	}
	t, err := r.ReadU32BE()
	if err != nil {
		return 0, err
	}
	if err := r.SetPosition(pos); err != nil {
		return 0, err
	}
	return FourCC(t), nil
}

// readBoxHeader decodes the box header at offset per the wire format in
// spec.md §4.5/§4.6 and returns a node positioned at its payload, without
// yet decoding the payload.
func readBoxHeader(r *ioprim.Reader, offset int64) (*tree.Node, error) {
	size32, err := r.ReadU32BE()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU32BE()
	if err != nil {
		return nil, err
	}

	headerLen := int64(8)
	var size int64
	switch size32 {
	case 1:
		ext, err := r.ReadU64BE()
		if err != nil {
			return nil, err
		}
		size = int64(ext)
		headerLen += 8
	case 0:
		size = r.FileSize() - offset
	default:
		size = int64(size32)
	}

	node := &tree.Node{
		Offset: offset,
		Size:   size,
		TypeID: uint64(typ),
		Name:   FourCC(typ).String(),
	}

	if FourCC(typ) == UUID {
		raw, err := r.ReadSlice(16)
		if err != nil {
			return nil, err
		}
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("boxml/bmff: %w", err)
		}
		node.HasUUID = true
		node.UUID = id
		headerLen += 16
	}

	node.PayloadOffset = offset + headerLen
	node.PayloadSize = node.Size - headerLen

	return node, nil
}

// synthesizeFTYP builds the default ftyp spec.md §4.5/S2 requires when the
// stream's first box is not itself an ftyp: major brand "mp41", minor
// version 0, compatible brands {"mp41"}, flagged synthetic with size 0.
func synthesizeFTYP() *tree.Node {
	return &tree.Node{
		Offset:    0,
		Size:      0,
		TypeID:    uint64(FTYP),
		Name:      "ftyp",
		Synthetic: true,
		Payload: value.Value{
			Kind: value.KindBinary,
			Binary: encodeFTYPPayload(ParseFourCC("mp41"), 0, []FourCC{ParseFourCC("mp41")}),
		},
	}
}

func encodeFTYPPayload(major FourCC, minor uint32, compat []FourCC) []byte {
	b := make([]byte, 8+4*len(compat))
	putU32BE(b[0:], uint32(major))
	putU32BE(b[4:], minor)
	for i, c := range compat {
		putU32BE(b[8+4*i:], uint32(c))
	}
	return b
}

func putU32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
