package bmff

import (
	"encoding/binary"
	"fmt"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
	"github.com/deepch/boxml/value"
)

// iTunesDataType is the `type` field of a data atom's (type, subtype,
// value) triple, spec.md §4.7.
type iTunesDataType uint32

const (
	iTunesDataBinary iTunesDataType = 0
	iTunesDataText   iTunesDataType = 1
	iTunesDataJPEG   iTunesDataType = 13
	iTunesDataPNG    iTunesDataType = 14
)

// ParseITunesMetadata runs the specialised walk of spec.md §4.7 over the
// already-discovered moov.udta.meta.ilst node: unlike the generic BMFF
// pass, it establishes parent/sibling links directly against the tag
// boxes rather than by ancestor-offset discovery, since ilst's layout
// (tag → data, or tag → mean/name/data) is known structurally rather than
// by type dispatch.
func ParseITunesMetadata(r *ioprim.Reader, ilst *tree.Node) error {
	pos := ilst.PayloadOffset
	var prevTag *tree.Node

	for pos <= ilst.End() {
		tagNode, err := readBoxHeader(r, pos)
		if err != nil {
			return err
		}
		if tagNode.End() > ilst.End() {
			return fmt.Errorf("boxml/bmff: %w at offset %d", ErrFileEndedEarly, pos)
		}

		if prevTag == nil {
			ilst.FirstChild = tagNode
		} else {
			prevTag.NextSibling = tagNode
		}
		tagNode.Parent = ilst
		tagNode.Level = ilst.Level + 1

		if FourCC(tagNode.TypeID) == itunesExt {
			if err := parseITunesExtendedTag(r, tagNode); err != nil {
				return err
			}
		} else {
			if err := parseITunesDataTag(r, tagNode); err != nil {
				return err
			}
		}

		prevTag = tagNode
		pos = tagNode.End() + 1
		if err := r.SetPosition(pos); err != nil {
			return err
		}
	}

	return nil
}

// parseITunesDataTag reads a single `data` child and folds its decoded
// value into the parent tag node (spec.md §4.7: "fold the data payload
// into the parent tag as an iTunes_Metadata value").
func parseITunesDataTag(r *ioprim.Reader, tagNode *tree.Node) error {
	if tagNode.PayloadSize < 8 {
		tagNode.Payload = value.Value{Kind: value.KindNone}
		return nil
	}

	dataNode, err := readBoxHeader(r, tagNode.PayloadOffset)
	if err != nil {
		return err
	}
	tagNode.FirstChild = dataNode
	dataNode.Parent = tagNode
	dataNode.Level = tagNode.Level + 1

	if FourCC(dataNode.TypeID) != itunesData || dataNode.PayloadSize < 8 {
		dataNode.Payload = value.Value{Kind: value.KindNone}
		return value.Skip(r, int(dataNode.PayloadSize))
	}

	typ, err := r.ReadU32BE()
	if err != nil {
		return err
	}
	if _, err := r.ReadU32BE(); err != nil { // subtype/locale, not interned
		return err
	}
	raw, err := r.ReadSlice(int(dataNode.PayloadSize - 8))
	if err != nil {
		return err
	}

	decoded := decodeITunesValue(FourCC(tagNode.TypeID), iTunesDataType(typ), raw)
	dataNode.Payload = decoded
	tagNode.Payload = decoded
	return nil
}

// decodeITunesValue applies spec.md §4.7's per-tag/per-type decode rules.
func decodeITunesValue(tag FourCC, typ iTunesDataType, raw []byte) value.Value {
	switch tag {
	case itunesTrkn, itunesDisk:
		return value.Value{Kind: value.KindBinary, Binary: raw}
	case itunesCovr:
		return value.Value{Kind: value.KindBinary, Binary: raw}
	}
	switch typ {
	case iTunesDataText:
		return value.Value{Kind: value.KindPrintableString, Str: string(truncateAtNUL(raw))}
	default:
		return value.Value{Kind: value.KindBinary, Binary: raw}
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

// parseITunesExtendedTag implements the "----" (Extended) triple: flat
// siblings mean, name, data under the tag box.
func parseITunesExtendedTag(r *ioprim.Reader, tagNode *tree.Node) error {
	pos := tagNode.PayloadOffset
	var prevChild *tree.Node

	for pos <= tagNode.End() {
		child, err := readBoxHeader(r, pos)
		if err != nil {
			return err
		}
		if child.End() > tagNode.End() {
			return fmt.Errorf("boxml/bmff: %w at offset %d", ErrFileEndedEarly, pos)
		}

		if prevChild == nil {
			tagNode.FirstChild = child
		} else {
			prevChild.NextSibling = child
		}
		child.Parent = tagNode
		child.Level = tagNode.Level + 1

		switch FourCC(child.TypeID) {
		case itunesMean, itunesName:
			s, err := value.DecodeUTF8String(r, int(child.PayloadSize))
			if err != nil {
				return err
			}
			child.Payload = s
		case itunesData:
			if child.PayloadSize >= 8 {
				if _, err := r.ReadU32BE(); err != nil {
					return err
				}
				if _, err := r.ReadU32BE(); err != nil {
					return err
				}
				raw, err := r.ReadSlice(int(child.PayloadSize - 8))
				if err != nil {
					return err
				}
				child.Payload = value.Value{Kind: value.KindPrintableString, Str: string(truncateAtNUL(raw))}
			}
		default:
			if err := value.Skip(r, int(child.PayloadSize)); err != nil {
				return err
			}
		}

		prevChild = child
		pos = child.End() + 1
		if err := r.SetPosition(pos); err != nil {
			return err
		}
	}

	return nil
}

// TrackNumber unpacks a trkn/disk data atom's raw value as the fixed
// struct spec.md §4.7 names: (reserved, current: u16be, total: u16be,
// reserved).
func TrackNumber(v value.Value) (current, total uint16, err error) {
	if v.Kind != value.KindBinary || len(v.Binary) < 6 {
		return 0, 0, fmt.Errorf("boxml/bmff: trkn/disk payload too short")
	}
	current = binary.BigEndian.Uint16(v.Binary[2:4])
	total = binary.BigEndian.Uint16(v.Binary[4:6])
	return current, total, nil
}
