package ebml

import (
	"fmt"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
	"github.com/deepch/boxml/value"
)

// Options carries the EBML parse flags spec.md §4.9 / §6 names:
// skip_clusters treats Cluster elements as opaque skipped regions, and
// return_after_cluster stops the walk one byte past a completed cluster to
// support incremental walking by a caller.
type Options struct {
	SkipClusters       bool
	ReturnAfterCluster bool
}

// File is the EBML file handle of spec.md §3: a root plus an ordered
// collection of Documents, since a stream may contain concatenated EBML
// documents.
type File struct {
	Root      *tree.Node
	Documents []*Document
}

// Parse implements spec.md §4.9's top-level control flow: repeatedly parse
// a header then its body, appending a Document each time, until the stream
// is exhausted. Any top-level "EBML" id encountered where a body element
// was expected is not itself an error — it starts a new Document — but a
// duplicated EBML element found inside one header's own fields is
// (ErrEBMLHeaderDuplicated, raised by dispatchHeaderField).
func Parse(r *ioprim.Reader, opts Options) (*File, error) {
	fileSize := r.FileSize()
	file := &File{Root: tree.NewRoot(fileSize)}

	pos := int64(0)
	for pos < fileSize {
		headerNode, doc, err := ParseHeader(r, pos)
		if err != nil {
			return nil, err
		}
		tree.AppendChild(file.Root, headerNode)
		if err := VerifyCRC32(r, headerNode); err != nil {
			return nil, err
		}

		bodyOffset := headerNode.End() + 1
		if bodyOffset >= fileSize {
			file.Documents = append(file.Documents, doc)
			break
		}

		// spec.md §4.9: an EBML id found where a body was expected is not an
		// error — it means this document's body is empty and a new
		// Document starts right here.
		startsNewDocument, err := peekIsEBML(r, bodyOffset)
		if err != nil {
			return nil, err
		}
		if startsNewDocument {
			file.Documents = append(file.Documents, doc)
			pos = bodyOffset
			continue
		}

		bodyNode, err := parseBody(r, bodyOffset, doc, opts)
		if err != nil {
			return nil, err
		}
		tree.AppendChild(file.Root, bodyNode)
		doc.Body = bodyNode
		file.Documents = append(file.Documents, doc)

		pos = bodyNode.End() + 1
		if err := r.SetPosition(pos); err != nil {
			return nil, err
		}
	}

	return file, nil
}

// peekIsEBML reports whether the element id at offset is idEBML, restoring
// the reader's position to offset afterward regardless of the outcome.
func peekIsEBML(r *ioprim.Reader, offset int64) (bool, error) {
	if err := r.SetPosition(offset); err != nil {
		return false, err
	}
	id, _, err := ReadVariableID(r)
	if err != nil {
		return false, err
	}
	if err := r.SetPosition(offset); err != nil {
		return false, err
	}
	return id == idEBML, nil
}

// parseBody implements spec.md §4.9's body-parser selection by doctype.
func parseBody(r *ioprim.Reader, offset int64, doc *Document, opts Options) (*tree.Node, error) {
	switch doc.DocType {
	case "matroska", "webm":
		return parseMatroskaBody(r, offset, opts)
	default:
		return parseGenericBody(r, offset)
	}
}

// parseMatroskaBody implements spec.md §4.9/§4.10: the first body element
// must have ID Segment, which is then decoded recursively by the Matroska
// schema.
func parseMatroskaBody(r *ioprim.Reader, offset int64, opts Options) (*tree.Node, error) {
	node, err := readElementHeader(r, offset)
	if err != nil {
		return nil, err
	}
	if node.TypeID != idSegment {
		return nil, ErrMatroskaBodyRootWrongID
	}
	node.Name = "Segment"

	if err := parseMatroskaMaster(r, node, opts); err != nil {
		return nil, err
	}
	if err := VerifyCRC32(r, node); err != nil {
		return nil, err
	}
	return node, nil
}

// parseGenericBody implements spec.md §4.9's fallback for an unrecognised
// DocType: a single offset/size node for the body root, whose payload is
// skipped. Its own children are not read — without a schema there is no way
// to know which of them are masters versus leaves — so no CRC-32 element
// inside a generic body is interned or checked.
func parseGenericBody(r *ioprim.Reader, offset int64) (*tree.Node, error) {
	node, err := readElementHeader(r, offset)
	if err != nil {
		return nil, err
	}
	node.Payload = value.Value{Kind: value.KindNone}
	if err := value.Skip(r, int(node.PayloadSize)); err != nil {
		return nil, err
	}
	return node, nil
}

// parseMatroskaMaster recurses into node's children per the schema,
// applying the skip_clusters/return_after_cluster flags and the
// per-disposition handling of spec.md §4.10.
func parseMatroskaMaster(r *ioprim.Reader, node *tree.Node, opts Options) error {
	return readChildrenUntil(r, node, func(child, parent *tree.Node) error {
		return parseMatroskaNode(r, child, parent, opts)
	})
}

// parseMatroskaNode applies the schema table to a single freshly
// discovered node: unknown IDs are skipped and preserved as offset-only
// (spec.md §4.10/§7: unknown IDs never error), known IDs are decoded per
// their disposition.
func parseMatroskaNode(r *ioprim.Reader, node, parent *tree.Node, opts Options) error {
	entry, known := matroskaSchema[node.TypeID]
	if !known {
		node.Name = fmt.Sprintf("Unknown(0x%X)", node.TypeID)
		node.Payload = value.Value{Kind: value.KindNone}
		return value.Skip(r, int(node.PayloadSize))
	}
	node.Name = entry.name

	switch entry.disp {
	case dispSkip:
		node.Payload = value.Value{Kind: value.KindNone}
		return value.Skip(r, int(node.PayloadSize))

	case dispSpecial:
		return dispatchMatroskaSpecial(r, node, parent, opts)

	default: // dispIntern
		if entry.kind == mkMaster {
			if err := parseMatroskaMaster(r, node, opts); err != nil {
				return err
			}
			return VerifyCRC32(r, node)
		}
		return internMatroskaScalar(r, node, entry.kind)
	}
}

// internMatroskaScalar decodes node's payload with the table-type decoder
// for the schema's non-master, non-special kinds.
func internMatroskaScalar(r *ioprim.Reader, node *tree.Node, kind matroskaKind) error {
	var v value.Value
	var err error
	switch kind {
	case mkUnsigned:
		v, err = value.DecodeUnsigned(r, int(node.PayloadSize))
	case mkSigned:
		v, err = value.DecodeSigned(r, int(node.PayloadSize))
	case mkFloat:
		v, err = value.DecodeFloat(r, int(node.PayloadSize))
	case mkString:
		v, err = value.DecodePrintableString(r, int(node.PayloadSize))
	case mkUTF8:
		v, err = value.DecodeUTF8String(r, int(node.PayloadSize))
	case mkBinary:
		v, err = value.DecodeBinary(r, int(node.PayloadSize))
	default:
		return fmt.Errorf("boxml/ebml: unhandled matroska kind %d", kind)
	}
	if err != nil {
		return err
	}
	node.Payload = v
	return nil
}

// dispatchMatroskaSpecial implements the per-ID Special handling spec.md
// §4.10 calls out by name: SeekPosition rebasing, the UID family's
// mandatory 16-byte length, DateUTC's epoch bias, TrackType's 1-byte
// length, and Cluster's skip_clusters/return_after_cluster behavior.
func dispatchMatroskaSpecial(r *ioprim.Reader, node, parent *tree.Node, opts Options) error {
	switch node.TypeID {
	case idSeekPos:
		return decodeSeekPosition(r, node, parent)

	case idSegmentUID, idPrevUID, idNextUID, idSegmentFamily, idChapterSegmentUID:
		if node.PayloadSize != 16 {
			return ErrMatroskaSegmentUIDInvalidLength
		}
		v, err := value.DecodeUUID(r, int(node.PayloadSize))
		if err != nil {
			return err
		}
		node.Payload = v
		return nil

	case idDateUTC:
		v, err := value.DecodeMatroskaTime(r, int(node.PayloadSize))
		if err != nil {
			return err
		}
		node.Payload = v
		return nil

	case idTrackType:
		if node.PayloadSize != 1 {
			return ErrMatroskaTrackTypeInvalidLength
		}
		v, err := value.DecodeEnum(r, int(node.PayloadSize))
		if err != nil {
			return err
		}
		node.Payload = v
		return nil

	case idCluster:
		return dispatchCluster(r, node, opts)

	default:
		return fmt.Errorf("boxml/ebml: unhandled special id 0x%X", node.TypeID)
	}
}

// decodeSeekPosition implements spec.md §4.10's SeekPosition rule: the raw
// value is a byte offset relative to the start of the enclosing SeekHead,
// so the parser rebases it by adding seek_head.offset. parent must be Seek
// nested directly in SeekHead.
func decodeSeekPosition(r *ioprim.Reader, node, parent *tree.Node) error {
	v, err := value.DecodeUnsigned(r, int(node.PayloadSize))
	if err != nil {
		return err
	}
	if parent == nil || parent.TypeID != idSeek || parent.Parent == nil || parent.Parent.TypeID != idSeekHead {
		return ErrMatroskaBrokenSeekPosition
	}
	rebased := v.Unsigned + uint64(parent.Parent.Offset)
	node.Payload = value.Value{Kind: value.KindUnsigned, Unsigned: rebased}
	return nil
}

// dispatchCluster implements spec.md §4.9's skip_clusters/return_after_cluster
// flags: when skipping, the cluster's bytes are never walked at all; either
// way, return_after_cluster halts the enclosing Segment's walk immediately
// after this cluster is fully accounted for.
func dispatchCluster(r *ioprim.Reader, node *tree.Node, opts Options) error {
	if opts.SkipClusters {
		node.Payload = value.Value{Kind: value.KindNone}
		if err := value.Skip(r, int(node.PayloadSize)); err != nil {
			return err
		}
	} else {
		if err := parseMatroskaMaster(r, node, opts); err != nil {
			return err
		}
		if err := VerifyCRC32(r, node); err != nil {
			return err
		}
	}
	if opts.ReturnAfterCluster {
		return errStopIteration
	}
	return nil
}
