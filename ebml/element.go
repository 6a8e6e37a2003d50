package ebml

import (
	"errors"
	"fmt"

	"github.com/deepch/boxml/ioprim"
	"github.com/deepch/boxml/tree"
)

// errStopIteration is an internal sentinel a visit callback can return from
// readChildrenUntil to end the walk early without it being treated as a
// parse failure — used by the Matroska body engine's return_after_cluster
// flag (spec.md §4.9).
var errStopIteration = errors.New("ebml: stop iteration")

// readElementHeader decodes the EBML element header at offset (spec.md §6's
// wire format: `[id: VINT(marker-retained)][length: VINT(marker-stripped)]`)
// and returns a node positioned at its payload, without decoding the
// payload itself.
func readElementHeader(r *ioprim.Reader, offset int64) (*tree.Node, error) {
	if err := r.SetPosition(offset); err != nil {
		return nil, err
	}
	id, idLen, err := ReadVariableID(r)
	if err != nil {
		return nil, err
	}
	length, lenLen, err := ReadVariableInt(r)
	if err != nil {
		return nil, err
	}
	headerLen := int64(idLen + lenLen)
	node := &tree.Node{
		Offset:        offset,
		Size:          headerLen + int64(length),
		TypeID:        id,
		PayloadOffset: offset + headerLen,
		PayloadSize:   int64(length),
	}
	return node, nil
}

// readChildrenUntil walks the flat sequence of elements starting at
// parent.PayloadOffset until the cursor passes parent.End(), linking each
// one under parent via the ancestor-offset parent-discovery trick
// (spec.md §4.5, reused verbatim by the EBML header and body engines).
// visit is called with each newly discovered node positioned at its payload
// offset, and decides how (or whether) to decode it; visit may append
// further descendants under the node itself (as the Matroska engine does
// for master elements).
func readChildrenUntil(r *ioprim.Reader, root *tree.Node, visit func(node, parent *tree.Node) error) error {
	prev := root
	pos := root.PayloadOffset
	for pos <= root.End() {
		node, err := readElementHeader(r, pos)
		if err != nil {
			return err
		}
		if node.End() > root.End() {
			return fmt.Errorf("%w at offset %d", ErrFileEndedEarly, pos)
		}

		parent := tree.DiscoverParent(prev, pos)
		tree.AppendChild(parent, node)
		prev = node

		if err := visit(node, parent); err != nil {
			if errors.Is(err, errStopIteration) {
				return nil
			}
			return err
		}

		pos = node.End() + 1
		if err := r.SetPosition(pos); err != nil {
			return err
		}
	}
	return nil
}
