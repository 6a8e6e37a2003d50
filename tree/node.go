// Package tree implements the generic stream-to-tree decoder core shared
// conceptually between the bmff and ebml packages: a Node type carrying the
// offset/size/payload-range invariants common to both formats, parent
// discovery by ancestor-offset walking, sibling chaining, and read-only
// navigation (find-by-type, get-value-by-name).
package tree

import (
	"github.com/google/uuid"

	"github.com/deepch/boxml/value"
)

// Node is a single box (BMFF) or element (EBML). It carries no destructor:
// Go's collector owns node lifetime, so there is no analogue of a post-order
// free pass — once a tree is returned from parse it is immutable and safe to
// drop in any order.
type Node struct {
	Offset        int64
	Size          int64
	PayloadOffset int64
	PayloadSize   int64

	TypeID uint64 // FourCC (BMFF) or element ID with marker bits (EBML)
	Name   string // human-readable type name, set by the owning decoder

	HasUUID bool
	UUID    uuid.UUID

	Level int

	Parent      *Node
	NextSibling *Node
	FirstChild  *Node

	Payload value.Value

	// Synthetic marks nodes injected by the decoder rather than read from
	// the stream (the file-covering root, and BMFF's default ftyp).
	Synthetic bool
}

// End returns the inclusive last byte offset of the node, offset+size-1. A
// zero-size node (the synthetic ftyp) reports End equal to its Offset.
func (n *Node) End() int64 {
	if n.Size == 0 {
		return n.Offset
	}
	return n.Offset + n.Size - 1
}

// NewRoot builds the synthetic file-covering root required by both formats
// (spec invariant: it exists covering [0, file_size-1] and is its own
// parent).
func NewRoot(fileSize int64) *Node {
	root := &Node{
		Offset:        0,
		Size:          fileSize,
		PayloadOffset: 0,
		PayloadSize:   fileSize,
		Level:         0,
		Synthetic:     true,
		Name:          "root",
	}
	root.Parent = root
	return root
}

// AppendChild links child under parent: first as FirstChild if parent has
// none yet, otherwise walking the NextSibling chain to its tail. This is
// the one piece of tree surgery both bmff and ebml perform identically
// while walking their respective streams.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Level = parent.Level + 1
	if parent.FirstChild == nil {
		parent.FirstChild = child
		return
	}
	tail := parent.FirstChild
	for tail.NextSibling != nil {
		tail = tail.NextSibling
	}
	tail.NextSibling = child
}

// DiscoverParent implements the ancestor-offset walk of spec §4.5/§4.8: from
// the previously parsed node, walk ancestor links until one is found whose
// End covers the given offset. This correctly handles containers that close
// several levels at once without an explicit stack.
//
// A zero-size synthetic node (the injected default ftyp) never qualifies as
// a parent even when its End happens to coincide with offset — it is a leaf
// marker, not a container, so the walk skips straight past it.
func DiscoverParent(prev *Node, offset int64) *Node {
	cur := prev
	for cur.Parent != cur && (cur.Size == 0 || cur.End() < offset) {
		cur = cur.Parent
	}
	return cur
}

// FindByType performs a depth-first search from root, appending every node
// whose TypeID matches id, in encounter order (spec §6's
// find_element_by_type).
func FindByType(root *Node, id uint64) []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.TypeID == id {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// Navigate walks a dotted path of type names (spec §6's get_value_by_name),
// starting at node's children, and returns the terminal node's payload if
// every hop resolves to a child with that Name. Each hop takes the first
// matching child in sibling order; later children with the same Name are
// not searched. It returns ok=false as soon as a hop has no matching child.
func Navigate(node *Node, path []string) (value.Value, bool) {
	cur := node
	for _, hop := range path {
		var next *Node
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Name == hop {
				next = c
				break
			}
		}
		if next == nil {
			return value.Value{}, false
		}
		cur = next
	}
	return cur.Payload, true
}

// Walk performs a depth-first, read-only visit of the subtree rooted at
// node, calling fn with each node's depth measured from node's own Level.
// This is the contract the pretty-printer and similar external visitors
// rely on.
func Walk(node *Node, fn func(n *Node, depth int)) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		fn(n, depth)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth+1)
		}
	}
	walk(node, 0)
}
