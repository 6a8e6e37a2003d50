package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepch/boxml/value"
)

func TestNewRootIsOwnParent(t *testing.T) {
	root := NewRoot(1024)
	require.Equal(t, root, root.Parent)
	require.Equal(t, int64(0), root.Offset)
	require.Equal(t, int64(1023), root.End())
}

func TestAppendChildChainsSiblings(t *testing.T) {
	root := NewRoot(100)
	a := &Node{Offset: 0, Size: 10}
	b := &Node{Offset: 10, Size: 10}
	c := &Node{Offset: 20, Size: 10}

	AppendChild(root, a)
	AppendChild(root, b)
	AppendChild(root, c)

	require.Equal(t, a, root.FirstChild)
	require.Equal(t, b, a.NextSibling)
	require.Equal(t, c, b.NextSibling)
	require.Equal(t, 1, a.Level)
	require.Equal(t, root, a.Parent)
}

func TestDiscoverParentPopsMultipleLevels(t *testing.T) {
	root := NewRoot(1000)
	outer := &Node{Offset: 0, Size: 100}
	AppendChild(root, outer)
	inner := &Node{Offset: 0, Size: 20}
	AppendChild(outer, inner)

	// A sibling of outer, starting at offset 100, closes both inner and outer.
	parent := DiscoverParent(inner, 100)
	require.Equal(t, root, parent)
}

func TestDiscoverParentSkipsZeroSizeSyntheticNode(t *testing.T) {
	root := NewRoot(1000)
	synthetic := &Node{Offset: 0, Size: 0, Synthetic: true}
	AppendChild(root, synthetic)

	// A real node starting at the same offset as the synthetic marker must
	// land under root, not under the zero-size synthetic leaf.
	parent := DiscoverParent(synthetic, 0)
	require.Equal(t, root, parent)
}

func TestFindByType(t *testing.T) {
	root := NewRoot(1000)
	a := &Node{Offset: 0, Size: 10, TypeID: 1}
	b := &Node{Offset: 10, Size: 10, TypeID: 2}
	c := &Node{Offset: 20, Size: 10, TypeID: 1}
	AppendChild(root, a)
	AppendChild(root, b)
	AppendChild(root, c)

	matches := FindByType(root, 1)
	require.Equal(t, []*Node{a, c}, matches)
}

func TestNavigateResolvesDottedPath(t *testing.T) {
	root := NewRoot(1000)
	moov := &Node{Offset: 0, Size: 100, Name: "moov"}
	AppendChild(root, moov)
	mvhd := &Node{Offset: 0, Size: 10, Name: "mvhd", Payload: value.Value{Kind: value.KindUnsigned, Unsigned: 600}}
	AppendChild(moov, mvhd)

	v, ok := Navigate(root, []string{"moov", "mvhd"})
	require.True(t, ok)
	require.Equal(t, uint64(600), v.Unsigned)

	_, ok = Navigate(root, []string{"moov", "missing"})
	require.False(t, ok)
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	root := NewRoot(1000)
	a := &Node{Offset: 0, Size: 10, Name: "a"}
	AppendChild(root, a)
	b := &Node{Offset: 0, Size: 5, Name: "b"}
	AppendChild(a, b)

	var visited []string
	var depths []int
	Walk(root, func(n *Node, depth int) {
		visited = append(visited, n.Name)
		depths = append(depths, depth)
	})

	require.Equal(t, []string{"root", "a", "b"}, visited)
	require.Equal(t, []int{0, 1, 2}, depths)
}
