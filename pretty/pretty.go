// Package pretty implements a depth-first debug dump of a decoded tree.Node,
// used by cmd/boxmldump and useful for ad-hoc inspection of either format's
// output. It is intentionally outside the spec's core decode/navigate
// surface (spec.md §1) — a developer convenience, not a parsed artifact.
package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepch/boxml/tree"
	"github.com/deepch/boxml/value"
)

// Options controls what Fprint includes in the dump.
type Options struct {
	// ShowOffsets prints offset/size alongside each node.
	ShowOffsets bool
	// ShowPayload prints the decoded Value.String() for every node whose
	// payload kind is not KindNone.
	ShowPayload bool
}

func printNode(out io.Writer, node *tree.Node, depth int, opts Options) {
	name := node.Name
	if name == "" {
		name = fmt.Sprintf("0x%X", node.TypeID)
	}

	fmt.Fprintf(out, "%s%s", strings.Repeat("  ", depth), name)

	if opts.ShowOffsets {
		fmt.Fprintf(out, " offset=%d size=%d", node.Offset, node.Size)
	}
	if node.Synthetic {
		fmt.Fprint(out, " (synthetic)")
	}
	if node.HasUUID {
		fmt.Fprintf(out, " uuid=%s", node.UUID)
	}
	if opts.ShowPayload && node.Payload.Kind != value.KindNone {
		fmt.Fprintf(out, " %s", node.Payload.String())
	}
	fmt.Fprintln(out)

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		printNode(out, child, depth+1, opts)
	}
}

// Fprint writes a depth-first dump of root to out.
func Fprint(out io.Writer, root *tree.Node, opts Options) {
	printNode(out, root, 0, opts)
}

// Print writes a depth-first dump of root to os.Stdout.
func Print(root *tree.Node, opts Options) {
	Fprint(os.Stdout, root, opts)
}
