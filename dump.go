package art

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// DumpString renders the tree structure as a string; see Dump.
func (t *Tree[K, V]) DumpString() string {
	w := new(strings.Builder)
	t.Dump(w)
	return w.String()
}

// Dump writes a recursive description of the tree's nodes to w: one
// line per node, giving its layout, partial key, and discriminator
// byte under its parent.
func (t *Tree[K, V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "### size(%d)\n", t.size)
	dumpRec[K, V](w, t.root, 0, 0)
}

func dumpRec[K Keyer, V any](w io.Writer, n *Node[K, V], discriminator byte, depth int) {
	if n == nil {
		return
	}

	indent := strings.Repeat(".", depth)

	if n.leaf != nil {
		fmt.Fprintf(w, "%s[%03d] leaf: %v -> %v\n", indent, discriminator, n.leaf.Key.Bytes(), n.leaf.Value)
		return
	}

	in := n.inner
	shown := minInt(in.partial.len, MaxPrefixLen)
	fmt.Fprintf(w, "%s[%03d] %s partial(len=%d): %v\n", indent, discriminator, in.idx.layoutName(), in.partial.len, in.partial.data[:shown])

	in.idx.each(func(b byte, child *Node[K, V]) {
		dumpRec[K, V](w, child, b, depth+1)
	})
}
