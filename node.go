// Package art implements an Adaptive Radix Tree: an in-memory ordered
// associative container mapping byte-comparable keys to values, with
// node layouts (node4/node16/node48/node256) that adapt to fan-out and
// a partial-key scheme that collapses single-child chains, so memory
// scales with the number of stored keys rather than the size of the
// key space.
package art

// Node is a tree node: either a Leaf or an inner node, never both. The
// zero value is neither -- use NewLeaf or the Tree façade to build one.
type Node[K Keyer, V any] struct {
	leaf  *Leaf[K, V]
	inner *inner[K, V]
}

// NewLeaf creates a new leaf node holding key and value.
func NewLeaf[K Keyer, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{leaf: newLeaf(key, value)}
}

func newInnerNode[K Keyer, V any](partial partialKey) *Node[K, V] {
	return &Node[K, V]{inner: newInner[K, V](partial)}
}

// IsLeaf reports whether n is a leaf node.
func (n *Node[K, V]) IsLeaf() bool { return n != nil && n.leaf != nil }

// Search looks up key, starting the match at depth bytes already
// consumed on the way to n. It returns the leaf and true if key is
// present in n's subtree.
func (n *Node[K, V]) Search(key []byte, depth int) (*Leaf[K, V], bool) {
	if n == nil {
		return nil, false
	}
	if n.leaf != nil {
		if n.leaf.matchKey(key) {
			return n.leaf, true
		}
		return nil, false
	}
	in := n.inner
	if !in.partial.matchKey(key, depth) {
		return nil, false
	}
	nextDepth := depth + in.partial.len
	child := in.childRef(byteAt(key, nextDepth))
	if child == nil {
		return nil, false
	}
	return child.Search(key, nextDepth+1)
}

// Insert stores value under key, starting at depth bytes already
// consumed to reach n. It reports whether a new leaf was created (false
// means an existing key's value was overwritten); the façade uses this
// to maintain its size counter. n itself may be transformed in place
// (a leaf splitting into an inner node, or an inner node's prefix
// splitting above a mismatch).
func (n *Node[K, V]) Insert(key K, value V, depth int) bool {
	keyBytes := key.Bytes()

	if n.leaf != nil {
		if n.leaf.matchKey(keyBytes) {
			n.leaf.Value = value
			return false
		}

		oldKeyBytes := n.leaf.Key.Bytes()
		prefixLen := longestCommonPrefix(keyBytes, oldKeyBytes, depth)
		newDepth := depth + prefixLen
		partial := newPartialKey(keyBytes[minInt(depth, len(keyBytes)):], prefixLen)

		newKeyByte := byteAt(keyBytes, newDepth)
		oldKeyByte := byteAt(oldKeyBytes, newDepth)

		oldLeafNode := &Node[K, V]{leaf: n.leaf}
		newLeafNode := NewLeaf[K, V](key, value)

		*n = Node[K, V]{inner: newInner[K, V](partial)}
		n.inner.addChild(newKeyByte, newLeafNode)
		n.inner.addChild(oldKeyByte, oldLeafNode)
		return true
	}

	in := n.inner
	if in.partial.len > 0 {
		prefixDiff := in.prefixMismatch(keyBytes, depth)
		if prefixDiff < in.partial.len {
			return n.splitPrefix(in, keyBytes, key, value, depth, prefixDiff)
		}
		depth += in.partial.len
	}

	childByte := byteAt(keyBytes, depth)
	if child := in.childMut(childByte); child != nil {
		return child.Insert(key, value, depth+1)
	}
	in.addChild(childByte, NewLeaf[K, V](key, value))
	return true
}

// splitPrefix handles the case where key diverges from in's compressed
// path partway through it: a new inner node is created above in,
// carrying the matched prefix, with in (shortened) and a fresh leaf for
// key as its two children.
func (n *Node[K, V]) splitPrefix(in *inner[K, V], keyBytes []byte, key K, value V, depth, prefixDiff int) bool {
	shift := prefixDiff + 1
	newPartial := newPartialKey(in.partial.data[:], prefixDiff)

	var discriminator byte
	if in.partial.len <= MaxPrefixLen {
		discriminator = in.partial.data[prefixDiff]
		in.partial.len -= shift
		copy(in.partial.data[:], in.partial.data[shift:])
	} else if leaf := in.minLeaf(); leaf != nil {
		leafBytes := leaf.Key.Bytes()
		discriminator = byteAt(leafBytes, depth+prefixDiff)
		in.partial.len -= shift
		refillLen := minInt(in.partial.len, MaxPrefixLen)
		start := depth + shift
		end := minInt(start+refillLen, len(leafBytes))
		copy(in.partial.data[:end-start], leafBytes[start:end])
	}

	oldNode := &Node[K, V]{inner: in}
	*n = *newInnerNode[K, V](newPartial)
	n.inner.addChild(discriminator, oldNode)
	n.inner.addChild(byteAt(keyBytes, depth+prefixDiff), NewLeaf[K, V](key, value))
	return true
}

// Delete removes the leaf matching key from n's subtree, starting at
// depth bytes already consumed. It returns the removed leaf node and
// true if key was present. n is an inner node (Delete is never called
// directly on a leaf; the façade handles a leaf root itself); it may
// shrink or collapse as a result.
func (n *Node[K, V]) Delete(key []byte, depth int) (*Node[K, V], bool) {
	if n == nil || n.leaf != nil {
		return nil, false
	}
	in := n.inner

	removed, ok := in.deleteRecursive(key, depth)
	if replacement := in.shrink(); replacement != nil {
		*n = *replacement
	}
	return removed, ok
}

func (in *inner[K, V]) deleteRecursive(key []byte, depth int) (*Node[K, V], bool) {
	if !in.partial.matchKey(key, depth) {
		return nil, false
	}
	depth += in.partial.len
	childByte := byteAt(key, depth)
	child := in.childRef(childByte)
	if child == nil {
		return nil, false
	}
	if child.inner != nil {
		return child.Delete(key, depth+1)
	}
	if !child.leaf.matchKey(key) {
		return nil, false
	}
	return in.delChild(childByte), true
}

// MinLeaf returns the lexicographically smallest leaf in n's subtree.
func (n *Node[K, V]) MinLeaf() (*Leaf[K, V], bool) {
	if n == nil {
		return nil, false
	}
	if n.leaf != nil {
		return n.leaf, true
	}
	return n.inner.idx.min().MinLeaf()
}

// MaxLeaf returns the lexicographically largest leaf in n's subtree.
func (n *Node[K, V]) MaxLeaf() (*Leaf[K, V], bool) {
	if n == nil {
		return nil, false
	}
	if n.leaf != nil {
		return n.leaf, true
	}
	return n.inner.idx.max().MaxLeaf()
}
