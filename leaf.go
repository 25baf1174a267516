package art

import "bytes"

// Leaf is a terminal tree node: one key-value pair. Its key is
// immutable once created; only Value may be overwritten, by the
// inner-node caller that finds a matching key on insert.
type Leaf[K Keyer, V any] struct {
	Key   K
	Value V
}

func newLeaf[K Keyer, V any](key K, value V) *Leaf[K, V] {
	return &Leaf[K, V]{Key: key, Value: value}
}

// matchKey reports whether this leaf's key has the same byte view as
// key, the authoritative full-key comparison that confirms or refutes
// any optimistic partial-key match made on the way down to this leaf.
func (l *Leaf[K, V]) matchKey(key []byte) bool {
	return bytes.Equal(l.Key.Bytes(), key)
}
