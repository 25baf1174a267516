package art

import "encoding/binary"

// Keyer exposes a comparable byte view of a key, the external
// collaborator that lets the core operate on arbitrary key types. Two
// keys compare equal iff their byte views are equal, and Bytes must
// return the same bytes every time it's called for a given key value.
//
// The core assumes the set of stored keys' byte views is prefix-free;
// Terminated is the standard way to guarantee that externally.
type Keyer interface {
	Bytes() []byte
}

// StringKey is a Keyer over a plain string.
type StringKey string

func (k StringKey) Bytes() []byte { return []byte(k) }

// BytesKey is a Keyer over a raw byte slice.
type BytesKey []byte

func (k BytesKey) Bytes() []byte { return k }

// Uint64Key is a Keyer over a uint64, encoded big-endian so that byte
// order matches numeric order.
type Uint64Key uint64

func (k Uint64Key) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(k))
	return b[:]
}

// Terminated wraps a Keyer and appends a 0x00 sentinel byte to its byte
// view, making any set of keys whose byte views contain no 0x00 byte
// prefix-free: no such terminated key's byte view can be a strict
// prefix of another's, since the sentinel then appears only once, at
// the end. Keys that themselves contain 0x00 are not made prefix-free
// by the wrapper. Without this (or an equivalent external
// scheme), a key that is a strict prefix of another stored key makes
// tree behavior unspecified.
type Terminated[K Keyer] struct {
	Key K
}

func (t Terminated[K]) Bytes() []byte {
	src := t.Key.Bytes()
	out := make([]byte, len(src)+1)
	copy(out, src)
	out[len(src)] = 0
	return out
}
