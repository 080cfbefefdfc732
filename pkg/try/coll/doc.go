// Package coll provides safe positional and keyed access to maps, slices
// and sequences. Every accessor returns a Result carrying either the
// element or a CollectionError that records the key or index that missed.
//
// Highlights:
// - Get: map lookup without the two-value comma-ok dance
// - At: slice indexing without out-of-range panics
// - First/Last: head and tail of a slice
// - FirstSeq/LastSeq: the same for iter.Seq sequences
//
// Nil maps, nil slices and nil sequences are treated as empty, so a
// failure here is always a missing element, never a panic.
package coll
