package coll

import (
	"fmt"
	"iter"

	"github.com/ib-77/try/pkg/try"
)

// Sentinel keys identifying which positional accessor failed on an empty
// sequence.
const (
	KeyFirst = "first"
	KeyLast  = "last"
)

func ok[T any](v T) try.Result[T, *try.CollectionError] {
	return try.Success[T, *try.CollectionError](v)
}

func fail[T any](err *try.CollectionError) try.Result[T, *try.CollectionError] {
	return try.Fail[T, *try.CollectionError](err)
}

// Get looks up key in m. A missing key, including any key in a nil map,
// is a CollectionError carrying the attempted key.
func Get[K comparable, V any](m map[K]V, key K) try.Result[V, *try.CollectionError] {
	v, found := m[key]
	if !found {
		return fail[V](try.NewCollectionError(fmt.Sprintf("key %v not found", key), key, nil))
	}
	return ok(v)
}

// At returns the element at index. Negative indexes and indexes at or past
// len(items), including any index into a nil slice, are a CollectionError
// carrying the attempted index.
func At[T any](items []T, index int) try.Result[T, *try.CollectionError] {
	if index < 0 || index >= len(items) {
		return fail[T](try.NewCollectionError(fmt.Sprintf("index %d out of range", index), index, nil))
	}
	return ok(items[index])
}

// First returns the first element; an empty or nil slice is a
// CollectionError keyed with the "first" sentinel.
func First[T any](items []T) try.Result[T, *try.CollectionError] {
	if len(items) == 0 {
		return fail[T](try.NewCollectionError("first element of an empty sequence", KeyFirst, nil))
	}
	return ok(items[0])
}

// Last returns the last element; an empty or nil slice is a
// CollectionError keyed with the "last" sentinel.
func Last[T any](items []T) try.Result[T, *try.CollectionError] {
	if len(items) == 0 {
		return fail[T](try.NewCollectionError("last element of an empty sequence", KeyLast, nil))
	}
	return ok(items[len(items)-1])
}

// FirstSeq returns the first value produced by seq, stopping the iterator
// immediately after it. Nil and empty sequences fail like First.
func FirstSeq[T any](seq iter.Seq[T]) try.Result[T, *try.CollectionError] {
	if seq == nil {
		return fail[T](try.NewCollectionError("first element of a nil sequence", KeyFirst, nil))
	}
	for v := range seq {
		return ok(v)
	}
	return fail[T](try.NewCollectionError("first element of an empty sequence", KeyFirst, nil))
}

// LastSeq drains seq and returns its final value. Nil and empty sequences
// fail like Last.
func LastSeq[T any](seq iter.Seq[T]) try.Result[T, *try.CollectionError] {
	if seq == nil {
		return fail[T](try.NewCollectionError("last element of a nil sequence", KeyLast, nil))
	}
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	if !found {
		return fail[T](try.NewCollectionError("last element of an empty sequence", KeyLast, nil))
	}
	return ok(last)
}
