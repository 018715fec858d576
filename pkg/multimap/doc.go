// Package multimap implements an in-memory, integer-keyed multimap backed by a
// cache-conscious B-tree. Each key owns a contiguous buffer of values grown in
// whole cache-line increments, so the values attached to one key stream through
// the cache during traversal instead of being scattered across the heap.
//
// The tree is not safe for concurrent use. Concurrent readers are fine on an
// otherwise quiescent tree provided the caller has established memory
// visibility; concurrent writers, or a writer racing a reader, are not.
package multimap
