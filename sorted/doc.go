/*
Package sorted provides boundary searches over sorted slices for range
queries.

A standard binary search answers "is target here"; range queries also need
the boundary positions around a target: the first element >= the lower bound
(IndexGE) and the last element <= the upper bound (IndexLE). Range combines
both to slice out everything between two bounds, and IndexOf covers the
exact-match case.

All searches run in O(log n) on top of the standard library's binary search
primitives. The slice must already be sorted by the same comparison function
passed to the search; the kv package uses this to answer key-range lookups
over the host's key listing.
*/
package sorted
