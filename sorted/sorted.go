package sorted

import (
	"slices"
	"sort"
)

// IndexGE returns the index of the first element of s greater than or equal
// to target. ok is false when every element is below target; the returned
// index is then len(s), the position target would be inserted at.
//
// cmp must order elements the same way s is sorted: negative when a < b,
// zero when equal, positive when a > b.
func IndexGE[E any](s []E, target E, cmp func(a, b E) int) (int, bool) {
	i, _ := slices.BinarySearchFunc(s, target, cmp)
	return i, i < len(s)
}

// IndexLE returns the index of the last element of s less than or equal to
// target. ok is false when every element is above target; the returned index
// is then -1.
func IndexLE[E any](s []E, target E, cmp func(a, b E) int) (int, bool) {
	i := sort.Search(len(s), func(i int) bool { return cmp(s[i], target) > 0 })
	return i - 1, i > 0
}

// IndexOf returns the index of an element equal to target. When no element
// matches, ok is false and the returned index is the insertion position.
func IndexOf[E any](s []E, target E, cmp func(a, b E) int) (int, bool) {
	return slices.BinarySearchFunc(s, target, cmp)
}

// Range returns the elements of s within [lo, hi] inclusive. The result
// aliases s; callers that mutate it mutate s. An empty range yields nil.
func Range[E any](s []E, lo, hi E, cmp func(a, b E) int) []E {
	start, ok := IndexGE(s, lo, cmp)
	if !ok {
		return nil
	}

	end, ok := IndexLE(s, hi, cmp)
	if !ok || end < start {
		return nil
	}

	return s[start : end+1]
}
