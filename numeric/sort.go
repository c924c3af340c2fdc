package numeric

import "sort"

// SortByIndex stable-sorts values in place according to the ascending
// order of the parallel keys slice. It panics if the two slices differ
// in length.
func SortByIndex[T any](values []T, keys []int) {
	n := len(values)
	if len(keys) != n {
		panic("numeric.SortByIndex: values and keys length mismatch")
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	out := make([]T, n)
	for newPos, oldPos := range idx {
		out[newPos] = values[oldPos]
	}
	copy(values, out)
}
