package list

import "github.com/npillmayer/immutree"

// SortStats reports the work done by a call to MergeSort.
type SortStats struct {
	Comparisons int // number of calls to the comparator
	Merges      int // number of merge steps
}

// Sorted is a predicate: is l in non-decreasing order with respect to cmp?
func Sorted[T any](l List[T], cmp immutree.Comparator[T]) bool {
	ok, _ := sorted(l, cmp)
	return ok
}

// sorted checks the order of l and returns the number of comparisons it took.
func sorted[T any](l List[T], cmp immutree.Comparator[T]) (bool, int) {
	n := 0
	for c := l.head; c != nil && c.next != nil; c = c.next {
		n++
		if cmp(c.value, c.next.value) > 0 {
			return false, n
		}
	}
	return true, n
}

// MergeSort returns a copy of l sorted in non-decreasing order, together with
// statistics about the sort. If l is already sorted, l itself is returned.
func MergeSort[T any](l List[T], cmp immutree.Comparator[T]) (List[T], SortStats) {
	var stats SortStats
	r := mergeSort(l, cmp, &stats)
	tracer().Debugf("merge sort of %d values: %d comparisons, %d merges", l.Len(),
		stats.Comparisons, stats.Merges)
	return r, stats
}

func mergeSort[T any](l List[T], cmp immutree.Comparator[T], stats *SortStats) List[T] {
	ok, n := sorted(l, cmp)
	stats.Comparisons += n
	if ok {
		return l
	}
	a, b := split(l)
	a = mergeSort(a, cmp, stats)
	b = mergeSort(b, cmp, stats)
	stats.Merges++
	return merge(a, b, cmp, stats)
}

// split deals the values of l alternately onto two lists.
// Their lengths differ by at most one.
func split[T any](l List[T]) (List[T], List[T]) {
	var a, b List[T]
	for c := l.head; c != nil; c = c.next {
		a, b = b.Prepend(c.value), a
	}
	return a, b
}

func merge[T any](a, b List[T], cmp immutree.Comparator[T], stats *SortStats) List[T] {
	var acc List[T] // merged prefix, in reverse order
	for !a.IsEmpty() && !b.IsEmpty() {
		stats.Comparisons++
		if cmp(a.head.value, b.head.value) <= 0 {
			acc, a = acc.Prepend(a.head.value), a.Pop()
		} else {
			acc, b = acc.Prepend(b.head.value), b.Pop()
		}
	}
	r := a
	if a.IsEmpty() {
		r = b
	}
	for c := acc.head; c != nil; c = c.next {
		r = r.Prepend(c.value)
	}
	return r
}
