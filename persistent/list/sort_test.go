package list

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/immutree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted(t *testing.T) {
	cmp := immutree.Ordered[int]()
	assert.True(t, Sorted(Empty[int](), cmp))
	assert.True(t, Sorted(Of(1), cmp))
	assert.True(t, Sorted(Of(1, 2, 2, 5), cmp))
	assert.False(t, Sorted(Of(1, 3, 2), cmp))
}

func TestMergeSortSortedInputIsShared(t *testing.T) {
	l := Of(1, 2, 3)
	s, stats := MergeSort(l, immutree.Ordered[int]())
	require.True(t, l.head == s.head, "sorted input should be returned as is")
	assert.Equal(t, 2, stats.Comparisons)
	assert.Equal(t, 0, stats.Merges)
}

func TestMergeSort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutree.list")
	defer teardown()
	//
	l := Of(5, 3, 8, 1, 4, 7, 9, 2, 6)
	s, stats := MergeSort(l, immutree.Ordered[int]())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s.Slice())
	assert.Equal(t, "(5 3 8 1 4 7 9 2 6)", l.String(), "input must not change")
	assert.Greater(t, stats.Comparisons, 0)
	assert.Greater(t, stats.Merges, 0)
}

func TestMergeSortRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	cmp := immutree.Ordered[int]().Reverse()
	for round := 0; round < 20; round++ {
		n := rnd.Intn(200)
		values := make([]int, n)
		for i := range values {
			values[i] = rnd.Intn(50)
		}
		s, _ := MergeSort(Of(values...), cmp)
		require.Equal(t, n, s.Len())
		require.True(t, Sorted(s, cmp), "round %d: expected %s to be sorted", round, s)
	}
}

func TestMergeSortStatsAreIndependent(t *testing.T) {
	cmp := immutree.Ordered[int]()
	_, first := MergeSort(Of(3, 2, 1), cmp)
	_, second := MergeSort(Of(3, 2, 1), cmp)
	assert.Equal(t, first, second, "statistics must not accumulate across calls")
}
