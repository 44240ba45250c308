package list

import (
	"errors"
	"testing"

	"github.com/npillmayer/immutree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyList(t *testing.T) {
	l := Empty[int]()
	if l.Len() != 0 || !l.IsEmpty() {
		t.Errorf("expected empty list to have length 0, has %d", l.Len())
	}
	if !l.Head().IsNothing() {
		t.Error("expected head of empty list to be Nothing")
	}
	if !l.Pop().IsEmpty() {
		t.Error("expected pop of empty list to be empty")
	}
	if s := l.String(); s != "()" {
		t.Errorf("expected empty list to print as (), is %q", s)
	}
}

func TestPeekEmptyListFaults(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, immutree.ErrEmptyCollection) {
			t.Errorf("expected peek of empty list to panic with ErrEmptyCollection, got %v", r)
		}
	}()
	List[string]{}.Peek()
}

func TestLastEmptyListFaults(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, immutree.ErrEmptyCollection) {
			t.Errorf("expected Last() of empty list to panic with ErrEmptyCollection, got %v", r)
		}
	}()
	List[string]{}.Last()
}

func TestPrependShares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutree.list")
	defer teardown()
	//
	l1 := Of(2, 3)
	l2 := l1.Prepend(1)
	if l2.Len() != 3 || l1.Len() != 2 {
		t.Errorf("expected lengths 3 and 2, are %d and %d", l2.Len(), l1.Len())
	}
	if l2.head.next != l1.head {
		t.Error("expected prepended list to share its tail with the original")
	}
	if l2.Peek() != 1 || l2.Pop().Peek() != 2 {
		t.Errorf("expected l2 = (1 2 3), is %s", l2)
	}
	if l1.String() != "(2 3)" {
		t.Errorf("expected l1 to be unchanged (2 3), is %s", l1)
	}
}

func TestPopAndLength(t *testing.T) {
	l := Of(1, 2, 3, 4)
	for i := 4; i > 0; i-- {
		if l.Len() != i {
			t.Fatalf("expected length %d, is %d", i, l.Len())
		}
		if l.Peek() != 5-i {
			t.Errorf("expected head to be %d, is %d", 5-i, l.Peek())
		}
		l = l.Pop()
	}
	if !l.IsEmpty() {
		t.Errorf("expected list to be empty after 4 pops, is %s", l)
	}
}

func TestReverseAndLast(t *testing.T) {
	l := Of("a", "b", "c")
	r := l.Reverse()
	if r.String() != "(c b a)" {
		t.Errorf("expected reversed list (c b a), is %s", r)
	}
	if l.Last() != "c" || r.Last() != "a" {
		t.Errorf("expected last values c and a, are %s and %s", l.Last(), r.Last())
	}
}

func TestConcatAndAppend(t *testing.T) {
	a, b := Of(1, 2), Of(3, 4)
	c := a.Concat(b)
	if c.String() != "(1 2 3 4)" || c.Len() != 4 {
		t.Errorf("expected (1 2 3 4), is %s with length %d", c, c.Len())
	}
	if c.Pop().Pop().head != b.head {
		t.Error("expected concatenation to share the second list")
	}
	if x := a.Append(9); x.String() != "(1 2 9)" {
		t.Errorf("expected (1 2 9), is %s", x)
	}
	if a.String() != "(1 2)" {
		t.Errorf("expected a to be unchanged, is %s", a)
	}
	if Empty[int]().Concat(b).head != b.head || b.Concat(Empty[int]()).head != b.head {
		t.Error("expected concatenation with an empty list to return the other list")
	}
}

func TestFoldAndSlice(t *testing.T) {
	l := Of(1, 2, 3, 4)
	sum := Fold(l, 0, func(acc, n int) int { return acc + n })
	if sum != 10 {
		t.Errorf("expected sum of (1 2 3 4) to be 10, is %d", sum)
	}
	s := l.Slice()
	if len(s) != 4 || s[0] != 1 || s[3] != 4 {
		t.Errorf("expected slice [1 2 3 4], is %v", s)
	}
	var seen []int
	l.Each(func(n int) bool {
		seen = append(seen, n)
		return n < 2
	})
	if len(seen) != 2 {
		t.Errorf("expected Each to stop after 2 values, saw %v", seen)
	}
}
