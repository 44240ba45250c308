package immutree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/immutree"
)

func TestOrdered(t *testing.T) {
	cmp := immutree.Ordered[int]()
	if cmp(3, 7) >= 0 || cmp(7, 3) <= 0 || cmp(5, 5) != 0 {
		t.Errorf("expected natural ordering for ints, got %d | %d | %d", cmp(3, 7), cmp(7, 3), cmp(5, 5))
	}
	scmp := immutree.Ordered[string]()
	if scmp("apple", "banana") >= 0 {
		t.Error("expected apple < banana")
	}
}

func TestFromGreater(t *testing.T) {
	// order strings by length only
	cmp := immutree.FromGreater(func(a, b string) bool {
		return len(a) > len(b)
	})
	if cmp("abc", "de") <= 0 {
		t.Errorf("expected 'abc' > 'de', cmp = %d", cmp("abc", "de"))
	}
	if cmp("ab", "cd") != 0 {
		t.Errorf("expected strings of equal length to compare equal, cmp = %d", cmp("ab", "cd"))
	}
}

func TestReverse(t *testing.T) {
	cmp := immutree.Ordered[int]().Reverse()
	if cmp(3, 7) <= 0 {
		t.Errorf("expected reversed ordering to have 3 > 7, cmp = %d", cmp(3, 7))
	}
}

func TestMinMax(t *testing.T) {
	cmp := immutree.Ordered[int]()
	if immutree.Max(3, 7, cmp) != 7 || immutree.Min(3, 7, cmp) != 3 {
		t.Error("expected max(3,7) = 7 and min(3,7) = 3")
	}
	fold := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	if x := immutree.Max("A", "a", fold); x != "A" {
		t.Errorf("expected Max to return first argument for equal values, is %q", x)
	}
	if x := immutree.Min("A", "a", fold); x != "a" {
		t.Errorf("expected Min to return second argument for equal values, is %q", x)
	}
}
