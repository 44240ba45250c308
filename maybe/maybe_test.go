package maybe_test

import (
	"testing"

	. "github.com/npillmayer/immutree/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	w := -1
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		w = 0
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMapAndGet(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, ok := Just(7).Map(double).Get(); !ok || v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d (%v)", v, ok)
	}
	if _, ok := Nothing[int]().Map(double).Get(); ok {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
	if !Of(3, false).IsNothing() || Of(3, true).IsNothing() {
		t.Error("expected Of to respect its flag")
	}
}

func TestMaybeAndThen(t *testing.T) {
	positive := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if b, ok := AndThen(positive, Just(7)).Get(); !ok || !b {
		t.Error("expected Just(7) |> andThen(positive) to be true, isn't")
	}
	if !AndThen(positive, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(positive) to be Nothing")
	}
	if !AndThen(positive, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(positive) to be Nothing")
	}
}
