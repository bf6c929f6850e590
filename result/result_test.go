// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/effect/result"
)

func TestOkErrAndIsOkIsErr(t *testing.T) {
	ok := result.Ok[string, int](3)
	if !ok.IsOk() || ok.IsErr() {
		t.Fatal("Ok misclassified")
	}
	errv := result.Err[string, int]("boom")
	if !errv.IsErr() || errv.IsOk() {
		t.Fatal("Err misclassified")
	}
}

func TestFromTuple(t *testing.T) {
	sentinel := errors.New("sentinel")
	if r := result.FromTuple(0, sentinel); !r.IsErr() {
		t.Fatal("FromTuple with a non-nil error should be Err")
	}
	if r := result.FromTuple(5, nil); !r.IsOk() {
		t.Fatal("FromTuple with a nil error should be Ok")
	}
}

func TestUnwrapAndWithDefault(t *testing.T) {
	ok := result.Ok[string, int](5)
	v, e := ok.Unwrap()
	if v != 5 || e != "" {
		t.Fatalf("Unwrap(ok) = %d, %q", v, e)
	}
	if got := result.Err[string, int]("e").WithDefault(9); got != 9 {
		t.Fatalf("WithDefault(err) = %d", got)
	}
	if got := ok.WithDefault(9); got != 5 {
		t.Fatalf("WithDefault(ok) = %d", got)
	}
}

func TestMapAndAndThen(t *testing.T) {
	mapped := result.Map(result.Ok[string, int](3), func(n int) int { return n * n })
	if v, _ := mapped.Unwrap(); v != 9 {
		t.Fatalf("Map = %d", v)
	}
	skipped := result.Map(result.Err[string, int]("e"), func(n int) int { return n * n })
	if !skipped.IsErr() {
		t.Fatal("Map must not touch an Err")
	}

	chained := result.AndThen(result.Ok[string, int](3), func(n int) result.Result[string, int] {
		return result.Ok[string, int](n + 1)
	})
	if v, _ := chained.Unwrap(); v != 4 {
		t.Fatalf("AndThen = %d", v)
	}
}

func TestMapErrorCatchErrorOrElse(t *testing.T) {
	mappedErr := result.MapError(result.Err[string, int]("e"), func(s string) int { return len(s) })
	_, e := mappedErr.Unwrap()
	if e != 1 {
		t.Fatalf("MapError = %d", e)
	}

	recovered := result.CatchError(result.Err[string, int]("e"), func(string) result.Result[string, int] {
		return result.Ok[string, int](0)
	})
	if !recovered.IsOk() {
		t.Fatal("CatchError should recover an Err")
	}

	fallback := result.OrElse(result.Err[string, int]("e"), result.Ok[string, int](7))
	if v, _ := fallback.Unwrap(); v != 7 {
		t.Fatalf("OrElse = %d", v)
	}
	kept := result.OrElse(result.Ok[string, int](1), result.Ok[string, int](7))
	if v, _ := kept.Unwrap(); v != 1 {
		t.Fatalf("OrElse must not replace an Ok, got %d", v)
	}
}

func TestFold(t *testing.T) {
	classify := func(r result.Result[string, int]) string {
		return result.Fold(r, func(e string) string { return "err:" + e }, func(int) string { return "ok" })
	}
	if got := classify(result.Ok[string, int](1)); got != "ok" {
		t.Fatalf("Fold(ok) = %q", got)
	}
	if got := classify(result.Err[string, int]("e")); got != "err:e" {
		t.Fatalf("Fold(err) = %q", got)
	}
}

func TestSequencePreservesOrderAndFailsFast(t *testing.T) {
	all := []result.Result[string, int]{result.Ok[string, int](1), result.Ok[string, int](2), result.Ok[string, int](3)}
	seq := result.Sequence(all)
	if !seq.IsOk() {
		t.Fatal("Sequence(all ok) should be Ok")
	}
	v, _ := seq.Unwrap()
	if len(v) != 3 || v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Fatalf("Sequence(all ok) = %v", v)
	}

	withErr := []result.Result[string, int]{result.Ok[string, int](1), result.Err[string, int]("bad"), result.Ok[string, int](3)}
	seqErr := result.Sequence(withErr)
	if !seqErr.IsErr() {
		t.Fatal("Sequence must fail when any element is Err")
	}
}

func TestPartition(t *testing.T) {
	items := []result.Result[string, int]{
		result.Ok[string, int](1),
		result.Err[string, int]("bad-1"),
		result.Ok[string, int](2),
		result.Err[string, int]("bad-2"),
	}
	values, errs := result.Partition(items)
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Fatalf("Partition values = %v", values)
	}
	if len(errs) != 2 || errs[0] != "bad-1" || errs[1] != "bad-2" {
		t.Fatalf("Partition errs = %v", errs)
	}
}

func TestContains(t *testing.T) {
	if !result.Contains(result.Ok[string, int](5), 5) {
		t.Fatal("Contains should match an equal Ok value")
	}
	if result.Contains(result.Ok[string, int](5), 6) {
		t.Fatal("Contains should not match a different Ok value")
	}
	if result.Contains(result.Err[string, int]("e"), 5) {
		t.Fatal("Contains should never match an Err")
	}
}
