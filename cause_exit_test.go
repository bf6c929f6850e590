// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/effect"
)

func TestCauseExpected(t *testing.T) {
	c := effect.Expected("boom")
	if !c.IsExpected() || c.IsPanic() {
		t.Fatalf("expected cause misclassified: %+v", c)
	}
	v, ok := c.GetExpected()
	if !ok || v != "boom" {
		t.Fatalf("GetExpected() = %q, %v", v, ok)
	}
	if fs := c.Failures(); len(fs) != 1 || fs[0] != "boom" {
		t.Fatalf("Failures() = %v", fs)
	}
	if ds := c.Defects(); len(ds) != 0 {
		t.Fatalf("Defects() = %v, want empty", ds)
	}
}

func TestCausePanic(t *testing.T) {
	c := effect.Panic[string]("kaboom")
	if !c.IsPanic() || c.IsExpected() {
		t.Fatalf("panic cause misclassified: %+v", c)
	}
	d, ok := c.GetDefect()
	if !ok || d != "kaboom" {
		t.Fatalf("GetDefect() = %v, %v", d, ok)
	}
	if _, ok := c.GetExpected(); ok {
		t.Fatal("GetExpected() should fail on a panic cause")
	}
}

func TestCauseMap(t *testing.T) {
	c := effect.Expected(3)
	mapped := effect.CauseMap(c, func(n int) string { return "n" })
	if v, _ := mapped.GetExpected(); v != "n" {
		t.Fatalf("CauseMap on expected = %q", v)
	}
	p := effect.Panic[int]("d")
	mappedPanic := effect.CauseMap(p, func(n int) string { return "n" })
	if !mappedPanic.IsPanic() {
		t.Fatal("CauseMap must leave a panic cause a panic")
	}
	if d, _ := mappedPanic.GetDefect(); d != "d" {
		t.Fatalf("CauseMap must preserve the defect payload, got %v", d)
	}
}

func TestExitSuccessFailure(t *testing.T) {
	s := effect.Success[string, int](7)
	if !s.IsSuccess() || s.IsFailure() {
		t.Fatal("Success misclassified")
	}
	if v, ok := s.GetSuccess(); !ok || v != 7 {
		t.Fatalf("GetSuccess() = %d, %v", v, ok)
	}

	f := effect.Failure[string, int](effect.Expected("nope"))
	if !f.IsFailure() || f.IsSuccess() {
		t.Fatal("Failure misclassified")
	}
	if _, ok := f.GetSuccess(); ok {
		t.Fatal("GetSuccess() should fail on a Failure exit")
	}
}

func TestExitMapAndMapError(t *testing.T) {
	s := effect.Success[string, int](2)
	mapped := effect.ExitMap(s, func(n int) int { return n * 10 })
	if v, _ := mapped.GetSuccess(); v != 20 {
		t.Fatalf("ExitMap = %d", v)
	}

	f := effect.Failure[string, int](effect.Expected("e"))
	notMapped := effect.ExitMap(f, func(n int) int { return n * 10 })
	if !notMapped.IsFailure() {
		t.Fatal("ExitMap must not touch a failing Exit")
	}

	remapped := effect.ExitMapError(f, func(s string) int { return len(s) })
	c, _ := remapped.GetCause()
	if v, _ := c.GetExpected(); v != 1 {
		t.Fatalf("ExitMapError = %d", v)
	}
}

func TestGetOrElseAndGetOrNull(t *testing.T) {
	s := effect.Success[string, int](5)
	if v := effect.GetOrElse(s, func(effect.Cause[string]) int { return -1 }); v != 5 {
		t.Fatalf("GetOrElse on success = %d", v)
	}
	f := effect.Failure[string, int](effect.Expected("e"))
	if v := effect.GetOrElse(f, func(effect.Cause[string]) int { return -1 }); v != -1 {
		t.Fatalf("GetOrElse on failure = %d", v)
	}
	if v, ok := effect.GetOrNull(f); ok || v != 0 {
		t.Fatalf("GetOrNull on failure = %d, %v", v, ok)
	}
}

func TestFoldExit(t *testing.T) {
	classify := func(x effect.Exit[string, int]) string {
		return effect.FoldExit(x,
			func(e string) string { return "expected:" + e },
			func(any) string { return "defect" },
			func(a int) string { return "success" },
		)
	}
	if got := classify(effect.Success[string, int](1)); got != "success" {
		t.Fatalf("classify success = %q", got)
	}
	if got := classify(effect.Failure[string, int](effect.Expected("e"))); got != "expected:e" {
		t.Fatalf("classify expected = %q", got)
	}
	if got := classify(effect.Failure[string, int](effect.Panic[string]("d"))); got != "defect" {
		t.Fatalf("classify defect = %q", got)
	}
}

func TestGetOrThrowSuccess(t *testing.T) {
	if v := effect.GetOrThrow(effect.Success[string, int](9)); v != 9 {
		t.Fatalf("GetOrThrow(success) = %d", v)
	}
}

func TestGetOrThrowExpectedErrorIsRethrownDirectly(t *testing.T) {
	sentinel := errors.New("sentinel")
	defer func() {
		r := recover()
		if r != sentinel {
			t.Fatalf("GetOrThrow should re-panic the exact error value, got %v", r)
		}
	}()
	effect.GetOrThrow(effect.Failure[error, int](effect.Expected(sentinel)))
}

func TestGetOrThrowExpectedNonErrorIsWrapped(t *testing.T) {
	defer func() {
		r := recover()
		uf, ok := r.(*effect.UnhandledFailureError[string])
		if !ok {
			t.Fatalf("expected *UnhandledFailureError[string], got %T (%v)", r, r)
		}
		if uf.Error() == "" {
			t.Fatal("Error() must not be empty")
		}
	}()
	effect.GetOrThrow(effect.Failure[string, int](effect.Expected("plain string failure")))
}

func TestGetOrThrowDefectRethrowsRawPanic(t *testing.T) {
	defer func() {
		r := recover()
		if r != "raw defect" {
			t.Fatalf("GetOrThrow(defect) should re-panic the raw defect, got %v", r)
		}
	}()
	effect.GetOrThrow(effect.Failure[string, int](effect.Panic[string]("raw defect")))
}
