// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/effect/result"
)

func TestComprehensionExtractsAndSucceeds(t *testing.T) {
	r := result.Comprehension(func(s *result.Scope[string]) result.Result[string, int] {
		a := result.Extract(s, result.Ok[string, int](2))
		b := result.Extract(s, result.Ok[string, int](3))
		return result.Ok[string, int](a + b)
	})
	v, _ := r.Unwrap()
	if v != 5 {
		t.Fatalf("comprehension result = %d, want 5", v)
	}
}

func TestComprehensionShortCircuitsOnError(t *testing.T) {
	ranAfter := false
	r := result.Comprehension(func(s *result.Scope[string]) result.Result[string, int] {
		_ = result.Extract(s, result.Err[string, int]("boom"))
		ranAfter = true
		return result.Ok[string, int](0)
	})
	if !r.IsErr() {
		t.Fatal("comprehension must fail when an Extract observes an Err")
	}
	if ranAfter {
		t.Fatal("comprehension body must stop at the failing Extract")
	}
	_, e := r.Unwrap()
	if e != "boom" {
		t.Fatalf("comprehension error = %q", e)
	}
}

func TestExtractAfterScopeClosedPanics(t *testing.T) {
	var leaked *result.Scope[string]
	result.Comprehension(func(s *result.Scope[string]) result.Result[string, int] {
		leaked = s
		return result.Ok[string, int](1)
	})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Extract on a leaked, closed scope must panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "used after its body returned") {
			t.Fatalf("panic message = %v, want a diagnostic naming the closed scope", r)
		}
	}()
	result.Extract(leaked, result.Ok[string, int](1))
}
