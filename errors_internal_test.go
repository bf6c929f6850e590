// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"errors"
	"testing"
)

func TestPanicToErrorPassesThroughExistingErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	if got := panicToError(sentinel); got != sentinel {
		t.Fatalf("panicToError should pass an existing error through unchanged, got %v", got)
	}
}

func TestPanicToErrorWrapsNonErrorValues(t *testing.T) {
	err := panicToError("plain string")
	if err == nil || err.Error() == "" {
		t.Fatal("panicToError must wrap a non-error value into a non-empty error")
	}
}

func TestMustNoErrorPanicsOnNonNil(t *testing.T) {
	sentinel := errors.New("sentinel")
	defer func() {
		if r := recover(); r != sentinel {
			t.Fatalf("mustNoError should panic with the exact error, got %v", r)
		}
	}()
	mustNoError(sentinel)
}

func TestMustNoErrorIsANoOpOnNil(t *testing.T) {
	mustNoError(nil)
}
