// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "fmt"

// panicToError adapts a recovered panic value into an error, preserving
// it unwrapped when it already is one.
func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("effect: recovered panic: %v", r)
}

// mustNoError panics on a non-nil error. It is used at the few points
// where a primitive that declares no expected failure channel (an
// EffectTotal thunk backing a resource-management operation) calls into
// code that can still return a plain Go error; the interpreter's own
// defensive recovery reclassifies the panic as a defect, which is exactly
// the outcome an infrastructure failure inside a resource-management step
// should have.
func mustNoError(err error) {
	if err != nil {
		panic(err)
	}
}
