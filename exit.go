// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "fmt"

type exitKind uint8

const (
	exitSuccessKind exitKind = iota
	exitFailureKind
)

// Exit is the terminal value of interpretation: either a success value or
// a failure Cause.
type Exit[E, A any] struct {
	kind  exitKind
	value A
	cause Cause[E]
}

// Success constructs a successful Exit.
func Success[E, A any](a A) Exit[E, A] {
	return Exit[E, A]{kind: exitSuccessKind, value: a}
}

// Failure constructs a failing Exit carrying c.
func Failure[E, A any](c Cause[E]) Exit[E, A] {
	return Exit[E, A]{kind: exitFailureKind, cause: c}
}

// IsSuccess reports whether x completed successfully.
func (x Exit[E, A]) IsSuccess() bool { return x.kind == exitSuccessKind }

// IsFailure reports whether x ended in failure, expected or defect.
func (x Exit[E, A]) IsFailure() bool { return x.kind == exitFailureKind }

// GetSuccess returns the success value and true, or the zero value and
// false.
func (x Exit[E, A]) GetSuccess() (A, bool) {
	if x.kind == exitSuccessKind {
		return x.value, true
	}
	var zero A
	return zero, false
}

// GetCause returns the failure Cause and true, or the zero Cause and
// false.
func (x Exit[E, A]) GetCause() (Cause[E], bool) {
	if x.kind == exitFailureKind {
		return x.cause, true
	}
	var zero Cause[E]
	return zero, false
}

// ExitMap transforms a successful value; failures pass through unchanged.
func ExitMap[E, A, B any](x Exit[E, A], f func(A) B) Exit[E, B] {
	if x.kind == exitSuccessKind {
		return Success[E, B](f(x.value))
	}
	return Failure[E, B](x.cause)
}

// ExitMapError transforms the expected payload of a failing Exit; a
// defect and a successful Exit pass through unchanged.
func ExitMapError[E, E2, A any](x Exit[E, A], g func(E) E2) Exit[E2, A] {
	if x.kind == exitSuccessKind {
		return Success[E2, A](x.value)
	}
	return Failure[E2, A](CauseMap(x.cause, g))
}

// GetOrElse projects the success value out of x, or applies f to the
// cause otherwise.
func GetOrElse[E, A any](x Exit[E, A], f func(Cause[E]) A) A {
	if x.kind == exitSuccessKind {
		return x.value
	}
	return f(x.cause)
}

// GetOrNull projects the success value and true, or the zero value and
// false.
func GetOrNull[E, A any](x Exit[E, A]) (A, bool) {
	return x.GetSuccess()
}

// FoldExit is the total eliminator over an Exit.
func FoldExit[E, A, B any](x Exit[E, A], onExpected func(E) B, onDefect func(any) B, onSuccess func(A) B) B {
	if x.kind == exitSuccessKind {
		return onSuccess(x.value)
	}
	if e, ok := x.cause.GetExpected(); ok {
		return onExpected(e)
	}
	d, _ := x.cause.GetDefect()
	return onDefect(d)
}

// UnhandledFailureError wraps an expected failure that is neither an
// error nor a defect, for callers of [GetOrThrow] who need a throwable
// value.
type UnhandledFailureError[E any] struct {
	Cause Cause[E]
}

func (e *UnhandledFailureError[E]) Error() string {
	if v, ok := e.Cause.GetExpected(); ok {
		return fmt.Sprintf("effect: unhandled failure: %v", v)
	}
	d, _ := e.Cause.GetDefect()
	return fmt.Sprintf("effect: unhandled defect: %v", d)
}

// GetOrThrow projects the success value out of x. If x failed with a
// defect, the original panic value is re-thrown; if the expected failure
// is itself an error, it is re-thrown directly; otherwise it is wrapped
// in an *UnhandledFailureError and thrown.
func GetOrThrow[E, A any](x Exit[E, A]) A {
	if v, ok := x.GetSuccess(); ok {
		return v
	}
	cause, _ := x.GetCause()
	if d, ok := cause.GetDefect(); ok {
		panic(d)
	}
	e, _ := cause.GetExpected()
	if err, ok := any(e).(error); ok {
		panic(err)
	}
	panic(&UnhandledFailureError[E]{Cause: cause})
}
