// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"time"

	"code.hybscloud.com/effect/result"
)

// Map applies a pure function to a successful value. It does not observe
// failures.
func Map[R, E, A, B any](m Effect[R, E, A], f func(A) B) Effect[R, E, B] {
	return FlatMap(m, func(a A) Effect[R, E, B] { return Ok[R, E, B](f(a)) })
}

// MapError transforms an expected failure; a defect passes through
// unchanged.
func MapError[R, E, E2, A any](m Effect[R, E, A], g func(E) E2) Effect[R, E2, A] {
	return FoldCauseM(m,
		func(a A) Effect[R, E2, A] { return Ok[R, E2, A](a) },
		func(c Cause[E]) Effect[R, E2, A] { return Halt[R, E2, A](CauseMap(c, g)) },
	)
}

// AndThen sequences m then k. Synonym for [FlatMap].
func AndThen[R, E, A, B any](m Effect[R, E, A], k func(A) Effect[R, E, B]) Effect[R, E, B] {
	return FlatMap(m, k)
}

// FoldM is [FoldCauseM] restricted to expected failures: a defect is
// re-raised unchanged rather than reaching onFailure. This is the
// building block for [Recover] and every other combinator that must not
// silently reclassify a defect as an expected failure.
func FoldM[R, E, A, B any](m Effect[R, E, A], onFailure func(E) Effect[R, E, B], onSuccess func(A) Effect[R, E, B]) Effect[R, E, B] {
	return FoldCauseM(m, onSuccess, func(c Cause[E]) Effect[R, E, B] {
		if e, ok := c.GetExpected(); ok {
			return onFailure(e)
		}
		d, _ := c.GetDefect()
		return Halt[R, E, B](Panic[E](d))
	})
}

// Recover handles an expected failure with h, leaving a defect untouched.
// The specification's source historically offered this under two names,
// "recover" and "catchError"; this port keeps only one.
func Recover[R, E, A any](m Effect[R, E, A], h func(E) Effect[R, E, A]) Effect[R, E, A] {
	return FoldM(m, h, func(a A) Effect[R, E, A] { return Ok[R, E, A](a) })
}

// RecoverCause is [Recover]'s cause-aware counterpart: h handles the whole
// Cause, expected failure or defect alike, the same visibility [FoldCauseM]
// itself has. This is the "recoverCause" the specification's source names
// alongside foldCauseM as the only operations that observe a defect.
func RecoverCause[R, E, A any](m Effect[R, E, A], h func(Cause[E]) Effect[R, E, A]) Effect[R, E, A] {
	return FoldCauseM(m, func(a A) Effect[R, E, A] { return Ok[R, E, A](a) }, h)
}

// Attempt turns m into an effect that always succeeds with a
// [result.Result], erasing the expected failure channel to [Nothing]. A
// defect still propagates unchanged; callers who need to observe defects
// must use [FoldCauseM] directly rather than Attempt.
func Attempt[R, E, A any](m Effect[R, E, A]) Effect[R, Nothing, result.Result[E, A]] {
	return FoldCauseM(m,
		func(a A) Effect[R, Nothing, result.Result[E, A]] { return Ok[R, Nothing, result.Result[E, A]](result.Ok[E, A](a)) },
		func(c Cause[E]) Effect[R, Nothing, result.Result[E, A]] {
			if e, ok := c.GetExpected(); ok {
				return Ok[R, Nothing, result.Result[E, A]](result.Err[E, A](e))
			}
			d, _ := c.GetDefect()
			return Halt[R, Nothing, result.Result[E, A]](Panic[Nothing](d))
		},
	)
}

// Flip swaps the success and expected-failure channels of m. A defect
// passes through unchanged.
func Flip[R, E, A any](m Effect[R, E, A]) Effect[R, A, E] {
	return FoldCauseM(m,
		func(a A) Effect[R, A, E] { return Fail[R, A, E](a) },
		func(c Cause[E]) Effect[R, A, E] {
			if e, ok := c.GetExpected(); ok {
				return Ok[R, A, E](e)
			}
			d, _ := c.GetDefect()
			return Halt[R, A, E](Panic[A](d))
		},
	)
}

// RefineOrDie narrows an effect whose declared failure is a host error:
// when predicate matches the error's value, it is kept as an expected
// failure of the narrower type E; otherwise it is reclassified as a
// defect, which is the Go-native rendition of "re-thrown from the
// interpreter, aborting the run" for a language without exceptions.
func RefineOrDie[R, E, A any](m Effect[R, error, A], predicate func(error) (E, bool)) Effect[R, E, A] {
	return FoldCauseM(m,
		func(a A) Effect[R, E, A] { return Ok[R, E, A](a) },
		func(c Cause[error]) Effect[R, E, A] {
			if e, ok := c.GetExpected(); ok {
				if refined, matches := predicate(e); matches {
					return Fail[R, E, A](refined)
				}
				return Halt[R, E, A](Panic[E](e))
			}
			d, _ := c.GetDefect()
			return Halt[R, E, A](Panic[E](d))
		},
	)
}

// OrDie converts every expected failure of m into a defect, yielding an
// effect whose declared failure channel is [Nothing].
func OrDie[R, A any](m Effect[R, error, A]) Effect[R, Nothing, A] {
	return FoldCauseM(m,
		func(a A) Effect[R, Nothing, A] { return Ok[R, Nothing, A](a) },
		func(c Cause[error]) Effect[R, Nothing, A] {
			if e, ok := c.GetExpected(); ok {
				return Halt[R, Nothing, A](Panic[Nothing](e))
			}
			d, _ := c.GetDefect()
			return Halt[R, Nothing, A](Panic[Nothing](d))
		},
	)
}

// ZipWith sequences left then right, combining their values with f. It
// fails eagerly on the first expected failure of left, otherwise on a
// failure of right.
func ZipWith[R, E, A, B, C any](left Effect[R, E, A], right Effect[R, E, B], f func(A, B) C) Effect[R, E, C] {
	return FlatMap(left, func(a A) Effect[R, E, C] {
		return Map(right, func(b B) C { return f(a, b) })
	})
}

// Zip sequences left then right into a pair.
func Zip[R, E, A, B any](left Effect[R, E, A], right Effect[R, E, B]) Effect[R, E, result.Tuple2[A, B]] {
	return ZipWith(left, right, func(a A, b B) result.Tuple2[A, B] {
		return result.Tuple2[A, B]{First: a, Second: b}
	})
}

// Collect sequences effects left to right, short-circuiting on the first
// failure. The resulting slice preserves input order on success.
func Collect[R, E, A any](effects []Effect[R, E, A]) Effect[R, E, []A] {
	results := make([]A, len(effects))
	var build func(i int) Effect[R, E, []A]
	build = func(i int) Effect[R, E, []A] {
		if i >= len(effects) {
			return Ok[R, E, []A](results)
		}
		return FlatMap(effects[i], func(a A) Effect[R, E, []A] {
			results[i] = a
			return build(i + 1)
		})
	}
	return build(0)
}

// Sequence is a synonym for [Collect].
func Sequence[R, E, A any](effects []Effect[R, E, A]) Effect[R, E, []A] {
	return Collect(effects)
}

// Traverse maps f over items and sequences the results. It satisfies
// Traverse(items, f) ≡ Collect(Map(items, f)) by construction, preserving
// the same left-to-right short-circuit order as [Collect].
func Traverse[R, E, A, B any](items []A, f func(A) Effect[R, E, B]) Effect[R, E, []B] {
	effects := make([]Effect[R, E, B], len(items))
	for i, item := range items {
		effects[i] = f(item)
	}
	return Collect(effects)
}

// FailOn succeeds with an empty struct unless pred holds, in which case
// it fails with e().
func FailOn[R, E any](pred bool, e func() E) Effect[R, E, struct{}] {
	if pred {
		return Fail[R, E, struct{}](e())
	}
	return Ok[R, E, struct{}](struct{}{})
}

// FailOnNull fails with e() when v is nil, otherwise succeeds with *v.
// This is the sole surviving name for what the source additionally
// offered, deprecated, as "require".
func FailOnNull[R, E, A any](v *A, e func() E) Effect[R, E, A] {
	if v == nil {
		return Fail[R, E, A](e())
	}
	return Ok[R, E, A](*v)
}

// OnNullDefault substitutes dflt() when v is nil, otherwise succeeds with
// *v. Unlike [FailOnNull] it never fails.
func OnNullDefault[R, E, A any](v *A, dflt func() A) Effect[R, E, A] {
	if v == nil {
		return Ok[R, E, A](dflt())
	}
	return Ok[R, E, A](*v)
}

// Guard runs m and discards its value when cond holds, otherwise skips m
// entirely. Unlike [FailOn] and [FailIf], Guard never fails on the
// condition itself — cond only chooses whether m runs, not whether the
// result succeeds; a failure or defect from m still propagates when cond
// is true.
func Guard[R, E, A any](m Effect[R, E, A], cond bool) Effect[R, E, struct{}] {
	if cond {
		return Map(m, func(A) struct{} { return struct{}{} })
	}
	return Ok[R, E, struct{}](struct{}{})
}

// FailIf fails with e() when cond holds, otherwise succeeds.
func FailIf[R, E any](cond bool, e func() E) Effect[R, E, struct{}] {
	return FailOn[R, E](cond, e)
}

// Forever repeats m indefinitely on success. Re-expressed as an ordinary
// recursive function rather than a physically self-referencing value:
// the recursive call only happens inside the continuation the interpreter
// invokes after a successful step, so a failing m surfaces immediately
// without ever reaching the recursive call.
func Forever[R, E, A any](m Effect[R, E, A]) Effect[R, E, A] {
	return FlatMap(m, func(A) Effect[R, E, A] { return Forever(m) })
}

// Summarized samples before and after m, combining the two samples with
// diff, and pairs the result alongside m's own value.
func Summarized[R, E, S, D, A any](sample Effect[R, E, S], diff func(before, after S) D, m Effect[R, E, A]) Effect[R, E, result.Tuple2[D, A]] {
	return FlatMap(sample, func(before S) Effect[R, E, result.Tuple2[D, A]] {
		return FlatMap(m, func(a A) Effect[R, E, result.Tuple2[D, A]] {
			return Map(sample, func(after S) result.Tuple2[D, A] {
				return result.Tuple2[D, A]{First: diff(before, after), Second: a}
			})
		})
	})
}

// Measured is Summarized specialised to wall-clock duration.
func Measured[R, E, A any](m Effect[R, E, A]) Effect[R, E, result.Tuple2[time.Duration, A]] {
	clock := EffectTotal[R, E](time.Now)
	return Summarized(clock, func(before, after time.Time) time.Duration { return after.Sub(before) }, m)
}
