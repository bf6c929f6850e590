// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// BracketExit acquires a resource, runs use, and always runs release
// exactly once afterward — release additionally receives use's own Exit
// so it can distinguish a commit path from a rollback path. If acquire
// fails, release is never invoked. Whatever release's own outcome is, the
// bracket yields use's Exit unchanged; release's cause is never surfaced,
// matching the rule that release must not itself raise an expected
// failure that could shadow the reason use failed.
func BracketExit[R, E, A, B any](
	acquire Effect[R, E, A],
	release func(A, Exit[E, B]) Effect[R, E, struct{}],
	use func(A) Effect[R, E, B],
) Effect[R, E, B] {
	return FlatMap(acquire, func(a A) Effect[R, E, B] {
		useExit := FoldCauseM(use(a),
			func(b B) Effect[R, E, Exit[E, B]] { return Ok[R, E, Exit[E, B]](Success[E, B](b)) },
			func(c Cause[E]) Effect[R, E, Exit[E, B]] { return Ok[R, E, Exit[E, B]](Failure[E, B](c)) },
		)
		return FlatMap(useExit, func(ux Exit[E, B]) Effect[R, E, B] {
			releaseExit := FoldCauseM(release(a, ux),
				func(struct{}) Effect[R, E, Exit[E, struct{}]] {
					return Ok[R, E, Exit[E, struct{}]](Success[E, struct{}](struct{}{}))
				},
				func(c Cause[E]) Effect[R, E, Exit[E, struct{}]] { return Ok[R, E, Exit[E, struct{}]](Failure[E, struct{}](c)) },
			)
			return FlatMap(releaseExit, func(Exit[E, struct{}]) Effect[R, E, B] {
				return Done[R, E, B](ux)
			})
		})
	})
}

// Bracket is [BracketExit] for a release that does not need use's Exit.
func Bracket[R, E, A, B any](
	acquire Effect[R, E, A],
	release func(A) Effect[R, E, struct{}],
	use func(A) Effect[R, E, B],
) Effect[R, E, B] {
	return BracketExit(acquire, func(a A, _ Exit[E, B]) Effect[R, E, struct{}] { return release(a) }, use)
}

// BracketIgnore is [Bracket] for callers that have no acquired resource
// value to thread through — acquire, release, and use are fixed effects
// rather than functions of a resource.
func BracketIgnore[R, E, A, B any](acquire Effect[R, E, A], release Effect[R, E, struct{}], use Effect[R, E, B]) Effect[R, E, B] {
	return Bracket(acquire, func(A) Effect[R, E, struct{}] { return release }, func(A) Effect[R, E, B] { return use })
}
