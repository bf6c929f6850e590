// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Runtime is an immutable, thin container binding an environment R. It
// captures env by value and carries no other state; prefer passing it
// explicitly rather than reaching for a process-wide instance, since none
// is offered.
type Runtime[R any] struct {
	env R
}

// New constructs a Runtime bound to env.
func New[R any](env R) Runtime[R] {
	return Runtime[R]{env: env}
}

// UnsafeRunSync drives eff to completion under rt's environment and
// returns its Exit. A panic that escapes the interpreter's own defensive
// recovery (which should not happen in a well-formed run, but Go offers
// no static guarantee here) is itself reclassified as a defect rather
// than propagated, so UnsafeRunSync never panics.
func UnsafeRunSync[R, E, A any](rt Runtime[R], eff Effect[R, E, A]) (exit Exit[E, A]) {
	defer func() {
		if r := recover(); r != nil {
			exit = Failure[E, A](Panic[E](r))
		}
	}()
	return runNode[R, E, A](eff.node, rt.env)
}

// UnsafeRun drives eff to completion and projects out the success value,
// throwing per [GetOrThrow] on failure.
func UnsafeRun[R, E, A any](rt Runtime[R], eff Effect[R, E, A]) A {
	return GetOrThrow(UnsafeRunSync(rt, eff))
}
