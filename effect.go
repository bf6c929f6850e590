// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Erased marks a type-erased value flowing through the interpreter's node
// tree. Concrete types are recovered via type assertions at the closures
// that the public constructors install, exactly at the boundary between
// typed API and the untyped tree the interpreter actually walks.
type Erased = any

// effectNode is the type-erased representation of an Effect[R, E, A].
// Effect itself is a thin, statically typed wrapper around a node; every
// primitive constructor below closes over its own R, E, A via ordinary Go
// closures and stores only Erased values in the node, the same
// discipline the frame chain in a defunctionalized continuation uses.
type effectNode interface {
	effectNode()
}

// Effect is a deferred computation requiring an environment R, capable of
// an expected failure of type E, and producing a success value of type A.
// Effect values are immutable and freely shareable; the interpreter owns
// all intermediate continuations on its own stacks.
type Effect[R, E, A any] struct {
	node effectNode
}

type successNode struct{ value Erased }

func (successNode) effectNode() {}

type failureNode struct{ cause erasedCause }

func (failureNode) effectNode() {}

type accessNode struct{ f func(Erased) effectNode }

func (accessNode) effectNode() {}

type flatMapNode struct {
	inner effectNode
	k     func(Erased) effectNode
}

func (flatMapNode) effectNode() {}

type foldNode struct {
	inner     effectNode
	onSuccess func(Erased) effectNode
	onFailure func(erasedCause) effectNode
}

func (foldNode) effectNode() {}

type tryNode struct{ thunk func() (Erased, error) }

func (tryNode) effectNode() {}

type totalNode struct{ thunk func() Erased }

func (totalNode) effectNode() {}

type comprehensionNode struct{ body func(*scopeCore) effectNode }

func (comprehensionNode) effectNode() {}

type provideNode struct {
	inner effectNode
	env   Erased
}

func (provideNode) effectNode() {}

// Ok is the Success(a) primitive: an effect that always yields a.
func Ok[R, E, A any](a A) Effect[R, E, A] {
	return Effect[R, E, A]{node: successNode{value: a}}
}

// Fail is the Failure(c) primitive specialised to an expected failure: an
// effect that always yields Failure(Expected(e)).
func Fail[R, E, A any](e E) Effect[R, E, A] {
	return Effect[R, E, A]{node: failureNode{cause: eraseCause(Expected(e))}}
}

// Halt is the Failure(c) primitive over an arbitrary Cause, expected or
// defect.
func Halt[R, E, A any](c Cause[E]) Effect[R, E, A] {
	return Effect[R, E, A]{node: failureNode{cause: eraseCause(c)}}
}

// AccessM is the Access(f) primitive: yields the effect obtained by
// applying f to the current environment.
func AccessM[R, E, A any](f func(R) Effect[R, E, A]) Effect[R, E, A] {
	return Effect[R, E, A]{node: accessNode{f: func(r Erased) effectNode {
		return f(r.(R)).node
	}}}
}

// Access lifts a pure projection of the environment into an effect.
func Access[R, E, A any](f func(R) A) Effect[R, E, A] {
	return AccessM(func(r R) Effect[R, E, A] { return Ok[R, E, A](f(r)) })
}

// FlatMap is the FlatMap(inner, k) primitive: sequences inner then k.
func FlatMap[R, E, X, A any](inner Effect[R, E, X], k func(X) Effect[R, E, A]) Effect[R, E, A] {
	return Effect[R, E, A]{node: flatMapNode{
		inner: inner.node,
		k:     func(x Erased) effectNode { return k(x.(X)).node },
	}}
}

// FoldCauseM is the Fold(inner, onSuccess, onFailure) primitive: the only
// primitive that observes defects in addition to expected failures.
func FoldCauseM[R, E0, X, E, A any](
	inner Effect[R, E0, X],
	onSuccess func(X) Effect[R, E, A],
	onFailure func(Cause[E0]) Effect[R, E, A],
) Effect[R, E, A] {
	return Effect[R, E, A]{node: foldNode{
		inner:     inner.node,
		onSuccess: func(x Erased) effectNode { return onSuccess(x.(X)).node },
		onFailure: func(c erasedCause) effectNode { return onFailure(unerasedCause[E0](c)).node },
	}}
}

// Try is the EffectPartial(thunk) primitive, adapted to idiomatic Go: the
// thunk returns its own (value, error) pair, and any panic it raises is
// additionally recovered and folded into the same error channel. A
// non-nil error, returned or recovered, becomes Expected(err); a fatal
// host condition is never observed here because Go's recover cannot
// intercept one.
func Try[R, A any](thunk func() (A, error)) Effect[R, error, A] {
	return Effect[R, error, A]{node: tryNode{thunk: func() (v Erased, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicToError(r)
			}
		}()
		a, e := thunk()
		return a, e
	}}}
}

// EffectTotal is the EffectTotal(thunk) primitive: runs thunk assuming it
// never fails. If it panics anyway, the interpreter reclassifies the
// panic as a defect rather than letting it escape uncontrolled.
func EffectTotal[R, E, A any](thunk func() A) Effect[R, E, A] {
	return Effect[R, E, A]{node: totalNode{thunk: func() Erased { return thunk() }}}
}

// Comprehension is the Comprehension(body) primitive: a suspended
// imperative block whose body may extract values of inner effects via
// [Extract], a non-local exit private to this invocation's [Scope].
func Comprehension[R, E, A any](body func(*Scope[R, E]) Effect[R, E, A]) Effect[R, E, A] {
	return Effect[R, E, A]{node: comprehensionNode{
		body: func(core *scopeCore) effectNode {
			return body(&Scope[R, E]{core: core}).node
		},
	}}
}

// Provide is the Provide(inner, env) primitive: replaces the environment
// for the duration of inner.
func Provide[R, Rp, E, A any](inner Effect[Rp, E, A], env Rp) Effect[R, E, A] {
	return Effect[R, E, A]{node: provideNode{inner: inner.node, env: env}}
}

// Done is the done(exit) constructor from the public surface: it lifts an
// already-computed Exit back into an effect, succeeding or failing exactly
// as x did.
func Done[R, E, A any](x Exit[E, A]) Effect[R, E, A] {
	if v, ok := x.GetSuccess(); ok {
		return Ok[R, E, A](v)
	}
	c, _ := x.GetCause()
	return Halt[R, E, A](c)
}
