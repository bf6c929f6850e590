// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "sync"

// contFrame is a defunctionalized continuation frame on the interpreter's
// stack, mirroring how a frame chain represents a closure-free
// continuation: either a plain flat-map continuation, or a Fold frame
// carrying both branches, distinguishable by the interpreter without a
// type switch on every step.
type contFrame struct {
	isFold    bool
	plainK    func(Erased) effectNode
	onSuccess func(Erased) effectNode
	onFailure func(erasedCause) effectNode
}

var plainFramePool = sync.Pool{New: func() any { return new(contFrame) }}

func acquirePlainFrame(k func(Erased) effectNode) *contFrame {
	f := plainFramePool.Get().(*contFrame)
	f.isFold = false
	f.plainK = k
	f.onSuccess = nil
	f.onFailure = nil
	return f
}

func acquireFoldFrame(onSuccess func(Erased) effectNode, onFailure func(erasedCause) effectNode) *contFrame {
	f := plainFramePool.Get().(*contFrame)
	f.isFold = true
	f.plainK = nil
	f.onSuccess = onSuccess
	f.onFailure = onFailure
	return f
}

func releaseFrame(f *contFrame) {
	f.plainK = nil
	f.onSuccess = nil
	f.onFailure = nil
	plainFramePool.Put(f)
}

// runNode drives node to an Exit under env using an explicit continuation
// stack and environment stack. No Go call frame is added per FlatMap,
// Fold, Access, Success, or Failure step; the loop is the only recursion
// boundary for that part of the algebra. Comprehension is evaluated
// in-line via runComprehension, which may itself recurse into runNode
// through Extract — an intentional, spec-sanctioned exception to the
// stack-safety guarantee that only chained sequencing carries.
func runNode[R, E, A any](node effectNode, env R) Exit[E, A] {
	envStack := []Erased{Erased(env)}
	var contStack []*contFrame
	current := node

	for {
		switch n := current.(type) {
		case successNode:
			if len(contStack) == 0 {
				return Success[E, A](n.value.(A))
			}
			f := contStack[len(contStack)-1]
			contStack = contStack[:len(contStack)-1]
			if f.isFold {
				current = safeStep(func() effectNode { return f.onSuccess(n.value) })
			} else {
				current = safeStep(func() effectNode { return f.plainK(n.value) })
			}
			releaseFrame(f)

		case failureNode:
			cause := n.cause
			for {
				if len(contStack) == 0 {
					return Failure[E, A](unerasedCause[E](cause))
				}
				f := contStack[len(contStack)-1]
				contStack = contStack[:len(contStack)-1]
				if f.isFold {
					current = safeStep(func() effectNode { return f.onFailure(cause) })
					releaseFrame(f)
					break
				}
				releaseFrame(f)
			}

		case accessNode:
			top := envStack[len(envStack)-1]
			current = safeStep(func() effectNode { return n.f(top) })

		case flatMapNode:
			contStack = append(contStack, acquirePlainFrame(n.k))
			current = n.inner

		case foldNode:
			contStack = append(contStack, acquireFoldFrame(n.onSuccess, n.onFailure))
			current = n.inner

		case tryNode:
			v, err := n.thunk()
			if err != nil {
				current = failureNode{cause: erasedCause{kind: causeExpected, expected: err}}
			} else {
				current = successNode{value: v}
			}

		case totalNode:
			current = safeStep(func() effectNode { return successNode{value: n.thunk()} })

		case comprehensionNode:
			current = runComprehension(n, envStack[len(envStack)-1])

		case provideNode:
			envStack = append(envStack, n.env)
			contStack = append(contStack, acquireFoldFrame(
				func(v Erased) effectNode {
					envStack = envStack[:len(envStack)-1]
					return successNode{value: v}
				},
				func(c erasedCause) effectNode {
					envStack = envStack[:len(envStack)-1]
					return failureNode{cause: c}
				},
			))
			current = n.inner

		default:
			panic("effect: unknown node type in interpreter")
		}
	}
}

// safeStep recovers a panic raised while producing the next node and
// reclassifies it as a defect, unless the panic is a comprehensionEscape
// in flight toward its owning scope, in which case it must keep
// propagating untouched.
func safeStep(f func() effectNode) (result effectNode) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(comprehensionEscape); ok {
				panic(r)
			}
			result = failureNode{cause: erasedCause{kind: causePanic, defect: r}}
		}
	}()
	return f()
}
