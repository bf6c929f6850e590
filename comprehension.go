// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Scope is the extractor capability a [Comprehension] body receives. It
// must not be stored or used outside the body it was handed to; doing so
// is undefined behaviour that the interpreter observes as a defect rather
// than polices at compile time.
type Scope[R, E any] struct {
	core *scopeCore
}

// scopeCore is the erased half of a Scope, carried inside the node tree
// where R and E are not statically known.
type scopeCore struct {
	id     uuid.UUID
	env    Erased
	closed atomic.Bool
}

// comprehensionEscape is the non-local exit sentinel a failed [Extract]
// raises. Its identity is the owning scope's id: a recover site catches
// it only if the id matches its own scope, exactly the "identity-tagged"
// requirement for nested comprehensions to compose correctly.
type comprehensionEscape struct {
	id    uuid.UUID
	cause erasedCause
}

// Extract recursively drives eff to an Exit under the scope's current
// environment. On success it returns the value inline; on failure it
// raises a private non-local exit caught only by the enclosing
// comprehension, which then yields that failure as the whole
// comprehension's result.
//
// Calling Extract with a Scope after its comprehension body has already
// returned panics immediately, naming the scope for diagnosis, instead of
// silently returning a zero value.
func Extract[R, E, X any](s *Scope[R, E], eff Effect[R, E, X]) X {
	if s.core.closed.Load() {
		panic(fmt.Sprintf("effect: comprehension scope %s used after its body returned", s.core.id))
	}
	exit := runNode[R, E, X](eff.node, s.core.env.(R))
	if v, ok := exit.GetSuccess(); ok {
		return v
	}
	cause, _ := exit.GetCause()
	panic(comprehensionEscape{id: s.core.id, cause: eraseCause(cause)})
}

// runComprehension evaluates a comprehensionNode's body under env,
// converting its own scope's escape into a failure, letting a foreign
// scope's escape (an ancestor's, or an orphaned leaked scope) continue to
// propagate, and reclassifying any other panic as a defect surfacing at
// this comprehension.
func runComprehension(n comprehensionNode, env Erased) (result effectNode) {
	core := &scopeCore{id: uuid.New(), env: env}
	defer func() {
		core.closed.Store(true)
		r := recover()
		if r == nil {
			return
		}
		if esc, ok := r.(comprehensionEscape); ok {
			if esc.id == core.id {
				result = failureNode{cause: esc.cause}
				return
			}
			panic(r)
		}
		result = failureNode{cause: erasedCause{kind: causePanic, defect: r}}
	}()
	result = n.body(core)
	return result
}
