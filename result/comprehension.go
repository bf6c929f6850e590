// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Scope is the extractor capability a [Comprehension] body receives. It
// mirrors the effect package's comprehension scope but operates on plain
// values with no interpreter underneath: [Extract] here is a direct
// pattern match, not a recursive evaluation.
type Scope[E any] struct {
	id     uuid.UUID
	closed *atomic.Bool
}

type comprehensionEscape[E any] struct {
	id  uuid.UUID
	err E
}

// Comprehension evaluates body with a fresh Scope. If body's Extract
// calls ever observe an error, the comprehension short-circuits to
// Err(that error) without running the rest of body.
func Comprehension[E, T any](body func(*Scope[E]) Result[E, T]) (result Result[E, T]) {
	id := uuid.New()
	closed := &atomic.Bool{}
	scope := &Scope[E]{id: id, closed: closed}
	defer func() {
		closed.Store(true)
		r := recover()
		if r == nil {
			return
		}
		if esc, ok := r.(comprehensionEscape[E]); ok {
			if esc.id == id {
				result = Err[E, T](esc.err)
				return
			}
			panic(r)
		}
		panic(r)
	}()
	return body(scope)
}

// Extract returns r's success value, or raises a non-local exit private
// to s's owning [Comprehension] when r is an error.
func Extract[E, T any](s *Scope[E], r Result[E, T]) T {
	if s.closed.Load() {
		panic(fmt.Sprintf("result: comprehension scope %s used after its body returned", s.id))
	}
	if r.kind == kindOk {
		return r.value
	}
	panic(comprehensionEscape[E]{id: s.id, err: r.err})
}
