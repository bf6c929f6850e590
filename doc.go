// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effect provides a typed effect runtime: computations described as
// first-class values and driven to completion by a trampolined interpreter.
//
// # Design Philosophy
//
// An [Effect] carries three static parameters — an environment R, an
// expected failure channel E, and a success value A — and is executed to
// one of a success value, an expected failure, or an unexpected defect (a
// recovered panic that was not declared as part of E).
//
// The package is organized the way the interpreter walks it, leaves first:
//
//   - [Cause]: the tagged union of an expected failure and a defect.
//   - [Exit]: the terminal value of interpretation.
//   - [Effect] and its nine primitive constructors ([Ok], [Fail], [Halt],
//     [AccessM], [FlatMap], [FoldCauseM], [Try], [EffectTotal],
//     [Comprehension], [Provide]).
//   - The interpreter ([Runtime], [UnsafeRunSync], [UnsafeRun]): a
//     trampolined evaluation loop with an explicit continuation stack and
//     environment stack, growing no host stack frame per step.
//   - The derived combinator layer ([Map], [MapError], [AndThen],
//     [FoldM], [Recover], [Attempt], [Flip], [RefineOrDie], [OrDie],
//     [Zip], [ZipWith], [Collect], [Sequence], [Traverse], [FailOn],
//     [FailOnNull], [Guard], [FailIf], [Forever], [Bracket],
//     [BracketExit], [BracketIgnore], [Summarized], [Measured]).
//   - [Comprehension] scope ([Scope], [Extract]): linearised sequencing
//     using a non-local exit private to its own invocation.
//   - [Transact]: a bracket specialisation over a connection collaborator
//     that commits on success and rolls back on any failure or defect.
//
// # Stack safety
//
// FlatMap/Fold chains are stack-safe to arbitrary depth: sequencing is
// expressed entirely as push/pop on the interpreter's own continuation
// stack, never as host recursion. [Comprehension] is the one place host
// recursion is intentional — [Extract] drives a nested interpreter run on
// the current Go call stack, exactly as an imperative block would.
//
// # Fatal errors
//
// The interpreter never attempts to represent a fatal host condition
// (stack overflow, out of memory) as a [Cause]; Go's own recover cannot
// intercept them, so they abort the process the way the host always would.
package effect
