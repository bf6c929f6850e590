// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "context"

// Connection is the minimal contract [Transact] needs from a connection
// collaborator: explicit auto-commit toggling plus commit/rollback. The
// library treats it opaquely; concrete adapters live outside this
// package (see the adapters subdirectory).
type Connection interface {
	SetAutoCommit(bool) error
	AutoCommit() bool
	Commit() error
	Rollback() error
}

// Pool acquires and releases connections. Pool is parameterised over its
// own Connection type so [Transact] can be written once for any pool
// implementation.
type Pool[C Connection] interface {
	Acquire(ctx context.Context) (C, error)
	Release(C)
}

// Transact acquires a connection from pool, disables auto-commit,
// remembers the prior flag, and runs body with the environment switched
// to that connection. On success it commits, restores the prior flag,
// and yields the value. On any failure — expected or defect — it rolls
// back, restores the prior flag, and re-yields the same cause. Because
// every call acquires its own connection, nested Transact calls are
// independent: an outer rollback cannot undo a nested, already-committed
// transaction that ran on a different connection.
//
// logger may be nil, in which case connection lifecycle messages are
// discarded.
func Transact[P Pool[C], C Connection, E, A any](ctx context.Context, pool P, logger Logger, body Effect[C, E, A]) Effect[P, E, A] {
	if logger == nil {
		logger = NoOpLogger{}
	}
	acquireConn := EffectTotal[P, E](func() C {
		conn, err := pool.Acquire(ctx)
		mustNoError(err)
		return conn
	})
	return FlatMap(acquireConn, func(conn C) Effect[P, E, A] {
		return BracketExit(
			Ok[P, E, C](conn),
			func(c C, _ Exit[E, A]) Effect[P, E, struct{}] {
				return EffectTotal[P, E, struct{}](func() struct{} {
					pool.Release(c)
					return struct{}{}
				})
			},
			func(c C) Effect[P, E, A] {
				return runInTransaction[P](ctx, c, logger, body)
			},
		)
	})
}

// runInTransaction toggles auto-commit off, runs body under the
// connection environment, and commits or rolls back based on body's own
// Exit — inspecting the Exit, not merely success/failure, is exactly what
// [BracketExit] over [Bracket] buys here.
func runInTransaction[P any, C Connection, E, A any](ctx context.Context, conn C, logger Logger, body Effect[C, E, A]) Effect[P, E, A] {
	prevAutoCommit := EffectTotal[C, E](func() bool { return conn.AutoCommit() })
	disable := EffectTotal[C, E, struct{}](func() struct{} {
		mustNoError(conn.SetAutoCommit(false))
		logger.Debug(ctx, "effect: transaction begin")
		return struct{}{}
	})
	setup := FlatMap(prevAutoCommit, func(prev bool) Effect[C, E, bool] {
		return Map(disable, func(struct{}) bool { return prev })
	})
	txBody := FlatMap(setup, func(prev bool) Effect[C, E, A] {
		return BracketExit(
			Ok[C, E, struct{}](struct{}{}),
			func(_ struct{}, exit Exit[E, A]) Effect[C, E, struct{}] {
				return EffectTotal[C, E, struct{}](func() struct{} {
					if exit.IsSuccess() {
						mustNoError(conn.Commit())
						logger.Debug(ctx, "effect: transaction commit")
					} else {
						mustNoError(conn.Rollback())
						logger.Debug(ctx, "effect: transaction rollback")
					}
					mustNoError(conn.SetAutoCommit(prev))
					return struct{}{}
				})
			},
			func(struct{}) Effect[C, E, A] { return body },
		)
	})
	return Provide[P, C, E, A](txBody, conn)
}
