// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sqlconn is a concrete [effect.Connection] / [effect.Pool] pair
// over database/sql, hermetically testable against the pure-Go
// modernc.org/sqlite driver. database/sql has no explicit auto-commit
// toggle the way a JDBC-style connection does; SetAutoCommit(false) is
// emulated here by opening a *sql.Tx on demand and routing every query
// through it until the matching commit or rollback.
package sqlconn

import (
	"context"
	"database/sql"
	"sync"

	_ "modernc.org/sqlite"

	"code.hybscloud.com/effect"
)

// Conn adapts a pooled *sql.DB connection to [effect.Connection] and
// exposes the query surface a Transact body needs, grounded on the
// DBTX split between *sql.DB and *sql.Tx: callers issue queries through
// Conn without caring whether a transaction is currently open.
type Conn struct {
	ctx        context.Context
	db         *sql.DB
	mu         sync.Mutex
	tx         *sql.Tx
	autoCommit bool
}

var _ effect.Connection = (*Conn)(nil)

// SetAutoCommit begins a *sql.Tx when turned off, and simply notes the
// flag when turned back on without an explicit Commit or Rollback having
// run (a well-formed Transact body always commits or rolls back before
// this happens).
func (c *Conn) SetAutoCommit(on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on == c.autoCommit {
		return nil
	}
	if !on {
		tx, err := c.db.BeginTx(c.ctx, nil)
		if err != nil {
			return err
		}
		c.tx = tx
	}
	c.autoCommit = on
	return nil
}

// AutoCommit reports the current auto-commit flag.
func (c *Conn) AutoCommit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoCommit
}

// Commit commits the open transaction, if any.
func (c *Conn) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit()
	c.tx = nil
	return err
}

// Rollback rolls back the open transaction, if any.
func (c *Conn) Rollback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	return err
}

// Exec runs query against the open transaction if there is one,
// otherwise directly against the pooled database.
func (c *Conn) Exec(query string, args ...any) (sql.Result, error) {
	c.mu.Lock()
	tx := c.tx
	c.mu.Unlock()
	if tx != nil {
		return tx.ExecContext(c.ctx, query, args...)
	}
	return c.db.ExecContext(c.ctx, query, args...)
}

// Query runs query against the open transaction if there is one,
// otherwise directly against the pooled database.
func (c *Conn) Query(query string, args ...any) (*sql.Rows, error) {
	c.mu.Lock()
	tx := c.tx
	c.mu.Unlock()
	if tx != nil {
		return tx.QueryContext(c.ctx, query, args...)
	}
	return c.db.QueryContext(c.ctx, query, args...)
}

// QueryRow runs query against the open transaction if there is one,
// otherwise directly against the pooled database.
func (c *Conn) QueryRow(query string, args ...any) *sql.Row {
	c.mu.Lock()
	tx := c.tx
	c.mu.Unlock()
	if tx != nil {
		return tx.QueryRowContext(c.ctx, query, args...)
	}
	return c.db.QueryRowContext(c.ctx, query, args...)
}

// Pool bounds concurrent Conn checkouts over a single *sql.DB, sized by
// [effect.RuntimeConfig.PoolSize].
type Pool struct {
	db  *sql.DB
	sem chan struct{}
}

var _ effect.Pool[*Conn] = (*Pool)(nil)

// Open opens dataSourceName with the modernc.org/sqlite driver and
// returns a Pool sized per cfg.PoolSize (default 10).
func Open(dataSourceName string, cfg effect.RuntimeConfig) (*Pool, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	size := cfg.PoolSize
	if size <= 0 {
		size = 10
	}
	return &Pool{db: db, sem: make(chan struct{}, size)}, nil
}

// Acquire blocks until a checkout slot is free or ctx is done, then
// returns a fresh Conn bound to that slot.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &Conn{ctx: ctx, db: p.db, autoCommit: true}, nil
}

// Release frees c's checkout slot. It does not close the underlying
// database connection, which is pooled by database/sql itself.
func (p *Pool) Release(*Conn) {
	<-p.sem
}

// Close closes the underlying database.
func (p *Pool) Close() error {
	return p.db.Close()
}
