// gensudoku - an exhaustive-search Sudoku solver and server.
// Copyright (C) 2025-2026 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

// Package storage keeps puzzles, solutions, and solve history in
// a Redis cache backed by a Postgres database.  Entries are
// looked up cache-first; database hits are written back to the
// cache, so repeated reads of the same puzzle stay cheap.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/gensudoku/dbprep"
)

/*

connection lifecycle

*/

// Connect prepares the database schema and seed data, then opens
// the cache and database connections named in the configuration.
// The returned identifiers describe the connected stores, for
// logging.
func Connect(ctx context.Context, config Config) (cacheId, databaseId string, err error) {
	if err = dbprep.EnsureData(config.DatabaseURL); err != nil {
		err = fmt.Errorf("Couldn't initialize database: %v", err)
		return
	}

	stMutex.Lock()
	defer stMutex.Unlock()
	rdUrl = config.CacheURL
	cacheId, err = rdConnect()
	if err != nil {
		return
	}
	pgUrl = config.DatabaseURL
	databaseId, err = pgConnect(ctx)
	if err != nil {
		rdClose()
		return
	}
	historyLength = config.HistorySize
	return
}

// Close tears down the connections opened by Connect.  Safe to
// call when not connected.
func Close(ctx context.Context) {
	stMutex.Lock()
	defer stMutex.Unlock()
	pgClose(ctx)
	rdClose()
}

// Connected reports whether both stores are currently open.
func Connected() bool {
	stMutex.Lock()
	defer stMutex.Unlock()
	return rdc != nil && pgConn != nil
}

/*

error recovery

*/

// The entry helpers below panic on cache and database failures,
// which keeps their call chains simple.  Every public operation
// defers guard to turn those panics back into returned errors.
func guard(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
		} else {
			*err = fmt.Errorf("Storage failure: %v", r)
		}
	}
}

/*

cache connection

*/

var (
	rdc   redis.Conn // open cache connection, if any
	rdUrl string     // URL of the open connection
)

// stMutex serializes all use of the store connections: neither
// the redigo connection nor the pgx connection tolerates
// concurrent callers.
var stMutex sync.Mutex

// rdConnect connects to the cache at rdUrl.  Callers must hold
// stMutex.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("Can't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose closes the cache connection, if any.  Callers must
// hold stMutex.
func rdClose() {
	if rdc != nil {
		if err := rdc.Close(); err != nil {
			log.WithField("url", rdUrl).Warnf("Error closing cache connection: %v", err)
		}
		rdc = nil
	}
}

// rdExecute runs the body against the open cache connection,
// pinging first and reconnecting if the connection has gone
// stale.  Panics (with the body's error) on failure.
func rdExecute(body func(tx redis.Conn) error) {
	stMutex.Lock()
	defer stMutex.Unlock()
	if rdc == nil {
		panic(fmt.Errorf("Not connected to the cache"))
	}
	// ping to validate the connection, reconnect if necessary
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			panic(err)
		}
	}
	// wrap the body against runtime panics, so the connection
	// state stays coherent no matter what the body does
	wrapper := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during rdExecute: %v", r)
				}
			}
		}()
		return body(rdc)
	}
	if err := wrapper(); err != nil {
		panic(err)
	}
}

/*

database connection

*/

var (
	pgConn *pgx.Conn // open database connection, if any
	pgUrl  string    // URL of the open connection
)

// pgConnect connects to the database at pgUrl.  Callers must
// hold stMutex.
func pgConnect(ctx context.Context) (string, error) {
	conn, err := pgx.Connect(ctx, pgUrl)
	if err != nil {
		return "", fmt.Errorf("Can't connect to database at %q: %v", pgUrl, err)
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose closes the database connection, if any.  Callers must
// hold stMutex.
func pgClose(ctx context.Context) {
	if pgConn != nil {
		if err := pgConn.Close(ctx); err != nil {
			log.WithField("url", pgUrl).Warnf("Error closing database connection: %v", err)
		}
		pgConn = nil
	}
}

// pgExecute runs the body inside a database transaction,
// committing if the body succeeds and rolling back if it errors
// or panics.  Panics (with the body's error) on failure.
func pgExecute(ctx context.Context, body func(tx pgx.Tx) error) {
	stMutex.Lock()
	defer stMutex.Unlock()
	if pgConn == nil {
		panic(fmt.Errorf("Not connected to the database"))
	}
	wrapper := func(tx pgx.Tx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during pgExecute: %v", r)
				}
			}
		}()
		return body(tx)
	}
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		panic(fmt.Errorf("Can't open a transaction against the database: %v", err))
	}
	defer func(err error) {
		if err != nil {
			tx.Rollback(ctx)
			panic(err)
		}
		if err := tx.Commit(ctx); err != nil {
			panic(fmt.Errorf("Can't commit transaction against the database: %v", err))
		}
	}(wrapper(tx))
}
