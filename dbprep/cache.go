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

package dbprep

import (
	"github.com/gomodule/redigo/redis"
)

// ClearCache flushes everything out of the cache at the given
// URL.  Cached entries are rebuilt from the database on demand,
// so flushing never loses data.
func ClearCache(cacheURL string) error {
	conn, err := redis.DialURL(cacheURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	if _, err := conn.Do("FLUSHALL"); err != nil {
		return err
	}
	return nil
}
