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

// Clear and re-initialize the sudoku storage system.  This wipes
// all saved puzzles, solutions, and history.
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/gensudoku/dbprep"
	"github.com/ancientHacker/gensudoku/storage"
)

var downOnly = flag.Bool("down-only", false, "tear down the schema without re-initializing")

func main() {
	flag.Parse()
	if err := clearStorage(*downOnly); err != nil {
		log.Fatalf("Couldn't clear storage: %v", err)
	}
}

func clearStorage(downOnly bool) error {
	config, err := storage.LoadConfig(os.Getenv("SUDOKU_CONFIG"))
	if err != nil {
		return err
	}
	if downOnly {
		log.Info("Removing the database schema...")
		if err := dbprep.RemoveData(config.DatabaseURL); err != nil {
			return err
		}
		log.Info("Schema removed.")
		return nil
	}
	log.Info("Removing the existing cache and database contents...")
	if err := dbprep.ReinitializeAll(config.CacheURL, config.DatabaseURL); err != nil {
		return err
	}
	log.Info("Storage has been re-initialized.")
	return nil
}
