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

// Prepare the sudoku storage system for use.  Safe to run
// repeatedly: it only applies what's missing.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/gensudoku/dbprep"
	"github.com/ancientHacker/gensudoku/storage"
)

func main() {
	if err := prepareStorage(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	log.Info("Storage is ready for use.")
}

func prepareStorage() error {
	config, err := storage.LoadConfig(os.Getenv("SUDOKU_CONFIG"))
	if err != nil {
		return err
	}
	log.Info("Preparing the database...")
	return dbprep.EnsureData(config.DatabaseURL)
}
