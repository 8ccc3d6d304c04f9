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

// Web server for the sudoku solving service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ancientHacker/gensudoku/service"
	"github.com/ancientHacker/gensudoku/storage"
)

var (
	configPath     string
	requireStorage bool
)

var rootCmd = &cobra.Command{
	Use:   "sudoku-server",
	Short: "Serve the sudoku solver as a JSON API",
	Long: `Sudoku-server listens for solve requests and serves them over
HTTP.  When the Redis cache and Postgres database are reachable the
server remembers puzzles, solutions, and solve history; without them
it still solves, it just recomputes every request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file (default $SUDOKU_CONFIG)")
	rootCmd.Flags().BoolVar(&requireStorage, "require-storage", false, "exit at startup when the stores are unreachable")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("Couldn't start the server: %v", err)
		shutdown(startupFailureShutdown)
	}
}

/*

server lifetime

*/

func serve() error {
	if configPath == "" {
		configPath = os.Getenv("SUDOKU_CONFIG")
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("Bad log level %q: %v", config.LogLevel, err)
	}
	log.SetLevel(level)

	// attach the stores; without them the API still serves, it
	// just can't remember anything
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	cacheId, databaseId, err := storage.Connect(ctx, config)
	cancel()
	if err != nil {
		if requireStorage {
			log.Errorf("Couldn't attach storage: %v", err)
			shutdown(storageFailureShutdown)
		}
		log.Warnf("Running without storage: %v", err)
	} else {
		log.WithFields(log.Fields{"cache": cacheId, "database": databaseId}).Info("Attached storage")
	}

	server := &http.Server{
		Addr:    config.Addr,
		Handler: service.New(config).Routes(),
	}
	idle := make(chan struct{})
	go shutdownOnSignal(server, idle)

	log.Infof("Listening on %s...", config.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Errorf("Web server failed: %v", err)
		shutdown(listenerFailureShutdown)
	}
	<-idle
	shutdown(caughtSignalShutdown)
	return nil
}

/*

coordinate shutdown across goroutines

*/

type shutdownCause int

const (
	unknownShutdown shutdownCause = iota
	startupFailureShutdown
	storageFailureShutdown
	caughtSignalShutdown
	listenerFailureShutdown
)

// for testing, allow alternate forms of shutdown
var alternateShutdown func(reason shutdownCause)

// shutdown: process exit with appropriate logging.  The storage
// connections are released first so nothing is left half open.
func shutdown(reason shutdownCause) {
	storage.Close(context.Background())

	// for testing: run alternateShutdown instead, if defined
	if alternateShutdown != nil {
		alternateShutdown(reason)
		panic(reason) // shouldn't get here
	}

	switch reason {
	case caughtSignalShutdown:
		log.Info("Exiting: caught signal.")
		os.Exit(0)
	case startupFailureShutdown:
		log.Error("Exiting: initialization failure.")
	case storageFailureShutdown:
		log.Error("Exiting: storage failure.")
	case listenerFailureShutdown:
		log.Error("Exiting: web server failed.")
	default:
		log.Error("Exiting: unknown cause.")
	}
	os.Exit(1)
}

// shutdownOnSignal waits for a SIGINT or SIGTERM, stops the
// listener gracefully, and signals the main goroutine to finish
// the exit.
func shutdownOnSignal(server *http.Server, idle chan<- struct{}) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	s := <-c
	log.Infof("Received OS-level signal: %v", s)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Warnf("Graceful shutdown failed: %v", err)
	}
	close(idle)
}
