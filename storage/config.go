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

package storage

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

/*

configuration

*/

// A Config collects the settings shared by the server and the
// command-line tools.  Settings come from three layers, each
// overriding the last: compiled defaults, an optional YAML file,
// and the environment.
type Config struct {
	CacheURL    string `yaml:"cache_url"`    // Redis connection URL
	DatabaseURL string `yaml:"database_url"` // Postgres connection URL
	Addr        string `yaml:"addr"`         // server listen address
	MaxSteps    int    `yaml:"max_steps"`    // search budget per solve
	HistorySize int    `yaml:"history_size"` // solve events kept in the cache
	LogLevel    string `yaml:"log_level"`    // logrus level name
}

// DefaultConfig returns the compiled-in settings, suitable for a
// developer workstation running local stores.
func DefaultConfig() Config {
	return Config{
		CacheURL:    "redis://localhost:6379/",
		DatabaseURL: "postgres://localhost/sudoku?sslmode=disable",
		Addr:        "localhost:8080",
		MaxSteps:    10 * 1000 * 1000,
		HistorySize: 20,
		LogLevel:    "info",
	}
}

// LoadConfig builds the effective configuration.  When path is
// empty, no file is read and only defaults and the environment
// apply.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path != "" {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("Couldn't read configuration file %q: %v", path, err)
		}
		if err := yaml.Unmarshal(bytes, &config); err != nil {
			return config, fmt.Errorf("Couldn't parse configuration file %q: %v", path, err)
		}
	}
	if err := config.fromEnvironment(); err != nil {
		return config, err
	}
	return config, nil
}

// fromEnvironment overrides settings from the usual deployment
// variables.  PORT is honored for hosting platforms that assign
// one, but SUDOKU_ADDR wins when both are set.
func (config *Config) fromEnvironment() error {
	if url := os.Getenv("REDIS_URL"); url != "" {
		config.CacheURL = url
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.DatabaseURL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Addr = ":" + port
	}
	if addr := os.Getenv("SUDOKU_ADDR"); addr != "" {
		config.Addr = addr
	}
	if steps := os.Getenv("SUDOKU_MAX_STEPS"); steps != "" {
		value, err := strconv.Atoi(steps)
		if err != nil || value < 0 {
			return fmt.Errorf("Bad SUDOKU_MAX_STEPS value %q: must be a non-negative integer", steps)
		}
		config.MaxSteps = value
	}
	if level := os.Getenv("SUDOKU_LOG_LEVEL"); level != "" {
		config.LogLevel = level
	}
	return nil
}
