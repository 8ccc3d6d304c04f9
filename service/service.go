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

// Package service exposes the solver as a JSON API.  Handlers
// report their outcome to the golang caller as well as to the
// client, so the request log always knows how a request went.
// When the backing stores are connected, solved puzzles and
// solutions are stored and replayed; without them the API still
// serves, it just recomputes every solution.
package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/gensudoku/puzzle"
	"github.com/ancientHacker/gensudoku/storage"
)

/*

Server

*/

// A Server carries the request-independent solver settings.
// Store connections are process-wide, so the Server doesn't
// hold those; it checks storage.Connected as it goes.
type Server struct {
	MaxSteps int // search budget per request
}

// New returns a Server configured from the given settings.
func New(config storage.Config) *Server {
	return &Server{MaxSteps: config.MaxSteps}
}

// Routes returns the mux serving the API.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/puzzles", s.logged(s.PuzzlesHandler))
	mux.HandleFunc("/api/puzzles/", s.logged(s.PuzzleHandler))
	mux.HandleFunc("/api/solve", s.logged(s.SolveHandler))
	mux.HandleFunc("/api/recent", s.logged(s.RecentHandler))
	mux.HandleFunc("/healthz", s.logged(s.HealthHandler))
	return mux
}

// logged adapts an outcome-reporting handler into a plain
// http.HandlerFunc, logging every request with its duration.
func (s *Server) logged(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		err := handler(w, r)
		entry := log.WithFields(log.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start),
		})
		if err != nil {
			entry.Warnf("Request failed: %v", err)
		} else {
			entry.Info("Request served")
		}
	}
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	notFoundError
	methodError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate puzzle.Error.
func writeError(et handlerError, ed puzzle.ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err puzzle.Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = puzzle.Error{
			Scope:     puzzle.RequestScope,
			Structure: puzzle.AttributeStructure,
			Attribute: puzzle.DecodeAttribute,
			Condition: puzzle.GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = puzzle.Error{
			Scope:     puzzle.InternalScope,
			Structure: puzzle.AttributeStructure,
			Attribute: puzzle.EncodeAttribute,
			Condition: puzzle.GeneralCondition,
			Values:    ed,
		}
	case notFoundError:
		status = http.StatusNotFound
		err = puzzle.Error{
			Scope:     puzzle.RequestScope,
			Structure: puzzle.AttributeValueStructure,
			Attribute: puzzle.URLAttribute,
			Condition: puzzle.GeneralCondition,
			Values:    ed,
		}
	case methodError:
		status = http.StatusMethodNotAllowed
		err = puzzle.Error{
			Scope:     puzzle.RequestScope,
			Structure: puzzle.AttributeValueStructure,
			Attribute: puzzle.NamedAttribute,
			Condition: puzzle.GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = puzzle.Error{
			Scope:     puzzle.InternalScope,
			Structure: puzzle.AttributeStructure,
			Attribute: puzzle.LocationAttribute,
			Condition: puzzle.GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = puzzle.Error{
			Scope:     puzzle.InternalScope,
			Structure: puzzle.AttributeStructure,
			Attribute: puzzle.LocationAttribute,
			Condition: puzzle.GeneralCondition,
			Values: puzzle.ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writePuzzleError sends a domain error back to the client.  An
// unknown puzzle name gets a 404; everything else the solver
// library complains about is a bad request.  A non-structured
// error means a handler broke its own contract, which is an
// internal error.
func writePuzzleError(location string, e error,
	w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(puzzle.Error)
	if !ok {
		return writeError(errorFormatError, puzzle.ErrorData{location, e.Error()}, w, r)
	}
	status := http.StatusBadRequest
	if err.Condition == puzzle.UnknownPuzzleCondition {
		status = http.StatusNotFound
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create a puzzle.Error describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending a
// puzzle.Error as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(puzzle.Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == puzzle.InternalScope && err.Attribute == puzzle.EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, puzzle.ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
