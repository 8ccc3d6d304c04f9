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

// Command-line front end for the exhaustive sudoku solver.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ancientHacker/gensudoku/puzzle"
	"github.com/ancientHacker/gensudoku/storage"
)

/*

command tree

*/

var (
	configPath string
	logLevel   string
	boardFile  string
	maxSteps   int
	diagram    bool
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve generalized sudoku boards by exhaustive search",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("Bad log level %q: %v", logLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Search for a solution and print it",
	Long: `Solve searches the given puzzle exhaustively and prints the
first solution found.  The puzzle is a catalog name, or a grid read
with --file ("-" reads standard input).  Without either, the default
catalog puzzle is solved.  The exit status is non-zero when the
search finds no solution or gives up.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readBoard(argName(args), boardFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		budget, err := solveBudget(cmd.Flags().Changed("max-steps"), maxSteps, resolveConfigPath())
		if err != nil {
			return err
		}
		return runSolve(cmd.OutOrStdout(), board, budget, diagram)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [puzzle]",
	Short: "Print a puzzle's starting position without solving it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readBoard(argName(args), boardFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), board.Diagram())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in puzzle catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (default $SUDOKU_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "logging level (debug, info, warning, error)")
	for _, c := range []*cobra.Command{solveCmd, showCmd} {
		c.Flags().StringVarP(&boardFile, "file", "f", "", `read the puzzle grid from this file ("-" for stdin)`)
	}
	solveCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step budget; 0 means no limit (default from configuration)")
	solveCmd.Flags().BoolVar(&diagram, "diagram", false, "print the solution as a framed diagram")
	rootCmd.AddCommand(solveCmd, showCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

/*

board sources and reports

*/

// argName picks the optional positional puzzle name.
func argName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// resolveConfigPath honors the flag first, then $SUDOKU_CONFIG.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv("SUDOKU_CONFIG")
}

// solveBudget picks the step budget: an explicit --max-steps wins,
// otherwise the configured default applies.
func solveBudget(explicit bool, flagValue int, configPath string) (int, error) {
	if explicit {
		return flagValue, nil
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return 0, err
	}
	return config.MaxSteps, nil
}

// readBoard resolves the puzzle to operate on.  An explicit file
// ("-" meaning stdin) wins over a catalog name; with neither, the
// default catalog puzzle is used.
func readBoard(name, file string, stdin io.Reader) (puzzle.Board, error) {
	if file != "" {
		var text []byte
		var err error
		if file == "-" {
			text, err = io.ReadAll(stdin)
		} else {
			text, err = os.ReadFile(file)
		}
		if err != nil {
			return puzzle.Board{}, fmt.Errorf("Couldn't read puzzle from %q: %v", file, err)
		}
		return puzzle.Parse(string(text))
	}
	if name == "" {
		name = puzzle.DefaultPuzzleName
	}
	return puzzle.KnownPuzzle(name)
}

// runSolve searches the board and prints the solution.  The error
// return carries the process outcome: non-nil means no solution
// was printed.
func runSolve(out io.Writer, board puzzle.Board, maxSteps int, diagram bool) error {
	start := time.Now()
	solved, steps, err := board.SolveWithin(maxSteps)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"steps": steps, "elapsed": elapsed}).Debug("Search finished")
	if !solved.IsSolved() {
		return fmt.Errorf("No solution exists (%d steps tried)", steps)
	}
	if diagram {
		fmt.Fprint(out, solved.Diagram())
	} else {
		fmt.Fprint(out, solved.String())
	}
	return nil
}

// runList prints one line per catalog puzzle, marking the default.
func runList(out io.Writer) error {
	for _, name := range puzzle.KnownPuzzles() {
		board, err := puzzle.KnownPuzzle(name)
		if err != nil {
			return err
		}
		givens := 0
		for _, value := range board.Values() {
			if value != 0 {
				givens++
			}
		}
		marker := " "
		if name == puzzle.DefaultPuzzleName {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s %2dx%-2d %3d givens\n",
			marker, name, board.SideLength(), board.SideLength(), givens)
	}
	return nil
}
