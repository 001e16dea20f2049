// Package cli implements the cobra commands of the rayzer binary.
//
// Each subcommand (distribute, split, render) lives in its own file. This
// file defines the root command, the global flags and exit code handling.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-rayzer/internal/ctxlog"
	"github.com/grindlemire/go-rayzer/internal/debug"
)

// Global flags, bound on the root command and inherited by every subcommand.
var (
	// jsonOutput switches command output and errors to JSON.
	jsonOutput bool

	// verbose lowers the stderr log level to debug.
	verbose bool

	// debugLog is a file that receives the library's debug records.
	debugLog string
)

// Build information, injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rayzer",
		Short: "Distribute space across constraints and split rectangles",
		Long: `rayzer distributes a budget across an ordered list of constraints and
uses the result to split rectangles into nested rows and columns.

Constraint tokens:
  10     fixed         >=10   minimum       <=10   maximum
  10%    percentage    :10    ratio`,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Every subcommand gets a stderr logger through its context.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debugLog != "" {
				if err := debug.Init(debugLog); err != nil {
					return WrapCLIError(ExitGeneralError, "cannot open debug log", err)
				}
			}
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&debugLog, "debug-log", "",
		"Append layout debug records to this file (also settable with "+debug.EnvVar+")")

	rootCmd.AddCommand(NewDistributeCommand())
	rootCmd.AddCommand(NewSplitCommand())
	rootCmd.AddCommand(NewRenderCommand())

	return rootCmd
}

// Execute runs rootCmd and exits the process with the code its error maps to.
func Execute(rootCmd *cobra.Command) {
	code := run(rootCmd, os.Stderr)
	_ = debug.Close()
	os.Exit(int(code))
}

// run executes rootCmd and reports any error to stderr.
func run(rootCmd *cobra.Command, stderr io.Writer) ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, cliErr.Message, cliErr.Err)
		return cliErr.Code
	}
	printError(stderr, err.Error(), nil)
	return ExitGeneralError
}

// printError writes an error as text or JSON depending on --json.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]any{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(map[string]any{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
