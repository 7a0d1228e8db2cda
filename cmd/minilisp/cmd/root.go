package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	autoClose bool
	maxDepth  int
)

// errReported is returned once a diagnostic has already been printed.
var errReported = errors.New("failed")

var rootCmd = &cobra.Command{
	Use:   "minilisp <file>",
	Short: "Checks that a mini-lisp source file is well-formed",
	Long: `minilisp scans a source file into tokens and checks them against
the grammar

  program := start*
  start   := '(' list ')' | atom
  list    := start list | ε

It prints the token stream, the position table and either "parsing
success" or the first error found, and exits with status 1 on failure.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runParse,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			printError(rootCmd.ErrOrStderr(), err)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MINILISP_CONFIG or ./minilisp.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&autoClose, "auto-close", false, "close lists left open at the end of input")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum list nesting depth (0 means no limit)")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
