// Package main provides the vibe-mut command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-mut/internal/analyze"
	"github.com/inodb/vibe-mut/internal/input"
	"github.com/inodb/vibe-mut/internal/seq"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		switch {
		case errors.Is(err, seq.ErrInvalidSequence):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Hint: sequences may only contain A, T, C, G\n")
		case errors.Is(err, analyze.ErrImplausiblePair):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Hint: this tool compares pairs separated by a single mutation event\n")
		case errors.Is(err, input.ErrSourceUnavailable):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Hint: check that the sequence file paths are correct\n")
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vibe-mut",
		Short: "Compare a wild-type and a patient DNA sequence",
		Long: `vibe-mut compares two DNA sequences that differ by a single mutation
event and reports the mutation at the nucleotide and amino-acid level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.vibe-mut.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vibe-mut version %s (%s) built %s\n", version, commit, date)
		},
	}
}

// initConfig loads ~/.vibe-mut.yaml (or --config) and default settings.
func initConfig() {
	viper.SetDefault("output.window", 5)
	viper.SetDefault("output.marker", "#")
	viper.SetDefault("cache.db", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".vibe-mut.yaml"))
		}
	}

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger: human-readable debug output when
// --verbose is set, silent otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// markerByte returns the first byte of the configured marker string.
func markerByte(s string) byte {
	if s == "" {
		return '#'
	}
	return s[0]
}
