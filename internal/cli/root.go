// Package cli provides the command-line interface for fileconv.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nicholasgasior/fileconv-go/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	cfg    config.Config
	logger *slog.Logger

	cleanupLogger func() error
)

var rootCmd = &cobra.Command{
	Use:   "fileconv",
	Short: "Convert files between text, document, and tabular formats",
	Long: `Fileconv converts a file from one format to another based on the file
extensions of the input and output paths. Run "fileconv formats" to list
the supported conversion paths.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger, cleanupLogger = config.SetupLogger(cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cleanupLogger != nil {
			if err := cleanupLogger(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(detectCmd)
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
