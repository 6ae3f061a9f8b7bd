package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	fileconv "github.com/nicholasgasior/fileconv-go"
	"github.com/nicholasgasior/fileconv-go/internal/config"
	"github.com/spf13/cobra"
)

var (
	convertParams    []string
	convertParamFile string
	convertQuiet     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a file to another format",
	Long: `Convert reads the input file and writes it to the output path in the
format implied by the output extension. Converter-specific settings are
passed with repeated -p name=value flags or a YAML parameter file.

Examples:
  fileconv convert notes.txt notes.html
  fileconv convert data.json data.csv -p arrayPath=items
  fileconv convert report.pdf report.tsv -p tableIndex=1`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		params := fileconv.Parameters{}
		if convertParamFile != "" {
			fromFile, err := config.LoadParameterFile(convertParamFile)
			if err != nil {
				exitWithError("%v", err)
			}
			for name, value := range fromFile {
				params[name] = value
			}
		}
		for _, kv := range convertParams {
			name, value, ok := strings.Cut(kv, "=")
			if !ok {
				exitWithError("invalid parameter %q: expected name=value", kv)
			}
			params[name] = coerceParamValue(value)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var progress fileconv.ProgressFunc
		if !convertQuiet {
			progress = printProgress
		}

		engine := fileconv.New(fileconv.WithLogger(logger))
		result := engine.ConvertFile(ctx, args[0], args[1], params, progress)

		if !convertQuiet {
			fmt.Fprintln(os.Stderr)
		}
		if !result.Success {
			if result.Canceled() {
				exitWithError("conversion canceled after %s", result.Elapsed.Round(time.Millisecond))
			}
			exitWithError("%v", result.Err)
		}
		fmt.Printf("Converted %s (%s) to %s (%s) in %s\n",
			result.InputPath, result.InputFormat,
			result.OutputPath, result.OutputFormat,
			result.Elapsed.Round(time.Millisecond))
	},
}

// printProgress renders a single-line progress meter on stderr.
func printProgress(p fileconv.Progress) {
	fmt.Fprintf(os.Stderr, "\r%6.1f%%  %-50s", p.Percent, p.Message)
}

// coerceParamValue converts a flag value to its most specific type so
// parameter accessors see bools and numbers, not strings.
func coerceParamValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func init() {
	convertCmd.Flags().StringArrayVarP(&convertParams, "param", "p", nil, "converter parameter as name=value (repeatable)")
	convertCmd.Flags().StringVar(&convertParamFile, "param-file", "", "YAML file of converter parameters")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "suppress the progress meter")
}
