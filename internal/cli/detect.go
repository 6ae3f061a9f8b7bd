package cli

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	fileconv "github.com/nicholasgasior/fileconv-go"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Show the detected format of a file",
	Long: `Detect prints the format the engine derives from the file extension.
When the file exists, the content-based MIME type is shown alongside as a
diagnostic; the engine itself never sniffs content.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		format := fileconv.DetectFormat(path)
		fmt.Printf("format: %s\n", format)

		if _, err := os.Stat(path); err == nil {
			if mtype, err := mimetype.DetectFile(path); err == nil {
				fmt.Printf("content mime: %s\n", mtype.String())
			}
		}

		if format == fileconv.FormatUnknown {
			os.Exit(1)
		}
	},
}
