package cli

import (
	"fmt"

	fileconv "github.com/nicholasgasior/fileconv-go"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported conversion paths",
	Run: func(cmd *cobra.Command, args []string) {
		engine := fileconv.New()
		paths := engine.SupportedPaths()

		// Group outputs per input format for a compact listing.
		var inputs []fileconv.FileFormat
		outputs := make(map[fileconv.FileFormat][]fileconv.FileFormat)
		for _, p := range paths {
			if _, ok := outputs[p.Input]; !ok {
				inputs = append(inputs, p.Input)
			}
			outputs[p.Input] = append(outputs[p.Input], p.Output)
		}

		for _, in := range inputs {
			fmt.Printf("%-10s ->", in)
			for _, out := range outputs[in] {
				fmt.Printf(" %s", out)
			}
			fmt.Println()
		}
		fmt.Printf("\n%d conversion paths\n", len(paths))
	},
}
