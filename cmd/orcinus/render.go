package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groblegark/orcinus/internal/orca"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the ORCA input document from the current answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := orca.Generate(session.Values()).Render()
		if renderOutput == "" {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(renderOutput, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", renderOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", renderOutput)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write the document to a file instead of stdout")
}
