package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groblegark/orcinus/internal/orca"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return every answer to its default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session.Reset()
		if err := store.Save(session.Snapshot()); err != nil {
			return fmt.Errorf("save answers: %w", err)
		}
		fmt.Println(orca.Generate(session.Values()).Render())
		return nil
	},
}
