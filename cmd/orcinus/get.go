package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [NAME...]",
	Short: "Show current answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			for _, f := range session.Schema().Fields() {
				names = append(names, f.Name)
			}
		} else {
			for _, name := range names {
				if _, ok := session.Schema().Lookup(name); !ok {
					return fmt.Errorf("unknown field %q", name)
				}
			}
		}
		if jsonOutput {
			printAnswersJSON(names)
		} else {
			printAnswersTable(names)
		}
		return nil
	},
}
