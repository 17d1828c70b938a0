package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/groblegark/orcinus/internal/orca"
	"github.com/groblegark/orcinus/internal/ui"
)

var setCmd = &cobra.Command{
	Use:   "set NAME=VALUE [NAME=VALUE...]",
	Short: "Answer questions and regenerate the document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			name, raw, ok := splitAssignment(arg)
			if !ok {
				return fmt.Errorf("invalid assignment %q (want NAME=VALUE)", arg)
			}
			f, found := session.Schema().Lookup(name)
			if !found {
				return fmt.Errorf("unknown field %q", name)
			}
			v, err := f.Parse(raw)
			if err != nil {
				return err
			}
			if err := session.Set(name, v); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "%s = %s\n", ui.RenderAccent(name), ui.RenderValue(raw))
		}

		if err := store.Save(session.Snapshot()); err != nil {
			return fmt.Errorf("save answers: %w", err)
		}

		for _, d := range visibilityNotes {
			verb := "now hidden"
			if d.Visible {
				verb = "now shown"
			}
			fmt.Fprintln(os.Stderr, ui.RenderMuted(fmt.Sprintf("%s is %s", d.Field, verb)))
		}
		visibilityNotes = visibilityNotes[:0]

		fmt.Println(orca.Generate(session.Values()).Render())
		return nil
	},
}

// splitAssignment splits "name=value" into (name, value, true).
// Returns ("", "", false) if there is no '=' or name is empty.
func splitAssignment(s string) (string, string, bool) {
	i := strings.IndexByte(s, '=')
	if i <= 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
