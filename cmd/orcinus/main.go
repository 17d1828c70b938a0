package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/groblegark/orcinus/internal/config"
	"github.com/groblegark/orcinus/internal/events"
	"github.com/groblegark/orcinus/internal/form"
	"github.com/groblegark/orcinus/internal/manifest"
	"github.com/groblegark/orcinus/internal/orca"
	"github.com/groblegark/orcinus/internal/schema"
	"github.com/groblegark/orcinus/internal/state"
	"github.com/groblegark/orcinus/internal/ui"
)

var (
	statePath  string
	schemaPath string
	jsonOutput bool
	noColor    bool

	session *form.Session
	store   state.Store

	// Visibility changes collected while the current command runs, so set
	// can tell the user which questions appeared or disappeared.
	visibilityNotes []events.VisibilityChanged
)

func defaultStatePath() string {
	cfg, err := config.Load()
	if err != nil {
		return ".orcinus_questions.toml"
	}
	return cfg.StatePath()
}

var rootCmd = &cobra.Command{
	Use:   "orcinus",
	Short: "Generate ORCA input files from a questionnaire",
	Long: "orcinus interprets a catalog of questions about a quantum chemistry\n" +
		"calculation and regenerates the corresponding ORCA input file as the\n" +
		"answers change. Answers persist between runs.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}

		fields := orca.Fields()
		if schemaPath != "" {
			overlay, err := manifest.Load(schemaPath)
			if err != nil {
				return err
			}
			fields = schema.Merge(fields, overlay)
		}
		sc, err := schema.New(fields...)
		if err != nil {
			return err
		}

		session = form.New(sc, form.WithPublisher(events.PublisherFunc(
			func(topic string, event any) error {
				if topic == events.TopicVisibilityChanged {
					if d, ok := event.(events.VisibilityChanged); ok {
						visibilityNotes = append(visibilityNotes, d)
					}
				}
				return nil
			})))

		store = state.NewFileStore(statePath)
		snap, err := store.Load()
		if err != nil {
			return err
		}
		session.Restore(snap)
		// Restoring state replays visibility changes; they are not news.
		visibilityNotes = visibilityNotes[:0]
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&statePath, "state", defaultStatePath(), "answers file")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "HCL schema overlay file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
