package commands

import (
	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/export"
	"daybook.dev/daybook/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	out := ""
	ics := false

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON, or the calendar as .ics",
		Example: `
daybook export
daybook export --out backup.json
daybook export --ics --out events.ics
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			if ics {
				return output.HandleError(export.WriteEventsICS(p.Events(), out))
			}
			return output.HandleError(export.WriteSnapshot(p, out))
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file; defaults per format.")
	cmd.Flags().BoolVar(&ics, "ics", false, "Export events as iCalendar instead of a JSON snapshot.")
	topLevel.AddCommand(cmd)
}
