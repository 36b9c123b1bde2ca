package commands

import (
	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/commands/options"
	"daybook.dev/daybook/pkg/printers"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       "get [collection]",
		Short:     "List tasks, notes, events, or quick notes",
		ValidArgs: []string{"tasks", "notes", "events", "quick"},
		Example: `
daybook get
daybook get tasks
daybook get quick --show-id
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			which := ""
			if len(args) > 0 {
				which = args[0]
			}

			pp := &printers.PrettyPrint{ShowID: io.ShowID}
			if which == "" || which == "tasks" {
				pp.TitleWithCount("Tasks", len(svc.Tasks()))
				pp.Tasks(svc.Tasks())
			}
			if which == "" || which == "notes" {
				pp.TitleWithCount("Notes", len(svc.Notes()))
				pp.Notes(svc.Notes())
			}
			if which == "" || which == "events" {
				pp.TitleWithCount("Events", len(svc.Events()))
				pp.Events(svc.Events())
			}
			if which == "" || which == "quick" {
				pp.TitleWithCount("Quick notes", len(svc.QuickNotes()))
				pp.QuickNotes(svc.QuickNotes())
			}
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
