package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/commands/options"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "toggle",
		Aliases: []string{"complete", "done"},
		Short:   "Flip a task between open and completed",
		Example: `
daybook toggle <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			return output.HandleError(svc.ToggleTask(io.ID))
		},
	}

	topLevel.AddCommand(cmd)
}
