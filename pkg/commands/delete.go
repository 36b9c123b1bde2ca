package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/app"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete an entry by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	kinds := []struct {
		use string
		do  func(svc *app.Service, id string) error
	}{
		{"task", func(svc *app.Service, id string) error { return svc.DeleteTask(id) }},
		{"note", func(svc *app.Service, id string) error { return svc.DeleteNote(id) }},
		{"event", func(svc *app.Service, id string) error { return svc.DeleteEvent(id) }},
		{"quick", func(svc *app.Service, id string) error { return svc.DeleteQuickNote(id) }},
	}

	for _, kind := range kinds {
		do := kind.do
		sub := &cobra.Command{
			Use:   kind.use + " <id>",
			Short: "Delete a " + kind.use,
			Args: func(_ *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("requires exactly one id")
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				svc, err := loadService()
				if err != nil {
					return err
				}
				return output.HandleError(do(svc, args[0]))
			},
		}
		cmd.AddCommand(sub)
	}

	topLevel.AddCommand(cmd)
}
