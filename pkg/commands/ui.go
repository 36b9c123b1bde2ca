package commands

import (
	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/app"
	"daybook.dev/daybook/pkg/backend"
	"daybook.dev/daybook/pkg/store"
	teaui "daybook.dev/daybook/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
daybook ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			svc, err := app.NewService(p)
			if err != nil {
				return err
			}
			client := backend.New(cfg.BackendURL(), cfg.Timeout())
			return teaui.Run(svc, client)
		},
	}

	topLevel.AddCommand(cmd)
}
