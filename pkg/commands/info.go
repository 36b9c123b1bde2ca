package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where data lives and which backend model answers",
		Example: `
daybook info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			fmt.Printf("data:    %s\n", cfg.BasePath())
			fmt.Printf("backend: %s\n", cfg.BackendURL())

			client, err := backendClient()
			if err != nil {
				return err
			}
			info, err := client.GetModelInfo(context.Background())
			if err != nil {
				fmt.Printf("model:   unavailable (%v)\n", err)
				return nil
			}
			name := info.Info.DisplayName
			if name == "" {
				name = info.Name
			}
			fmt.Printf("model:   %s (temp %.1f, max %d tokens)\n", name, info.Temperature, info.MaxTokens)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
