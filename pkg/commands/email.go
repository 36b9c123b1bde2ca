package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/backend"
	"daybook.dev/daybook/pkg/commands/options"
	"daybook.dev/daybook/pkg/store"
)

func backendClient() (*backend.Client, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return backend.New(cfg.BackendURL(), cfg.Timeout()), nil
}

func addEmail(topLevel *cobra.Command) {
	to := ""
	subject := ""
	body := ""
	at := ""

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send or schedule an email through the backend",
		Example: `
daybook email --to=you@example.com --subject=hi --body="hello there"
daybook email --to=you@example.com --subject=hi --at="2024-06-20 09:00"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if to == "" {
				return errors.New("requires --to")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			client, err := backendClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if at == "" {
				if err := client.SendEmail(ctx, to, subject, body); err != nil {
					return output.HandleError(err)
				}
				fmt.Println("email sent")
				return nil
			}

			runAt, err := options.ParseWhen(at)
			if err != nil {
				return output.HandleError(err)
			}
			secs, err := client.ScheduleEmail(ctx, to, subject, body, runAt)
			if err != nil {
				return output.HandleError(err)
			}
			fmt.Printf("email scheduled, sending in %.0f seconds\n", secs)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Receiver email address.")
	cmd.Flags().StringVar(&subject, "subject", "", "Email subject.")
	cmd.Flags().StringVar(&body, "body", "", "Email body.")
	cmd.Flags().StringVar(&at, "at", "", `Schedule for later, example: --at="2024-06-20 09:00".`)
	topLevel.AddCommand(cmd)
}
