package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addRemind(topLevel *cobra.Command) {
	email := ""

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Let the scheduler parse meeting text and email a reminder",
		Long: "Sends free text (or a meeting link) to the backend, which extracts\n" +
			"the time, mode, and location, and schedules a reminder email.",
		Example: `
daybook remind --email=you@example.com standup tomorrow at 9am
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires meeting text or a link")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			client, err := backendClient()
			if err != nil {
				return err
			}
			r, err := client.ScheduleReminder(context.Background(), strings.Join(args, " "), email)
			if err != nil {
				return output.HandleError(err)
			}
			when := r.ScheduledTime
			if at, err := r.ScheduledAt(); err == nil {
				when = at.Local().Format("Mon Jan 2 15:04")
			}
			fmt.Printf("reminder %q scheduled for %s\n", r.Name, when)
			if r.Extraction.Mode != "" {
				fmt.Printf("mode: %s", r.Extraction.Mode)
				if r.Extraction.Link != "" {
					fmt.Printf(" (%s)", r.Extraction.Link)
				}
				if r.Extraction.Location != "" {
					fmt.Printf(" at %s", r.Extraction.Location)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Receiver email address.")
	_ = cmd.MarkFlagRequired("email")
	topLevel.AddCommand(cmd)
}
