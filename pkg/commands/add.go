package commands

import (
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"daybook.dev/daybook/pkg/commands/options"
	"daybook.dev/daybook/pkg/model"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
daybook add task buy milk
daybook add note meeting minutes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd)
	addNote(cmd)
	addEvent(cmd)
	addQuick(cmd)

	topLevel.AddCommand(cmd)
}

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	do := &options.DateOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
daybook add task buy milk --date="2024-06-15" --priority=high -t errands
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			priority, err := model.ParsePriority(to.Priority)
			if err != nil {
				return output.HandleError(err)
			}
			date, err := do.GetDate()
			if err != nil {
				return output.HandleError(err)
			}
			t := model.Task{
				Title:    title,
				Priority: priority,
				Category: to.Category,
				Tags:     to.Tags,
			}
			if date != nil {
				t.Date = model.Timestamp{Time: *date}
			}
			_, err = svc.AddTask(t)
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddDateArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNote(topLevel *cobra.Command) {
	title := ""
	content := ""
	category := ""
	var tags []string

	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Add a note",
		Example: `
daybook add note standup --content="waiting on review"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a note title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			_, err = svc.AddNote(model.Note{
				Title:    title,
				Content:  content,
				Category: category,
				Tags:     tags,
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Note body.")
	cmd.Flags().StringVar(&category, "category", "", "Category label.")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag the note; repeatable.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addEvent(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events"},
		Short:   "Add a calendar event",
		Example: `
daybook add event dentist --start="2024-06-20 14:30" --end="2024-06-20 15:00"
daybook add event offsite --start="2024-06-21" --all-day
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if eo.StartString == "" {
				return errors.New("requires --start")
			}
			start, err := options.ParseWhen(eo.StartString)
			if err != nil {
				return output.HandleError(err)
			}
			e := model.CalendarEvent{
				Title:     title,
				StartDate: model.Timestamp{Time: start},
				AllDay:    eo.AllDay,
				Color:     eo.Color,
				Category:  eo.Category,
			}
			if eo.EndString != "" {
				end, err := options.ParseWhen(eo.EndString)
				if err != nil {
					return output.HandleError(err)
				}
				e.EndDate = model.Timestamp{Time: end}
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			_, err = svc.AddEvent(e)
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addQuick(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "quick",
		Aliases: []string{"jot"},
		Short:   "Add a quick note",
		Example: `
daybook add quick call the bank
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires some text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			_, err = svc.AddQuickNote(strings.Join(args, " "))
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
