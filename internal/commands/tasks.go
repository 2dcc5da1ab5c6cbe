package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errNoChange = errors.New("nothing changed")

func addAdd(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to the top of the list.",
		Example: `
taskpad add buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(ro, terminalFor(cmd, false))
			if err != nil {
				return err
			}
			defer e.Close()

			changed, err := e.app.Add(strings.Join(args, " "))
			done := ""
			if changed {
				t := e.app.State().Tasks[0]
				done = fmt.Sprintf("added %s %s", t.ID, t.Text)
			}
			return report(cmd, changed, err, done)
		},
	}
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done", "complete"},
		Short:   "Flip a task between open and done.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(ro, terminalFor(cmd, false))
			if err != nil {
				return err
			}
			defer e.Close()

			changed, err := e.app.Toggle(args[0])
			return report(cmd, changed, err, "toggled "+args[0])
		},
	}
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command, ro *rootOptions) {
	var text string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the text of a task.",
		Example: `
taskpad edit 1717234200000
taskpad edit 1717234200000 --text "buy oat milk"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialogs := terminalFor(cmd, false)
			if cmd.Flags().Changed("text") {
				dialogs.reply = &text
			}
			e, err := setup(ro, dialogs)
			if err != nil {
				return err
			}
			defer e.Close()

			changed, err := e.app.Edit(args[0])
			return report(cmd, changed, err, "edited "+args[0])
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "New text; skips the prompt.")
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, ro *rootOptions) {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task after confirmation.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(ro, terminalFor(cmd, yes))
			if err != nil {
				return err
			}
			defer e.Close()

			changed, err := e.app.Delete(args[0])
			return report(cmd, changed, err, "deleted "+args[0])
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command, ro *rootOptions) {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(ro, terminalFor(cmd, yes))
			if err != nil {
				return err
			}
			defer e.Close()

			changed, err := e.app.ClearCompleted()
			return report(cmd, changed, err, "cleared completed tasks")
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	topLevel.AddCommand(cmd)
}

// report prints done or a no-op note. Unknown ids, declined prompts and
// empty edits are not errors.
func report(cmd *cobra.Command, changed bool, err error, done string) error {
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(cmd.OutOrStdout(), errNoChange)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}
