package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"taskpad/internal/render"
	"taskpad/internal/task"
)

type filterOptions struct {
	Filter string
}

func addFilterArgs(cmd *cobra.Command, o *filterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", task.FilterAll.String(),
		"Which tasks to show: all, active or completed.")
}

func (o *filterOptions) parse() (task.Filter, error) {
	return task.ParseFilter(o.Filter)
}

func addList(topLevel *cobra.Command, ro *rootOptions) {
	fo := &filterOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the task list.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := fo.parse()
			if err != nil {
				return err
			}
			e, err := setup(ro, terminalFor(cmd, false))
			if err != nil {
				return err
			}
			defer e.Close()

			e.app.SetFilter(f)
			printView(cmd.OutOrStdout(), e.app.View())
			return nil
		},
	}
	addFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func printView(w io.Writer, v render.View) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	done := color.New(color.FgGreen)

	if v.Empty {
		fmt.Fprintln(w, faint.Sprint(render.EmptyIcon+" "+render.EmptyMessage))
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint(""), bold.Sprint("TASK"), bold.Sprint("ADDED"))
		for _, r := range v.Rows {
			mark, text := "[ ]", r.Text
			if r.Completed {
				mark, text = done.Sprint("[x]"), faint.Sprint(r.Text)
			}
			tbl.AddRow(r.ID, mark, text, r.Added)
		}
		fmt.Fprintln(w, tbl)
	}
	fmt.Fprintln(w, bold.Sprint(v.Summary))
}

func addExport(topLevel *cobra.Command, ro *rootOptions) {
	fo := &filterOptions{}
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as an HTML fragment.",
		Example: `
taskpad export --filter active -o tasks.html
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := fo.parse()
			if err != nil {
				return err
			}
			e, err := setup(ro, terminalFor(cmd, false))
			if err != nil {
				return err
			}
			defer e.Close()

			e.app.SetFilter(f)
			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return render.HTML(w, e.app.View())
		},
	}
	addFilterArgs(cmd, fo)
	cmd.Flags().StringVarP(&out, "output", "o", "", "File to write instead of stdout.")
	topLevel.AddCommand(cmd)
}
