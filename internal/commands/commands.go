package commands

import (
	"github.com/spf13/cobra"

	"taskpad/internal/config"
	"taskpad/internal/ui"
)

type rootOptions struct {
	ConfigPath string
}

func New() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "taskpad",
		Short:         "A small to-do list for the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(ro, terminalFor(cmd, false))
			if err != nil {
				return err
			}
			defer e.Close()
			return ui.Run(e.app, e.cfg, e.clock)
		},
	}
	cmd.PersistentFlags().StringVar(&ro.ConfigPath, "config", config.ResolveConfigPath(),
		"Path to the TOML config file.")

	AddCommands(cmd, ro)
	return cmd
}

func AddCommands(topLevel *cobra.Command, ro *rootOptions) {
	addAdd(topLevel, ro)
	addList(topLevel, ro)
	addToggle(topLevel, ro)
	addEdit(topLevel, ro)
	addRemove(topLevel, ro)
	addClear(topLevel, ro)
	addExport(topLevel, ro)
}
