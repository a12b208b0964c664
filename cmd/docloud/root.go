package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	checkMode bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "docloud",
		Short:         "docloud runs DigitalOcean automation tasks from declarative task files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.checkMode, "check", false, "Report what would change without submitting anything")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newModulesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
