package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type modulesOptions struct {
	jsonOutput bool
}

func newModulesCmd() *cobra.Command {
	opts := &modulesOptions{}

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the available automation modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModules(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runModules(cmd *cobra.Command, opts *modulesOptions) error {
	var entries []module.Metadata
	for _, name := range module.Names() {
		mod, err := module.Get(name)
		if err != nil {
			return err
		}
		entries = append(entries, mod.Metadata())
	}

	if opts.jsonOutput {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Description)
	}
	return w.Flush()
}
