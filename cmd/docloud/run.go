package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/digitalocean/ansible-collection-sub001/internal/config"
	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/logger"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type runOptions struct {
	TaskPath  string
	Verbose   bool
	CheckMode bool
}

var runCmdRunner = runTask

func newRunCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <task-file>",
		Short: "Execute a single task file and print the result envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions{
				TaskPath:  args[0],
				Verbose:   root.verbose,
				CheckMode: root.checkMode,
			}
			return runCmdRunner(cmd, opts)
		},
	}

	return cmd
}

func runTask(cmd *cobra.Command, opts runOptions) error {
	task, err := config.ParseTask(opts.TaskPath)
	if err != nil {
		return err
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}
	log = log.WithFields(map[string]any{
		"run_id": uuid.NewString(),
		"module": task.Module,
	})

	token, err := docloud.ResolveToken(task.Token)
	if err != nil {
		return err
	}

	clientOpts := docloud.ClientOptions{}
	if task.Client != nil {
		clientOpts.BaseURL = task.Client.BaseURL
		clientOpts.UserAgent = task.Client.UserAgent
	}
	session, err := docloud.NewSession(token, clientOpts)
	if err != nil {
		return err
	}

	mod, err := module.Get(task.Module)
	if err != nil {
		return err
	}

	log.Debug("dispatching module")

	env, err := mod.Run(cmd.Context(), &module.Request{
		Task:      task,
		Session:   session,
		CheckMode: opts.CheckMode,
		Log:       log,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if env.Failed {
		return fmt.Errorf("module %s failed: %s", task.Module, env.Msg)
	}
	return nil
}
