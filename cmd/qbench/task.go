package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yxzwayne/amazon-q-developer-cli/taskfile"
)

func newTaskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Work with YAML task files",
	}

	cmd.AddCommand(newTaskValidateCmd(a))

	return cmd
}

func newTaskValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <task-file>",
		Short: "Validate a task file against the task schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := taskfile.Load(args[0])
			if err != nil {
				return err
			}

			a.logger.Debug().Str("id", task.ID).Msg("task file valid")

			if task.ID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (id %s)\n", args[0], task.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", args[0])
			}

			return nil
		},
	}
}
