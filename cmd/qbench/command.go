package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yxzwayne/amazon-q-developer-cli/taskfile"
)

func newCommandCmd(a *app) *cobra.Command {
	var (
		taskText string
		taskFile string
		asShell  bool
	)

	cmd := &cobra.Command{
		Use:   "command",
		Short: "Build the qchat command line for a task description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			description, taskID, err := resolveTask(cmd, taskText, taskFile)
			if err != nil {
				return err
			}

			cmds := a.agent.RunCommands(description)

			a.logger.Debug().
				Str("agent", a.agent.Name()).
				Int("commands", len(cmds)).
				Msg("built run commands")

			payload := map[string]any{
				"task_id": taskID,
				"command": cmds[0].Command,
			}
			if err := a.runLog.LogEvent(a.agent.Name(), "command.build", payload); err != nil {
				a.logger.Warn().Err(err).Msg("run log write failed")
			}

			out := cmd.OutOrStdout()

			if asShell {
				fmt.Fprintln(out, cmds[0].Command)

				return nil
			}

			data, err := json.MarshalIndent(cmds, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal commands: %w", err)
			}
			fmt.Fprintln(out, string(data))

			return nil
		},
	}

	cmd.Flags().StringVar(&taskText, "task", "", "task description text")
	cmd.Flags().StringVar(&taskFile, "task-file", "", "path to a YAML task file")
	cmd.Flags().BoolVar(&asShell, "shell", false, "print only the raw command line")

	return cmd
}

func resolveTask(cmd *cobra.Command, taskText, taskFile string) (description, taskID string, err error) {
	taskSet := cmd.Flags().Changed("task")
	fileSet := cmd.Flags().Changed("task-file")

	switch {
	case taskSet && fileSet:
		return "", "", fmt.Errorf("use --task or --task-file, not both")
	case fileSet:
		task, err := taskfile.Load(taskFile)
		if err != nil {
			return "", "", err
		}

		return task.Description, task.ID, nil
	case taskSet:
		// An empty --task is allowed; it becomes an empty-quoted argument.
		return taskText, "", nil
	default:
		return "", "", fmt.Errorf("one of --task or --task-file is required")
	}
}
