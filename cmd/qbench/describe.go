package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yxzwayne/amazon-q-developer-cli/amazonq"
)

type describeOutput struct {
	Name          string          `json:"name"`
	Binary        string          `json:"binary"`
	InstallScript string          `json:"install_script"`
	MaxTimeoutSec float64         `json:"max_timeout_sec"`
	Env           map[string]bool `json:"env"`
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the adapter's name, binary, install script path, and environment keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmds := a.agent.RunCommands("")

			out := describeOutput{
				Name:          a.agent.Name(),
				Binary:        amazonq.BinaryName,
				InstallScript: a.agent.InstallScriptPath(),
				MaxTimeoutSec: cmds[0].MaxTimeout.Seconds(),
				Env:           envPresence(a.agent.Env()),
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal description: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}
