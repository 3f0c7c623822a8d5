package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func newEnvCmd(a *app) *cobra.Command {
	var (
		asExport bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the environment map the adapter injects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asExport && asJSON {
				return fmt.Errorf("use --export or --json, not both")
			}

			env := a.agent.Env()

			a.logger.Debug().Int("keys", len(env)).Msg("environment map built")

			// The run log records key names and presence, never values.
			if err := a.runLog.LogEvent(a.agent.Name(), "env.describe", envPresence(env)); err != nil {
				a.logger.Warn().Err(err).Msg("run log write failed")
			}

			out := cmd.OutOrStdout()

			if asJSON {
				data, err := json.MarshalIndent(env, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal environment: %w", err)
				}
				fmt.Fprintln(out, string(data))

				return nil
			}

			keys := make([]string, 0, len(env))
			for key := range env {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				if asExport {
					fmt.Fprintf(out, "export %s=%s\n", key, shellquote.Join(env[key]))
				} else {
					fmt.Fprintf(out, "%s=%s\n", key, env[key])
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asExport, "export", false, "print as shell export statements")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

// envPresence reduces an environment map to key names and whether each has a
// value, so credential values never reach logs.
func envPresence(env map[string]string) map[string]bool {
	present := make(map[string]bool, len(env))
	for key, value := range env {
		present[key] = value != ""
	}

	return present
}
