package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yxzwayne/amazon-q-developer-cli/amazonq"
)

func newScriptCmd(a *app) *cobra.Command {
	var (
		printBody  bool
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Print the install script path, or export its embedded contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printBody && exportPath != "" {
				return fmt.Errorf("use --print or --export, not both")
			}

			switch {
			case printBody:
				_, err := cmd.OutOrStdout().Write(amazonq.InstallScript())

				return err
			case exportPath != "":
				if err := os.WriteFile(exportPath, amazonq.InstallScript(), 0o755); err != nil {
					return fmt.Errorf("export script: %w", err)
				}
				a.logger.Info().Str("path", exportPath).Msg("install script exported")

				return nil
			default:
				fmt.Fprintln(cmd.OutOrStdout(), a.agent.InstallScriptPath())

				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&printBody, "print", false, "print the script contents")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the embedded script to the given path")

	return cmd
}
