package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/yxzwayne/amazon-q-developer-cli/amazonq"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the adapter's pieces are in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			failed := false

			scriptPath := a.agent.InstallScriptPath()
			if _, err := os.Stat(scriptPath); err != nil {
				failed = true
				fmt.Fprintf(out, "fail: install script missing at %s\n", scriptPath)
				fmt.Fprintf(out, "      qbench script --export %s recreates it\n", amazonq.ScriptName)
			} else {
				fmt.Fprintf(out, "ok:   install script at %s\n", scriptPath)
			}

			if path, err := exec.LookPath(amazonq.BinaryName); err != nil {
				fmt.Fprintf(out, "warn: %s not on PATH; the install script provides it in the task environment\n", amazonq.BinaryName)
			} else {
				fmt.Fprintf(out, "ok:   %s at %s\n", amazonq.BinaryName, path)
			}

			env := a.agent.Env()
			credKeys := []string{
				amazonq.EnvAccessKeyID,
				amazonq.EnvSecretAccessKey,
				amazonq.EnvSessionToken,
			}
			for _, key := range credKeys {
				if env[key] == "" {
					fmt.Fprintf(out, "warn: %s is not set\n", key)
				} else {
					fmt.Fprintf(out, "ok:   %s is set\n", key)
				}
			}

			buildKeys := []string{
				amazonq.EnvGitHash,
				amazonq.EnvBuildBucketName,
				amazonq.EnvDownloadRoleARN,
			}
			for _, key := range buildKeys {
				if env[key] == "" {
					fmt.Fprintf(out, "warn: %s is not set\n", key)
				} else {
					fmt.Fprintf(out, "ok:   %s is set\n", key)
				}
			}

			if a.runLog.Enabled() {
				fmt.Fprintf(out, "ok:   run log at %s\n", a.auditDB)
			} else {
				fmt.Fprintln(out, "info: run log disabled; set --audit-db or QBENCH_AUDIT_DB to enable")
			}

			if failed {
				return fmt.Errorf("doctor found problems")
			}

			return nil
		},
	}
}
