package main

import (
	"bytes"
	"testing"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd == nil {
		t.Fatal("newRootCmd() returned nil")
	}

	if cmd.Use != "qbench" {
		t.Errorf("expected use 'qbench', got '%s'", cmd.Use)
	}

	subCommands := []string{"describe", "env", "command", "script", "doctor", "task", "log"}
	for _, sub := range subCommands {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == sub {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not found", sub)
		}
	}
}

// runQbench executes the CLI in-process and returns its stdout.
func runQbench(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	if stderr.Len() > 0 {
		t.Logf("stderr: %s", stderr.String())
	}

	return stdout.String(), err
}
