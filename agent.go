// Package terminalbench defines the contract between the terminal-bench
// harness and installed agent adapters.
//
// The harness owns process supervision, container provisioning, and timeout
// enforcement. An adapter only supplies configuration: a display name, the
// environment variables its agent needs, the path of an install script, and
// the command lines that hand a task to the agent.
package terminalbench

import "os"

// InstalledAgent describes an agent that the harness installs into a task
// environment and then drives through shell commands.
//
// All methods are pure given their inputs and the ambient process
// environment; none of them raise errors. Whether the install script exists
// or the agent binary is present is for the harness to discover when it
// tries to use them.
type InstalledAgent interface {
	// Name returns the agent's human-readable identifier.
	Name() string

	// Env returns the environment variables to inject into the task
	// environment before the install script or any command runs. Every
	// declared key is present, with "" for values the ambient environment
	// does not supply.
	Env() map[string]string

	// InstallScriptPath returns the absolute path of the setup script that
	// installs the agent binary. The path does not depend on the caller's
	// working directory.
	InstallScriptPath() string

	// RunCommands returns the command sequence the harness executes to hand
	// the task description to the agent.
	RunCommands(taskDescription string) []TerminalCommand
}

// AmbientEnv collects the named variables from the process environment.
// Unset variables map to the empty string, so the result always contains
// exactly the requested keys.
func AmbientEnv(names ...string) map[string]string {
	env := make(map[string]string, len(names))
	for _, name := range names {
		env[name] = os.Getenv(name)
	}

	return env
}
