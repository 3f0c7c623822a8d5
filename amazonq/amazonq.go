// Package amazonq adapts the Amazon Q CLI chat agent ("qchat") to the
// terminal-bench installed-agent contract.
package amazonq

import (
	"time"

	"github.com/kballard/go-shellquote"

	terminalbench "github.com/yxzwayne/amazon-q-developer-cli"
)

// Environment variables the adapter forwards into the task environment.
const (
	// EnvSigV4 makes qchat authenticate with SigV4 request signing using the
	// forwarded AWS credentials instead of a Builder ID bearer token.
	EnvSigV4 = "AMAZON_Q_SIGV4"
	// EnvAccessKeyID is the AWS access key id credential field.
	EnvAccessKeyID = "AWS_ACCESS_KEY_ID"
	// EnvSecretAccessKey is the AWS secret access key credential field.
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	// EnvSessionToken is the AWS session token credential field.
	EnvSessionToken = "AWS_SESSION_TOKEN"
	// EnvGitHash names the qchat build the install script downloads.
	EnvGitHash = "GIT_HASH"
	// EnvDownloadRoleARN is the role the install script assumes to read the
	// build artifact bucket.
	EnvDownloadRoleARN = "CHAT_DOWNLOAD_ROLE_ARN"
	// EnvBuildBucketName is the bucket holding qchat build artifacts.
	EnvBuildBucketName = "CHAT_BUILD_BUCKET_NAME"
)

// BinaryName is the agent executable the run commands invoke.
const BinaryName = "qchat"

const (
	agentName = "Amazon Q CLI"

	// sigV4Enabled is the value of EnvSigV4 in every environment the adapter
	// produces. Process environments carry strings, so the flag is "1".
	sigV4Enabled = "1"

	// maxTaskTimeout is how long the harness lets one chat invocation run.
	maxTaskTimeout = 30 * time.Minute
)

// Agent is the terminal-bench adapter for qchat. The zero value is ready to
// use; every method is a pure read of the ambient process environment or
// plain string construction.
type Agent struct{}

var _ terminalbench.InstalledAgent = (*Agent)(nil)

// New returns an Agent ready to be registered with a harness.
func New() *Agent {
	return &Agent{}
}

// Name returns the display name the harness reports for this agent.
func (*Agent) Name() string {
	return agentName
}

// Env returns the variables to inject into the task environment: the SigV4
// flag plus the credential and build-metadata variables copied from the
// ambient environment. Every key is always present; unset ambient variables
// come through as empty strings.
func (*Agent) Env() map[string]string {
	env := terminalbench.AmbientEnv(
		EnvAccessKeyID,
		EnvSecretAccessKey,
		EnvSessionToken,
		EnvGitHash,
		EnvDownloadRoleARN,
		EnvBuildBucketName,
	)
	env[EnvSigV4] = sigV4Enabled

	return env
}

// RunCommands returns the single blocking command that hands taskDescription
// to qchat. The description is shell-escaped as one word, so the harness can
// paste the command line into a shell verbatim.
func (*Agent) RunCommands(taskDescription string) []terminalbench.TerminalCommand {
	command := shellquote.Join(
		BinaryName,
		"chat",
		"--no-interactive",
		"--trust-all-tools",
		taskDescription,
	)

	return []terminalbench.TerminalCommand{{
		Command:    command,
		MaxTimeout: maxTaskTimeout,
		Block:      true,
	}}
}
