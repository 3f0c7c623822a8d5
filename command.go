package terminalbench

import (
	"encoding/json"
	"time"
)

// TerminalCommand describes one shell invocation for the harness to run
// inside the task environment.
type TerminalCommand struct {
	// Command is the full command line. Any untrusted text, such as a task
	// description, must already be shell-escaped by whoever built it.
	Command string

	// MaxTimeout is the longest the harness lets the command run before
	// killing it. The harness enforces it; this package only carries it.
	MaxTimeout time.Duration

	// Block reports whether the harness must wait for the command to finish
	// before moving on.
	Block bool
}

// MarshalJSON emits the harness wire shape, with the timeout expressed in
// seconds as max_timeout_sec.
func (c TerminalCommand) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Command       string  `json:"command"`
		MaxTimeoutSec float64 `json:"max_timeout_sec"`
		Block         bool    `json:"block"`
	}{
		Command:       c.Command,
		MaxTimeoutSec: c.MaxTimeout.Seconds(),
		Block:         c.Block,
	})
}
