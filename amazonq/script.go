package amazonq

import (
	_ "embed"
	"path/filepath"
	"runtime"
	"sync"
)

// ScriptName is the install script co-located with this package's source.
const ScriptName = "setup_amazon_q.sh"

//go:embed setup_amazon_q.sh
var installScript []byte

// InstallScript returns the contents of the install script. It is embedded
// at build time so callers can materialize it even when the source tree is
// not present, such as from an installed binary.
func InstallScript() []byte {
	out := make([]byte, len(installScript))
	copy(out, installScript)

	return out
}

var (
	scriptPathOnce sync.Once
	scriptPath     string
)

// InstallScriptPath returns the path of the install script next to this
// package's source file. The path is resolved from the compiled-in source
// location, never from the working directory, so it is stable across chdir.
func (*Agent) InstallScriptPath() string {
	scriptPathOnce.Do(func() {
		_, thisFile, _, ok := runtime.Caller(0)
		if !ok {
			scriptPath = ScriptName

			return
		}

		scriptPath = filepath.Join(filepath.Dir(thisFile), ScriptName)
	})

	return scriptPath
}
