// Package harness builds the qbench binary and the qchat stub once per test
// run and executes them for the integration tests.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

var (
	repoRootOnce sync.Once
	repoRoot     string
	repoRootErr  error

	qbenchOnce sync.Once
	qbenchPath string
	qbenchErr  error

	stubOnce sync.Once
	stubDir  string
	stubErr  error
)

// RepoRoot returns the repository root for the current module.
func RepoRoot(t *testing.T) string {
	t.Helper()

	repoRootOnce.Do(func() {
		_, file, _, ok := runtime.Caller(0)
		if !ok {
			repoRootErr = fmt.Errorf("runtime.Caller failed")
			return
		}

		root := filepath.Dir(filepath.Dir(filepath.Dir(file)))
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
			repoRootErr = fmt.Errorf("verify repo root: %w", err)
			return
		}
		repoRoot = root
	})

	if repoRootErr != nil {
		t.Fatalf("resolve repo root: %v", repoRootErr)
	}
	return repoRoot
}

// BuildQbench compiles the qbench CLI once per test run and returns its path.
func BuildQbench(t *testing.T) string {
	t.Helper()
	root := RepoRoot(t)

	qbenchOnce.Do(func() {
		dir, err := os.MkdirTemp("", "qbench-bin-")
		if err != nil {
			qbenchErr = fmt.Errorf("create temp dir: %w", err)
			return
		}
		outPath := filepath.Join(dir, "qbench")

		if err := goBuild(root, outPath, "./cmd/qbench"); err != nil {
			qbenchErr = err
			return
		}
		qbenchPath = outPath
	})

	if qbenchErr != nil {
		t.Fatalf("build qbench binary: %v", qbenchErr)
	}
	return qbenchPath
}

// StubDir compiles the qchat stub once per test run and returns the
// directory holding it, suitable for prepending to PATH.
func StubDir(t *testing.T) string {
	t.Helper()
	root := RepoRoot(t)

	stubOnce.Do(func() {
		dir, err := os.MkdirTemp("", "qchat-stub-")
		if err != nil {
			stubErr = fmt.Errorf("create temp dir: %w", err)
			return
		}

		if err := goBuild(root, filepath.Join(dir, "qchat"), "./testdata/qchat"); err != nil {
			stubErr = err
			return
		}
		stubDir = dir
	})

	if stubErr != nil {
		t.Fatalf("build qchat stub: %v", stubErr)
	}
	return stubDir
}

func goBuild(root, outPath, pkg string) error {
	cmd := exec.Command("go", "build", "-o", outPath, pkg)
	cmd.Dir = root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build %s failed: %w\nstderr:\n%s", pkg, err, stderr.String())
	}
	return nil
}

// Run executes a command in the provided working directory with optional
// environment overrides and returns stdout, stderr, and the exit code.
func Run(t *testing.T, binPath, workDir string, args []string, env map[string]string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(binPath, args...)
	cmd.Dir = workDir
	if len(env) > 0 {
		cmd.Env = mergeEnv(env)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		ee, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("run %s: %v", binPath, err)
		}
		exitCode = ee.ExitCode()
	}

	return stdout.String(), stderr.String(), exitCode
}

func mergeEnv(overrides map[string]string) []string {
	env := make(map[string]string, len(overrides))
	for _, entry := range os.Environ() {
		key, val, _ := strings.Cut(entry, "=")
		env[key] = val
	}

	for k, v := range overrides {
		env[k] = v
	}

	merged := make([]string, 0, len(env))
	for k, v := range env {
		merged = append(merged, k+"="+v)
	}
	sort.Strings(merged)
	return merged
}

// RequireEqual fails the test with a unified diff when got differs from want.
func RequireEqual(t *testing.T, label, got, want string) {
	t.Helper()

	if got == want {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        strings.Split(want, "\n"),
		B:        strings.Split(got, "\n"),
		FromFile: label + " (want)",
		ToFile:   label + " (got)",
		Context:  3,
	}
	diffText, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("%s mismatch (diff failed: %v)\ngot:\n%s\nwant:\n%s", label, err, got, want)
	}
	t.Fatalf("%s mismatch:\n%s", label, diffText)
}
