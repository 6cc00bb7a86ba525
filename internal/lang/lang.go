// Package lang sets up project directories for language toolchains. Each
// supported language registers a Setup; unknown codes fail the lookup
// without side effects.
package lang

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// Setup prepares a project directory for one language toolchain.
type Setup interface {
	Name() string
	Apply(dir string) error
}

// runCommand executes a setup tool in dir, replaceable in tests.
var runCommand = func(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// pythonSetup bootstraps a uv-managed Python project.
type pythonSetup struct{}

func (pythonSetup) Name() string { return "python" }

func (pythonSetup) Apply(dir string) error {
	return runCommand(dir, "uv", "init", "--python", "3", "--pre-commit")
}

// registry maps language codes to their setup. Aliases share one Setup.
var registry = map[string]Setup{
	"python": pythonSetup{},
	"py":     pythonSetup{},
}

// Lookup returns the setup registered for code.
func Lookup(code string) (Setup, bool) {
	s, ok := registry[code]
	return s, ok
}

// Supported returns the registered language codes, sorted.
func Supported() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
