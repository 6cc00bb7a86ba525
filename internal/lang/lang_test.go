package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPythonAliases(t *testing.T) {
	for _, code := range []string{"python", "py"} {
		s, ok := Lookup(code)
		require.True(t, ok, code)
		assert.Equal(t, "python", s.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("rust")
	assert.False(t, ok)
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"py", "python"}, Supported())
}

func TestPythonSetupInvokesUvInit(t *testing.T) {
	var gotDir, gotName string
	var gotArgs []string
	orig := runCommand
	runCommand = func(dir, name string, args ...string) error {
		gotDir, gotName, gotArgs = dir, name, args
		return nil
	}
	defer func() { runCommand = orig }()

	s, ok := Lookup("py")
	require.True(t, ok)
	require.NoError(t, s.Apply("/some/project"))

	assert.Equal(t, "/some/project", gotDir)
	assert.Equal(t, "uv", gotName)
	assert.Equal(t, []string{"init", "--python", "3", "--pre-commit"}, gotArgs)
}
