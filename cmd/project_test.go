package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitProjectName(t *testing.T) {
	tests := []struct {
		name string
		kind string
		seq  int
		ok   bool
	}{
		{"td01", "td", 1, true},
		{"tp12", "tp", 12, true},
		{"exam100", "exam", 100, true},
		{"td", "", 0, false},
		{"01", "", 0, false},
		{"tdfinal", "", 0, false},
		{"td-01", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, seq, ok := splitProjectName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
				assert.Equal(t, tt.seq, seq)
			}
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestProjectCreateEndToEnd(t *testing.T) {
	testEnv(t)
	work := t.TempDir()
	dl := t.TempDir()
	chdir(t, work)
	viper.Set("downloads.dir", dl)

	require.NoError(t, os.WriteFile(filepath.Join(dl, "sujet.pdf"), []byte("%PDF"), 0644))

	require.NoError(t, projectCreateRun(createGenericCmd, "td"))

	projDir := filepath.Join(work, "td01")
	assert.DirExists(t, projDir)
	assert.FileExists(t, filepath.Join(projDir, "sujet.pdf"))
	assert.NoFileExists(t, filepath.Join(dl, "sujet.pdf"), "default harvest should move, not copy")
	assert.FileExists(t, filepath.Join(projDir, "sujet_rendu_Colin_PROKOPOWICZ.md"))

	// Create chdirs into the new project directory.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(projDir)
	require.NoError(t, err)
	cwdResolved, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, resolved, cwdResolved)
}

func TestProjectCreateDryRun(t *testing.T) {
	testEnv(t)
	work := t.TempDir()
	chdir(t, work)
	viper.Set("downloads.dir", t.TempDir())

	dryRun = true
	ui.DryRun = true
	defer func() { dryRun = false }()

	require.NoError(t, projectCreateRun(createGenericCmd, "td"))
	assert.NoDirExists(t, filepath.Join(work, "td01"))
}

func TestProjectCreateRejectsEmptyType(t *testing.T) {
	testEnv(t)
	err := projectCreateRun(createGenericCmd, "")
	assert.Error(t, err)
}
