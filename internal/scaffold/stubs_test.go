package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStubsOnePerPDF(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("%PDF"), 0644))

	fixed := time.Date(2026, 8, 30, 14, 0, 0, 0, time.Local)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	s := newTestScaffolder(dir, nil)
	stubs, err := s.GenerateStubs(dir, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"a_rendu_Colin_PROKOPOWICZ.md",
		"b_rendu_Colin_PROKOPOWICZ.md",
	}, stubs)

	content, err := os.ReadFile(filepath.Join(dir, "a_rendu_Colin_PROKOPOWICZ.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Rendu a")
	assert.Contains(t, string(content), "Colin PROKOPOWICZ")
	assert.Contains(t, string(content), "2026-08-30")
	assert.Contains(t, string(content), "# a\n")
}

func TestGenerateStubsFallbackWhenNoPDF(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(dir, nil)

	stubs, err := s.GenerateStubs(dir, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"project03_rendu_Colin_PROKOPOWICZ.md"}, stubs)

	content, err := os.ReadFile(filepath.Join(dir, stubs[0]))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Rendu project03_rendu_Colin_PROKOPOWICZ")
	assert.Contains(t, string(content), "# project03_rendu_Colin_PROKOPOWICZ\n")
}

func TestGenerateStubsIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF"), 0644))

	s := newTestScaffolder(dir, nil)
	first, err := s.GenerateStubs(dir, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	stubPath := filepath.Join(dir, first[0])
	require.NoError(t, os.WriteFile(stubPath, []byte("hand-edited"), 0644))

	second, err := s.GenerateStubs(dir, 1)
	require.NoError(t, err)
	assert.Empty(t, second)

	content, err := os.ReadFile(stubPath)
	require.NoError(t, err)
	assert.Equal(t, "hand-edited", string(content))
}

func TestGenerateStubsFallbackNotOverwritten(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(dir, nil)

	first, err := s.GenerateStubs(dir, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	stubPath := filepath.Join(dir, first[0])
	require.NoError(t, os.WriteFile(stubPath, []byte("edited"), 0644))

	second, err := s.GenerateStubs(dir, 1)
	require.NoError(t, err)
	assert.Empty(t, second)

	content, err := os.ReadFile(stubPath)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(content))
}

func TestGenerateStubsIgnoresExistingMarkdown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# notes"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF"), 0644))

	s := newTestScaffolder(dir, nil)
	stubs, err := s.GenerateStubs(dir, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_rendu_Colin_PROKOPOWICZ.md"}, stubs)
}
