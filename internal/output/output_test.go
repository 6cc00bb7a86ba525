package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestUI() (*UI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &UI{Out: out, ErrOut: errOut}, out, errOut
}

func TestInfo(t *testing.T) {
	u, out, _ := newTestUI()
	u.Info("hello %s", "world")
	assert.Contains(t, out.String(), "hello world")
}

func TestSuccess(t *testing.T) {
	u, out, _ := newTestUI()
	u.Success("created %s", "td01")
	assert.Contains(t, out.String(), "created td01")
}

func TestWarningGoesToErrOut(t *testing.T) {
	u, out, errOut := newTestUI()
	u.Warning("no recent downloads")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "no recent downloads")
}

func TestVerboseLogSuppressed(t *testing.T) {
	u, out, _ := newTestUI()
	u.VerboseLog("hidden")
	assert.Empty(t, out.String())

	u.Verbose = true
	u.VerboseLog("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestDryRunMsg(t *testing.T) {
	u, _, errOut := newTestUI()
	u.DryRunMsg("would move %s", "file.pdf")
	assert.Empty(t, errOut.String())

	u.DryRun = true
	u.DryRunMsg("would move %s", "file.pdf")
	assert.Contains(t, errOut.String(), "[DRY-RUN] would move file.pdf")
}
