// Package scaffold implements the project-scaffolding workflow: sequential
// project directories, harvesting of recent downloads, and Markdown stubs.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cprokopowicz/c1tools/internal/downloads"
	"github.com/cprokopowicz/c1tools/internal/output"
)

// timeNow returns the current time, replaceable in tests.
var timeNow = time.Now

// DownloadSource lists recently modified download candidates, newest first.
type DownloadSource interface {
	Recent(maxAge time.Duration) ([]downloads.Entry, error)
}

// Scaffolder creates numbered project directories inside Workdir.
type Scaffolder struct {
	Workdir string
	Source  DownloadSource
	UI      *output.UI

	// Author and Suffix drive stub naming; see stubs.go.
	Author string
	Suffix string
}

// CreateOptions controls one Create invocation.
type CreateOptions struct {
	Type   string        // directory name prefix, e.g. "td"
	MaxAge time.Duration // download harvest age window
	Move   bool          // move downloads instead of copying
	Chdir  bool          // change process workdir into the new directory
}

// Result describes what Create produced.
type Result struct {
	DirName   string
	DirPath   string
	Seq       int
	Harvested []string
	Skipped   []string
	Stubs     []string
}

// New returns a Scaffolder over the given working directory.
func New(workdir string, src DownloadSource, ui *output.UI, author, suffix string) *Scaffolder {
	return &Scaffolder{
		Workdir: workdir,
		Source:  src,
		UI:      ui,
		Author:  author,
		Suffix:  suffix,
	}
}

// NextSequence scans workdir for directories named prefix+NN and returns
// max(NN)+1, or 1 when none exist. Entries whose suffix is not purely
// numeric are ignored.
func NextSequence(workdir, prefix string) (int, error) {
	entries, err := os.ReadDir(workdir)
	if err != nil {
		return 0, fmt.Errorf("scan working directory: %w", err)
	}

	max := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, ok := numericSuffix(e.Name(), prefix)
		if !ok {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

// numericSuffix extracts the number after prefix, requiring at least one
// character and digits only.
func numericSuffix(name, prefix string) (int, bool) {
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return 0, false
	}
	n := 0
	for _, c := range name[len(prefix):] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Create runs the full scaffolding workflow for one project.
func (s *Scaffolder) Create(opts CreateOptions) (*Result, error) {
	if opts.Type == "" {
		return nil, fmt.Errorf("project type must not be empty")
	}

	seq, err := NextSequence(s.Workdir, opts.Type)
	if err != nil {
		return nil, err
	}

	res := &Result{
		DirName: fmt.Sprintf("%s%02d", opts.Type, seq),
		Seq:     seq,
	}
	res.DirPath = filepath.Join(s.Workdir, res.DirName)

	// Idempotent: an existing directory is reused, not an error.
	if err := os.MkdirAll(res.DirPath, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	s.UI.Info("Creating a new %s project in %s...", opts.Type, output.Cyan(res.DirPath))

	if err := s.harvest(res, opts); err != nil {
		return nil, err
	}

	stubs, err := s.GenerateStubs(res.DirPath, seq)
	if err != nil {
		return nil, err
	}
	res.Stubs = stubs

	if opts.Chdir {
		if err := os.Chdir(res.DirPath); err != nil {
			return nil, fmt.Errorf("enter project directory: %w", err)
		}
	}
	return res, nil
}

// harvest relocates recent downloads into the new project directory.
func (s *Scaffolder) harvest(res *Result, opts CreateOptions) error {
	entries, err := s.Source.Recent(opts.MaxAge)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.UI.Warning("No recent downloads found to copy.")
		return nil
	}

	for _, e := range entries {
		dest := filepath.Join(res.DirPath, e.Name)
		if _, err := os.Stat(dest); err == nil {
			s.UI.Info("File %s already exists in %s. Skipping.", e.Name, res.DirName)
			res.Skipped = append(res.Skipped, e.Name)
			continue
		}

		if opts.Move {
			s.UI.Info("Moving %s...", e.Name)
			if err := moveEntry(e.Path, dest); err != nil {
				return fmt.Errorf("move %s: %w", e.Name, err)
			}
		} else {
			s.UI.Info("Copying %s...", e.Name)
			if err := copyEntry(e.Path, dest, e.IsDir); err != nil {
				return fmt.Errorf("copy %s: %w", e.Name, err)
			}
		}
		res.Harvested = append(res.Harvested, e.Name)
	}
	return nil
}

// moveEntry renames src to dest, falling back to copy-and-delete when the
// rename crosses filesystems.
func moveEntry(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := copyEntry(src, dest, info.IsDir()); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// copyEntry copies a file, or a directory tree recursively.
func copyEntry(src, dest string, isDir bool) error {
	if !isDir {
		return copyFile(src, dest)
	}
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
