// Package downloads locates the user's download folder and lists its
// recently modified entries, newest first.
package downloads

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// timeNow returns the current time, replaceable in tests.
var timeNow = time.Now

// Entry is one item in the download folder, file or directory.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	ModTime time.Time
}

// Source reads download candidates from a single folder.
type Source struct {
	Dir string
}

// Candidates returns the ordered list of download folder paths to probe
// under the given home directory. The localized name wins when it exists.
func Candidates(home string) []string {
	return []string{
		filepath.Join(home, "Téléchargements"),
		filepath.Join(home, "Downloads"),
	}
}

// Resolve picks the download folder: the explicit override when set,
// otherwise the first existing candidate under the user's home directory.
// The last candidate is returned even when nothing exists, so a missing
// folder surfaces later as a read error rather than a resolution error.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	candidates := Candidates(home)
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return candidates[len(candidates)-1], nil
}

// NewSource resolves the download folder and returns a source over it.
func NewSource(explicit string) (*Source, error) {
	dir, err := Resolve(explicit)
	if err != nil {
		return nil, err
	}
	return &Source{Dir: dir}, nil
}

// Recent returns the folder entries whose modification time is within
// maxAge of now, sorted by modification time descending. A zero maxAge
// selects nothing: the cutoff is a now that has already passed by the
// time each entry is compared.
func (s *Source) Recent(maxAge time.Duration) ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read download folder: %w", err)
	}

	cutoff := timeNow().Add(-maxAge)
	var entries []Entry
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue // entry vanished between ReadDir and Stat
		}
		if info.ModTime().Before(cutoff) {
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Path:    filepath.Join(s.Dir, de.Name()),
			IsDir:   de.IsDir(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}
