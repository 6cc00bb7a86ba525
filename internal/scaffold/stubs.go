package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header written at the top of each stub.
type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// GenerateStubs creates one companion Markdown stub per PDF in dir. When the
// directory holds no PDFs a single fallback stub is created, named from
// fallbackSeq. Existing stubs are never overwritten; the pass is idempotent.
func (s *Scaffolder) GenerateStubs(dir string, fallbackSeq int) ([]string, error) {
	pdfs, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scan for PDFs: %w", err)
	}

	if len(pdfs) == 0 {
		s.UI.Warning("No PDF files found in the new project directory. Creating single rendu file.")
		title := fmt.Sprintf("project%02d%s", fallbackSeq, s.Suffix)
		created, err := s.writeStub(dir, title+".md", title)
		if err != nil {
			return nil, err
		}
		if !created {
			s.UI.Info("Markdown file %s.md already exists. Skipping.", title)
			return nil, nil
		}
		return []string{title + ".md"}, nil
	}

	var stubs []string
	for _, pdf := range pdfs {
		title := strings.TrimSuffix(filepath.Base(pdf), filepath.Ext(pdf))
		name := title + s.Suffix + ".md"
		created, err := s.writeStub(dir, name, title)
		if err != nil {
			return nil, err
		}
		if !created {
			s.UI.Info("Markdown file %s already exists. Skipping.", name)
			continue
		}
		stubs = append(stubs, name)
	}
	return stubs, nil
}

// writeStub writes one stub file unless it already exists. It reports
// whether the file was created.
func (s *Scaffolder) writeStub(dir, name, title string) (bool, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	content, err := stubContent(title, s.Author)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write stub %s: %w", name, err)
	}
	s.UI.Success("Markdown file %s created successfully.", name)
	return true, nil
}

// stubContent renders the fixed stub template: YAML front matter followed
// by a level-1 heading repeating the title.
func stubContent(title, author string) (string, error) {
	fm := frontMatter{
		Title:  "Rendu " + title,
		Author: author,
		Date:   timeNow().Format("2006-01-02"),
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}
	return fmt.Sprintf("---\n%s---\n\n# %s\n\n", header, title), nil
}
