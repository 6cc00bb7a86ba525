// Package pandoc wraps the pandoc executable for Markdown-to-PDF rendering
// of rendu files.
package pandoc

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cprokopowicz/c1tools/internal/output"
)

//go:embed latex/td_header.tex
var tdHeader []byte

// Renderer converts one Markdown file to a PDF.
type Renderer interface {
	Render(mdPath, pdfPath string) error
}

// ExecRenderer shells out to pandoc with the fixed LaTeX header.
type ExecRenderer struct {
	HeaderPath string
}

// NewExecRenderer materializes the embedded header to a temp file and
// returns a renderer using it. The caller owns cleanup via Close.
func NewExecRenderer() (*ExecRenderer, error) {
	f, err := os.CreateTemp("", "c1-td-header-*.tex")
	if err != nil {
		return nil, fmt.Errorf("materialize latex header: %w", err)
	}
	if _, err := f.Write(tdHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write latex header: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &ExecRenderer{HeaderPath: f.Name()}, nil
}

// Close removes the materialized header file.
func (r *ExecRenderer) Close() error {
	return os.Remove(r.HeaderPath)
}

// Args builds the fixed pandoc argument list for one conversion.
func Args(mdPath, pdfPath, headerPath string) []string {
	return []string{
		"-s",
		"-o", pdfPath,
		"--number-sections",
		"--include-in-header=" + headerPath,
		mdPath,
	}
}

func (r *ExecRenderer) Render(mdPath, pdfPath string) error {
	cmd := exec.Command("pandoc", Args(mdPath, pdfPath, r.HeaderPath)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pandoc %s: %w", filepath.Base(mdPath), err)
	}
	return nil
}

// Result summarizes one RenderAll pass.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// RenderAll converts every `*{suffix}.md` file in dir to a PDF next to it.
// A failing conversion is logged and the loop continues with the next file.
// With overwrite false, files whose PDF already exists are skipped.
func RenderAll(r Renderer, ui *output.UI, dir, suffix string, overwrite bool) (Result, error) {
	mdFiles, err := filepath.Glob(filepath.Join(dir, "*"+suffix+".md"))
	if err != nil {
		return Result{}, fmt.Errorf("scan for markdown files: %w", err)
	}

	var res Result
	if len(mdFiles) == 0 {
		ui.Warning("No markdown files found in the current directory.")
		return res, nil
	}

	for _, mdFile := range mdFiles {
		name := filepath.Base(mdFile)
		pdfFile := strings.TrimSuffix(mdFile, ".md") + ".pdf"

		if _, err := os.Stat(pdfFile); err == nil {
			if !overwrite {
				ui.Info("PDF file %s already exists. Skipping.", filepath.Base(pdfFile))
				res.Skipped++
				continue
			}
			ui.Info("Overwriting existing PDF file %s.", filepath.Base(pdfFile))
			if err := os.Remove(pdfFile); err != nil {
				ui.Error("Removing %s: %v", filepath.Base(pdfFile), err)
				res.Failed++
				continue
			}
		}

		ui.Info("Converting %s to PDF...", name)
		if err := r.Render(mdFile, pdfFile); err != nil {
			ui.Error("Error converting %s to PDF: %v", name, err)
			res.Failed++
			continue
		}
		ui.Success("Converted %s to %s successfully.", name, filepath.Base(pdfFile))
		res.Converted++
	}
	return res, nil
}
