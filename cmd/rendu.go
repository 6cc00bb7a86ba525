package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cprokopowicz/c1tools/internal/pandoc"
)

var renduOverwrite bool

var renduCmd = &cobra.Command{
	Use:   "rendu",
	Short: "Convert rendu markdown files in the current directory to PDF",
	Long: `Convert every rendu markdown file in the current directory to PDF
with pandoc, using the bundled LaTeX header. A conversion failure on one
file does not stop the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renduRun()
	},
}

func init() {
	renduCmd.Flags().BoolVar(&renduOverwrite, "overwrite", true, "Overwrite existing PDF files")
	projectCmd.AddCommand(renduCmd)
}

func renduRun() error {
	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	suffix := viper.GetString("project.rendu_suffix")

	if dryRun {
		mdFiles, err := filepath.Glob(filepath.Join(workdir, "*"+suffix+".md"))
		if err != nil {
			return err
		}
		for _, f := range mdFiles {
			ui.DryRunMsg("Would convert %s to PDF", filepath.Base(f))
		}
		if len(mdFiles) == 0 {
			ui.Warning("No markdown files found in the current directory.")
		}
		return nil
	}

	r, err := pandoc.NewExecRenderer()
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	res, err := pandoc.RenderAll(r, ui, workdir, suffix, renduOverwrite)
	if err != nil {
		return err
	}
	ui.VerboseLog("%d converted, %d skipped, %d failed", res.Converted, res.Skipped, res.Failed)
	return nil
}
