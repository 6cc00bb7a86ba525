package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cprokopowicz/c1tools/internal/lang"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Manage project languages",
}

var langAddCmd = &cobra.Command{
	Use:   "add <lang-code>",
	Short: "Set up the current directory for a language toolchain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return langAddRun(args[0])
	},
}

func init() {
	langCmd.AddCommand(langAddCmd)
	projectCmd.AddCommand(langCmd)
}

func langAddRun(code string) error {
	ui.VerboseLog("Adding language %s to the project...", code)

	setup, ok := lang.Lookup(code)
	if !ok {
		ui.Error("Language %s is not supported. Supported: %s", code, strings.Join(lang.Supported(), ", "))
		return nil
	}

	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	if dryRun {
		ui.DryRunMsg("Would set up %s in %s", setup.Name(), workdir)
		return nil
	}

	ui.Info("Setting up %s development environment...", setup.Name())
	if err := setup.Apply(workdir); err != nil {
		return err
	}
	ui.Success("Language %s added successfully.", code)
	return nil
}
