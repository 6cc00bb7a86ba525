package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cprokopowicz/c1tools/internal/output"
	"github.com/cprokopowicz/c1tools/internal/scaffold"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"proj"},
	Short:   "Create and manage projects",
	Long:    "Create numbered project directories, harvest recent downloads, and prepare rendu documents.",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
}

var createGenericCmd = &cobra.Command{
	Use:   "generic-project <project-type>",
	Short: "Create a numbered project directory of the given type",
	Long: `Create the next numbered project directory for the given type prefix
(e.g. existing td01 and td02 produce td03), pull in recently downloaded
files, and generate one rendu Markdown stub per PDF found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectCreateRun(cmd, args[0])
	},
}

var createTdCmd = &cobra.Command{
	Use:   "td",
	Short: "Create a new td project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectCreateRun(cmd, "td")
	},
}

var createTpCmd = &cobra.Command{
	Use:   "tp",
	Short: "Create a new tp project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectCreateRun(cmd, "tp")
	},
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List numbered project directories in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectListRun()
	},
}

func init() {
	for _, c := range []*cobra.Command{createGenericCmd, createTdCmd, createTpCmd} {
		c.Flags().Int("download-max-age", 5, "Harvest downloads modified within this many minutes")
	}
	createGenericCmd.Flags().Bool("move", true, "Move harvested downloads instead of copying (use --move=false to copy)")

	projectCreateCmd.AddCommand(createGenericCmd)
	projectCreateCmd.AddCommand(createTdCmd)
	projectCreateCmd.AddCommand(createTpCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	rootCmd.AddCommand(projectCmd)
}

// downloadMaxAge resolves the harvest window: the flag when set, the
// configured default otherwise.
func downloadMaxAge(cmd *cobra.Command) time.Duration {
	if cmd.Flags().Changed("download-max-age") {
		minutes, _ := cmd.Flags().GetInt("download-max-age")
		return time.Duration(minutes) * time.Minute
	}
	return time.Duration(viper.GetInt("downloads.max_age_minutes")) * time.Minute
}

func projectCreateRun(cmd *cobra.Command, projectType string) error {
	if projectType == "" {
		return fmt.Errorf("project type must not be empty")
	}

	s, err := newScaffolder()
	if err != nil {
		return err
	}

	move := true
	if cmd.Flags().Lookup("move") != nil {
		move, _ = cmd.Flags().GetBool("move")
	}

	if dryRun {
		seq, err := scaffold.NextSequence(s.Workdir, projectType)
		if err != nil {
			return err
		}
		ui.DryRunMsg("Would create project directory %s%02d in %s", projectType, seq, s.Workdir)
		return nil
	}

	res, err := s.Create(scaffold.CreateOptions{
		Type:   projectType,
		MaxAge: downloadMaxAge(cmd),
		Move:   move,
		Chdir:  true,
	})
	if err != nil {
		return err
	}

	ui.VerboseLog("Harvested %d file(s), skipped %d, created %d stub(s)",
		len(res.Harvested), len(res.Skipped), len(res.Stubs))
	ui.Success("Project %s created successfully.", res.DirName)
	return nil
}

func projectListRun() error {
	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	entries, err := os.ReadDir(workdir)
	if err != nil {
		return fmt.Errorf("scan working directory: %w", err)
	}

	type row struct {
		name     string
		kind     string
		seq      int
		modified string
	}
	var rows []row
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		kind, seq, ok := splitProjectName(e.Name())
		if !ok {
			continue
		}
		modified := ""
		if info, err := e.Info(); err == nil {
			modified = info.ModTime().Format("2006-01-02 15:04")
		}
		rows = append(rows, row{name: e.Name(), kind: kind, seq: seq, modified: modified})
	}

	if len(rows) == 0 {
		ui.Info("No numbered project directories here.")
		return nil
	}

	table := ui.Table([]string{"Directory", "Type", "N", "Modified"})
	for _, r := range rows {
		table.Append([]string{output.Cyan(r.name), r.kind, fmt.Sprintf("%d", r.seq), r.modified})
	}
	table.Render()
	return nil
}

// splitProjectName splits a directory name into its alphabetic type prefix
// and numeric sequence suffix. Names without both parts are not projects.
func splitProjectName(name string) (string, int, bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return "", 0, false
	}
	for _, c := range name[:i] {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "", 0, false
		}
	}
	n := 0
	for _, c := range name[i:] {
		n = n*10 + int(c-'0')
	}
	return name[:i], n, true
}
