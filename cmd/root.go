package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cprokopowicz/c1tools/internal/downloads"
	"github.com/cprokopowicz/c1tools/internal/ffmpeg"
	"github.com/cprokopowicz/c1tools/internal/output"
	"github.com/cprokopowicz/c1tools/internal/scaffold"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui *output.UI

	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "c1",
	Short: "Personal project and media helper",
	Long: `c1 wraps the handful of external tools used daily (pandoc, ffmpeg, uv)
and keeps coursework directories tidy: auto-numbered project folders,
harvested downloads, and pre-filled rendu Markdown stubs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without making changes")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/c1/config.yaml)")
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "c1")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("C1")
	viper.AutomaticEnv()

	// Defaults via viper.SetDefault()
	viper.SetDefault("downloads.dir", "")
	viper.SetDefault("downloads.max_age_minutes", 5)
	viper.SetDefault("project.author", "Colin PROKOPOWICZ")
	viper.SetDefault("project.rendu_suffix", "_rendu_Colin_PROKOPOWICZ")
	viper.SetDefault("ffmpeg.discord.max_file_size_mb", ffmpeg.DefaultMaxFileSizeMB)

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
	ui.DryRun = dryRun
}

// newScaffolder builds a scaffolder over the current working directory
// and the configured download folder.
func newScaffolder() (*scaffold.Scaffolder, error) {
	workdir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	src, err := downloads.NewSource(viper.GetString("downloads.dir"))
	if err != nil {
		return nil, err
	}

	return scaffold.New(
		workdir,
		src,
		ui,
		viper.GetString("project.author"),
		viper.GetString("project.rendu_suffix"),
	), nil
}
