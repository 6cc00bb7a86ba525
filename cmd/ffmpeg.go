package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cprokopowicz/c1tools/internal/ffmpeg"
)

// transcoder is replaceable in tests.
var transcoder ffmpeg.Transcoder = ffmpeg.ExecTranscoder{}

var ffmpegCmd = &cobra.Command{
	Use:   "ffmpeg",
	Short: "Simple wrappers around common ffmpeg conversions",
	Long: `Wrappers for the ffmpeg conversions used often enough to forget the
flags. Not a general ffmpeg frontend, just fixed argument lists.`,
}

var ffmpegToMP4Cmd = &cobra.Command{
	Use:   "to-mp4 <input-file> <output-file>",
	Short: "Convert a video file to MP4",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ffmpegRun(ffmpeg.ToMP4Args(args[0], args[1]), args[0], args[1])
	},
}

var ffmpegDiscordCmd = &cobra.Command{
	Use:   "discord <input-file> <output-file>",
	Short: "Convert a video file to a Discord-uploadable MP4",
	Long: `Convert a video for Discord upload: resolution capped at 1280x720,
bitrate caps, and a hard file-size limit.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSize := viper.GetInt("ffmpeg.discord.max_file_size_mb")
		return ffmpegRun(ffmpeg.DiscordArgs(args[0], args[1], maxSize), args[0], args[1])
	},
}

func init() {
	ffmpegCmd.AddCommand(ffmpegToMP4Cmd)
	ffmpegCmd.AddCommand(ffmpegDiscordCmd)
	rootCmd.AddCommand(ffmpegCmd)
}

func ffmpegRun(args []string, inputFile, outputFile string) error {
	ui.VerboseLog("Running command: ffmpeg %s", strings.Join(args, " "))

	if dryRun {
		ui.DryRunMsg("Would run: ffmpeg %s", strings.Join(args, " "))
		return nil
	}

	if err := transcoder.Run(args); err != nil {
		return err
	}
	ui.Success("Converted %s to %s successfully.", inputFile, outputFile)
	return nil
}
