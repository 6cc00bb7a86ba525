// Package ffmpeg wraps the ffmpeg executable for the common conversions
// this tool cares about. It does not aim to cover ffmpeg's full surface,
// only fixed, known-good argument lists.
package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	maxWidth     = 1280
	maxHeight    = 720
	videoBitrate = "2500k"
	audioBitrate = "128k"

	// DefaultMaxFileSizeMB caps discord output at the platform upload limit.
	DefaultMaxFileSizeMB = 10
)

// Transcoder runs one ffmpeg invocation.
type Transcoder interface {
	Run(args []string) error
}

// ExecTranscoder runs the real ffmpeg binary, streaming its output.
type ExecTranscoder struct{}

func (ExecTranscoder) Run(args []string) error {
	cmd := exec.Command("ffmpeg", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// ToMP4Args builds the argument list for a plain MP4 conversion.
func ToMP4Args(inputFile, outputFile string) []string {
	return []string{
		"-i", inputFile,
		"-c:v", "libx264",
		"-c:a", "aac",
		outputFile,
	}
}

// DiscordArgs builds the argument list for a chat-upload-friendly MP4:
// resolution capped at 1280x720, bitrate caps, and a hard file-size limit.
func DiscordArgs(inputFile, outputFile string, maxFileSizeMB int) []string {
	scale := fmt.Sprintf(
		"scale='min(%d,iw)':'min(%d,ih)':force_original_aspect_ratio=decrease",
		maxWidth, maxHeight,
	)
	return []string{
		"-i", inputFile,
		"-vf", scale,
		"-c:v", "libx264",
		"-b:v", videoBitrate,
		"-c:a", "aac",
		"-b:a", audioBitrate,
		"-fs", fmt.Sprintf("%dM", maxFileSizeMB),
		outputFile,
	}
}
