package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMP4Args(t *testing.T) {
	got := ToMP4Args("in.mov", "out.mp4")
	want := []string{"-i", "in.mov", "-c:v", "libx264", "-c:a", "aac", "out.mp4"}
	assert.Equal(t, want, got)
}

func TestDiscordArgs(t *testing.T) {
	got := DiscordArgs("in.mkv", "out.mp4", 10)
	want := []string{
		"-i", "in.mkv",
		"-vf", "scale='min(1280,iw)':'min(720,ih)':force_original_aspect_ratio=decrease",
		"-c:v", "libx264",
		"-b:v", "2500k",
		"-c:a", "aac",
		"-b:a", "128k",
		"-fs", "10M",
		"out.mp4",
	}
	assert.Equal(t, want, got)
}

func TestDiscordArgsCustomSizeLimit(t *testing.T) {
	got := DiscordArgs("in.mkv", "out.mp4", 25)
	assert.Contains(t, got, "25M")
}
