// Package ffmpeg wraps the ffmpeg/ffprobe binaries as the source-video
// capability: probe a file's duration once, then cut re-encoded clips out
// of it. Every call is blocking and all-or-nothing.
package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Fixed encoding pair for every written clip.
const (
	VideoCodec = "libx264"
	AudioCodec = "aac"
)

// Source is an opened video file with a known duration.
type Source struct {
	Path     string
	duration float64
}

// Open stats the video file and probes its duration with ffprobe.
func Open(ctx context.Context, path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("video file not found: %s", path)
		}
		return nil, fmt.Errorf("access video file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a video file: %s", path)
	}

	duration, err := probeDuration(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Source{Path: path, duration: duration}, nil
}

// Duration returns the total video length in seconds.
func (s *Source) Duration() float64 {
	return s.duration
}

// Trim re-encodes [start, end] of the source into outputPath with the
// fixed codec pair. On failure the error carries ffmpeg's output.
func (s *Source) Trim(ctx context.Context, start, end float64, outputPath string) error {
	duration := end - start
	if duration <= 0 {
		return fmt.Errorf("invalid trim range: end (%v) must be after start (%v)", end, start)
	}

	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	args := []string{
		"-y",
		"-hide_banner",
		"-i", s.Path,
		"-ss", strconv.FormatFloat(start, 'f', -1, 64),
		"-t", strconv.FormatFloat(duration, 'f', -1, 64),
		"-c:v", VideoCodec,
		"-c:a", AudioCodec,
		outputPath,
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, tail(out.String(), 400))
	}
	return nil
}

// probeResult matches the ffprobe JSON we care about.
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func probeDuration(ctx context.Context, path string) (float64, error) {
	ffprobePath, err := exec.LookPath("ffprobe")
	if err != nil {
		return 0, fmt.Errorf("ffprobe not found in PATH: %w", err)
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	}
	output, err := exec.CommandContext(ctx, ffprobePath, args...).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	var probe probeResult
	if err := json.Unmarshal(output, &probe); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}
	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("no duration in ffprobe output for %s", path)
	}
	return duration, nil
}

// tail returns the last n bytes of s, trimmed, for compact error messages.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
