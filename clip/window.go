// Package clip computes extraction windows and writes move clips into the
// accumulating output layout.
package clip

import (
	"errors"
	"fmt"
	"math"
)

// Default window knobs. Frame counts are at the 60fps reference rate.
const (
	DefaultFPS       = 60.0
	DefaultFramePad  = 25.0 // frames of padding on each side
	DefaultExtraPre  = 0.10 // seconds before the computed half-window
	DefaultExtraPost = 0.10 // seconds after the computed half-window
)

var (
	// ErrTimestampOutOfRange is returned when the timestamp is at or past
	// the end of the video.
	ErrTimestampOutOfRange = errors.New("timestamp is beyond video duration")
	// ErrDegenerateWindow is returned when clamping leaves no room for a clip.
	ErrDegenerateWindow = errors.New("computed clip window is empty, adjust timestamp or padding")
)

// Config holds the window padding knobs.
type Config struct {
	FPS       float64 // reference frame rate
	FramePad  float64 // frames added symmetrically around the move
	ExtraPre  float64 // seconds added before the window
	ExtraPost float64 // seconds added after the window
}

// DefaultConfig returns the standard 60fps knobs.
func DefaultConfig() Config {
	return Config{
		FPS:       DefaultFPS,
		FramePad:  DefaultFramePad,
		ExtraPre:  DefaultExtraPre,
		ExtraPost: DefaultExtraPost,
	}
}

// Window is a clamped [Start, End] time range in seconds.
type Window struct {
	Start float64
	End   float64
}

// Duration returns the window length in seconds.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// ComputeWindow turns a move's frame count and a center timestamp into a
// clamped extraction window. The move occupies frames/FPS seconds split
// evenly around the timestamp, padded by FramePad frames plus the extra
// pre/post offsets on each side.
func ComputeWindow(frames int, timestamp, videoDuration float64, cfg Config) (Window, error) {
	if frames <= 0 {
		return Window{}, fmt.Errorf("frame count must be positive, got %d", frames)
	}
	if cfg.FPS <= 0 {
		return Window{}, fmt.Errorf("fps must be positive, got %v", cfg.FPS)
	}
	if timestamp >= videoDuration {
		return Window{}, ErrTimestampOutOfRange
	}

	moveDuration := float64(frames) / cfg.FPS
	half := moveDuration / 2.0
	padSec := cfg.FramePad / cfg.FPS

	start := math.Max(0, timestamp-half-padSec-cfg.ExtraPre)
	end := math.Min(videoDuration, timestamp+half+padSec+cfg.ExtraPost)
	if start >= end {
		return Window{}, ErrDegenerateWindow
	}
	return Window{Start: start, End: end}, nil
}
