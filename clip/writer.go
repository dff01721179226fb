package clip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Trimmer is the external capability that cuts [start, end] out of the
// source and writes a playable file at outputPath.
type Trimmer interface {
	Trim(ctx context.Context, start, end float64, outputPath string) error
}

// Writer files extracted clips into the output layout, one directory per
// character/move pair, with filesystem-derived sequential indices.
type Writer struct {
	OutputRoot string
}

// WriteClip ensures the move directory exists, picks the next index, and
// delegates the actual extraction to the trimmer. The returned path is the
// final clip location. On trim failure any partial output is removed.
func (w *Writer) WriteClip(ctx context.Context, trimmer Trimmer, character, move string, timestamp float64, win Window) (string, error) {
	dir := MoveDir(w.OutputRoot, character, move)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create clip directory: %w", err)
	}

	index, err := NextIndex(w.OutputRoot, character, move)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(dir, Filename(character, move, timestamp, index))
	if err := trimmer.Trim(ctx, win.Start, win.End, outPath); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("extract clip %s: %w", outPath, err)
	}
	return outPath, nil
}
