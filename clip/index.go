package clip

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// NextIndex scans the move directory for existing clips and returns one
// greater than the highest trailing index, or 1 when the directory does not
// exist or holds no matching files. The index is always derived from the
// directory listing so numbering stays correct across separate runs.
func NextIndex(outputRoot, character, move string) (int, error) {
	dir := MoveDir(outputRoot, character, move)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("scan clip directory: %w", err)
	}

	prefix := SanitizeLabel(character) + "_" + SanitizeLabel(move) + "_"
	// Files that carry the prefix but not the trailing index field are
	// stray and skipped.
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `.*_(\d+)\.mp4$`)

	maxIdx := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	return maxIdx + 1, nil
}
