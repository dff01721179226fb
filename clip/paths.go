package clip

import (
	"fmt"
	"path/filepath"
)

// ClipExt is the container extension for every written clip.
const ClipExt = ".mp4"

// SanitizeLabel strips a character or move name down to letters and digits
// so it is safe in directory and file names. Empty results become "Unknown".
func SanitizeLabel(label string) string {
	out := make([]rune, 0, len(label))
	for _, r := range label {
		if isAlnum(r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "Unknown"
	}
	return string(out)
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// TimestampToken renders the operator timestamp as a fixed-width MMMSS
// token: minutes zero-padded to three digits, seconds to two. 252s -> "00412".
func TimestampToken(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%03d%02d", total/60, total%60)
}

// MoveDir resolves the output directory for a character/move pair:
// <outputRoot>/<Character>/<Move>.
func MoveDir(outputRoot, character, move string) string {
	return filepath.Join(outputRoot, SanitizeLabel(character), SanitizeLabel(move))
}

// Filename computes the clip filename from the naming scheme:
// <Character>_<Move>_<timestampToken>_<NNN>.mp4. The timestamp is the
// operator-supplied one, not the clamped window bounds.
func Filename(character, move string, timestamp float64, index int) string {
	return fmt.Sprintf("%s_%s_%s_%03d%s",
		SanitizeLabel(character), SanitizeLabel(move), TimestampToken(timestamp), index, ClipExt)
}
