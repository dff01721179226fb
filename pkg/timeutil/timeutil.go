// Package timeutil parses and formats the timestamp forms accepted at the
// extraction prompts: plain seconds ("252", "252.5") and mm:ss ("4:12").
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeToSeconds parses a time string in MM:SS or raw seconds format.
// Minutes must be whole digits; the seconds segment may carry a decimal
// fraction and is not required to be two digits wide ("4:2" is 242s).
func ParseTimeToSeconds(timeStr string) (float64, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return 0, fmt.Errorf("time string cannot be empty")
	}

	parts := strings.Split(timeStr, ":")
	switch len(parts) {
	case 1:
		secs, err := parseSeconds(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid time format, use seconds or mm:ss: %q", timeStr)
		}
		return secs, nil
	case 2:
		if !isDigits(parts[0]) {
			return 0, fmt.Errorf("invalid mm:ss format: %q", timeStr)
		}
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid mm:ss format: %q", timeStr)
		}
		secs, err := parseSeconds(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid mm:ss format: %q", timeStr)
		}
		return float64(minutes)*60 + secs, nil
	}
	return 0, fmt.Errorf("invalid time format, use seconds or mm:ss: %q", timeStr)
}

// parseSeconds accepts digits with at most one decimal point, no signs or
// exponents.
func parseSeconds(s string) (float64, error) {
	if s == "" || strings.ContainsAny(s, "+-eE") {
		return 0, fmt.Errorf("not a plain number: %q", s)
	}
	return strconv.ParseFloat(s, 64)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatTime formats seconds as M:SS (e.g. 4:12, 62:05).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
