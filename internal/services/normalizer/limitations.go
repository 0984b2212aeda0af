package normalizer

import (
	"regexp"
	"strings"
)

var limitationBreaks = regexp.MustCompile(`[.!?;]+(?:\s+|$)|\n+`)

// splitLimitations breaks a free text limitations block into sentences and lines
func splitLimitations(block string) []string {
	if block == "" {
		return nil
	}

	var out []string
	for _, part := range limitationBreaks.Split(block, -1) {
		if part = trimBullet(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitLines breaks an explicit limitations string into its lines
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = trimBullet(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func trimBullet(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•– \t")
	return strings.TrimSpace(s)
}

// mergeLimitations concatenates the lists in order, dropping entries whose
// folded form was already seen
func mergeLimitations(lists ...[]string) []string {
	out := make([]string, 0)
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, entry := range list {
			key := Fold(entry)
			if key == "" {
				key = entry
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, entry)
		}
	}
	return out
}
