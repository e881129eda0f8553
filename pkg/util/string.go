package util

import (
	"regexp"
	"strings"
)

var escapeMarker = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// RemoveEscapes strips colour and cursor control sequences.
func RemoveEscapes(input string) string {
	return escapeMarker.ReplaceAllString(input, "")
}

// CollapseReturns resolves carriage returns the way a terminal would, keeping
// only the text written after the last \r on each line.
func CollapseReturns(input string) string {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")

	for i, line := range lines {
		if idx := strings.LastIndex(line, "\r"); idx >= 0 {
			lines[i] = line[idx+1:]
		}
	}

	return strings.Join(lines, "\n")
}

// VisibleText approximates what a terminal shows after rendering input.
func VisibleText(input string) string {
	return CollapseReturns(RemoveEscapes(input))
}
