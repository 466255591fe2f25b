package ui

import "strings"

// WrapWords breaks msg into lines no wider than width according to
// measure. Text without spaces stays on one line.
func WrapWords(msg string, width int, measure func(string) int) []string {
	words := strings.Fields(msg)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) < width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
