package main

import "strings"

// wrapText greedily wraps text to maxWidth bytes per line. Paragraphs
// (split on \n) wrap independently and each contributes at least one line,
// so blank paragraphs survive as blank lines. Words keep their trailing
// space; a word wider than maxWidth is hard-split into maxWidth chunks.
func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var paraLines []string
		current := ""
		for _, word := range strings.SplitAfter(para, " ") {
			if len(current)+len(word) > maxWidth && current != "" {
				paraLines = append(paraLines, current)
				current = ""
			}
			for len(word) > maxWidth {
				paraLines = append(paraLines, word[:maxWidth])
				word = word[maxWidth:]
			}
			current += word
		}
		if current != "" {
			paraLines = append(paraLines, current)
		}
		if len(paraLines) == 0 {
			paraLines = append(paraLines, "")
		}
		lines = append(lines, paraLines...)
	}
	return lines
}
