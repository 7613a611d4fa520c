package service

import "unicode"

// TruncateWords cuts s after max whitespace-separated words. A max of zero or
// less leaves s unchanged.
func TruncateWords(s string, max int) string {
	if max <= 0 {
		return s
	}

	words := 0
	inWord := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			if inWord && words == max {
				return s[:i]
			}
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			words++
		}
	}
	return s
}
