package service

import (
	"strings"
	"unicode/utf8"
)

// MaxBullets is the number of takeaways requested from the summarization model
const MaxBullets = 5

// ParseBullets turns free model text into at most MaxBullets trimmed lines with
// list markers removed. Blank lines are dropped and nothing is padded.
func ParseBullets(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	bullets := make([]string, 0, MaxBullets)
	for _, line := range lines {
		line = stripMarker(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == MaxBullets {
			break
		}
	}
	return bullets
}

// stripMarker removes leading "-", "*" and "•" markers. A leading "**" is
// markdown bold, so its opening and closing delimiters are dropped instead.
func stripMarker(line string) string {
	for {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "**") {
			line = strings.Replace(line, "**", "", 2)
			continue
		}
		r, size := utf8.DecodeRuneInString(line)
		switch r {
		case '-', '*', '•':
			line = line[size:]
		default:
			return line
		}
	}
}
