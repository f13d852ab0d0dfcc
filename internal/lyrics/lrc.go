package lyrics

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
)

// lrcTagPattern matches LRC time stamps, word stamps, and metadata tags.
var lrcTagPattern = regexp.MustCompile(`\[[^\]]*\]|<\d+:\d+(?:[.:]\d+)?>`)

// lrcText strips every tag from LRC content and drops lines left empty.
func lrcText(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(lrcTagPattern.ReplaceAllString(line, ""))
		if stripped == "" {
			continue
		}
		lines = append(lines, stripped)
	}
	return strings.Join(lines, "\n")
}

func formatLRCTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	cs := int(math.Round(seconds * 100))
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, (cs%6000)/100, cs%100)
}

// writeLRC emits enhanced LRC: a line stamp followed by a stamp before each
// word and a closing stamp at the end of the last word.
func writeLRC(w io.Writer, title string, lines []TimedLine) error {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "[ti:%s]\n", title)
	}
	for _, line := range lines {
		fmt.Fprintf(&sb, "[%s]", formatLRCTimestamp(line.Start))
		for i, word := range line.Words {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "<%s>%s", formatLRCTimestamp(word.Start), word.Word)
		}
		fmt.Fprintf(&sb, " <%s>\n", formatLRCTimestamp(line.End))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
