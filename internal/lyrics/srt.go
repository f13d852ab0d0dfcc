package lyrics

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// srtCue represents a single subtitle cue with timing and text.
type srtCue struct {
	index int
	start float64
	end   float64
	text  string
}

// parseSRTCues splits SRT content into cues, skipping malformed blocks.
func parseSRTCues(content string) []srtCue {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var cues []srtCue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			continue
		}
		parts := strings.Split(lines[1], "-->")
		if len(parts) != 2 {
			continue
		}
		start, err := parseSRTTimestamp(parts[0])
		if err != nil {
			continue
		}
		end, err := parseSRTTimestamp(parts[1])
		if err != nil {
			continue
		}
		cues = append(cues, srtCue{
			index: index,
			start: start,
			end:   end,
			text:  strings.Join(lines[2:], "\n"),
		})
	}
	return cues
}

// srtText keeps the text lines of every cue, in order.
func srtText(content string) string {
	cues := parseSRTCues(content)
	lines := make([]string, 0, len(cues))
	for _, cue := range cues {
		lines = append(lines, cue.text)
	}
	return strings.Join(lines, "\n")
}

func parseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Some tools write a period before the milliseconds.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

func formatSRTTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	msTotal := int(seconds*1000 + 0.5)
	hours := msTotal / 3_600_000
	msTotal %= 3_600_000
	minutes := msTotal / 60_000
	msTotal %= 60_000
	secs := msTotal / 1_000
	millis := msTotal % 1_000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// writeSRT emits one cue per timed line.
func writeSRT(w io.Writer, lines []TimedLine) error {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n", formatSRTTimestamp(line.Start), formatSRTTimestamp(line.End))
		sb.WriteString(line.Text())
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
