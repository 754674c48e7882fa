package journal

import (
	"fmt"
	"strings"
)

// Summarize builds a human-readable usage summary from journal
// contents. currentlyOn is the bulb state at the time of the call; the
// journal itself is never parsed back into state.
func Summarize(content string, currentlyOn bool) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return "Lightbulb Usage Summary:\n\nNo activity recorded yet."
	}

	total := len(lines)
	var onCount, offCount int
	for _, line := range lines {
		switch {
		case strings.Contains(line, "turned "+ActionOn):
			onCount++
		case strings.Contains(line, "turned "+ActionOff):
			offCount++
		}
	}

	status := ActionOff
	if currentlyOn {
		status = ActionOn
	}

	recent := lines
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	indented := make([]string, len(recent))
	for i, line := range recent {
		indented[i] = "  " + line
	}

	return fmt.Sprintf(
		"Lightbulb Usage Summary:\n\n"+
			"Current Status: %s\n"+
			"Total Actions: %d\n"+
			"- Turn ON actions: %d (%.1f%%)\n"+
			"- Turn OFF actions: %d (%.1f%%)\n\n"+
			"Activity Period:\n"+
			"- First action: %s\n"+
			"- Last action: %s\n\n"+
			"Recent Activity (last 5 actions):\n%s",
		status,
		total,
		onCount, percent(onCount, total),
		offCount, percent(offCount, total),
		entryTimestamp(lines[0]),
		entryTimestamp(lines[len(lines)-1]),
		strings.Join(indented, "\n"),
	)
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// entryTimestamp extracts the bracketed timestamp from a journal line.
func entryTimestamp(line string) string {
	start := strings.Index(line, "[")
	end := strings.Index(line, "]")
	if start != 0 || end < 0 {
		return "N/A"
	}
	return line[1:end]
}
