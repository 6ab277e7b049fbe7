package services

import (
	"fmt"
	"time"
)

// descriptionWidth is the column width PR bodies are wrapped to before
// they reach a table cell.
const descriptionWidth = 60

// ageDays returns the whole number of days elapsed since t, rounded down.
// Timestamps in the future count as zero days old.
func ageDays(t time.Time, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// formatAge renders an age in days as "today" or "{n}d".
func formatAge(days int) string {
	if days == 0 {
		return "today"
	}
	return fmt.Sprintf("%dd", days)
}

// shortSHA truncates a commit SHA to the familiar 7-character form.
func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// orDash substitutes "-" for empty cell values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
