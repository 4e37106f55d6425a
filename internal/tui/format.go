package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/jmalherbe/cadence/internal/models"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPercentage renders a completion percentage with one decimal, whole
// numbers without it.
func FormatPercentage(p float64) string {
	if p == float64(int(p)) {
		return fmt.Sprintf("%d%%", int(p))
	}
	return fmt.Sprintf("%.1f%%", p)
}

// FormatDayCount formats elapsed/total day counts for the header.
func FormatDayCount(elapsed, total int) string {
	if total == 0 {
		return "no days"
	}
	return fmt.Sprintf("day %d of %d", elapsed, total)
}

// dayGlyph maps a day state to its strip character.
func dayGlyph(state models.DayState) string {
	switch state {
	case models.DayCompleted:
		return "●"
	case models.DayFailed:
		return "✗"
	case models.DayPending:
		return "○"
	default:
		return "·"
	}
}

// dayStyle maps a day state to its theme style.
func dayStyle(state models.DayState) func(...string) string {
	switch state {
	case models.DayCompleted:
		return CurrentTheme.Completed.Render
	case models.DayFailed:
		return CurrentTheme.Failed.Render
	case models.DayPending:
		return CurrentTheme.Pending.Render
	default:
		return CurrentTheme.NotApplicable.Render
	}
}

func truncateText(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
