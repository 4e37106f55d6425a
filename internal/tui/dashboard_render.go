package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmalherbe/cadence/internal/models"
)

const stripDays = 7

func (m DashboardModel) View() string {
	if m.modal == modalGoalForm && m.goalForm != nil {
		label := "New Goal"
		if m.editingID != 0 {
			label = "Edit Goal"
		}
		header := CurrentTheme.Header.Render(label)
		return CurrentTheme.Base.Render(header + "\n\n" + m.goalForm.View())
	}

	var b strings.Builder

	title := fmt.Sprintf("%s  %s – %s  (%s)",
		m.round.Title, m.round.StartDate, m.round.EndDate,
		FormatDayCount(m.summary.DaysElapsed, m.summary.TotalDays))
	b.WriteString(CurrentTheme.Header.Render(title))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No goals yet. Press n to add one."))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		b.WriteString(m.renderGoalRow(i, row))
		b.WriteString("\n")
	}

	switch m.modal {
	case modalLog:
		b.WriteString("\n")
		b.WriteString(m.renderLogModal())
	case modalAmend:
		b.WriteString("\n")
		b.WriteString(m.renderAmendModal())
	case modalConfirmDelete:
		b.WriteString("\n")
		goal := m.rows[m.cursor].goal
		b.WriteString(CurrentTheme.Error.Render(fmt.Sprintf("Delete %q and all its progress? (y/n)", goal.Title)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Highlight.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return CurrentTheme.Base.Render(b.String())
}

func (m DashboardModel) renderGoalRow(i int, row goalRow) string {
	cursor := "  "
	titleStyle := CurrentTheme.Goal
	if i == m.cursor {
		cursor = "> "
		titleStyle = CurrentTheme.Focused
	}

	titleWidth := 24
	name := truncateText(row.goal.Title, titleWidth)
	name += strings.Repeat(" ", maxInt(0, titleWidth-len([]rune(name))))

	freq := CurrentTheme.Dim.Render(fmt.Sprintf("%-16s", models.Describe(row.goal.Frequency)))

	strip := renderDayStrip(row.statuses, m.summary.DaysElapsed)

	pct := row.summary.CompletionPercentage
	bar := m.bar.ViewAs(pct / 100)

	state := " "
	if row.status.CanLogToday {
		state = CurrentTheme.Pending.Render("!")
	} else if row.status.TodayStatus == models.DayCompleted {
		state = CurrentTheme.Completed.Render("✓")
	}

	dur := CurrentTheme.Dim.Render(FormatDuration(time.Duration(row.goal.DurationSeconds) * time.Second))

	return fmt.Sprintf("%s%s %s %s  %s %s %s %s",
		cursor, titleStyle.Render(name), freq, strip, bar,
		CurrentTheme.Highlight.Render(FormatPercentage(pct)), state, dur)
}

// renderDayStrip draws the trailing week of day states. Future days never
// appear; elapsed caps the window at today.
func renderDayStrip(statuses []models.DayStatus, elapsed int) string {
	end := elapsed
	if end > len(statuses) {
		end = len(statuses)
	}
	start := end - stripDays
	if start < 0 {
		start = 0
	}

	var parts []string
	for _, s := range statuses[start:end] {
		parts = append(parts, dayStyle(s.State)(dayGlyph(s.State)))
	}
	for len(parts) < stripDays {
		parts = append(parts, CurrentTheme.NotApplicable.Render(" "))
	}
	return strings.Join(parts, "")
}

func (m DashboardModel) renderLogModal() string {
	goal := m.rows[m.cursor].goal
	header := CurrentTheme.Focused.Render(fmt.Sprintf("Log %q for today", goal.Title))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		CurrentTheme.Input.Render(m.notesInput.View()),
		CurrentTheme.Dim.Render("enter to save · esc to cancel"),
	)
}

func (m DashboardModel) renderAmendModal() string {
	goal := m.rows[m.cursor].goal
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render(fmt.Sprintf("Amend a missed day for %q", goal.Title)))
	b.WriteString("\n")
	for i, d := range m.amendDates {
		cursor := "  "
		style := CurrentTheme.Goal
		if i == m.amendCursor {
			cursor = "> "
			style = CurrentTheme.Focused
		}
		b.WriteString(cursor + style.Render(d) + "\n")
	}
	b.WriteString(CurrentTheme.Dim.Render("enter to amend · esc to cancel"))
	return b.String()
}
