package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jmalherbe/cadence/internal/models"
	"github.com/jmalherbe/cadence/internal/schedule"
)

// GeneratePDFReport writes a round report to the working directory and
// returns the absolute path of the file.
func GeneratePDFReport(round models.Round, goals []models.Goal, summary schedule.RoundProgressSummary) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Round Report: %s", round.Title))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%s to %s, %s",
		round.StartDate, round.EndDate,
		FormatDayCount(summary.DaysElapsed, summary.TotalDays)))
	pdf.Ln(12)

	byGoal := make(map[int64]schedule.GoalProgressSummary, len(summary.GoalSummaries))
	for _, gs := range summary.GoalSummaries {
		byGoal[gs.GoalID] = gs
	}

	totalCompleted := 0
	totalSeconds := 0

	for _, g := range goals {
		gs := byGoal[g.ID]
		totalCompleted += gs.CompletedCount
		totalSeconds += gs.TotalDurationSeconds

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, g.Title)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("  Frequency: %s", models.Describe(g.Frequency)))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("  Completed: %d of %d (%s)",
			gs.CompletedCount, gs.ExpectedCount, FormatPercentage(gs.CompletionPercentage)))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("  Time spent: %s",
			FormatDuration(time.Duration(gs.TotalDurationSeconds)*time.Second)))
		pdf.Ln(6)
		if gs.FailedCount > 0 {
			pdf.Cell(0, 8, fmt.Sprintf("  Missed days: %d", gs.FailedCount))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Entries: %d", totalCompleted))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total Time: %s",
		FormatDuration(time.Duration(totalSeconds)*time.Second)))
	pdf.Ln(8)

	filename := fmt.Sprintf("report_%s.pdf", round.StartDate)
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filepath.Abs(filename)
}
