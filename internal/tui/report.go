package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmalherbe/cadence/internal/models"
	"github.com/jmalherbe/cadence/internal/schedule"
	"github.com/jmalherbe/cadence/internal/service"
)

const reportWindowDays = 14

// ReportModel charts recent completions across all goals of the round and
// lists each goal's completion stats.
type ReportModel struct {
	ctx context.Context
	svc *service.Service

	round   models.Round
	summary schedule.RoundProgressSummary
	strips  map[int64][]models.DayStatus

	chart  barchart.Model
	width  int
	height int
	err    error
}

type reportDataMsg struct {
	summary schedule.RoundProgressSummary
	strips  map[int64][]models.DayStatus
}

type reportErrMsg struct{ err error }

func NewReportModel(ctx context.Context, svc *service.Service, round models.Round) ReportModel {
	return ReportModel{
		ctx:   ctx,
		svc:   svc,
		round: round,
		chart: barchart.New(60, 12),
	}
}

func (r *ReportModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r ReportModel) refresh() tea.Cmd {
	ctx, svc, roundID := r.ctx, r.svc, r.round.ID
	return func() tea.Msg {
		summary, err := svc.RoundSummary(ctx, roundID)
		if err != nil {
			return reportErrMsg{err}
		}
		strips := make(map[int64][]models.DayStatus, len(summary.GoalSummaries))
		for _, gs := range summary.GoalSummaries {
			statuses, err := svc.DayStatuses(ctx, roundID, gs.GoalID)
			if err != nil {
				return reportErrMsg{err}
			}
			strips[gs.GoalID] = statuses
		}
		return reportDataMsg{summary: summary, strips: strips}
	}
}

func (r ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportDataMsg:
		r.summary = msg.summary
		r.strips = msg.strips
		r.err = nil
		r.buildChart()
		return r, nil
	case reportErrMsg:
		r.err = msg.err
		return r, nil
	}
	return r, nil
}

// buildChart draws one bar per elapsed day in the window, stacking a
// value per completed goal so bar height is the day's completion count.
func (r *ReportModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}
	r.chart = barchart.New(chartWidth, chartHeight)

	dates := r.windowDates()
	var bars []barchart.BarData
	for _, date := range dates {
		count := 0
		for _, statuses := range r.strips {
			for _, s := range statuses {
				if s.Date == date && s.State == models.DayCompleted {
					count++
					break
				}
			}
		}

		label := date
		if t, err := schedule.ParseDate(date); err == nil {
			label = t.Format("Mon 02")
		}
		style := CurrentTheme.Completed
		if count == 0 {
			style = CurrentTheme.NotApplicable
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "completed", Value: float64(count), Style: style},
			},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

// windowDates returns the last elapsed dates of the round, capped at the
// report window.
func (r ReportModel) windowDates() []string {
	dates, err := schedule.DateRange(r.round.StartDate, r.round.EndDate)
	if err != nil {
		return nil
	}
	end := r.summary.DaysElapsed
	if end > len(dates) {
		end = len(dates)
	}
	start := end - reportWindowDays
	if start < 0 {
		start = 0
	}
	return dates[start:end]
}

func (r ReportModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Report: %s  %s – %s", r.round.Title, r.round.StartDate, r.round.EndDate)
	b.WriteString(CurrentTheme.Header.Render(header))
	b.WriteString("\n\n")

	if r.err != nil {
		b.WriteString(CurrentTheme.Error.Render(fmt.Sprintf("Error: %v", r.err)))
		return CurrentTheme.Base.Render(b.String())
	}

	b.WriteString(r.chart.View())
	b.WriteString("\n\n")

	for _, gs := range r.summary.GoalSummaries {
		line := fmt.Sprintf("%-24s %3d/%-3d  %6s  %s",
			truncateText(gs.Title, 24),
			gs.CompletedCount, gs.ExpectedCount,
			FormatPercentage(gs.CompletionPercentage),
			FormatDuration(time.Duration(gs.TotalDurationSeconds)*time.Second))
		b.WriteString(CurrentTheme.Goal.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render("1/esc back · q quit"))

	return CurrentTheme.Base.Render(b.String())
}
