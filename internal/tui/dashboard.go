package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmalherbe/cadence/internal/config"
	"github.com/jmalherbe/cadence/internal/models"
	"github.com/jmalherbe/cadence/internal/schedule"
	"github.com/jmalherbe/cadence/internal/service"
)

type modalType int

const (
	modalNone modalType = iota
	modalLog
	modalAmend
	modalGoalForm
	modalConfirmDelete
)

// goalRow pairs a goal with the per-goal data the dashboard renders.
type goalRow struct {
	goal     models.Goal
	status   schedule.GoalStatusResult
	statuses []models.DayStatus
	summary  schedule.GoalProgressSummary
}

// DashboardModel renders the active round: one row per goal with a
// trailing day strip, a completion bar, and modals for logging,
// amendments, and goal management.
type DashboardModel struct {
	ctx context.Context
	svc *service.Service

	round   models.Round
	rows    []goalRow
	summary schedule.RoundProgressSummary

	cursor int
	width  int
	height int

	modal       modalType
	notesInput  textinput.Model
	amendCursor int
	amendDates  []string

	goalForm     *huh.Form
	formTitle    *string
	formFreq     *string
	formDuration *string
	editingID    int64

	bar    progress.Model
	help   help.Model
	status string
	err    error
}

type dashboardDataMsg struct {
	rows    []goalRow
	summary schedule.RoundProgressSummary
}

type dashErrMsg struct{ err error }

type statusMsg string

func NewDashboardModel(ctx context.Context, svc *service.Service, round models.Round) DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "notes (optional)"
	ti.CharLimit = 200
	ti.Width = 40

	h := help.New()

	return DashboardModel{
		ctx:        ctx,
		svc:        svc,
		round:      round,
		notesInput: ti,
		bar:        progress.New(progress.WithDefaultGradient()),
		help:       h,
	}
}

func (m *DashboardModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w
	target := w/3 - 4
	if target < 10 {
		target = 10
	}
	if target > 40 {
		target = 40
	}
	m.bar.Width = target
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refresh()
}

// refresh reloads every goal's status, day strip, and the round summary.
func (m DashboardModel) refresh() tea.Cmd {
	ctx, svc, roundID := m.ctx, m.svc, m.round.ID
	return func() tea.Msg {
		summary, err := svc.RoundSummary(ctx, roundID)
		if err != nil {
			return dashErrMsg{err}
		}
		goals, err := svc.Goals(ctx, roundID)
		if err != nil {
			return dashErrMsg{err}
		}
		rows := make([]goalRow, 0, len(goals))
		for _, g := range goals {
			status, err := svc.GoalStatus(ctx, roundID, g.ID)
			if err != nil {
				return dashErrMsg{err}
			}
			statuses, err := svc.DayStatuses(ctx, roundID, g.ID)
			if err != nil {
				return dashErrMsg{err}
			}
			row := goalRow{goal: g, status: status, statuses: statuses}
			for _, gs := range summary.GoalSummaries {
				if gs.GoalID == g.ID {
					row.summary = gs
					break
				}
			}
			rows = append(rows, row)
		}
		return dashboardDataMsg{rows: rows, summary: summary}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.rows = msg.rows
		m.summary = msg.summary
		if m.cursor >= len(m.rows) {
			m.cursor = maxInt(0, len(m.rows)-1)
		}
		m.err = nil
		return m, nil

	case dashErrMsg:
		m.err = msg.err
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, m.refresh()

	case tea.KeyMsg:
		switch m.modal {
		case modalLog:
			return m.updateLogModal(msg)
		case modalAmend:
			return m.updateAmendModal(msg)
		case modalGoalForm:
			return m.updateGoalForm(msg)
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
		return m.updateList(msg)
	}

	if m.modal == modalGoalForm && m.goalForm != nil {
		return m.updateGoalForm(msg)
	}
	return m, nil
}

func (m DashboardModel) updateList(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.Log):
		if len(m.rows) == 0 {
			return m, nil
		}
		row := m.rows[m.cursor]
		if !row.status.CanLogToday {
			m.status = "cannot log: " + row.status.Reason
			return m, nil
		}
		m.modal = modalLog
		m.notesInput.SetValue("")
		m.notesInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Amend):
		if len(m.rows) == 0 {
			return m, nil
		}
		dates := m.rows[m.cursor].status.AmendableDates
		if len(dates) == 0 {
			m.status = "nothing to amend"
			return m, nil
		}
		m.modal = modalAmend
		m.amendDates = dates
		m.amendCursor = 0
	case key.Matches(msg, keys.NewGoal):
		return m.showGoalForm(nil)
	case key.Matches(msg, keys.Edit):
		if len(m.rows) > 0 {
			goal := m.rows[m.cursor].goal
			return m.showGoalForm(&goal)
		}
	case key.Matches(msg, keys.Delete):
		if len(m.rows) > 0 {
			m.modal = modalConfirmDelete
		}
	case key.Matches(msg, keys.PDF):
		return m, m.exportPDF()
	}
	return m, nil
}

func (m DashboardModel) updateLogModal(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.modal = modalNone
		m.notesInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.modal = modalNone
		m.notesInput.Blur()
		goal := m.rows[m.cursor].goal
		notes := m.notesInput.Value()
		ctx, svc, roundID := m.ctx, m.svc, m.round.ID
		return m, func() tea.Msg {
			_, err := svc.LogToday(ctx, roundID, goal.ID, goal.DurationSeconds, notes)
			if err != nil {
				var nl *service.NotLoggableError
				if errors.As(err, &nl) {
					return statusMsg("cannot log: " + nl.Reason)
				}
				return dashErrMsg{err}
			}
			return statusMsg(fmt.Sprintf("logged %q for today", goal.Title))
		}
	}
	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateAmendModal(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.modal = modalNone
		return m, nil
	case key.Matches(msg, keys.Up):
		if m.amendCursor > 0 {
			m.amendCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.amendCursor < len(m.amendDates)-1 {
			m.amendCursor++
		}
	case msg.Type == tea.KeyEnter:
		m.modal = modalNone
		goal := m.rows[m.cursor].goal
		date := m.amendDates[m.amendCursor]
		ctx, svc, roundID := m.ctx, m.svc, m.round.ID
		return m, func() tea.Msg {
			_, err := svc.AmendDate(ctx, roundID, goal.ID, date, goal.DurationSeconds, "")
			if err != nil {
				var na *service.NotAmendableError
				if errors.As(err, &na) {
					return statusMsg(fmt.Sprintf("%s is no longer amendable", na.Date))
				}
				return dashErrMsg{err}
			}
			return statusMsg(fmt.Sprintf("amended %s for %q", date, goal.Title))
		}
	}
	return m, nil
}

func (m DashboardModel) updateConfirmDelete(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.modal = modalNone
		goal := m.rows[m.cursor].goal
		ctx, svc := m.ctx, m.svc
		return m, func() tea.Msg {
			if err := svc.DeleteGoal(ctx, goal.ID); err != nil {
				return dashErrMsg{err}
			}
			return statusMsg(fmt.Sprintf("deleted %q", goal.Title))
		}
	default:
		m.modal = modalNone
	}
	return m, nil
}

var frequencyOptions = []huh.Option[string]{
	huh.NewOption("Every day", "daily"),
	huh.NewOption("Once a week", "weekly:1"),
	huh.NewOption("Twice a week", "weekly:2"),
	huh.NewOption("3 times a week", "weekly:3"),
	huh.NewOption("5 times a week", "weekly:5"),
	huh.NewOption("Weekdays", "days:mon,tue,wed,thu,fri"),
	huh.NewOption("Weekends", "days:sat,sun"),
	huh.NewOption("Mon/Wed/Fri", "days:mon,wed,fri"),
	huh.NewOption("Tue/Thu", "days:tue,thu"),
}

var durationOptions = []huh.Option[string]{
	huh.NewOption("15 minutes", strconv.Itoa(config.DurationShort)),
	huh.NewOption("30 minutes", strconv.Itoa(config.DurationMedium)),
	huh.NewOption("1 hour", strconv.Itoa(config.DurationLong)),
}

// showGoalForm opens the goal form, prefilled when editing an existing
// goal.
func (m DashboardModel) showGoalForm(editing *models.Goal) (DashboardModel, tea.Cmd) {
	title, freq, dur := "", "daily", strconv.Itoa(config.DurationMedium)
	m.editingID = 0
	if editing != nil {
		title = editing.Title
		freq = editing.Frequency.Rule()
		dur = strconv.Itoa(editing.DurationSeconds)
		m.editingID = editing.ID
	}
	m.formTitle = &title
	m.formFreq = &freq
	m.formDuration = &dur

	m.goalForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal title").Value(m.formTitle).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Frequency").
				Options(withOption(frequencyOptions, freq)...).Value(m.formFreq),
			huh.NewSelect[string]().Title("Duration").
				Options(withOption(durationOptions, dur)...).Value(m.formDuration),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.modal = modalGoalForm
	return m, m.goalForm.Init()
}

// withOption appends value as an extra option when the preset list does
// not already carry it, so edited goals keep their current setting.
func withOption(options []huh.Option[string], value string) []huh.Option[string] {
	for _, o := range options {
		if o.Value == value {
			return options
		}
	}
	out := make([]huh.Option[string], len(options), len(options)+1)
	copy(out, options)
	return append(out, huh.NewOption(value, value))
}

func (m DashboardModel) updateGoalForm(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		m.modal = modalNone
		m.goalForm = nil
		return m, nil
	}

	form, cmd := m.goalForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.goalForm = f
	}

	if m.goalForm.State == huh.StateCompleted {
		m.modal = modalNone
		freq, err := models.ParseFrequency(*m.formFreq)
		if err != nil {
			m.err = err
			return m, nil
		}
		seconds, _ := strconv.Atoi(*m.formDuration)
		title := *m.formTitle
		ctx, svc, roundID := m.ctx, m.svc, m.round.ID
		if goalID := m.editingID; goalID != 0 {
			return m, func() tea.Msg {
				if err := svc.UpdateGoal(ctx, goalID, title, freq, seconds); err != nil {
					return dashErrMsg{err}
				}
				return statusMsg(fmt.Sprintf("updated %q", title))
			}
		}
		return m, func() tea.Msg {
			if _, err := svc.AddGoal(ctx, roundID, title, freq, seconds); err != nil {
				return dashErrMsg{err}
			}
			return statusMsg(fmt.Sprintf("added %q", title))
		}
	}

	return m, cmd
}

func (m DashboardModel) exportPDF() tea.Cmd {
	round, summary := m.round, m.summary
	goals := make([]models.Goal, 0, len(m.rows))
	for _, r := range m.rows {
		goals = append(goals, r.goal)
	}
	return func() tea.Msg {
		path, err := GeneratePDFReport(round, goals, summary)
		if err != nil {
			return dashErrMsg{err}
		}
		return statusMsg("PDF report written to " + path)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
