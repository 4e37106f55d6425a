package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmalherbe/cadence/internal/schedule"
	"github.com/jmalherbe/cadence/internal/service"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateInitializing SessionState = iota
	StateDashboard
	StateReport
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	ctx    context.Context
	svc    *service.Service
	engine *schedule.Engine

	state  SessionState
	width  int
	height int
	err    error

	roundForm *huh.Form
	formTitle *string
	formStart *string
	formEnd   *string

	dashboard DashboardModel
	report    ReportModel
}

func NewMainModel(ctx context.Context, svc *service.Service, engine *schedule.Engine) MainModel {
	m := MainModel{
		ctx:    ctx,
		svc:    svc,
		engine: engine,
	}

	round, err := svc.ActiveRound(ctx)
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		m.state = StateInitializing
		m.initRoundForm()
		return m
	}
	if err != nil {
		m.err = err
		return m
	}

	m.state = StateDashboard
	m.dashboard = NewDashboardModel(ctx, svc, round)
	m.report = NewReportModel(ctx, svc, round)
	return m
}

func (m *MainModel) initRoundForm() {
	today := m.engine.Today()
	end, _ := schedule.AddDays(today, 27)

	title, start := "", today
	m.formTitle = &title
	m.formStart = &start
	m.formEnd = &end

	m.roundForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Round title").Value(m.formTitle).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(m.formStart).
				Validate(validateDateField),
			huh.NewInput().Title("End date (YYYY-MM-DD)").Value(m.formEnd).
				Validate(validateDateField),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func validateDateField(s string) error {
	if _, err := schedule.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (m MainModel) Init() tea.Cmd {
	switch m.state {
	case StateInitializing:
		return m.roundForm.Init()
	case StateDashboard:
		return m.dashboard.Init()
	}
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.setSize(msg.Width, msg.Height)
		m.report.setSize(msg.Width, msg.Height)
	}

	switch m.state {
	case StateInitializing:
		return m.updateInitializing(msg)
	case StateDashboard:
		if key, ok := msg.(tea.KeyMsg); ok && m.dashboard.modal == modalNone && key.String() == "2" {
			m.state = StateReport
			return m, m.report.refresh()
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	case StateReport:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "1", "esc":
				m.state = StateDashboard
				return m, m.dashboard.refresh()
			case "q":
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m MainModel) updateInitializing(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.roundForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.roundForm = f
	}

	if m.roundForm.State == huh.StateCompleted {
		start, end := *m.formStart, *m.formEnd
		if end < start {
			m.err = fmt.Errorf("end date %s is before start date %s", end, start)
			m.initRoundForm()
			return m, m.roundForm.Init()
		}
		round, err := m.svc.CreateRound(m.ctx, *m.formTitle, start, end)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.state = StateDashboard
		m.dashboard = NewDashboardModel(m.ctx, m.svc, round)
		m.dashboard.setSize(m.width, m.height)
		m.report = NewReportModel(m.ctx, m.svc, round)
		m.report.setSize(m.width, m.height)
		return m, m.dashboard.Init()
	}

	return m, cmd
}

func (m MainModel) View() string {
	if m.err != nil {
		return CurrentTheme.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\nPress Ctrl+C to quit.\n"
	}

	switch m.state {
	case StateInitializing:
		header := CurrentTheme.Header.Render("No active round. Let's start one.")
		return CurrentTheme.Base.Render(header + "\n\n" + m.roundForm.View())
	case StateDashboard:
		return m.dashboard.View()
	case StateReport:
		return m.report.View()
	}

	return ""
}
