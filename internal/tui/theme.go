package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Goal          lipgloss.Style
	Completed     lipgloss.Style
	Failed        lipgloss.Style
	Pending       lipgloss.Style
	NotApplicable lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Error         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Goal:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Completed:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Failed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		NotApplicable: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Goal:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Completed:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Failed:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		NotApplicable: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
