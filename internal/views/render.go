package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Screen is one frame of the calculator: the mode tabs over an input column
// and a results column, followed by help, the status line and the latest toast.
type Screen struct {
	Format  string
	Tabs    string
	Input   string
	Results string
	Help    string
	Status  string
	IsError bool
	Toast   string
	Keys    string
}

const (
	inputWidth   = 44
	resultsWidth = 56
	helpWidth    = inputWidth + resultsWidth + 2
	markdownWrap = 72
)

var (
	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	badgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Padding(0, 1)
	inputColStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	resultColStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1)
	toastStyle     = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("14")).PaddingLeft(1)
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	keysStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Padding(0, 1)
	timeStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

func RenderScreen(s Screen) string {
	title := brandStyle.Render("noozes")
	if s.Format != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badgeStyle.Render(s.Format))
	}

	parts := []string{title}
	if s.Tabs != "" {
		parts = append(parts, s.Tabs)
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
		inputColStyle.Width(inputWidth).Render(s.Input),
		resultColStyle.Width(resultsWidth).Render(s.Results),
	))
	if s.Help != "" {
		parts = append(parts, inputColStyle.Width(helpWidth).Render(s.Help))
	}
	if line := statusLine(s.Status, s.IsError); line != "" {
		parts = append(parts, line)
	}
	if s.Toast != "" {
		parts = append(parts, toastStyle.Render(s.Toast))
	}
	if s.Keys != "" {
		parts = append(parts, keysStyle.Render(s.Keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statusLine(text string, isErr bool) string {
	switch {
	case text == "":
		return ""
	case isErr:
		return errStyle.Render("status: error: " + text)
	default:
		return okStyle.Render("status: " + text)
	}
}

// RenderMarkdown renders md for the terminal, falling back to the raw text.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
