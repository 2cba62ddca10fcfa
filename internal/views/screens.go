package views

import (
	"fmt"
	"strings"
)

type TabData struct {
	Key    string
	Label  string
	Active bool
}

type InputPanelData struct {
	Prompt    string
	InputView string
	Editing   bool
	NowMode   bool
}

type SuggestionCardData struct {
	Time        string
	Description string
	Alarmed     bool
}

type SuggestionsPanelData struct {
	Heading     string
	ContextLine string
	Cards       []SuggestionCardData
	Cursor      int
}

type AlarmData struct {
	Time  string
	Label string
}

type HelpPanelData struct {
	CurrentMode string
	Bindings    []string
	HelpView    string
	About       string
}

func RenderTabs(tabs []TabData) string {
	out := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := fmt.Sprintf("[%s] %s", tab.Key, tab.Label)
		if tab.Active {
			out = append(out, activeTabStyle.Render(label))
			continue
		}
		out = append(out, tabStyle.Render(label))
	}
	return strings.Join(out, " ")
}

func RenderInputPanel(data InputPanelData) string {
	var b strings.Builder
	b.WriteString(data.Prompt + "\n\n")
	if data.NowMode {
		b.WriteString("actions: [r] Recalculate for Now\n")
		return strings.TrimSpace(b.String())
	}
	b.WriteString(data.InputView + "\n")
	if data.Editing {
		b.WriteString("keys: [enter] calculate [esc] stop editing\n")
	} else {
		b.WriteString("actions: [i] edit time [r] recalculate\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderSuggestionsPanel(data SuggestionsPanelData) string {
	var b strings.Builder
	b.WriteString(data.Heading + "\n")
	if data.ContextLine != "" {
		b.WriteString(data.ContextLine + "\n")
	}
	if len(data.Cards) == 0 {
		b.WriteString("\n(no suggestions)")
		return b.String()
	}
	b.WriteString("\n")
	for i, card := range data.Cards {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		alarm := ""
		if card.Alarmed {
			alarm = " (alarm set)"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s%s\n", cursor, i+1, timeStyle.Render(card.Time), alarm))
		b.WriteString(fmt.Sprintf("     %s\n", card.Description))
	}
	b.WriteString("\nactions: [j/k] move [c] copy [s] share [a] alarm [f] 12h/24h")
	return b.String()
}

func RenderAlarmsPanel(alarms []AlarmData) string {
	if len(alarms) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("alarms:\n")
	for _, a := range alarms {
		b.WriteString(fmt.Sprintf("- %s %s\n", a.Time, a.Label))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, title string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
	}
	return fmt.Sprintf("notification: [%s] %s %s", strings.ToUpper(level), title, body)
}

func RenderHelpPanel(data HelpPanelData) string {
	out := fmt.Sprintf("help:\nglobal:\n%s mode:\n%s\n%s",
		strings.ToLower(data.CurrentMode),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
	if data.About != "" {
		out += "\n\n" + data.About
	}
	return out
}
