package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noozes/internal/scheduler"
)

// statusTimeout is how long an action toast stays on the status bar.
var statusTimeout = 2 * time.Second

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg { return AppErrorMsg{Err: err} }
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// formatCountdown renders d rounded down to minutes as 7h05m.
func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMin := int(d / time.Minute)
	return fmt.Sprintf("%dh%02dm", totalMin/60, totalMin%60)
}

func waitForAlarmCmd(ch <-chan scheduler.Alarm) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return AlarmFiredMsg{Alarm: a}
	}
}

// joinSections stacks the non-empty sections with a blank line between them.
func joinSections(sections ...string) string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return strings.Join(out, "\n\n")
}
