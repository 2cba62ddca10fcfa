package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Alarms != nil {
		return waitForAlarmCmd(m.Alarms.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		if m.Editing {
			if typed.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handleEditingKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Wakeup:
			m.switchMode(model.ModeWakeup)
			return m, nil
		case m.Keys.Bedtime:
			m.switchMode(model.ModeBedtime)
			return m, nil
		case m.Keys.Now:
			m.switchMode(model.ModeNow)
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "i":
			m.startEditing()
			return m, nil
		case "enter", "r":
			if err := m.recalculate(); err == nil {
				if m.Mode == model.ModeNow {
					m.Status = StatusBar{Text: "recalculated for now"}
				} else {
					m.Status = StatusBar{Text: "recalculated"}
				}
			}
			return m, nil
		case "j", "down":
			m.moveCursor(1)
			return m, nil
		case "k", "up":
			m.moveCursor(-1)
			return m, nil
		case "c":
			cmd := m.applyAction(m.copySuggestion(m.Cursor))
			return m, cmd
		case "s":
			cmd := m.applyAction(m.shareSuggestion(m.Cursor))
			return m, cmd
		case "a":
			cmd := m.applyAction(m.armAlarm(m.Cursor))
			return m, cmd
		case "f":
			m.setFormat(m.Format.Toggle())
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case AlarmFiredMsg:
		m.onAlarmFired(typed.Alarm)
		if m.Alarms != nil {
			return m, waitForAlarmCmd(m.Alarms.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleEditingKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.stopEditing(true)
		m.Status = StatusBar{Text: "editing cancelled"}
	case "enter":
		m.stopEditing(false)
		if err := m.recalculate(); err == nil {
			m.Status = StatusBar{Text: fmt.Sprintf("calculated for %s", m.timeInput.Value())}
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.timeInput.SetValue(m.timeInput.Value() + string(msg.Runes))
			return m
		}
		var cmd tea.Cmd
		m.timeInput, cmd = m.timeInput.Update(msg)
		_ = cmd
	}
	return m
}

// applyAction shows a successful card action as a toast that clears itself.
// Failures come back through AppErrorMsg.
func (m *Model) applyAction(message string, err error) tea.Cmd {
	if err != nil {
		return reportError(err)
	}
	m.Status = StatusBar{Text: message}
	return clearStatusAfter()
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	return views.RenderScreen(views.Screen{
		Format:  string(m.Format),
		Tabs:    m.renderTabs(),
		Input:   joinSections(m.renderInputView(), m.renderCommandPalette()),
		Results: joinSections(m.renderSuggestionsView(), m.renderAlarmsView()),
		Help:    m.renderHelpIfVisible(),
		Status:  m.Status.Text,
		IsError: m.Status.IsError,
		Toast:   m.renderNotificationsView(),
		Keys:    fmt.Sprintf("keys: %s wake | %s bed | %s now | / cmd | %s help | %s quit", m.Keys.Wakeup, m.Keys.Bedtime, m.Keys.Now, m.Keys.Help, m.Keys.Quit),
	})
}
