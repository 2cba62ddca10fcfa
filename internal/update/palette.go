package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noozes/internal/commands"
	"github.com/sandeepkv93/noozes/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			runes := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				runes = " "
			}
			m.commandInput.SetValue(m.commandInput.Value() + runes)
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Calculate: func(a commands.CalculateArgs) (commands.Result, error) {
			m.Mode = a.Mode
			m.Cursor = 0
			m.stopEditing(false)
			if a.Mode != model.ModeNow {
				m.timeInput.SetValue(a.Time)
			}
			if err := m.recalculate(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s: %d suggestions", model.Label(a.Mode), len(m.Result.Suggestions))}, nil
		},
		Copy: func(p commands.PickArgs) (commands.Result, error) {
			msg, err := m.copySuggestion(p.Index - 1)
			return commands.Result{Message: msg}, err
		},
		Share: func(p commands.PickArgs) (commands.Result, error) {
			msg, err := m.shareSuggestion(p.Index - 1)
			return commands.Result{Message: msg}, err
		},
		Alarm: func(p commands.PickArgs) (commands.Result, error) {
			msg, err := m.armAlarm(p.Index - 1)
			return commands.Result{Message: msg}, err
		},
		Format: func(f commands.FormatArgs) (commands.Result, error) {
			m.setFormat(f.Format)
			return commands.Result{Message: fmt.Sprintf("clock format: %s", f.Format)}, nil
		},
	})
	m.closePalette()
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, clearStatusAfter()
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
