package update

import (
	"fmt"

	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/scheduler"
	"github.com/sandeepkv93/noozes/internal/share"
)

// recalculate refreshes Result from the current mode and input. On failure
// the previous suggestions stay on screen.
func (m *Model) recalculate() error {
	res, err := m.calc.Calculate(m.Mode, m.timeInput.Value())
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Debug("calculation rejected", "mode", m.Mode, "time", m.timeInput.Value(), "err", err)
		return err
	}
	m.Result = res
	m.LastError = nil
	if m.Cursor >= len(res.Suggestions) {
		m.Cursor = 0
	}
	m.logger.Debug("calculated suggestions", "mode", res.Mode, "count", len(res.Suggestions), "context", res.ContextTime)
	return nil
}

func (m *Model) switchMode(mode model.Mode) {
	if !isKnownMode(mode) {
		return
	}
	m.Mode = mode
	m.Cursor = 0
	m.stopEditing(false)
	if err := m.recalculate(); err == nil {
		m.Status = StatusBar{Text: fmt.Sprintf("mode: %s", model.Label(mode))}
	}
}

func (m *Model) startEditing() {
	if m.Mode == model.ModeNow {
		return
	}
	m.Editing = true
	m.editBackup = m.timeInput.Value()
	m.timeInput.SetValue("")
	m.timeInput.Focus()
	m.Status = StatusBar{Text: "enter a time as HH:MM"}
}

// stopEditing leaves edit mode. With restore the input goes back to the value
// it had before editing started.
func (m *Model) stopEditing(restore bool) {
	if !m.Editing {
		return
	}
	if restore {
		m.timeInput.SetValue(m.editBackup)
	}
	m.Editing = false
	m.editBackup = ""
	m.timeInput.Blur()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.Result.Suggestions)
	if n == 0 {
		m.Cursor = 0
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
}

func (m Model) suggestionAt(index int) (model.Suggestion, error) {
	if index < 0 || index >= len(m.Result.Suggestions) {
		return model.Suggestion{}, fmt.Errorf("no suggestion %d", index+1)
	}
	return m.Result.Suggestions[index], nil
}

func (m *Model) copySuggestion(index int) (string, error) {
	s, err := m.suggestionAt(index)
	if err != nil {
		return "", err
	}
	formatted := model.FormatClock(s.Time, m.Format)
	if err := m.copier.Copy(formatted); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		return "", fmt.Errorf("copy %s: %w", formatted, err)
	}
	m.notify(share.CopiedTitle, share.CopiedBody(formatted), "info")
	return fmt.Sprintf("copied %s", formatted), nil
}

func (m *Model) shareSuggestion(index int) (string, error) {
	s, err := m.suggestionAt(index)
	if err != nil {
		return "", err
	}
	text := share.Text(m.Result.Mode, model.FormatClock(s.Time, m.Format), m.shareURL)
	if err := m.copier.Copy(text); err != nil {
		m.logger.Warn("share copy failed", "err", err)
		return "", fmt.Errorf("share: %w", err)
	}
	m.notify(share.Title, text, "info")
	return "share text copied", nil
}

func (m *Model) armAlarm(index int) (string, error) {
	if m.Alarms == nil {
		return "", fmt.Errorf("alarms are not enabled")
	}
	s, err := m.suggestionAt(index)
	if err != nil {
		return "", err
	}
	a := scheduler.Alarm{
		ID:     alarmID(m.Result.Mode, s),
		Mode:   m.Result.Mode,
		Cycle:  s.Cycle,
		FireAt: s.Time,
	}
	if err := m.Alarms.Schedule(a); err != nil {
		return "", fmt.Errorf("arm alarm: %w", err)
	}
	m.Armed[a.ID] = a.FireAt
	m.logger.Info("alarm armed", "id", a.ID, "fire_at", a.FireAt)
	return fmt.Sprintf("alarm set for %s", model.FormatClock(a.FireAt, m.Format)), nil
}

func (m *Model) setFormat(f model.ClockFormat) {
	m.Format = f
	m.Status = StatusBar{Text: fmt.Sprintf("clock format: %s", f)}
}

func (m *Model) onAlarmFired(a scheduler.Alarm) {
	m.AlarmLog = append(m.AlarmLog, a)
	if len(m.AlarmLog) > 20 {
		m.AlarmLog = m.AlarmLog[len(m.AlarmLog)-20:]
	}
	delete(m.Armed, a.ID)
	body := fmt.Sprintf("%s: %s", alarmAction(a.Mode), model.FormatClock(a.FireAt, m.Format))
	m.Status = StatusBar{Text: body}
	m.notify("Alarm", body, "info")
	m.logger.Info("alarm fired", "id", a.ID)
}

func alarmID(mode model.Mode, s model.Suggestion) string {
	return fmt.Sprintf("%s-%d-%s", mode, s.Cycle, s.Time.Format("200601021504"))
}

// alarmAction names what the alarm asks of the user. Wakeup mode suggests
// bedtimes, the other modes suggest wake times.
func alarmAction(mode model.Mode) string {
	if mode == model.ModeWakeup {
		return "time to go to bed"
	}
	return "time to wake up"
}
