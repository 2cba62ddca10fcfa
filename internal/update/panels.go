package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/views"
)

func (m Model) renderTabs() string {
	modes := []struct {
		key  string
		mode model.Mode
	}{
		{m.Keys.Wakeup, model.ModeWakeup},
		{m.Keys.Bedtime, model.ModeBedtime},
		{m.Keys.Now, model.ModeNow},
	}
	tabs := make([]views.TabData, 0, len(modes))
	for _, tm := range modes {
		tabs = append(tabs, views.TabData{Key: tm.key, Label: model.Label(tm.mode), Active: tm.mode == m.Mode})
	}
	return views.RenderTabs(tabs)
}

func (m Model) renderInputView() string {
	return views.RenderInputPanel(views.InputPanelData{
		Prompt:    model.Prompt(m.Mode),
		InputView: m.timeInput.View(),
		Editing:   m.Editing,
		NowMode:   m.Mode == model.ModeNow,
	})
}

func (m Model) renderSuggestionsView() string {
	if len(m.Result.Suggestions) == 0 {
		return views.RenderSuggestionsPanel(views.SuggestionsPanelData{Heading: model.Heading(m.Mode)})
	}
	cards := make([]views.SuggestionCardData, 0, len(m.Result.Suggestions))
	for _, s := range m.Result.Suggestions {
		_, armed := m.Armed[alarmID(m.Result.Mode, s)]
		cards = append(cards, views.SuggestionCardData{
			Time:        model.FormatClock(s.Time, m.Format),
			Description: model.DescribeCycles(s.Cycle),
			Alarmed:     armed,
		})
	}
	return views.RenderSuggestionsPanel(views.SuggestionsPanelData{
		Heading:     model.Heading(m.Result.Mode),
		ContextLine: m.contextLine(),
		Cards:       cards,
		Cursor:      m.Cursor,
	})
}

func (m Model) contextLine() string {
	ctx := m.Result.ContextTime
	if ctx.IsZero() {
		return ""
	}
	when := fmt.Sprintf("%s (%s)", model.FormatClock(ctx, m.Format), ctx.Format("Mon Jan 2"))
	switch m.Result.Mode {
	case model.ModeWakeup:
		return "to wake up at " + when
	case model.ModeBedtime:
		return "if you go to bed at " + when
	default:
		return "if you go to sleep now, " + when
	}
}

func (m Model) renderAlarmsView() string {
	if m.Alarms == nil {
		return ""
	}
	pending := m.Alarms.Pending()
	out := make([]views.AlarmData, 0, len(pending))
	now := m.now()
	for _, a := range pending {
		out = append(out, views.AlarmData{
			Time:  model.FormatClock(a.FireAt, m.Format),
			Label: fmt.Sprintf("%s (in %s)", alarmAction(a.Mode), formatCountdown(a.FireAt.Sub(now))),
		})
	}
	return views.RenderAlarmsPanel(out)
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Title, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.logger.Warn("desktop notification failed", "err", err)
		}
	}
}
