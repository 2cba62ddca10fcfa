package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/views"
)

const aboutMarkdown = `## How it works

A sleep cycle lasts about **90 minutes**, and it takes around **15 minutes** to fall asleep.
Waking up between cycles, instead of in the middle of one, helps you feel rested.`

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentMode: string(m.Mode),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
		About: views.RenderMarkdown(aboutMarkdown),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Wakeup, Action: "wake up at"},
		{Key: m.Keys.Bedtime, Action: "go to bed at"},
		{Key: m.Keys.Now, Action: "sleep now"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	cards := []KeyBinding{
		{Key: "j/k", Action: "move cursor"},
		{Key: "c/s", Action: "copy / share selected time"},
		{Key: "a", Action: "set alarm for selected time"},
		{Key: "f", Action: "toggle 12h/24h"},
	}
	if m.Mode == model.ModeNow {
		return append([]KeyBinding{{Key: "r", Action: "recalculate for now"}}, cards...)
	}
	return append([]KeyBinding{
		{Key: "i", Action: "edit time"},
		{Key: "enter", Action: "calculate"},
		{Key: "r", Action: "recalculate"},
	}, cards...)
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.modeBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.modeBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
