package views

import (
	"strings"
	"testing"
)

func TestRenderSuggestionsPanelMarksCursorAndAlarm(t *testing.T) {
	out := RenderSuggestionsPanel(SuggestionsPanelData{
		Heading: "You should go to bed at...",
		Cards: []SuggestionCardData{
			{Time: "9:45 PM", Description: "6 sleep cycles (9 hours of sleep)"},
			{Time: "11:15 PM", Description: "5 sleep cycles (7.5 hours of sleep)", Alarmed: true},
		},
		Cursor: 1,
	})
	if !strings.Contains(out, "  1. 9:45 PM") {
		t.Fatalf("expected unselected first card, got:\n%s", out)
	}
	if !strings.Contains(out, "> 2. 11:15 PM (alarm set)") {
		t.Fatalf("expected selected alarmed second card, got:\n%s", out)
	}
}

func TestRenderSuggestionsPanelEmpty(t *testing.T) {
	out := RenderSuggestionsPanel(SuggestionsPanelData{Heading: "You should wake up at..."})
	if !strings.Contains(out, "(no suggestions)") {
		t.Fatalf("expected empty marker, got:\n%s", out)
	}
}

func TestRenderInputPanelNowMode(t *testing.T) {
	out := RenderInputPanel(InputPanelData{Prompt: "Calculate wake up times based on the current time.", InputView: "time> 07:00", NowMode: true})
	if strings.Contains(out, "time>") {
		t.Fatalf("now mode should hide the time input, got:\n%s", out)
	}
	if !strings.Contains(out, "Recalculate for Now") {
		t.Fatalf("expected recalculate action, got:\n%s", out)
	}
}

func TestRenderNotificationAndPalette(t *testing.T) {
	if RenderNotification("info", "title", " ") != "" {
		t.Fatal("expected empty notification for blank body")
	}
	got := RenderNotification("info", "Copied to clipboard!", "9:45 PM has been copied.")
	if got != "notification: [INFO] Copied to clipboard! 9:45 PM has been copied." {
		t.Fatalf("unexpected notification: %q", got)
	}
	if RenderCommandPalette(false, "wake") != "" {
		t.Fatal("inactive palette should render nothing")
	}
	if RenderCommandPalette(true, "wake 07:00") != "command: /wake 07:00" {
		t.Fatal("unexpected palette rendering")
	}
}

func TestRenderAlarmsPanel(t *testing.T) {
	if RenderAlarmsPanel(nil) != "" {
		t.Fatal("expected empty alarms panel")
	}
	out := RenderAlarmsPanel([]AlarmData{{Time: "9:45 PM", Label: "time to go to bed (in 0h00m)"}})
	if out != "alarms:\n- 9:45 PM time to go to bed (in 0h00m)" {
		t.Fatalf("unexpected alarms panel: %q", out)
	}
}
