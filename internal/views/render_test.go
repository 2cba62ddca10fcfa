package views

import (
	"strings"
	"testing"
)

func TestRenderScreenLayout(t *testing.T) {
	out := RenderScreen(Screen{
		Format:  "24h",
		Input:   "I want to wake up at...",
		Results: "You should go to bed at...",
		Status:  "copied 21:45",
		Toast:   "notification: [INFO] Copied to clipboard!",
		Keys:    "keys: q quit",
	})
	for _, want := range []string{"noozes", "24h", "I want to wake up at...", "You should go to bed at...", "status: copied 21:45", "Copied to clipboard!", "keys: q quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected screen to contain %q\n%s", want, out)
		}
	}
	if strings.Index(out, "I want to wake up at...") > strings.Index(out, "status: copied 21:45") {
		t.Fatalf("expected columns above the status line\n%s", out)
	}
}

func TestRenderScreenErrorAndEmptyStatus(t *testing.T) {
	out := RenderScreen(Screen{Status: "no suggestion 9", IsError: true})
	if !strings.Contains(out, "status: error: no suggestion 9") {
		t.Fatalf("expected error status\n%s", out)
	}
	out = RenderScreen(Screen{Input: "in", Results: "out"})
	if strings.Contains(out, "status:") {
		t.Fatalf("expected no status line\n%s", out)
	}
}
