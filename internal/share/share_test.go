package share

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/noozes/internal/model"
)

func TestTextByMode(t *testing.T) {
	got := Text(model.ModeWakeup, "10:45 PM", "")
	want := "Based on my schedule, a good time to go to bed is 10:45 PM. Find your perfect sleep time with Noozes!"
	if got != want {
		t.Fatalf("wakeup share text = %q", got)
	}
	for _, mode := range []model.Mode{model.ModeBedtime, model.ModeNow} {
		if !strings.Contains(Text(mode, "6:45 AM", ""), "a good time to wake up is 6:45 AM.") {
			t.Fatalf("%s share text should mention waking up", mode)
		}
	}
}

func TestTextAppendsURL(t *testing.T) {
	got := Text(model.ModeNow, "1:00 AM", " https://noozes.example ")
	if !strings.HasSuffix(got, "Noozes! https://noozes.example") {
		t.Fatalf("expected url suffix, got %q", got)
	}
}

func TestCopiedBody(t *testing.T) {
	if got := CopiedBody("6:45 AM"); got != "6:45 AM has been copied." {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if r.Last() != "" || r.Len() != 0 {
		t.Fatal("expected empty recorder")
	}
	_ = r.Copy("a")
	_ = r.Copy("b")
	if r.Last() != "b" || r.Len() != 2 {
		t.Fatalf("unexpected recorder state: last=%q len=%d", r.Last(), r.Len())
	}
}
