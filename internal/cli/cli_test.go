package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sandeepkv93/noozes/internal/config"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/server"
	"github.com/sandeepkv93/noozes/internal/share"
)

var fixedNow = time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

type result struct {
	out string
	err string
	rec *share.Recorder
}

func run(t *testing.T, terminal bool, args ...string) (result, error) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	rec := &share.Recorder{}
	app := &App{
		Out:        &out,
		Err:        &errOut,
		Now:        func() time.Time { return fixedNow },
		Copier:     rec,
		IsTerminal: func() bool { return terminal },
		LoadConfig: func(string) (config.RuntimeConfig, error) { return config.DefaultRuntimeConfig(), nil },
	}
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{out: out.String(), err: errOut.String(), rec: rec}, err
}

func TestWakeupCommand(t *testing.T) {
	res, err := run(t, false, "wakeup", "07:00")
	if err != nil {
		t.Fatalf("wakeup failed: %v", err)
	}
	for _, want := range []string{
		"You should go to bed at...",
		"to wake up at 7:00 AM, Tue Jan 2",
		"1. 9:45 PM",
		"6 sleep cycles (9 hours of sleep)",
		"4. 2:15 AM",
	} {
		if !strings.Contains(res.out, want) {
			t.Fatalf("expected output to contain %q\n%s", want, res.out)
		}
	}
	if strings.Contains(res.out, "5. ") {
		t.Fatalf("expected four suggestions\n%s", res.out)
	}
}

func TestBedtimeAtFlagAnd24h(t *testing.T) {
	res, err := run(t, false, "bedtime", "--at", "23:00", "--format", "24h")
	if err != nil {
		t.Fatalf("bedtime failed: %v", err)
	}
	if !strings.Contains(res.out, "You should wake up at...") || !strings.Contains(res.out, "1. 00:45") {
		t.Fatalf("unexpected output\n%s", res.out)
	}
	if !strings.Contains(res.out, "6. 08:15") {
		t.Fatalf("expected six suggestions\n%s", res.out)
	}
}

func TestNowJSON(t *testing.T) {
	res, err := run(t, false, "now", "--json")
	if err != nil {
		t.Fatalf("now failed: %v", err)
	}
	var body server.CalculateResponse
	if err := json.Unmarshal([]byte(res.out), &body); err != nil {
		t.Fatalf("decode json: %v\n%s", err, res.out)
	}
	if body.Mode != model.ModeNow || len(body.Suggestions) != 6 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Suggestions[0].Display != "11:45 PM" || body.Suggestions[0].Cycle != 1 {
		t.Fatalf("unexpected first suggestion: %+v", body.Suggestions[0])
	}
}

func TestInvalidTimeFails(t *testing.T) {
	_, err := run(t, false, "wakeup", "25:00")
	if !errors.Is(err, model.ErrInvalidTimeOfDay) {
		t.Fatalf("expected invalid time error, got %v", err)
	}
	_, err = run(t, false, "wakeup", "--format", "36h")
	if !errors.Is(err, model.ErrInvalidClockFormat) {
		t.Fatalf("expected invalid format error, got %v", err)
	}
}

func TestCopyAndShareFlags(t *testing.T) {
	res, err := run(t, false, "wakeup", "07:00", "--copy", "2")
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if res.rec.Last() != "11:15 PM" {
		t.Fatalf("expected copied 11:15 PM, got %q", res.rec.Last())
	}
	if !strings.Contains(res.err, "11:15 PM has been copied.") {
		t.Fatalf("expected copy notice, got %q", res.err)
	}

	res, err = run(t, false, "--share", "1", "bedtime", "23:00")
	if err != nil {
		t.Fatalf("share failed: %v", err)
	}
	if !strings.Contains(res.rec.Last(), "a good time to wake up is 12:45 AM") {
		t.Fatalf("unexpected share text: %q", res.rec.Last())
	}

	_, err = run(t, false, "wakeup", "07:00", "--copy", "9")
	if err == nil || !strings.Contains(err.Error(), "no suggestion 9") {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestRootWithoutTerminalPrintsDefault(t *testing.T) {
	res, err := run(t, false)
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if !strings.Contains(res.out, "You should go to bed at...") || !strings.Contains(res.out, "9:45 PM") {
		t.Fatalf("unexpected default output\n%s", res.out)
	}
}

func TestVersionFlag(t *testing.T) {
	res, err := run(t, false, "--version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(res.out, Version) {
		t.Fatalf("expected version in output, got %q", res.out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "info", "json").Info("hello", "k", "v")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	buf.Reset()
	newLogger(&buf, "warn", "text").Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn, got %q", buf.String())
	}
}
