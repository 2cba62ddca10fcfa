package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/noozes/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/wake 07:00", TypeWake},
		{"bed 23:15", TypeBed},
		{"now", TypeNow},
		{"/copy 2", TypeCopy},
		{"share 1", TypeShare},
		{"alarm 3", TypeAlarm},
		{"format 24h", TypeFormat},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseCalculateArgs(t *testing.T) {
	cmd, err := Parse("/bed 7:30")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Calculate == nil || cmd.Calculate.Mode != model.ModeBedtime || cmd.Calculate.Time != "7:30" {
		t.Fatalf("unexpected calculate args: %+v", cmd.Calculate)
	}
	cmd, err = Parse("now")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Calculate == nil || cmd.Calculate.Mode != model.ModeNow {
		t.Fatalf("unexpected now args: %+v", cmd.Calculate)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{"wake", "wake 25:00", "bed 7pm", "copy", "copy zero", "copy 0", "share -1", "format 36h"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("%q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	var ce *CommandError
	if _, err := Parse("  / "); !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
	if _, err := Parse("/snooze 5"); !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/copy 4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Copy: func(p PickArgs) (Result, error) {
			called = true
			if p.Index != 4 {
				t.Fatalf("unexpected index: %d", p.Index)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("format 12h")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
