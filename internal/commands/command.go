package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/spf13/cast"
)

type Type string

const (
	TypeWake   Type = "wake"
	TypeBed    Type = "bed"
	TypeNow    Type = "now"
	TypeCopy   Type = "copy"
	TypeShare  Type = "share"
	TypeAlarm  Type = "alarm"
	TypeFormat Type = "format"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CalculateArgs carries the target mode and time of day for wake, bed and now.
type CalculateArgs struct {
	Mode model.Mode
	Time string
}

// PickArgs selects a suggestion by its 1-based position on screen.
type PickArgs struct {
	Index int
}

type FormatArgs struct {
	Format model.ClockFormat
}

type Command struct {
	Type      Type
	Raw       string
	Calculate *CalculateArgs
	Pick      *PickArgs
	Format    *FormatArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeWake:
		return parseTimed(input, TypeWake, model.ModeWakeup, args)
	case TypeBed:
		return parseTimed(input, TypeBed, model.ModeBedtime, args)
	case TypeNow:
		return Command{Type: TypeNow, Raw: input, Calculate: &CalculateArgs{Mode: model.ModeNow}}, nil
	case TypeCopy, TypeShare, TypeAlarm:
		return parsePick(input, Type(head), args)
	case TypeFormat:
		return parseFormat(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTimed(raw string, t Type, mode model.Mode, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a time as HH:MM", t)}
	}
	if _, _, err := model.ParseTimeOfDay(args[0]); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: %q is not HH:MM", t, args[0])}
	}
	return Command{Type: t, Raw: raw, Calculate: &CalculateArgs{Mode: mode, Time: args[0]}}, nil
}

func parsePick(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a suggestion number", t)}
	}
	idx, err := cast.ToIntE(args[0])
	if err != nil || idx <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: %q is not a suggestion number", t, args[0])}
	}
	return Command{Type: t, Raw: raw, Pick: &PickArgs{Index: idx}}, nil
}

func parseFormat(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "format requires 12h or 24h"}
	}
	f, err := model.ParseClockFormat(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "format requires 12h or 24h"}
	}
	return Command{Type: TypeFormat, Raw: raw, Format: &FormatArgs{Format: f}}, nil
}
