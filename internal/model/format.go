package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClockFormat = errors.New("model: invalid clock format")

type ClockFormat string

const (
	Clock12h ClockFormat = "12h"
	Clock24h ClockFormat = "24h"
)

func (f ClockFormat) IsValid() bool {
	switch f {
	case Clock12h, Clock24h:
		return true
	default:
		return false
	}
}

func (f ClockFormat) Toggle() ClockFormat {
	if f == Clock24h {
		return Clock12h
	}
	return Clock24h
}

func ParseClockFormat(s string) (ClockFormat, error) {
	f := ClockFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockFormat, s)
	}
	return f, nil
}

// FormatClock renders t as "6:45 AM" or "06:45". Anything other than Clock24h
// renders on the 12-hour clock.
func FormatClock(t time.Time, f ClockFormat) string {
	if f == Clock24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// DescribeCycles reads like "6 sleep cycles (9 hours of sleep)".
func DescribeCycles(cycle int) string {
	noun := "cycles"
	if cycle == 1 {
		noun = "cycle"
	}
	hours := strconv.FormatFloat(float64(cycle)*SleepCycle.Hours(), 'f', -1, 64)
	return fmt.Sprintf("%d sleep %s (%s hours of sleep)", cycle, noun, hours)
}

func Heading(mode Mode) string {
	if mode == ModeWakeup {
		return "You should go to bed at..."
	}
	return "You should wake up at..."
}

func Prompt(mode Mode) string {
	switch mode {
	case ModeWakeup:
		return "I want to wake up at..."
	case ModeBedtime:
		return "I want to go to bed at..."
	default:
		return "Calculate wake up times based on the current time."
	}
}

// Label is the tab title for mode.
func Label(mode Mode) string {
	switch mode {
	case ModeWakeup:
		return "Wake up at"
	case ModeBedtime:
		return "Go to bed at"
	default:
		return "Sleep now"
	}
}
