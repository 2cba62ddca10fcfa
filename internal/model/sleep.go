package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	SleepCycle         = 90 * time.Minute
	FallAsleepLatency  = 15 * time.Minute
	MaxCycles          = 6
	WakeupSuggestions  = 4
	BedtimeSuggestions = 6
)

var (
	ErrInvalidMode      = errors.New("model: invalid mode")
	ErrInvalidTimeOfDay = errors.New("model: invalid time of day, expected HH:MM")
)

type Mode string

const (
	ModeWakeup  Mode = "wakeup"
	ModeBedtime Mode = "bedtime"
	ModeNow     Mode = "now"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWakeup, ModeBedtime, ModeNow:
		return true
	default:
		return false
	}
}

// SuggestionCount is the number of suggestions a calculation in this mode yields.
func (m Mode) SuggestionCount() int {
	if m == ModeWakeup {
		return WakeupSuggestions
	}
	return BedtimeSuggestions
}

// ParseMode accepts the canonical names and the short aliases used by the
// command palette.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wakeup", "wake", "wake-up":
		return ModeWakeup, nil
	case "bedtime", "bed":
		return ModeBedtime, nil
	case "now", "sleep":
		return ModeNow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

type Suggestion struct {
	Time  time.Time
	Cycle int
}

func (s Suggestion) SleepDuration() time.Duration {
	return time.Duration(s.Cycle) * SleepCycle
}

func (s Suggestion) Hours() float64 {
	return s.SleepDuration().Hours()
}

type Result struct {
	Mode        Mode
	Suggestions []Suggestion
	// ContextTime is the anchor after rollover.
	ContextTime time.Time
}

// Calculator maps a mode and an optional time of day to cycle-aligned
// suggestions. It holds no state besides its clock.
type Calculator struct {
	now func() time.Time
}

func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Calculate uses the wall clock.
func Calculate(mode Mode, timeValue string) (Result, error) {
	return NewCalculator(nil).Calculate(mode, timeValue)
}

// Calculate anchors on timeValue for wakeup and bedtime, or on the current
// moment for now and for an empty timeValue. A non-empty timeValue that is not
// a 24-hour HH:MM string fails with ErrInvalidTimeOfDay.
func (c *Calculator) Calculate(mode Mode, timeValue string) (Result, error) {
	if !mode.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	now := c.now()
	anchor := now
	if mode != ModeNow && strings.TrimSpace(timeValue) != "" {
		hour, minute, err := ParseTimeOfDay(timeValue)
		if err != nil {
			return Result{}, err
		}
		anchor = time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	}

	count := mode.SuggestionCount()
	suggestions := make([]Suggestion, 0, count)

	if mode == ModeWakeup {
		if anchor.Before(now) {
			anchor = anchor.Add(24 * time.Hour)
		}
		target := anchor.Add(-FallAsleepLatency)
		for i := 0; i < count; i++ {
			cycle := MaxCycles - i
			suggestions = append(suggestions, Suggestion{
				Time:  target.Add(-time.Duration(cycle) * SleepCycle),
				Cycle: cycle,
			})
		}
		return Result{Mode: mode, Suggestions: suggestions, ContextTime: anchor}, nil
	}

	start := anchor.Add(FallAsleepLatency)
	for i := count - 1; i >= 0; i-- {
		cycle := MaxCycles - i
		suggestions = append(suggestions, Suggestion{
			Time:  start.Add(time.Duration(cycle) * SleepCycle),
			Cycle: cycle,
		})
	}
	return Result{Mode: mode, Suggestions: suggestions, ContextTime: anchor}, nil
}

// ParseTimeOfDay parses "H:MM" or "HH:MM" on a 24-hour clock.
func ParseTimeOfDay(s string) (int, int, error) {
	raw := strings.TrimSpace(s)
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 ||
		!isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return hour, minute, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
