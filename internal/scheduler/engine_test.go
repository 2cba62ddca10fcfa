package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/noozes/internal/model"
)

func TestEngineFiresInOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Alarm{ID: "later", Mode: model.ModeBedtime, Cycle: 5, FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Alarm{ID: "sooner", Mode: model.ModeWakeup, Cycle: 6, FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitAlarm(t, engine.C(), time.Second)
	second := waitAlarm(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
	if first.Cycle != 6 || first.Mode != model.ModeWakeup {
		t.Fatalf("alarm payload lost: %+v", first)
	}
}

func TestEnginePastAlarmFiresImmediately(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	if err := engine.Schedule(Alarm{ID: "late", FireAt: time.Now().Add(-time.Hour)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if got := waitAlarm(t, engine.C(), time.Second); got.ID != "late" {
		t.Fatalf("unexpected alarm: %+v", got)
	}
}

func TestEngineCancel(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	_ = engine.Schedule(Alarm{ID: "keep", FireAt: now.Add(60 * time.Millisecond)})
	_ = engine.Schedule(Alarm{ID: "drop", FireAt: now.Add(20 * time.Millisecond)})
	if !engine.Cancel("drop") {
		t.Fatal("expected cancel to remove pending alarm")
	}
	if engine.Cancel("drop") {
		t.Fatal("second cancel should report nothing removed")
	}
	if got := waitAlarm(t, engine.C(), time.Second); got.ID != "keep" {
		t.Fatalf("cancelled alarm fired: %+v", got)
	}
}

func TestScheduleReplacesSameID(t *testing.T) {
	engine := NewEngine(4)
	base := time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC)
	_ = engine.Schedule(Alarm{ID: "bed", FireAt: base.Add(time.Hour)})
	_ = engine.Schedule(Alarm{ID: "other", FireAt: base.Add(30 * time.Minute)})
	_ = engine.Schedule(Alarm{ID: "bed", FireAt: base})

	pending := engine.Pending()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending alarms, got %d", len(pending))
	}
	if pending[0].ID != "bed" || !pending[0].FireAt.Equal(base) {
		t.Fatalf("expected rescheduled alarm first, got %+v", pending[0])
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	fireAt := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Alarm{FireAt: fireAt}); err != nil {
			t.Fatalf("schedule alarm: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped alarms > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesFireTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Alarm{ID: "bad"}); !errors.Is(err, ErrInvalidFireTime) {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
}

func TestScheduleAfterStop(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if err := engine.Schedule(Alarm{ID: "x", FireAt: time.Now()}); !errors.Is(err, ErrEngineStopped) {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
}

func waitAlarm(t *testing.T, ch <-chan Alarm, timeout time.Duration) Alarm {
	t.Helper()
	select {
	case a := <-ch:
		return a
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for alarm")
		return Alarm{}
	}
}
