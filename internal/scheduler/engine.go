package scheduler

import (
	"container/heap"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/noozes/internal/model"
)

var (
	ErrInvalidFireTime = errors.New("scheduler: invalid fire time")
	ErrEngineStopped   = errors.New("scheduler: engine stopped")
)

// Alarm fires when a chosen suggestion time arrives. Alarms are kept in
// memory only.
type Alarm struct {
	ID     string
	Mode   model.Mode
	Cycle  int
	FireAt time.Time
}

type queueItem struct {
	alarm Alarm
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].alarm.FireAt.Before(pq[j].alarm.FireAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	out     chan Alarm
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	now     func() time.Time
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	return NewEngineWithClock(bufferSize, nil)
}

func NewEngineWithClock(bufferSize int, now func() time.Time) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		out:    make(chan Alarm, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		now:    now,
	}
}

func (e *Engine) C() <-chan Alarm {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule queues a. Scheduling an ID that is already pending replaces it.
func (e *Engine) Schedule(a Alarm) error {
	if a.FireAt.IsZero() {
		return ErrInvalidFireTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrEngineStopped
	}

	e.removeLocked(a.ID)
	heap.Push(&e.queue, queueItem{alarm: a})
	e.signalWakeup()
	return nil
}

// Cancel drops a pending alarm and reports whether one was removed.
func (e *Engine) Cancel(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	removed := e.removeLocked(id)
	if removed {
		e.signalWakeup()
	}
	return removed
}

func (e *Engine) Pending() []Alarm {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Alarm, 0, len(e.queue))
	for _, item := range e.queue {
		out = append(out, item.alarm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) removeLocked(id string) bool {
	if id == "" {
		return false
	}
	for i, item := range e.queue {
		if item.alarm.ID == id {
			heap.Remove(&e.queue, i)
			return true
		}
	}
	return false
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := next.FireAt.Sub(e.now())
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(e.now())
			for _, a := range due {
				select {
				case e.out <- a:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return Alarm{}, false
	}
	return e.queue[0].alarm, true
}

func (e *Engine) popDue(now time.Time) []Alarm {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Alarm, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].alarm
		if next.FireAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		out = append(out, item.alarm)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
