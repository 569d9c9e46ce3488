package notify

import (
	"sort"
	"sync"
	"time"
)

// ToastLifetime: время показа всплывающего сообщения.
const ToastLifetime = 3 * time.Second

// Toast: всплывающее сообщение.
type Toast struct {
	ID      uint64
	Message string
}

// SlotToaster показывает не больше одного сообщения: новое заменяет старое
// и отменяет его таймер.
type SlotToaster struct {
	mu       sync.Mutex
	sched    Scheduler
	lifetime time.Duration
	seq      uint64
	current  *Toast
	timer    Timer
}

func NewSlotToaster(sched Scheduler, lifetime time.Duration) *SlotToaster {
	if sched == nil {
		sched = RealScheduler{}
	}
	if lifetime <= 0 {
		lifetime = ToastLifetime
	}
	return &SlotToaster{sched: sched, lifetime: lifetime}
}

func (t *SlotToaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	id := t.seq
	t.current = &Toast{ID: id, Message: message}
	t.timer = t.sched.AfterFunc(t.lifetime, func() { t.dismiss(id) })
}

func (t *SlotToaster) dismiss(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil && t.current.ID == id {
		t.current = nil
		t.timer = nil
	}
}

// Active возвращает видимые сообщения.
func (t *SlotToaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil
	}
	return []Toast{*t.current}
}

// StackToaster показывает сообщения независимо, у каждого свой таймер.
type StackToaster struct {
	mu       sync.Mutex
	sched    Scheduler
	lifetime time.Duration
	seq      uint64
	toasts   map[uint64]Toast
}

func NewStackToaster(sched Scheduler, lifetime time.Duration) *StackToaster {
	if sched == nil {
		sched = RealScheduler{}
	}
	if lifetime <= 0 {
		lifetime = ToastLifetime
	}
	return &StackToaster{sched: sched, lifetime: lifetime, toasts: make(map[uint64]Toast)}
}

func (t *StackToaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	id := t.seq
	t.toasts[id] = Toast{ID: id, Message: message}
	t.sched.AfterFunc(t.lifetime, func() {
		t.mu.Lock()
		delete(t.toasts, id)
		t.mu.Unlock()
	})
}

// Active возвращает видимые сообщения в порядке появления.
func (t *StackToaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, 0, len(t.toasts))
	for _, toast := range t.toasts {
		out = append(out, toast)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
