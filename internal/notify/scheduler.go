package notify

import "time"

// Timer: отменяемый отложенный вызов.
type Timer interface {
	// Stop отменяет вызов. Возвращает false, если вызов уже произошёл или был отменён.
	Stop() bool
}

// Scheduler планирует отложенные вызовы.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler планирует вызовы через time.AfterFunc.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
