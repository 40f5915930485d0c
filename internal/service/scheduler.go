package service

import "time"

// Scheduler запускает функцию после задержки. Возвращённый cancel
// останавливает ещё не сработавший таймер.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler - реализация на time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
