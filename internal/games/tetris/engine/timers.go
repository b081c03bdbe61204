package engine

import "time"

// TimerMode selects whether a Timer stops or wraps when it finishes.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer is a countdown advanced explicitly by Tick.
// A repeating timer may finish several times within one large tick.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	paused        bool
	finished      bool
	timesFinished int
}

// NewTimer creates a running timer.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	if t.paused {
		t.timesFinished = 0
		if t.mode == TimerRepeating {
			t.finished = false
		}
		return
	}
	if t.mode == TimerOnce && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += dt
	t.finished = t.elapsed >= t.duration
	if !t.finished {
		t.timesFinished = 0
		return
	}

	switch t.mode {
	case TimerRepeating:
		if t.duration <= 0 {
			t.timesFinished = 1
			t.elapsed = 0
			return
		}
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	default:
		t.timesFinished = 1
		t.elapsed = t.duration
	}
}

// Reset rewinds the timer without changing its pause state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// SetDuration changes the period. Elapsed time is kept.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

func (t *Timer) Pause()   { t.paused = true }
func (t *Timer) Unpause() { t.paused = false }

// Paused reports whether ticks are ignored.
func (t *Timer) Paused() bool { return t.paused }

// Finished reports whether the timer has reached its duration.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the last Tick completed the countdown.
func (t *Timer) JustFinished() bool { return t.timesFinished > 0 }

// TimesFinishedThisTick returns how many periods elapsed during the last Tick.
func (t *Timer) TimesFinishedThisTick() int { return t.timesFinished }

func (t *Timer) Duration() time.Duration { return t.duration }
func (t *Timer) Elapsed() time.Duration  { return t.elapsed }

// Remaining returns the time left before the timer next finishes.
func (t *Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}

// FallTimer is the repeating gravity timer. It switches between a normal
// period and a faster soft-drop period.
type FallTimer struct {
	Timer
	normal   time.Duration
	soft     time.Duration
	softDrop bool
}

// NewFallTimer creates a running fall timer at normal speed.
func NewFallTimer(normal, soft time.Duration) FallTimer {
	return FallTimer{
		Timer:  NewTimer(normal, TimerRepeating),
		normal: normal,
		soft:   soft,
	}
}

// SetNormal switches to the normal period and restarts the countdown.
func (f *FallTimer) SetNormal() {
	f.softDrop = false
	f.SetDuration(f.normal)
	f.Reset()
}

// SetSoftDrop switches to the soft-drop period. The countdown is primed so
// the next unpaused Tick moves the piece at once.
func (f *FallTimer) SetSoftDrop() {
	f.softDrop = true
	f.SetDuration(f.soft)
	f.Reset()
	f.elapsed = f.soft
}

// SetNormalPeriod changes the normal period. It takes effect at the next
// SetNormal.
func (f *FallTimer) SetNormalPeriod(d time.Duration) {
	f.normal = d
}

// SoftDropping reports whether the soft-drop period is active.
func (f *FallTimer) SoftDropping() bool {
	return f.softDrop
}

// Timers groups the two timers owned by a falling piece.
type Timers struct {
	Fall FallTimer
	Lock Timer
}

// NewTimers creates the fall timer running and the lock timer paused.
func NewTimers(cfg Config) Timers {
	t := Timers{
		Fall: NewFallTimer(cfg.FallNormal, cfg.FallSoft),
		Lock: NewTimer(cfg.LockDelay, TimerOnce),
	}
	t.Lock.Pause()
	return t
}

// Tick advances both timers by the same elapsed time.
func (t *Timers) Tick(dt time.Duration) {
	t.Fall.Tick(dt)
	t.Lock.Tick(dt)
}

// ResetForPiece restarts gravity at normal speed and disarms the lock timer.
func (t *Timers) ResetForPiece() {
	t.Fall.SetNormal()
	t.Fall.Unpause()
	t.Lock.Reset()
	t.Lock.Pause()
}
