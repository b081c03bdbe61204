package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestRepeatingTimer(t *testing.T) {
	timer := engine.NewTimer(100*time.Millisecond, engine.TimerRepeating)

	timer.Tick(50 * time.Millisecond)
	assert.Equal(t, 0, timer.TimesFinishedThisTick())

	timer.Tick(60 * time.Millisecond)
	assert.Equal(t, 1, timer.TimesFinishedThisTick())
	assert.Equal(t, 10*time.Millisecond, timer.Elapsed())

	timer.Tick(350 * time.Millisecond)
	assert.Equal(t, 3, timer.TimesFinishedThisTick())
	assert.Equal(t, 60*time.Millisecond, timer.Elapsed())
}

func TestOnceTimer(t *testing.T) {
	timer := engine.NewTimer(500*time.Millisecond, engine.TimerOnce)

	timer.Tick(499 * time.Millisecond)
	assert.False(t, timer.JustFinished())

	timer.Tick(time.Millisecond)
	assert.True(t, timer.JustFinished())
	assert.True(t, timer.Finished())

	timer.Tick(time.Second)
	assert.False(t, timer.JustFinished(), "fires only once")
	assert.True(t, timer.Finished())

	timer.Reset()
	assert.False(t, timer.Finished())
	assert.Equal(t, 500*time.Millisecond, timer.Remaining())
}

func TestPausedTimerIgnoresTicks(t *testing.T) {
	timer := engine.NewTimer(100*time.Millisecond, engine.TimerRepeating)
	timer.Pause()

	timer.Tick(time.Second)
	assert.True(t, timer.Paused())
	assert.Zero(t, timer.Elapsed())
	assert.Zero(t, timer.TimesFinishedThisTick())

	timer.Unpause()
	timer.Tick(100 * time.Millisecond)
	assert.Equal(t, 1, timer.TimesFinishedThisTick())
}

func TestFallTimerSpeeds(t *testing.T) {
	fall := engine.NewFallTimer(time.Second, 50*time.Millisecond)
	assert.Equal(t, time.Second, fall.Duration())

	fall.Tick(400 * time.Millisecond)
	fall.SetSoftDrop()
	assert.True(t, fall.SoftDropping())
	assert.Equal(t, 50*time.Millisecond, fall.Duration())

	// Primed: the first soft-drop tick fires even for a tiny dt.
	fall.Tick(time.Millisecond)
	assert.Equal(t, 1, fall.TimesFinishedThisTick())

	fall.Tick(100 * time.Millisecond)
	assert.Equal(t, 2, fall.TimesFinishedThisTick())

	fall.SetNormal()
	assert.False(t, fall.SoftDropping())
	assert.Equal(t, time.Second, fall.Duration())
	assert.Zero(t, fall.Elapsed())
}

func TestTimersResetForPiece(t *testing.T) {
	timers := engine.NewTimers(engine.DefaultConfig())
	assert.True(t, timers.Lock.Paused(), "lock timer starts paused")
	assert.False(t, timers.Fall.Paused())

	timers.Fall.SetSoftDrop()
	timers.Fall.Pause()
	timers.Lock.Unpause()
	timers.Tick(200 * time.Millisecond)

	timers.ResetForPiece()
	assert.False(t, timers.Fall.Paused())
	assert.False(t, timers.Fall.SoftDropping())
	assert.True(t, timers.Lock.Paused())
	assert.Zero(t, timers.Lock.Elapsed())
}

func TestFallTimerNormalPeriodChange(t *testing.T) {
	fall := engine.NewFallTimer(time.Second, 50*time.Millisecond)
	fall.SetNormalPeriod(500 * time.Millisecond)
	assert.Equal(t, time.Second, fall.Duration(), "running countdown keeps its period")

	fall.SetNormal()
	assert.Equal(t, 500*time.Millisecond, fall.Duration())
}
