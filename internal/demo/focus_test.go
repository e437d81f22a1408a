package demo

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdkit/game"
	"pdkit/playdate"
	"pdkit/system"
)

type console struct {
	lines []string
}

func (c *console) CurrentTimeMillis() uint32 { return 0 }
func (c *console) LogToConsole(msg string)   { c.lines = append(c.lines, msg) }

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// launch runs a FocusGame through a dispatcher the way the OS would.
func launch(t *testing.T) (*FocusGame, *fakeClock, *console, *game.Dispatcher) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	out := &console{}
	api := &playdate.API{System: out}
	t.Cleanup(func() { playdate.Initialize(nil) })

	f := &FocusGame{now: clock.now}
	d := &game.Dispatcher{
		New:      func() game.Delegate { return f },
		Platform: playdate.Initialize,
		Frames:   system.NewFrameDriver(),
	}
	require.Equal(t, game.Handled, d.Handle(unsafe.Pointer(api), system.EventInit, 0))
	return f, clock, out, d
}

func TestZeroValueLaunchesWithDefaults(t *testing.T) {
	f, _, out, _ := launch(t)

	assert.Equal(t, FocusIdle, f.State)
	assert.Equal(t, DefaultFocus, f.Duration)
	assert.Equal(t, DefaultBreak, f.Break)
	assert.Equal(t, DefaultFocus, f.TimeLeft)
	assert.Equal(t, []string{"focus: ready, 25:00"}, out.lines)
}

func TestUpdateRefreshesOnlyWhenDisplayChanges(t *testing.T) {
	f, clock, _, _ := launch(t)

	assert.True(t, f.Update())
	assert.False(t, f.Update())

	f.KeyDown(KeySpace)
	assert.True(t, f.Update())

	clock.advance(200 * time.Millisecond)
	assert.False(t, f.Update(), "partial seconds round up")
	clock.advance(time.Second)
	assert.True(t, f.Update())
	assert.Contains(t, f.String(), "24:59")
}

func TestSessionCompletesIntoBreak(t *testing.T) {
	f, clock, out, _ := launch(t)
	f.KeyDown(KeySpace)

	clock.advance(DefaultFocus)
	f.Update()

	assert.Equal(t, FocusBreak, f.State)
	assert.Equal(t, 1, f.Sessions)
	assert.Equal(t, DefaultBreak, f.TimeLeft)
	assert.Contains(t, out.lines, "focus: session 1 done, take a break")

	clock.advance(DefaultBreak)
	f.Update()
	assert.Equal(t, FocusIdle, f.State)
	assert.Equal(t, DefaultFocus, f.TimeLeft)
}

func TestPauseFreezesCountdown(t *testing.T) {
	f, clock, _, d := launch(t)
	f.KeyDown(KeySpace)

	clock.advance(time.Minute)
	f.Update()
	require.Equal(t, 24*time.Minute, f.TimeLeft)

	d.Handle(nil, system.EventPause, 0)
	clock.advance(10 * time.Minute)
	f.Update()
	assert.Equal(t, 24*time.Minute, f.TimeLeft)
	assert.Contains(t, f.String(), "(paused)")

	d.Handle(nil, system.EventResume, 0)
	clock.advance(time.Minute)
	f.Update()
	assert.Equal(t, 23*time.Minute, f.TimeLeft)
}

func TestLockFreezesCountdown(t *testing.T) {
	f, clock, _, d := launch(t)
	f.KeyDown(KeySpace)

	d.Handle(nil, system.EventLock, 0)
	clock.advance(time.Hour)
	d.Handle(nil, system.EventUnlock, 0)
	f.Update()

	assert.Equal(t, FocusRunning, f.State)
	assert.Equal(t, DefaultFocus, f.TimeLeft)
}

func TestKeysThroughDispatcher(t *testing.T) {
	f, clock, _, d := launch(t)

	assert.Equal(t, game.Handled, d.Handle(nil, system.EventKeyPressed, KeySpace))
	assert.Equal(t, FocusRunning, f.State)

	clock.advance(time.Minute)
	f.Update()
	assert.Equal(t, game.Handled, d.Handle(nil, system.EventKeyPressed, KeyR))
	assert.Equal(t, FocusIdle, f.State)
	assert.Equal(t, DefaultFocus, f.TimeLeft)

	assert.Equal(t, game.Handled, d.Handle(nil, system.EventKeyReleased, KeySpace))
	assert.Equal(t, FocusIdle, f.State)
}

func TestSpaceWhileRunningStops(t *testing.T) {
	f, _, _, _ := launch(t)

	f.KeyDown(KeySpace)
	f.KeyDown(KeySpace)
	assert.Equal(t, FocusIdle, f.State)
}

func TestTerminateAndSleepLog(t *testing.T) {
	f, _, out, d := launch(t)
	f.Sessions = 3

	d.Handle(nil, system.EventLowPower, 0)
	d.Handle(nil, system.EventTerminate, 0)

	assert.Equal(t, []string{
		"focus: ready, 25:00",
		"focus: low battery, PRESS SPACE TO FOCUS\n25:00",
		"focus: exiting after 3 sessions",
	}, out.lines)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", formatClock(25*time.Minute))
	assert.Equal(t, "00:01", formatClock(time.Millisecond))
	assert.Equal(t, "00:00", formatClock(-time.Second))
	assert.Equal(t, "01:05", formatClock(65*time.Second))
}

func TestGeneratedRegistration(t *testing.T) {
	t.Cleanup(func() { system.Default.SetUpdateCallback(nil) })

	require.Equal(t, game.Handled, game.EventHandler(nil, system.EventInit, 0))

	_, ok := game.Shared().(*FocusGame)
	assert.True(t, ok)
	assert.True(t, system.Default.Installed())
}
