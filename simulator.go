package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"
	"unsafe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pdkit/game"
	"pdkit/internal/config"
	"pdkit/playdate"
	"pdkit/system"
)

// Simulator keys that stand in for device controls instead of being
// forwarded to the game.
const (
	KeyMenu     = ebiten.KeyEscape
	KeyLock     = ebiten.KeyF1
	KeyLowPower = ebiten.KeyF2
)

var ColBg = color.RGBA{0xb1, 0xae, 0xa7, 0xff} // Playdate panel grey

// EventHandlerFunc is the OS entry point signature.
type EventHandlerFunc func(env unsafe.Pointer, event system.Event, arg uint32) int32

// Simulator plays the part of the console OS: it delivers lifecycle events
// and drives the frame callback from ebiten's tick loop.
type Simulator struct {
	cfg    config.Simulator
	handle EventHandlerFunc
	frames *system.FrameDriver
	api    playdate.API
	start  time.Time

	// Shared returns the running game, used for the status overlay.
	Shared func() game.Delegate

	booted    bool
	paused    bool
	locked    bool
	refreshed bool
	tps       int
	setTPS    func(int)
	console   []string
	down      map[ebiten.Key]bool

	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewSimulator(cfg config.Simulator, handle EventHandlerFunc, frames *system.FrameDriver) *Simulator {
	s := &Simulator{
		cfg:    cfg,
		handle: handle,
		frames: frames,
		start:  time.Now(),
		Shared: game.Shared,
		setTPS: ebiten.SetTPS,
		down:   map[ebiten.Key]bool{},
	}
	s.api = playdate.API{Display: s, System: s}
	frames.SetRefreshRate(cfg.RefreshRate)
	return s
}

// Update: one device frame
func (s *Simulator) Update() error {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	return s.step(s.pressed, s.released, ebiten.IsWindowBeingClosed())
}

func (s *Simulator) step(pressed, released []ebiten.Key, closing bool) error {
	if !s.booted {
		s.booted = true
		if s.cfg.Lua {
			s.send(system.EventInitLua, 0)
		} else {
			s.send(system.EventInit, 0)
		}
	}
	if closing {
		s.send(system.EventTerminate, 0)
		return ebiten.Termination
	}

	for _, k := range pressed {
		switch k {
		case KeyMenu:
			if s.paused {
				s.paused = false
				s.send(system.EventResume, 0)
			} else {
				s.paused = true
				s.send(system.EventPause, 0)
			}
		case KeyLock:
			if s.locked {
				s.locked = false
				s.send(system.EventUnlock, 0)
			} else {
				s.locked = true
				s.send(system.EventLock, 0)
			}
		case KeyLowPower:
			s.send(system.EventLowPower, 0)
		default:
			s.press(k)
		}
	}
	for _, k := range released {
		s.release(k)
	}

	s.applyRefreshRate()
	if s.paused || s.locked {
		return nil
	}
	s.refreshed = s.frames.Step()
	return nil
}

// press forwards a key unless the device is locked. Only forwarded keys get
// their release forwarded, so the game always sees matched pairs.
func (s *Simulator) press(k ebiten.Key) {
	if s.locked {
		return
	}
	code, ok := keycode(k)
	if !ok {
		return
	}
	s.down[k] = true
	s.send(system.EventKeyPressed, code)
}

func (s *Simulator) release(k ebiten.Key) {
	if !s.down[k] {
		return
	}
	delete(s.down, k)
	code, _ := keycode(k)
	s.send(system.EventKeyReleased, code)
}

func (s *Simulator) send(event system.Event, arg uint32) int32 {
	status := s.handle(unsafe.Pointer(&s.api), event, arg)
	if event != system.EventKeyPressed && event != system.EventKeyReleased {
		log.Printf("sim: %s -> %d", event, status)
	}
	return status
}

func (s *Simulator) applyRefreshRate() {
	tps := int(s.frames.RefreshRate() + 0.5)
	if tps == s.tps {
		return
	}
	s.tps = tps
	s.setTPS(tps)
}

// Draw: status overlay
func (s *Simulator) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)
	ebitenutil.DebugPrint(screen, s.overlay())
}

func (s *Simulator) overlay() string {
	var b strings.Builder
	if g, ok := s.Shared().(fmt.Stringer); ok {
		b.WriteString(g.String())
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "frame %d  %d fps  refresh %v", s.frames.Frames(), s.tps, s.refreshed)
	if s.paused {
		b.WriteString("  [MENU]")
	}
	if s.locked {
		b.WriteString("  [LOCKED]")
	}
	b.WriteString("\nEsc menu  F1 lock  F2 low power\n")
	for _, line := range s.console {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// Layout: fixed device resolution, scaled by ebiten
func (s *Simulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (s *Simulator) RefreshRate() float32 {
	return s.frames.RefreshRate()
}

func (s *Simulator) SetRefreshRate(hz float32) {
	s.frames.SetRefreshRate(hz)
}

func (s *Simulator) CurrentTimeMillis() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

func (s *Simulator) LogToConsole(msg string) {
	log.Print(msg)
	if s.cfg.ConsoleLines == 0 {
		return
	}
	s.console = append(s.console, msg)
	if over := len(s.console) - s.cfg.ConsoleLines; over > 0 {
		s.console = s.console[over:]
	}
}
