package system

// DefaultRefreshRate is the nominal number of update calls per second.
const DefaultRefreshRate = 30

// FrameDriver owns the per-frame update callback. The dispatcher installs the
// callback during initialization; the host calls Step once per frame.
//
// A FrameDriver is not safe for concurrent use. The OS drives it from a
// single thread.
type FrameDriver struct {
	update func() bool
	rate   float32
	frames uint64
}

// NewFrameDriver returns a driver with no callback and the default rate.
func NewFrameDriver() *FrameDriver {
	return &FrameDriver{rate: DefaultRefreshRate}
}

// SetUpdateCallback installs fn as the per-frame callback, replacing any
// previous one. A nil fn uninstalls it.
func (d *FrameDriver) SetUpdateCallback(fn func() bool) {
	d.update = fn
}

// Installed reports whether an update callback is present.
func (d *FrameDriver) Installed() bool {
	return d.update != nil
}

// Step runs one frame. It returns whether the display should be refreshed.
// Without a callback it does nothing and returns false.
func (d *FrameDriver) Step() bool {
	if d.update == nil {
		return false
	}
	d.frames++
	return d.update()
}

// Frames returns how many times the callback has been run.
func (d *FrameDriver) Frames() uint64 {
	return d.frames
}

// RefreshRate returns the nominal frames per second.
func (d *FrameDriver) RefreshRate() float32 {
	return d.rate
}

// SetRefreshRate changes the nominal frame rate. A rate of zero or less
// restores the default.
func (d *FrameDriver) SetRefreshRate(hz float32) {
	if hz <= 0 {
		hz = DefaultRefreshRate
	}
	d.rate = hz
}

// Default is the process-wide frame driver the OS entry point registers with.
var Default = NewFrameDriver()
