package profiler

import (
	"fmt"
	"sync"

	"github.com/pkg/profile"
)

// Capturer drives on-demand pprof captures from the console. One capture at
// a time; output lands in a per-capture subdirectory of dir.
type Capturer struct {
	mu     sync.Mutex
	dir    string
	active interface{ Stop() }
	mode   string
	seq    int
}

func NewCapturer(dir string) *Capturer {
	return &Capturer{dir: dir}
}

// Start begins a capture of the given mode: cpu, heap, block, mutex, or
// goroutine. Returns the output directory.
func (c *Capturer) Start(mode string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return "", fmt.Errorf("capture already running (%s)", c.mode)
	}

	var kind func(*profile.Profile)
	switch mode {
	case "cpu":
		kind = profile.CPUProfile
	case "heap":
		kind = profile.MemProfile
	case "block":
		kind = profile.BlockProfile
	case "mutex":
		kind = profile.MutexProfile
	case "goroutine":
		kind = profile.GoroutineProfile
	default:
		return "", fmt.Errorf("unknown capture mode %q (cpu|heap|block|mutex|goroutine)", mode)
	}

	c.seq++
	out := fmt.Sprintf("%s/%s-%d", c.dir, mode, c.seq)
	c.active = profile.Start(kind, profile.ProfilePath(out), profile.NoShutdownHook, profile.Quiet)
	c.mode = mode
	return out, nil
}

// Stop ends the running capture. Returns the mode that was captured.
func (c *Capturer) Stop() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return "", fmt.Errorf("no capture running")
	}
	c.active.Stop()
	mode := c.mode
	c.active = nil
	c.mode = ""
	return mode, nil
}

// Running reports the active capture mode, if any.
func (c *Capturer) Running() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode, c.active != nil
}
