package hal

import (
	"sync"
	"time"
)

// hostTime follows the wall clock until it is stepped manually; the headless
// runner steps it by a fixed period per tick so runs are reproducible.
type hostTime struct {
	mu     sync.Mutex
	start  time.Time
	manual bool
	now    time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{start: time.Now()}
}

func (t *hostTime) Now() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.manual {
		return t.now
	}
	return time.Since(t.start)
}

// step switches the clock to manual mode and advances it by d.
func (t *hostTime) step(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.manual = true
	t.now += d
}
