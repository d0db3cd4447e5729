package scene

import "time"

// Animation produces the time uniform. It reads 0 until started; once
// running, every Sample returns the seconds elapsed since the epoch. Stop
// freezes the phase at its last sampled value.
type Animation struct {
	epoch   time.Duration
	running bool
	phase   float64
}

// NewAnimation creates a stopped animation whose phase is measured from
// epoch, a reading of the same clock later passed to Sample.
func NewAnimation(epoch time.Duration) *Animation {
	return &Animation{epoch: epoch}
}

// Start begins sampling. Starting a running animation is a no-op.
func (a *Animation) Start() { a.running = true }

func (a *Animation) Stop() { a.running = false }

func (a *Animation) Running() bool { return a.running }

// Sample advances the phase to now and returns it.
func (a *Animation) Sample(now time.Duration) float64 {
	if a.running {
		a.phase = (now - a.epoch).Seconds()
	}
	return a.phase
}

// Phase returns the last sampled phase.
func (a *Animation) Phase() float64 { return a.phase }
