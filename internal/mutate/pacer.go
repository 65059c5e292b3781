package mutate

import "time"

// maxTicksPerCall bounds how many mutations a single frame can owe after
// a stall, so a long pause does not flood the grid in one update.
const maxTicksPerCall = 1024

// Pacer schedules mutation steps at a steady per-second rate decoupled
// from the caller's frame cadence.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer firing perSecond times each second. The
// first call to Ticks is due immediately.
func NewPacer(perSecond int) *Pacer {
	p := &Pacer{}
	p.SetRate(perSecond)
	p.accumulator = p.step
	return p
}

// SetRate changes the mutation rate. It is safe to call from the main loop.
func (p *Pacer) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 60
	}
	p.step = time.Second / time.Duration(perSecond)
}

// Ticks reports how many mutations are due since the last call. Call it
// once per frame; it accumulates real elapsed time so the mutation rate
// holds regardless of the frame rate.
func (p *Pacer) Ticks() int {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	n := 0
	for p.accumulator >= p.step && n < maxTicksPerCall {
		p.accumulator -= p.step
		n++
	}
	if n == maxTicksPerCall {
		p.accumulator = 0
	}
	return n
}
