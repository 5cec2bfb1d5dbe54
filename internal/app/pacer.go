package app

import "time"

// stepPacer meters search expansions at a steady steps-per-second rate,
// independently of the render frame rate.
type stepPacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func newStepPacer(sps int) *stepPacer {
	if sps <= 0 {
		sps = 60
	}
	return &stepPacer{step: time.Second / time.Duration(sps)}
}

// reset discards accumulated time so a freshly started run does not
// burst through stale steps.
func (p *stepPacer) reset() {
	p.last = time.Now()
	p.accumulator = p.step
}

// shouldStep reports whether one more expansion is due, consuming one
// step interval per true result.
func (p *stepPacer) shouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
