package term

import "time"

// Ticker is a frame limiter: each Tick sleeps out whatever is left of the
// current frame interval.
type Ticker struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewTicker creates a ticker backed by the wall clock.
func NewTicker() *Ticker {
	return &Ticker{now: time.Now, sleep: time.Sleep}
}

// Tick blocks until 1/fps has elapsed since the previous call returned.
// The first call returns immediately.
func (t *Ticker) Tick(fps int) {
	if fps <= 0 {
		return
	}
	interval := time.Second / time.Duration(fps)
	now := t.now()
	if !t.last.IsZero() {
		if wait := interval - now.Sub(t.last); wait > 0 {
			t.sleep(wait)
			now = now.Add(wait)
		}
	}
	t.last = now
}
