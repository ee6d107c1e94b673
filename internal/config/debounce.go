package config

import (
	"sync"
	"time"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading. Editors and our own atomic rename both emit
// several events per save.
const DefaultDebounce = 250 * time.Millisecond

// debouncer coalesces rapid triggers into one callback run after the
// duration elapses with no further triggers.
type debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
}

func newDebouncer(duration time.Duration) *debouncer {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &debouncer{duration: duration}
}

// trigger schedules callback, replacing any callback still pending.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A newer trigger owns the slot; Stop may have lost the race.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
}

// cancel drops any pending callback.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
