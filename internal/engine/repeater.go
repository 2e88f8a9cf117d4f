package engine

import (
	"sync"
	"time"
)

// Repeater calls fn every interval until stopped. Callbacks run while
// holding mu, the same lock the owner holds when calling Start, Stop and
// SetInterval, so no two callbacks ever overlap. Each arm carries a
// generation number and a fire from a cancelled arm is dropped, which keeps
// a rate change from double-firing.
type Repeater struct {
	clock    Clock
	mu       sync.Locker
	fn       func()
	after    func()
	interval time.Duration

	timer   Timer
	gen     uint64
	running bool
}

// NewRepeater creates a stopped repeater.
func NewRepeater(clock Clock, mu sync.Locker, interval time.Duration, fn func()) *Repeater {
	return &Repeater{clock: clock, mu: mu, fn: fn, interval: interval}
}

// SetAfter registers fn to run after every callback, once mu is released.
// Work that must not block other holders of mu goes there.
func (r *Repeater) SetAfter(fn func()) {
	r.after = fn
}

// Start cancels any pending callback and arms a fresh one. Caller must hold mu.
func (r *Repeater) Start() {
	r.cancel()
	r.running = true
	r.arm()
}

// Stop cancels the pending callback. Caller must hold mu.
func (r *Repeater) Stop() {
	r.cancel()
	r.running = false
}

// Running reports whether the repeater is armed. Caller must hold mu.
func (r *Repeater) Running() bool {
	return r.running
}

// Interval returns the current period. Caller must hold mu.
func (r *Repeater) Interval() time.Duration {
	return r.interval
}

// SetInterval changes the period. A running repeater is rearmed with the
// new interval; a stopped one only records it. Caller must hold mu.
func (r *Repeater) SetInterval(d time.Duration) {
	r.interval = d
	if r.running {
		r.Start()
	}
}

func (r *Repeater) cancel() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Repeater) arm() {
	gen := r.gen
	r.timer = r.clock.AfterFunc(r.interval, func() { r.fire(gen) })
}

func (r *Repeater) fire(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || !r.running {
		r.mu.Unlock()
		return
	}
	r.fn()
	// fn may have stopped or restarted us.
	if gen == r.gen && r.running {
		r.arm()
	}
	after := r.after
	r.mu.Unlock()

	if after != nil {
		after()
	}
}

// Delay runs fn once after a delay unless cancelled first. It shares the
// locking rules of Repeater.
type Delay struct {
	clock Clock
	mu    sync.Locker
	fn    func()

	timer   Timer
	gen     uint64
	pending bool
}

// NewDelay creates an unarmed delay.
func NewDelay(clock Clock, mu sync.Locker, fn func()) *Delay {
	return &Delay{clock: clock, mu: mu, fn: fn}
}

// Schedule arms the delay, replacing any pending one. Caller must hold mu.
func (d *Delay) Schedule(after time.Duration) {
	d.Cancel()
	d.pending = true
	gen := d.gen
	d.timer = d.clock.AfterFunc(after, func() { d.fire(gen) })
}

// Cancel disarms the delay. Caller must hold mu.
func (d *Delay) Cancel() {
	d.gen++
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether the delay is armed. Caller must hold mu.
func (d *Delay) Pending() bool {
	return d.pending
}

func (d *Delay) fire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen || !d.pending {
		return
	}
	d.pending = false
	d.timer = nil
	d.fn()
}
