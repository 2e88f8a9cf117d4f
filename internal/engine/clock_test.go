package engine

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualClockOrdering(t *testing.T) {
	c := NewManualClock(epoch)
	var got []int

	c.AfterFunc(30*time.Millisecond, func() { got = append(got, 3) })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, 2) })

	c.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("after 20ms fired %v, expected [1 2]", got)
	}
	if !c.Now().Equal(epoch.Add(20 * time.Millisecond)) {
		t.Errorf("Now() = %v, expected epoch+20ms", c.Now())
	}

	c.Advance(10 * time.Millisecond)
	if len(got) != 3 {
		t.Errorf("after 30ms fired %v, expected all three", got)
	}
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock(epoch)
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	if !tm.Stop() {
		t.Error("Stop() on a pending timer should report true")
	}
	if tm.Stop() {
		t.Error("second Stop() should report false")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestRepeaterFiresEveryInterval(t *testing.T) {
	c := NewManualClock(epoch)
	var mu sync.Mutex
	n := 0
	r := NewRepeater(c, &mu, 50*time.Millisecond, func() { n++ })

	mu.Lock()
	r.Start()
	mu.Unlock()

	c.Advance(260 * time.Millisecond)
	if n != 5 {
		t.Errorf("fired %d times in 260ms at 50ms, expected 5", n)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, expected exactly one armed timer", c.Pending())
	}
}

func TestRepeaterDropsStaleFire(t *testing.T) {
	c := NewManualClock(epoch)
	var mu sync.Mutex
	n := 0
	r := NewRepeater(c, &mu, 50*time.Millisecond, func() { n++ })

	mu.Lock()
	r.Start()
	mu.Unlock()

	// Capture the armed callback and fire it after a restart.
	stale := r.gen
	mu.Lock()
	r.SetInterval(100 * time.Millisecond)
	mu.Unlock()
	r.fire(stale)

	if n != 0 {
		t.Errorf("stale fire ran the callback %d times", n)
	}
	c.Advance(100 * time.Millisecond)
	if n != 1 {
		t.Errorf("fired %d times after rearm, expected 1", n)
	}
}

func TestRepeaterStopFromCallback(t *testing.T) {
	c := NewManualClock(epoch)
	var mu sync.Mutex
	n := 0
	var r *Repeater
	r = NewRepeater(c, &mu, 10*time.Millisecond, func() {
		n++
		if n == 3 {
			r.Stop()
		}
	})

	mu.Lock()
	r.Start()
	mu.Unlock()

	c.Advance(time.Second)
	if n != 3 {
		t.Errorf("fired %d times, expected to stop after 3", n)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, expected 0", c.Pending())
	}
}

func TestRepeaterAfterRunsUnlocked(t *testing.T) {
	c := NewManualClock(epoch)
	var mu sync.Mutex
	n, after := 0, 0
	r := NewRepeater(c, &mu, 50*time.Millisecond, func() { n++ })
	r.SetAfter(func() {
		if !mu.TryLock() {
			t.Error("after hook ran with mu held")
			return
		}
		after++
		mu.Unlock()
	})

	mu.Lock()
	r.Start()
	mu.Unlock()

	c.Advance(150 * time.Millisecond)
	if n != 3 || after != 3 {
		t.Errorf("callback ran %d times and after hook %d times, expected 3 and 3", n, after)
	}
}

func TestDelay(t *testing.T) {
	c := NewManualClock(epoch)
	var mu sync.Mutex
	n := 0
	d := NewDelay(c, &mu, func() { n++ })

	mu.Lock()
	d.Schedule(300 * time.Millisecond)
	d.Schedule(300 * time.Millisecond) // replaces, never doubles
	mu.Unlock()

	c.Advance(299 * time.Millisecond)
	if n != 0 {
		t.Fatal("delay fired early")
	}
	c.Advance(time.Millisecond)
	if n != 1 {
		t.Errorf("delay fired %d times, expected 1", n)
	}

	mu.Lock()
	d.Schedule(100 * time.Millisecond)
	d.Cancel()
	pending := d.Pending()
	mu.Unlock()
	c.Advance(time.Second)
	if n != 1 || pending {
		t.Errorf("cancelled delay fired (n=%d, pending=%v)", n, pending)
	}
}
