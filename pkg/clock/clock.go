// Package clock abstracts waiting so that simulated latency can be driven by
// tests instead of real timers.
package clock

import (
	"sync"
	"time"
)

// Clock produces channels that fire after a duration.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Real returns a Clock backed by the runtime timers.
func Real() Clock { return realClock{} }

// Fake is a Clock that fires immediately and records every requested delay.
// It is safe for concurrent use.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	delays []time.Duration
	// Hold, when non-nil, is received from before the returned channel fires,
	// letting a test keep an operation suspended mid-wait.
	Hold chan struct{}
}

// NewFake returns a Fake whose virtual time starts at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) After(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	f.delays = append(f.delays, d)
	f.now = f.now.Add(d)
	now := f.now
	hold := f.Hold
	f.mu.Unlock()

	ch := make(chan time.Time, 1)
	if hold == nil {
		ch <- now

		return ch
	}

	go func() {
		<-hold
		ch <- now
	}()

	return ch
}

// Delays returns a copy of the delays requested so far.
func (f *Fake) Delays() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]time.Duration(nil), f.delays...)
}

// Now returns the virtual time, advanced by every requested delay.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}
