package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tunisiaguide/pkg/clock"
)

func TestFakeFiresImmediatelyAndRecords(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := clock.NewFake(start)

	at := <-f.After(time.Second)
	require.Equal(t, start.Add(time.Second), at)

	<-f.After(500 * time.Millisecond)
	require.Equal(t, []time.Duration{time.Second, 500 * time.Millisecond}, f.Delays())
	require.Equal(t, start.Add(1500*time.Millisecond), f.Now())
}

func TestFakeHold(t *testing.T) {
	f := clock.NewFake(time.Time{})
	f.Hold = make(chan struct{})

	ch := f.After(time.Second)
	select {
	case <-ch:
		t.Fatal("fired while held")
	case <-time.After(20 * time.Millisecond):
	}

	close(f.Hold)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("did not fire after release")
	}
}

func TestRealWaits(t *testing.T) {
	start := time.Now()
	<-clock.Real().After(10 * time.Millisecond)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
