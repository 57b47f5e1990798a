package profiler

import (
	"testing"
	"time"
)

func TestTickRespectsInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(time.Hour)

	for i := 0; i < 100; i++ {
		if p.Tick() {
			t.Fatal("stats logged before the interval elapsed")
		}
	}
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(time.Millisecond)

	p.Tick()
	time.Sleep(5 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected stats to be logged after the interval elapsed")
	}
	// The window resets after logging.
	if p.Tick() {
		t.Fatal("stats logged twice in a row")
	}
}

func TestSetUpdateIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(0)
	p.SetUpdateInterval(-time.Second)
	if p.updateInterval != time.Second {
		t.Fatalf("interval = %v, want the default 1s", p.updateInterval)
	}
}
