package game

import (
	"math"
	"testing"
)

func TestRepeatingTimerFires(t *testing.T) {
	timer := NewRepeatingTimer(1.0)

	if timer.Tick(0.6) {
		t.Error("should not fire before duration")
	}
	if !timer.Tick(0.6) {
		t.Error("should fire once elapsed reaches duration")
	}
	if math.Abs(timer.Elapsed-0.2) > 1e-9 {
		t.Errorf("overflow should carry: got %v, want 0.2", timer.Elapsed)
	}
}

// TestRepeatingTimerLargeStep 单次推进跨越多个周期只触发一次
func TestRepeatingTimerLargeStep(t *testing.T) {
	timer := NewRepeatingTimer(0.5)

	if !timer.Tick(1.7) {
		t.Fatal("should fire")
	}
	if math.Abs(timer.Elapsed-0.2) > 1e-9 {
		t.Errorf("Elapsed: got %v, want 0.2", timer.Elapsed)
	}
}

func TestRepeatingTimerExactBoundary(t *testing.T) {
	timer := NewRepeatingTimer(0.25)
	if !timer.Tick(0.25) {
		t.Error("should fire exactly at duration")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Elapsed: got %v, want 0", timer.Elapsed)
	}
}

func TestRepeatingTimerInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		dt       float64
	}{
		{"zero duration", 0, 1},
		{"negative dt", 1, -0.5},
		{"zero dt", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewRepeatingTimer(tt.duration)
			if timer.Tick(tt.dt) {
				t.Error("should not fire")
			}
			if timer.Elapsed != 0 {
				t.Errorf("Elapsed should stay 0, got %v", timer.Elapsed)
			}
		})
	}
}

func TestRepeatingTimerSetDurationResets(t *testing.T) {
	timer := NewRepeatingTimer(2.0)
	timer.Tick(1.5)

	timer.SetDuration(1.0)
	if timer.Elapsed != 0 || timer.Duration != 1.0 {
		t.Errorf("after SetDuration: %+v", *timer)
	}
	if timer.Progress() != 0 {
		t.Errorf("Progress: got %v, want 0", timer.Progress())
	}

	timer.Tick(0.5)
	if timer.Progress() != 0.5 {
		t.Errorf("Progress: got %v, want 0.5", timer.Progress())
	}
	timer.Reset()
	if timer.Elapsed != 0 {
		t.Errorf("Reset should clear elapsed, got %v", timer.Elapsed)
	}
}
