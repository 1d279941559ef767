package systems

import (
	"math"
	"testing"
)

// fakeSpawner 记录生成间隔推送与重置
type fakeSpawner struct {
	intervals []float64
	resets    int
}

func (f *fakeSpawner) SetInterval(interval float64) { f.intervals = append(f.intervals, interval) }
func (f *fakeSpawner) Reset()                       { f.resets++ }

func TestDifficultySystemPushesIntervalOnRamp(t *testing.T) {
	session := newTestSession()
	spawner := &fakeSpawner{}
	system := NewDifficultySystem(session, spawner)

	for i := 0; i < 7; i++ {
		system.Update(1.0)
	}
	if len(spawner.intervals) != 0 {
		t.Fatalf("no ramp expected before 8s, got pushes %v", spawner.intervals)
	}

	system.Update(1.0)
	if len(spawner.intervals) != 1 {
		t.Fatalf("expected one interval push at 8s, got %v", spawner.intervals)
	}
	if math.Abs(spawner.intervals[0]-2.3) > 1e-9 {
		t.Errorf("pushed interval: got %v, want 2.3", spawner.intervals[0])
	}
	if session.Clock.Seconds() != 8.0 {
		t.Errorf("survival clock: got %v, want 8", session.Clock.Seconds())
	}
	if session.Difficulty.RampCount() != 1 {
		t.Errorf("RampCount: got %d, want 1", session.Difficulty.RampCount())
	}
}

func TestDifficultySystemFrozenInGameOver(t *testing.T) {
	session := newTestSession()
	spawner := &fakeSpawner{}
	system := NewDifficultySystem(session, spawner)

	system.Update(2.0)
	session.Round.TriggerGameOver()

	for i := 0; i < 20; i++ {
		system.Update(1.0)
	}

	if session.Clock.Seconds() != 2.0 {
		t.Errorf("clock should stop at game over, got %v", session.Clock.Seconds())
	}
	if session.Difficulty.RampCount() != 0 {
		t.Errorf("difficulty should not ramp during game over, got %d ramps", session.Difficulty.RampCount())
	}
	if len(spawner.intervals) != 0 {
		t.Errorf("no interval pushes expected, got %v", spawner.intervals)
	}
}

func TestDifficultySystemNilSpawner(t *testing.T) {
	session := newTestSession()
	system := NewDifficultySystem(session, nil)

	system.Update(8.0)
	if session.Difficulty.RampCount() != 1 {
		t.Errorf("difficulty should ramp without a spawner, got %d", session.Difficulty.RampCount())
	}
}
