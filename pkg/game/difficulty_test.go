package game

import (
	"math"
	"testing"

	"github.com/gonewx/zombie-shooter/pkg/config"
)

func newTestDifficulty() *DifficultyController {
	return NewDifficultyController(config.DefaultGameConfig().Difficulty)
}

func TestDifficultyInitialStats(t *testing.T) {
	dc := newTestDifficulty()
	stats := dc.Stats()

	if stats.Speed != 50 || stats.SpawnInterval != 2.5 || stats.Health != 50 {
		t.Errorf("initial stats: got %+v", stats)
	}
	if dc.RampCount() != 0 {
		t.Errorf("RampCount: got %d, want 0", dc.RampCount())
	}
}

// TestDifficultyRamp 每 8 秒递增一次：速度 +10，生命 +20，间隔 -0.2
func TestDifficultyRamp(t *testing.T) {
	dc := newTestDifficulty()

	if dc.Tick(7.9) {
		t.Error("should not ramp before 8s")
	}
	if !dc.Tick(0.1) {
		t.Fatal("should ramp at 8s")
	}

	stats := dc.Stats()
	if stats.Speed != 60 {
		t.Errorf("Speed: got %v, want 60", stats.Speed)
	}
	if stats.Health != 70 {
		t.Errorf("Health: got %v, want 70", stats.Health)
	}
	if math.Abs(stats.SpawnInterval-2.3) > 1e-9 {
		t.Errorf("SpawnInterval: got %v, want 2.3", stats.SpawnInterval)
	}
}

// TestDifficultySpawnIntervalFloor 生成间隔不低于 0.5，速度和生命持续递增
func TestDifficultySpawnIntervalFloor(t *testing.T) {
	dc := newTestDifficulty()

	prev := dc.Stats()
	for i := 0; i < 20; i++ {
		if !dc.Tick(8.0) {
			t.Fatalf("ramp %d did not fire", i)
		}
		cur := dc.Stats()

		want := math.Max(prev.SpawnInterval-0.2, 0.5)
		if math.Abs(cur.SpawnInterval-want) > 1e-9 {
			t.Errorf("ramp %d: interval got %v, want %v", i, cur.SpawnInterval, want)
		}
		if cur.SpawnInterval < 0.5 {
			t.Errorf("ramp %d: interval %v below floor", i, cur.SpawnInterval)
		}
		if cur.Speed != prev.Speed+10 || cur.Health != prev.Health+20 {
			t.Errorf("ramp %d: speed/health not incremented: %+v -> %+v", i, prev, cur)
		}
		prev = cur
	}

	if dc.Stats().SpawnInterval != 0.5 {
		t.Errorf("interval should settle at floor, got %v", dc.Stats().SpawnInterval)
	}
	if dc.RampCount() != 20 {
		t.Errorf("RampCount: got %d, want 20", dc.RampCount())
	}
}

func TestDifficultyReset(t *testing.T) {
	dc := newTestDifficulty()
	dc.Tick(8.0)
	dc.Tick(5.0)

	dc.Reset()

	if dc.Stats() != dc.InitialStats() {
		t.Errorf("after Reset: got %+v, want %+v", dc.Stats(), dc.InitialStats())
	}
	if dc.RampCount() != 0 {
		t.Errorf("RampCount after Reset: got %d", dc.RampCount())
	}
	// 递增计时器进度也被清空
	if dc.Tick(7.0) {
		t.Error("ramp timer progress should be cleared by Reset")
	}
}
