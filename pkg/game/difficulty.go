package game

import (
	"log"
	"math"

	"github.com/gonewx/zombie-shooter/pkg/config"
)

// DifficultyStats 当前难度参数
// 新生成的僵尸以此为快照
type DifficultyStats struct {
	Speed         float64 // 僵尸移动速度（像素/秒），只增不减
	SpawnInterval float64 // 生成间隔（秒），只减不增，不低于下限
	Health        float64 // 僵尸生命值，只增不减
}

// DifficultyController 难度控制器
// 按固定周期递增难度：速度加快、生成间隔缩短、生命值提高
type DifficultyController struct {
	cfg       config.DifficultyConfig
	stats     DifficultyStats
	rampTimer *RepeatingTimer
	rampCount int
}

// NewDifficultyController 创建难度控制器，初始参数取自配置
func NewDifficultyController(cfg config.DifficultyConfig) *DifficultyController {
	dc := &DifficultyController{
		cfg:       cfg,
		rampTimer: NewRepeatingTimer(cfg.RampInterval),
	}
	dc.stats = dc.initialStats()
	return dc
}

func (dc *DifficultyController) initialStats() DifficultyStats {
	return DifficultyStats{
		Speed:         dc.cfg.InitialSpeed,
		SpawnInterval: dc.cfg.InitialSpawnInterval,
		Health:        dc.cfg.InitialHealth,
	}
}

// Stats 返回当前难度参数的副本
func (dc *DifficultyController) Stats() DifficultyStats {
	return dc.stats
}

// InitialStats 返回初始难度参数
func (dc *DifficultyController) InitialStats() DifficultyStats {
	return dc.initialStats()
}

// RampCount 返回自上次重置以来的递增次数
func (dc *DifficultyController) RampCount() int {
	return dc.rampCount
}

// Tick 推进递增计时器
//
// 返回：
//   - bool: 本次推进是否发生了难度递增（调用方据此同步生成计时器）
func (dc *DifficultyController) Tick(dt float64) bool {
	if !dc.rampTimer.Tick(dt) {
		return false
	}
	dc.ramp()
	return true
}

// ramp 一次性应用三项递增
func (dc *DifficultyController) ramp() {
	dc.stats.Speed += dc.cfg.SpeedIncrement
	dc.stats.SpawnInterval = math.Max(dc.stats.SpawnInterval-dc.cfg.SpawnDecrement, dc.cfg.MinSpawnInterval)
	dc.stats.Health += dc.cfg.HealthIncrement
	dc.rampCount++

	log.Printf("[DifficultyController] Ramp #%d: speed=%.1f interval=%.2fs health=%.1f",
		dc.rampCount, dc.stats.Speed, dc.stats.SpawnInterval, dc.stats.Health)
}

// Reset 恢复初始难度并清空递增计时器
func (dc *DifficultyController) Reset() {
	dc.stats = dc.initialStats()
	dc.rampTimer.Reset()
	dc.rampCount = 0
}
