package systems

import (
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// SpawnIntervalSetter 接收新的生成间隔
type SpawnIntervalSetter interface {
	SetInterval(interval float64)
}

// DifficultySystem 推进存活计时与难度递增
//
// 难度递增时把新的生成间隔推送给生成系统，生成计时器的进度随之清零
// GameOver 期间不推进
type DifficultySystem struct {
	difficulty *game.DifficultyController
	clock      *game.SurvivalClock
	round      *game.RoundState
	spawner    SpawnIntervalSetter
}

// NewDifficultySystem 创建难度系统
func NewDifficultySystem(session *game.Session, spawner SpawnIntervalSetter) *DifficultySystem {
	return &DifficultySystem{
		difficulty: session.Difficulty,
		clock:      session.Clock,
		round:      session.Round,
		spawner:    spawner,
	}
}

// Update 推进计时
func (s *DifficultySystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}

	s.clock.Advance(deltaTime)

	if s.difficulty.Tick(deltaTime) && s.spawner != nil {
		s.spawner.SetInterval(s.difficulty.Stats().SpawnInterval)
	}
}
