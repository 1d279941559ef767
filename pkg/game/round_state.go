package game

import "log"

// RoundPhase 回合阶段
type RoundPhase int

const (
	// RoundPlaying 游戏进行中
	RoundPlaying RoundPhase = iota
	// RoundGameOver 游戏结束，等待重新开始
	RoundGameOver
)

// String 返回阶段名称
func (p RoundPhase) String() string {
	switch p {
	case RoundPlaying:
		return "Playing"
	case RoundGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RoundState 回合状态机
//
// GameOver 是单向锁存：一旦进入，只有 Restart 能清除
type RoundState struct {
	phase RoundPhase
}

// NewRoundState 创建处于 Playing 阶段的回合状态
func NewRoundState() *RoundState {
	return &RoundState{phase: RoundPlaying}
}

// Phase 返回当前阶段
func (r *RoundState) Phase() RoundPhase {
	return r.phase
}

// IsPlaying 是否处于进行中
func (r *RoundState) IsPlaying() bool {
	return r.phase == RoundPlaying
}

// IsGameOver 是否已结束
func (r *RoundState) IsGameOver() bool {
	return r.phase == RoundGameOver
}

// TriggerGameOver 锁存 GameOver
//
// 返回：
//   - bool: 仅在本次调用完成 Playing -> GameOver 转换时返回 true
func (r *RoundState) TriggerGameOver() bool {
	if r.phase == RoundGameOver {
		return false
	}
	r.phase = RoundGameOver
	log.Printf("[RoundState] Playing -> GameOver")
	return true
}

// Restart 清除锁存
//
// 返回：
//   - bool: 仅在本次调用完成 GameOver -> Playing 转换时返回 true；
//     已在 Playing 时为空操作
func (r *RoundState) Restart() bool {
	if r.phase == RoundPlaying {
		return false
	}
	r.phase = RoundPlaying
	log.Printf("[RoundState] GameOver -> Playing")
	return true
}
