package game

import "github.com/gonewx/zombie-shooter/pkg/config"

// Session 一局游戏的全部状态
// 各系统只持有自己需要的字段引用，不使用全局单例
type Session struct {
	Config      *config.GameConfig
	Difficulty  *DifficultyController
	Clock       *SurvivalClock
	Round       *RoundState
	Progression *ProgressionStore
}

// NewSession 根据玩法配置创建会话
func NewSession(cfg *config.GameConfig) *Session {
	return &Session{
		Config:      cfg,
		Difficulty:  NewDifficultyController(cfg.Difficulty),
		Clock:       NewSurvivalClock(),
		Round:       NewRoundState(),
		Progression: NewProgressionStore(cfg.Shop),
	}
}

// ResetRound 将回合内状态恢复为初始值
// 回合阶段由调用方通过 Round.Restart 切换
// Progression 不属于回合状态，分数与已购物品跨回合保留
func (s *Session) ResetRound() {
	s.Difficulty.Reset()
	s.Clock.Reset()
}
