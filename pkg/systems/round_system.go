package systems

import (
	"log"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// RecordSubmitter 接收回合结束成绩
type RecordSubmitter interface {
	Submit(score int, survivalTime float64) (bool, error)
}

// SpawnResetter 生成系统的重置接口
type SpawnResetter interface {
	Reset()
}

// RoundSystem 回合状态机驱动
//
// 职责：
//   - Playing：任一僵尸越过失败边界时锁存 GameOver，显示一次遮罩并提交成绩
//   - GameOver：响应重新开始输入，恢复全部回合状态并清理战场实体
type RoundSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	input         game.InputSource
	sound         game.SoundPlayer
	spawner       SpawnResetter
	records       RecordSubmitter
}

// NewRoundSystem 创建回合系统
//
// 参数:
//   - em: 实体管理器
//   - session: 会话状态
//   - input: 输入源（读取重新开始动作）
//   - sound: 音效播放器，可为 nil
//   - spawner: 生成系统，重新开始时重置其计时器
//   - records: 成绩记录，可为 nil
func NewRoundSystem(em *ecs.EntityManager, session *game.Session, input game.InputSource,
	sound game.SoundPlayer, spawner SpawnResetter, records RecordSubmitter) *RoundSystem {
	return &RoundSystem{
		entityManager: em,
		session:       session,
		input:         input,
		sound:         sound,
		spawner:       spawner,
		records:       records,
	}
}

// Update 检查失败边界或处理重新开始
func (s *RoundSystem) Update(deltaTime float64) {
	if s.session.Round.IsGameOver() {
		if s.input != nil && s.input.JustPressed(game.ActionRestart) {
			s.Restart()
		}
		return
	}

	if s.zombieCrossedBoundary() {
		s.enterGameOver()
	}
}

// zombieCrossedBoundary 是否有存活僵尸的 Y 低于失败边界
func (s *RoundSystem) zombieCrossedBoundary() bool {
	zombies := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ZombieComponent](s.entityManager)
	for _, id := range zombies {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos.Y < config.LossBoundaryY {
			return true
		}
	}
	return false
}

// enterGameOver 锁存失败并显示遮罩
func (s *RoundSystem) enterGameOver() {
	if !s.session.Round.TriggerGameOver() {
		return
	}

	score := s.session.Progression.Score()
	survival := s.session.Clock.Seconds()
	log.Printf("[RoundSystem] Game over: score=%d time=%.1fs", score, survival)

	// 遮罩只显示一次
	if len(ecs.GetEntitiesWith1[*components.GameOverOverlayComponent](s.entityManager)) == 0 {
		if _, err := entities.NewGameOverOverlay(s.entityManager); err != nil {
			log.Printf("[RoundSystem] Failed to create game over overlay: %v", err)
		}
	}
	playSound(s.sound, game.SoundGameOver)

	if s.records != nil {
		if _, err := s.records.Submit(score, survival); err != nil {
			log.Printf("[RoundSystem] Warning: Failed to save records: %v", err)
		}
	}
}

// Restart 从 GameOver 重新开始
//
// 恢复存活时间与难度，重置生成计时器，分数与商店保持不变，
// 删除所有僵尸、子弹、飘字和遮罩，玩家回到初始位置
// 已处于 Playing 时为空操作
//
// 返回:
//   - bool: 是否执行了重新开始
func (s *RoundSystem) Restart() bool {
	if !s.session.Round.Restart() {
		return false
	}

	s.session.ResetRound()
	if s.spawner != nil {
		s.spawner.Reset()
	}

	zombies := ecs.DestroyEntitiesWith1[*components.ZombieComponent](s.entityManager)
	projectiles := ecs.DestroyEntitiesWith1[*components.ProjectileComponent](s.entityManager)
	ecs.DestroyEntitiesWith1[*components.FloatingScoreComponent](s.entityManager)
	ecs.DestroyEntitiesWith1[*components.GameOverOverlayComponent](s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X = config.PlayerStartX
	}

	log.Printf("[RoundSystem] Restarted: cleared %d zombies, %d projectiles", zombies, projectiles)
	return true
}
