package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// CombatSystem 结算子弹与僵尸的命中
//
// 对每颗子弹依次检查所有僵尸（O(P·Z)），中心距离严格小于僵尸命中半径即命中：
//  1. 删除子弹（每颗子弹每帧最多命中一只僵尸）
//  2. 扣除伤害
//  3. 加命中分并生成命中飘字
//  4. 生命值 <= 0 时删除僵尸，加击杀奖励并生成击杀飘字
//
// 同一帧内已被标记删除的子弹和僵尸不再参与结算
type CombatSystem struct {
	entityManager *ecs.EntityManager
	combat        config.CombatConfig
	progression   *game.ProgressionStore
	round         *game.RoundState
	sound         game.SoundPlayer
	rng           *rand.Rand
}

// NewCombatSystem 创建战斗结算系统
//
// 参数:
//   - em: 实体管理器
//   - session: 会话状态（战斗配置、分数、回合阶段）
//   - sound: 音效播放器，可为 nil
//   - rng: 飘字位置抖动的随机源
func NewCombatSystem(em *ecs.EntityManager, session *game.Session, sound game.SoundPlayer, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		combat:        session.Config.Combat,
		progression:   session.Progression,
		round:         session.Round,
		sound:         sound,
		rng:           rng,
	}
}

// Update 执行命中检测
func (s *CombatSystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}

	projectiles := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ProjectileComponent](s.entityManager)
	if len(projectiles) == 0 {
		return
	}
	zombies := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ZombieComponent](s.entityManager)
	if len(zombies) == 0 {
		return
	}

	damage := s.combat.Damage * s.progression.DamageMultiplier()

	for _, projectileID := range projectiles {
		if !s.entityManager.IsAlive(projectileID) {
			continue
		}
		projectilePos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, projectileID)

		for _, zombieID := range zombies {
			if !s.entityManager.IsAlive(zombieID) {
				continue
			}
			zombiePos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, zombieID)

			if !s.inRange(zombieID, projectilePos, zombiePos) {
				continue
			}

			s.entityManager.DestroyEntity(projectileID)
			s.applyHit(zombieID, zombiePos, damage)
			// 一颗子弹只能击中一只僵尸
			break
		}
	}
}

// inRange 中心距离是否严格小于命中半径
// 僵尸没有碰撞组件时使用配置中的默认半径
func (s *CombatSystem) inRange(zombieID ecs.EntityID, projectilePos, zombiePos *components.PositionComponent) bool {
	radius := s.combat.HitRadius
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, zombieID); ok && col.Radius > 0 {
		radius = col.Radius
	}
	dist := math.Hypot(projectilePos.X-zombiePos.X, projectilePos.Y-zombiePos.Y)
	return dist < radius
}

// applyHit 扣血、计分，必要时击杀
func (s *CombatSystem) applyHit(zombieID ecs.EntityID, zombiePos *components.PositionComponent, damage float64) {
	zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, zombieID)
	if !ok {
		return
	}

	zombie.Health -= damage
	hitPoints := s.progression.Award(s.combat.HitScore)
	s.spawnFloatingScore(zombiePos, hitPoints, components.FloatingScoreHit)

	if zombie.Health > 0 {
		playSound(s.sound, game.SoundHit)
		return
	}

	zombie.Health = 0
	s.entityManager.DestroyEntity(zombieID)
	bonus := s.progression.Award(s.combat.KillBonus)
	s.spawnFloatingScore(zombiePos, bonus, components.FloatingScoreKill)
	playSound(s.sound, game.SoundKill)

	log.Printf("[CombatSystem] Zombie %d killed (score now %d)", zombieID, s.progression.Score())
}

// spawnFloatingScore 在僵尸附近随机偏移处生成飘字
func (s *CombatSystem) spawnFloatingScore(pos *components.PositionComponent, points int, kind components.FloatingScoreKind) {
	if points <= 0 {
		return
	}
	jitterX := (s.rng.Float64()*2 - 1) * config.FloatingScoreJitter
	jitterY := (s.rng.Float64()*2 - 1) * config.FloatingScoreJitter
	if _, err := entities.NewFloatingScore(s.entityManager, pos.X+jitterX, pos.Y+jitterY, points, kind); err != nil {
		log.Printf("[CombatSystem] Failed to create floating score: %v", err)
	}
}
