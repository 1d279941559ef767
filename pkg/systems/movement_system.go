package systems

import (
	"math"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// MovementSystem 移动僵尸与子弹
//
// 僵尸以各自的生成快照速度向下移动；子弹沿方向向量飞行，飞出战场后删除
// GameOver 期间所有移动冻结
type MovementSystem struct {
	entityManager *ecs.EntityManager
	round         *game.RoundState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, round *game.RoundState) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		round:         round,
	}
}

// Update 更新所有僵尸和子弹的位置
func (s *MovementSystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}
	s.moveZombies(deltaTime)
	s.moveProjectiles(deltaTime)
}

func (s *MovementSystem) moveZombies(deltaTime float64) {
	zombies := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ZombieComponent](s.entityManager)
	for _, id := range zombies {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)
		pos.Y -= zombie.Speed * deltaTime
	}
}

func (s *MovementSystem) moveProjectiles(deltaTime float64) {
	projectiles := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ProjectileComponent](s.entityManager)
	for _, id := range projectiles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)

		pos.X += proj.DirX * proj.Speed * deltaTime
		pos.Y += proj.DirY * proj.Speed * deltaTime

		if pos.Y > config.ProjectileDeletionBoundaryY || math.Abs(pos.X) > config.ProjectileDeletionBoundaryX {
			s.entityManager.DestroyEntity(id)
		}
	}
}
