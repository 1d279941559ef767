package systems

import (
	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// LifetimeSystem 推进限时实体的存活时间，到期后标记删除
//
// 运行在 StageEffects，GameOver 期间也继续推进，
// 让已有的飘字自然消失。本帧已被其他系统标记删除的实体
// （如重新开始时清理的飘字）直接跳过。
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 推进存活时间并删除到期实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		lifetime.CurrentLifetime += deltaTime
		if lifetime.Expired() {
			s.entityManager.DestroyEntity(id)
		}
	}
}
