package systems

import (
	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// FloatingScoreSystem 让得分飘字向上漂移
// 飘字在 GameOver 期间继续漂移直到过期
type FloatingScoreSystem struct {
	entityManager *ecs.EntityManager
}

// NewFloatingScoreSystem 创建飘字系统
func NewFloatingScoreSystem(em *ecs.EntityManager) *FloatingScoreSystem {
	return &FloatingScoreSystem{entityManager: em}
}

// Update 移动所有飘字
func (s *FloatingScoreSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.FloatingScoreComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		fs, _ := ecs.GetComponent[*components.FloatingScoreComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.Y += fs.RiseSpeed * deltaTime
	}
}
