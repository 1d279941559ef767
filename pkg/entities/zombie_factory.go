package entities

import (
	"fmt"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// NewZombieEntity 创建僵尸实体
// 速度和生命值是生成时刻难度参数的快照
//
// 参数:
//   - em: 实体管理器
//   - x, y: 生成位置（世界坐标）
//   - speed: 向下移动速度（像素/秒）
//   - health: 生命值（同时作为 MaxHealth）
//   - radius: 命中半径
//
// 返回:
//   - ecs.EntityID: 僵尸实体ID
//   - error: 参数非法时返回错误
func NewZombieEntity(em *ecs.EntityManager, x, y, speed, health, radius float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if health <= 0 {
		return 0, fmt.Errorf("zombie health must be positive, got %v", health)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ZombieComponent{
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Radius: radius})

	return entityID, nil
}
