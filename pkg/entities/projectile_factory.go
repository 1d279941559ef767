package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// NewProjectile 创建子弹实体
// 子弹沿方向 angle 匀速飞行，angle 为相对竖直向上的偏转角（弧度，正值向右）
//
// 参数:
//   - em: 实体管理器
//   - x, y: 子弹起始世界坐标
//   - angle: 偏转角（弧度），0 表示竖直向上
//   - speed: 飞行速度（像素/秒）
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewProjectile(em *ecs.EntityManager, x, y, angle, speed float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if speed <= 0 {
		return 0, fmt.Errorf("projectile speed must be positive, got %v", speed)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		DirX:  math.Sin(angle),
		DirY:  math.Cos(angle),
		Speed: speed,
	})

	return entityID, nil
}
