package entities

import (
	"fmt"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// NewFloatingScore 创建得分飘字实体
// 飘字以固定速度上升，存活 config.FloatingScoreLifetime 秒后由 LifetimeSystem 销毁
//
// 参数:
//   - em: 实体管理器
//   - x, y: 初始位置（世界坐标）
//   - points: 显示的分数
//   - kind: 飘字类型（命中/击杀，决定颜色）
func NewFloatingScore(em *ecs.EntityManager, x, y float64, points int, kind components.FloatingScoreKind) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.FloatingScoreComponent{
		Text:      fmt.Sprintf("+%d", points),
		Kind:      kind,
		RiseSpeed: config.FloatingScoreRiseSpeed,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: config.FloatingScoreLifetime,
	})

	return entityID, nil
}
