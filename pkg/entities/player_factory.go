package entities

import (
	"fmt"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体，位于底部中央
func NewPlayerEntity(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: config.PlayerStartX,
		Y: config.PlayerY,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Speed: config.PlayerSpeed,
		MinX:  config.PlayerMinX,
		MaxX:  config.PlayerMaxX,
	})

	return entityID, nil
}
