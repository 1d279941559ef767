package entities

import (
	"fmt"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// NewGameOverOverlay 创建游戏结束遮罩实体
// 包含半透明背景、"Game Over!" 标题和居中的重新开始按钮
func NewGameOverOverlay(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.GameOverOverlayComponent{
		Title:         "Game Over!",
		ButtonLabel:   "Restart",
		ButtonX:       config.RestartButtonX,
		ButtonY:       config.RestartButtonY,
		ButtonWidth:   config.RestartButtonWidth,
		ButtonHeight:  config.RestartButtonHeight,
		BackdropAlpha: config.GameOverBackdropAlpha,
	})

	return entityID, nil
}
