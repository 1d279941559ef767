package systems

import (
	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// PlayerSystem 根据左右输入水平移动玩家，位置限制在 [MinX, MaxX]
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	input         game.InputSource
	round         *game.RoundState
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, input game.InputSource, round *game.RoundState) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		input:         input,
		round:         round,
	}
}

// Update 移动玩家
func (s *PlayerSystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}

	dir := 0.0
	if s.input.IsHeld(game.ActionMoveLeft) {
		dir -= 1
	}
	if s.input.IsHeld(game.ActionMoveRight) {
		dir += 1
	}
	if dir == 0 {
		return
	}

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X += dir * player.Speed * deltaTime
		if pos.X < player.MinX {
			pos.X = player.MinX
		}
		if pos.X > player.MaxX {
			pos.X = player.MaxX
		}
	}
}
