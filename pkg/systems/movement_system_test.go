package systems

import (
	"math"
	"testing"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

func TestMovementSystemZombiesMoveDown(t *testing.T) {
	em := ecs.NewEntityManager()
	round := game.NewRoundState()
	system := NewMovementSystem(em, round)

	slow, _ := entities.NewZombieEntity(em, 0, 100, 50, 50, 25)
	fast, _ := entities.NewZombieEntity(em, 0, 100, 80, 50, 25)

	system.Update(0.5)

	slowPos, _ := ecs.GetComponent[*components.PositionComponent](em, slow)
	fastPos, _ := ecs.GetComponent[*components.PositionComponent](em, fast)
	if slowPos.Y != 75 {
		t.Errorf("slow zombie y: got %v, want 75", slowPos.Y)
	}
	if fastPos.Y != 60 {
		t.Errorf("fast zombie y: got %v, want 60", fastPos.Y)
	}
}

func TestMovementSystemProjectiles(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		angle     float64
		dt        float64
		wantAlive bool
	}{
		{"in field", 0, 0, 0, 0.1, true},
		{"exits top", 0, 250, 0, 0.1, false},
		{"exits right side", 395, 0, math.Pi / 4, 0.1, false},
		{"exits left side", -395, 0, -math.Pi / 4, 0.1, false},
		{"stays below top edge", 0, 200, 0, 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewMovementSystem(em, game.NewRoundState())

			id, err := entities.NewProjectile(em, tt.x, tt.y, tt.angle, 800)
			if err != nil {
				t.Fatal(err)
			}

			system.Update(tt.dt)

			if em.IsAlive(id) != tt.wantAlive {
				pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
				t.Errorf("alive: got %v, want %v (pos %+v)", em.IsAlive(id), tt.wantAlive, pos)
			}
		})
	}
}

func TestMovementSystemFrozenInGameOver(t *testing.T) {
	em := ecs.NewEntityManager()
	round := game.NewRoundState()
	system := NewMovementSystem(em, round)

	zombie, _ := entities.NewZombieEntity(em, 0, 100, 50, 50, 25)
	projectile, _ := entities.NewProjectile(em, 0, 0, 0, 800)

	round.TriggerGameOver()
	system.Update(1.0)

	zombiePos, _ := ecs.GetComponent[*components.PositionComponent](em, zombie)
	projectilePos, _ := ecs.GetComponent[*components.PositionComponent](em, projectile)
	if zombiePos.Y != 100 || projectilePos.Y != 0 {
		t.Errorf("positions should be frozen, got zombie y=%v projectile y=%v", zombiePos.Y, projectilePos.Y)
	}
}

func TestPlayerSystemMovesAndClamps(t *testing.T) {
	em := ecs.NewEntityManager()
	input := newFakeInput()
	round := game.NewRoundState()
	system := NewPlayerSystem(em, input, round)

	id, _ := entities.NewPlayerEntity(em)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	input.hold(game.ActionMoveRight)
	system.Update(0.1)
	if pos.X != 50 {
		t.Errorf("after 0.1s right: got x=%v, want 50", pos.X)
	}

	system.Update(2.0)
	if pos.X != 375 {
		t.Errorf("player should clamp at 375, got %v", pos.X)
	}

	// 同时按左右抵消
	input.hold(game.ActionMoveLeft)
	system.Update(0.1)
	if pos.X != 375 {
		t.Errorf("opposite keys should cancel, got %v", pos.X)
	}

	input.release(game.ActionMoveRight)
	system.Update(5.0)
	if pos.X != -375 {
		t.Errorf("player should clamp at -375, got %v", pos.X)
	}

	round.TriggerGameOver()
	input.release(game.ActionMoveLeft)
	input.hold(game.ActionMoveRight)
	system.Update(0.1)
	if pos.X != -375 {
		t.Errorf("player should not move during game over, got %v", pos.X)
	}
}
