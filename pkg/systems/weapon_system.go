package systems

import (
	"log"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// WeaponSystem 根据开火输入与当前武器发射子弹
//
// 射击模式：
//   - pistol: 按下瞬间发射一发
//   - shotgun: 按下瞬间按扇形角度各发射一发
//   - minigun: 按住期间由内部计时器按固定间隔连发，计时器只在按住时推进
//
// 每次开火播放一次音效；切换武器时连发计时器清零
type WeaponSystem struct {
	entityManager *ecs.EntityManager
	input         game.InputSource
	progression   *game.ProgressionStore
	round         *game.RoundState
	sound         game.SoundPlayer

	minigunTimer *game.RepeatingTimer
	lastWeapon   int
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager, session *game.Session, input game.InputSource, sound game.SoundPlayer) *WeaponSystem {
	return &WeaponSystem{
		entityManager: em,
		input:         input,
		progression:   session.Progression,
		round:         session.Round,
		sound:         sound,
		minigunTimer:  game.NewRepeatingTimer(0),
		lastWeapon:    session.Progression.ActiveWeaponIndex(),
	}
}

// Update 处理开火
func (s *WeaponSystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}

	if idx := s.progression.ActiveWeaponIndex(); idx != s.lastWeapon {
		s.minigunTimer.Reset()
		s.lastWeapon = idx
	}

	weapon := s.progression.ActiveWeapon()
	switch weapon.Kind {
	case config.WeaponPistol:
		if s.input.JustPressed(game.ActionFire) {
			s.fire(weapon, []float64{0})
		}
	case config.WeaponShotgun:
		if s.input.JustPressed(game.ActionFire) {
			s.fire(weapon, weapon.SpreadAngles)
		}
	case config.WeaponMinigun:
		if !s.input.IsHeld(game.ActionFire) {
			return
		}
		if s.minigunTimer.Duration != weapon.FireInterval {
			s.minigunTimer.SetDuration(weapon.FireInterval)
		}
		if s.minigunTimer.Tick(deltaTime) {
			s.fire(weapon, []float64{0})
		}
	}
}

// fire 从枪口按给定角度各发射一发子弹，整次开火只播放一次音效
func (s *WeaponSystem) fire(weapon config.WeaponConfig, angles []float64) {
	x, y := s.muzzle()
	for _, angle := range angles {
		if _, err := entities.NewProjectile(s.entityManager, x, y, angle, weapon.ProjectileSpeed); err != nil {
			log.Printf("[WeaponSystem] Failed to create projectile: %v", err)
			return
		}
	}
	playSound(s.sound, weapon.Sound)
}

// muzzle 返回枪口世界坐标：玩家位置上方 MuzzleOffsetY
func (s *WeaponSystem) muzzle() (float64, float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			return pos.X, pos.Y + config.MuzzleOffsetY
		}
	}
	return config.PlayerStartX, config.PlayerY + config.MuzzleOffsetY
}
