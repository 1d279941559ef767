package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/zombie-shooter/pkg/components"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/game"
	"github.com/gonewx/zombie-shooter/pkg/utils"
)

// 调色板
var (
	colorBackground    = color.RGBA{24, 28, 32, 255}
	colorZombie        = color.RGBA{60, 170, 70, 255}
	colorHealthBarBack = color.RGBA{120, 20, 20, 255}
	colorHealthBar     = color.RGBA{80, 220, 80, 255}
	colorProjectile    = color.RGBA{250, 220, 60, 255}
	colorPlayer        = color.RGBA{70, 130, 240, 255}
	colorText          = color.RGBA{240, 240, 240, 255}
	colorScoreHit      = color.RGBA{255, 255, 255, 255}
	colorScoreKill     = color.RGBA{255, 200, 40, 255}
	colorSlot          = color.RGBA{50, 56, 64, 230}
	colorSlotLocked    = color.RGBA{0, 0, 0, 140}
	colorSlotActive    = color.RGBA{255, 200, 40, 255}
	colorButton        = color.RGBA{128, 128, 128, 255}
)

// 击杀飘字的弹出动画参数
const (
	killPopScale    = 1.4
	killPopDuration = 0.25
)

// RecordsView 只读的最佳记录
type RecordsView interface {
	Records() game.Records
}

// RenderSystem 绘制战场、HUD、商店面板和游戏结束遮罩
// 所有绘制都由 ECS 状态和会话状态派生，血条在绘制时根据僵尸生命值计算
type RenderSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	records       RecordsView

	hudFace   *text.GoTextFace
	scoreFace *text.GoTextFace
	shopFace  *text.GoTextFace
	titleFace *text.GoTextFace
	btnFace   *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - session: 会话状态（分数、时间、商店）
//   - records: 最佳记录，可为 nil
//
// 返回:
//   - *RenderSystem: 渲染系统实例
//   - error: 字体加载失败时返回错误
func NewRenderSystem(em *ecs.EntityManager, session *game.Session, records RecordsView) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &RenderSystem{
		entityManager: em,
		session:       session,
		records:       records,
		hudFace:       &text.GoTextFace{Source: source, Size: config.HUDFontSize},
		scoreFace:     &text.GoTextFace{Source: source, Size: config.FloatingScoreFontSize},
		shopFace:      &text.GoTextFace{Source: source, Size: config.ShopFontSize},
		titleFace:     &text.GoTextFace{Source: source, Size: config.GameOverTitleFontSize},
		btnFace:       &text.GoTextFace{Source: source, Size: config.RestartButtonFontSize},
	}, nil
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s.drawZombies(screen)
	s.drawProjectiles(screen)
	s.drawPlayer(screen)
	s.drawFloatingScores(screen)
	s.drawHUD(screen)
	s.drawShop(screen)
	s.drawOverlay(screen)
}

func (s *RenderSystem) drawZombies(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ZombieComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)

		x, y := utils.CenteredRect(pos.X, pos.Y, config.ZombieSize, config.ZombieSize)
		fillRect(screen, x, y, config.ZombieSize, config.ZombieSize, colorZombie)

		// 血条位于僵尸上方
		bx, by := utils.CenteredRect(pos.X, pos.Y+config.HealthBarOffsetY, config.HealthBarWidth, config.HealthBarHeight)
		fillRect(screen, bx, by, config.HealthBarWidth, config.HealthBarHeight, colorHealthBarBack)
		if w := HealthBarWidth(zombie); w > 0 {
			fillRect(screen, bx, by, w, config.HealthBarHeight, colorHealthBar)
		}
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ProjectileComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x, y := utils.CenteredRect(pos.X, pos.Y, config.ProjectileWidth, config.ProjectileHeight)
		fillRect(screen, x, y, config.ProjectileWidth, config.ProjectileHeight, colorProjectile)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x, y := utils.CenteredRect(pos.X, pos.Y, config.PlayerSize, config.PlayerSize)
		fillRect(screen, x, y, config.PlayerSize, config.PlayerSize, colorPlayer)
	}
}

func (s *RenderSystem) drawFloatingScores(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.FloatingScoreComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		fs, _ := ecs.GetComponent[*components.FloatingScoreComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		alpha, scale := 1.0, 1.0
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			alpha = FloatingScoreAlpha(lifetime)
			scale = FloatingScoreScale(fs.Kind, lifetime)
		}

		clr := colorScoreHit
		if fs.Kind == components.FloatingScoreKill {
			clr = colorScoreKill
		}

		sx, sy := utils.WorldToScreen(pos.X, pos.Y)
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, fs.Text, s.scoreFace, op)
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	var best *game.Records
	if s.records != nil {
		r := s.records.Records()
		best = &r
	}

	lines := HUDLines(s.session.Progression.Score(), s.session.Clock.Seconds(), best)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.HUDMargin, config.HUDMargin+float64(i)*config.HUDLineHeight)
		op.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, line, s.hudFace, op)
	}
}

func (s *RenderSystem) drawShop(screen *ebiten.Image) {
	progression := s.session.Progression
	weapons := progression.Weapons()

	for i, w := range weapons {
		x, y, width, height := config.ShopSlotRect(0, i, len(weapons))
		s.drawSlot(screen, x, y, width, height, ShopSlotLabel(slotKey(config.WeaponSlotKeys, i), w.Config.Name, w.Config.Cost, w.Purchased),
			w.Purchased, i == progression.ActiveWeaponIndex())
	}

	for i, a := range progression.Abilities() {
		x, y, width, height := config.ShopSlotRect(1, i, len(weapons))
		s.drawSlot(screen, x, y, width, height, ShopSlotLabel(slotKey(config.AbilitySlotKeys, i), a.Config.Name, a.Config.Cost, a.Purchased),
			a.Purchased, a.Active)
	}
}

// drawSlot 绘制单个商店槽位：背景、文字、未购买遮罩、激活边框
func (s *RenderSystem) drawSlot(screen *ebiten.Image, x, y, w, h float64, label string, purchased, active bool) {
	fillRect(screen, x, y, w, h, colorSlot)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+6, y+h/2)
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, label, s.shopFace, op)

	if !purchased {
		fillRect(screen, x, y, w, h, colorSlotLocked)
	}
	if active {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h),
			config.ShopActiveBorderWidth, colorSlotActive, false)
	}
}

func (s *RenderSystem) drawOverlay(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith1[*components.GameOverOverlayComponent](s.entityManager)
	for _, id := range ids {
		overlay, _ := ecs.GetComponent[*components.GameOverOverlayComponent](s.entityManager, id)

		backdrop := color.RGBA{0, 0, 0, uint8(overlay.BackdropAlpha * 255)}
		fillRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, backdrop)

		titleOp := &text.DrawOptions{}
		titleOp.GeoM.Translate(config.GameWindowWidth/2, config.GameOverTitleY)
		titleOp.PrimaryAlign = text.AlignCenter
		titleOp.SecondaryAlign = text.AlignCenter
		titleOp.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, overlay.Title, s.titleFace, titleOp)

		fillRect(screen, overlay.ButtonX, overlay.ButtonY, overlay.ButtonWidth, overlay.ButtonHeight, colorButton)
		btnOp := &text.DrawOptions{}
		btnOp.GeoM.Translate(overlay.ButtonX+overlay.ButtonWidth/2, overlay.ButtonY+overlay.ButtonHeight/2)
		btnOp.PrimaryAlign = text.AlignCenter
		btnOp.SecondaryAlign = text.AlignCenter
		btnOp.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, overlay.ButtonLabel, s.btnFace, btnOp)
	}
}

// fillRect 绘制实心矩形（屏幕坐标）
func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// HealthBarWidth 血条前景宽度，与剩余生命值成正比
func HealthBarWidth(zombie *components.ZombieComponent) float64 {
	return config.HealthBarWidth * zombie.HealthRatio()
}

// FloatingScoreAlpha 飘字不透明度，在最后 40% 生命周期内缓出淡去
func FloatingScoreAlpha(lifetime *components.LifetimeComponent) float64 {
	if lifetime.MaxLifetime <= 0 {
		return 1
	}
	fade := lifetime.MaxLifetime * 0.4
	remaining := lifetime.Remaining()
	if remaining >= fade {
		return 1
	}
	return utils.EaseOutQuad(remaining / fade)
}

// FloatingScoreScale 飘字缩放：击杀飘字出现时放大，随后缩回原始大小
func FloatingScoreScale(kind components.FloatingScoreKind, lifetime *components.LifetimeComponent) float64 {
	if kind != components.FloatingScoreKill {
		return 1
	}
	progress := lifetime.CurrentLifetime / killPopDuration
	return utils.Lerp(killPopScale, 1, utils.EaseOutCubic(progress))
}

// HUDLines 生成 HUD 文本行
// best 为 nil 时不显示最佳记录行
func HUDLines(score int, seconds float64, best *game.Records) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", score),
		fmt.Sprintf("Time: %.1f s", seconds),
	}
	if best != nil {
		lines = append(lines, fmt.Sprintf("Best: %d / %.1f s", best.BestScore, best.BestSurvivalTime))
	}
	return lines
}

// ShopSlotLabel 生成商店槽位文字，如 "[2] Shotgun 100"；已购买时不显示价格
func ShopSlotLabel(key, name string, cost int, purchased bool) string {
	if purchased {
		return fmt.Sprintf("[%s] %s", key, name)
	}
	return fmt.Sprintf("[%s] %s %d", key, name, cost)
}

func slotKey(keys []string, i int) string {
	if i < len(keys) {
		return keys[i]
	}
	return "-"
}
