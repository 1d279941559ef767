package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
	"github.com/gonewx/zombie-shooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// RecordsStore 最佳记录的读写接口
type RecordsStore interface {
	systems.RecordSubmitter
	systems.RecordsView
}

// GameSceneDeps 游戏场景的外部依赖
// 除 Input 外均可为 nil（测试或降级模式）
type GameSceneDeps struct {
	Input    game.InputSource
	Sound    game.SoundPlayer
	Music    systems.MusicController
	Settings systems.AudioSettings
	Records  RecordsStore
	Rand     *rand.Rand
}

// GameScene 主游戏场景
// 持有实体管理器、会话状态、系统管线和渲染系统
type GameScene struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	pipeline      *systems.Pipeline
	renderSystem  *systems.RenderSystem
	roundSystem   *systems.RoundSystem
	records       RecordsStore
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - cfg: 玩法配置
//   - deps: 输入、音频、设置与记录等依赖
//
// 返回:
//   - *GameScene: 已完成系统注册的场景
//   - error: 依赖缺失或资源加载失败
func NewGameScene(cfg *config.GameConfig, deps GameSceneDeps) (*GameScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if deps.Input == nil {
		return nil, fmt.Errorf("input source cannot be nil")
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	em := ecs.NewEntityManager()
	session := game.NewSession(cfg)

	if _, err := entities.NewPlayerEntity(em); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	var recordsView systems.RecordsView
	var recordSubmitter systems.RecordSubmitter
	if deps.Records != nil {
		recordsView = deps.Records
		recordSubmitter = deps.Records
	}

	renderSystem, err := systems.NewRenderSystem(em, session, recordsView)
	if err != nil {
		return nil, err
	}

	spawnSystem := systems.NewZombieSpawnSystem(em, session, rng)
	roundSystem := systems.NewRoundSystem(em, session, deps.Input, deps.Sound, spawnSystem, recordSubmitter)

	pipeline := systems.NewPipeline(em)
	pipeline.Register(systems.StageInput, systems.NewAudioSettingsSystem(deps.Input, deps.Settings, deps.Music))
	pipeline.Register(systems.StageInput, systems.NewShopSystem(session, deps.Input, deps.Sound))
	pipeline.Register(systems.StageInput, systems.NewPlayerSystem(em, deps.Input, session.Round))
	pipeline.Register(systems.StageDifficulty, systems.NewDifficultySystem(session, spawnSystem))
	pipeline.Register(systems.StageSpawn, spawnSystem)
	pipeline.Register(systems.StageWeapon, systems.NewWeaponSystem(em, session, deps.Input, deps.Sound))
	pipeline.Register(systems.StageMovement, systems.NewMovementSystem(em, session.Round))
	pipeline.Register(systems.StageCombat, systems.NewCombatSystem(em, session, deps.Sound, rng))
	pipeline.Register(systems.StageRound, roundSystem)
	pipeline.Register(systems.StageEffects, systems.NewFloatingScoreSystem(em))
	pipeline.Register(systems.StageEffects, systems.NewLifetimeSystem(em))

	log.Printf("[GameScene] Initialized with %d systems", pipeline.SystemCount())

	return &GameScene{
		entityManager: em,
		session:       session,
		pipeline:      pipeline,
		renderSystem:  renderSystem,
		roundSystem:   roundSystem,
		records:       deps.Records,
	}, nil
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.pipeline.Update(deltaTime)
}

// Draw 绘制一帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Session 返回会话状态
func (s *GameScene) Session() *game.Session {
	return s.session
}

// EntityManager 返回实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Restart 从 GameOver 重新开始，Playing 时为空操作
func (s *GameScene) Restart() bool {
	return s.roundSystem.Restart()
}

// SaveOnExit 实现 game.Saveable
// 回合进行中关闭窗口时，本局成绩也参与最佳记录
func (s *GameScene) SaveOnExit() bool {
	if s.records == nil || !s.session.Round.IsPlaying() || s.session.Clock.Seconds() <= 0 {
		return true
	}
	if _, err := s.records.Submit(s.session.Progression.Score(), s.session.Clock.Seconds()); err != nil {
		log.Printf("[GameScene] Warning: Failed to save records on exit: %v", err)
		return false
	}
	return true
}
