package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/ecs"
	"github.com/gonewx/zombie-shooter/pkg/entities"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// ZombieSpawnSystem 按生成间隔在顶部随机位置生成僵尸
//
// 生成间隔由 DifficultySystem 推送；每次生成读取当前难度参数作为新僵尸的快照
type ZombieSpawnSystem struct {
	entityManager *ecs.EntityManager
	difficulty    *game.DifficultyController
	round         *game.RoundState
	hitRadius     float64
	timer         *game.RepeatingTimer
	rng           *rand.Rand
}

// NewZombieSpawnSystem 创建僵尸生成系统
//
// 参数:
//   - em: 实体管理器
//   - session: 会话状态（读取难度与回合阶段）
//   - rng: 随机源，测试中传入固定种子
func NewZombieSpawnSystem(em *ecs.EntityManager, session *game.Session, rng *rand.Rand) *ZombieSpawnSystem {
	return &ZombieSpawnSystem{
		entityManager: em,
		difficulty:    session.Difficulty,
		round:         session.Round,
		hitRadius:     session.Config.Combat.HitRadius,
		timer:         game.NewRepeatingTimer(session.Difficulty.Stats().SpawnInterval),
		rng:           rng,
	}
}

// SetInterval 设置新的生成间隔，当前周期进度清零
func (s *ZombieSpawnSystem) SetInterval(interval float64) {
	s.timer.SetDuration(interval)
}

// Interval 返回当前生成间隔
func (s *ZombieSpawnSystem) Interval() float64 {
	return s.timer.Duration
}

// Reset 恢复为初始生成间隔并重新计时
func (s *ZombieSpawnSystem) Reset() {
	s.timer.SetDuration(s.difficulty.InitialStats().SpawnInterval)
}

// Update 推进生成计时器
func (s *ZombieSpawnSystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}
	if !s.timer.Tick(deltaTime) {
		return
	}
	s.spawn()
}

// spawn 在 [SpawnMinX, SpawnMaxX] 内均匀随机的位置生成一只僵尸
func (s *ZombieSpawnSystem) spawn() {
	stats := s.difficulty.Stats()
	x := config.SpawnMinX + s.rng.Float64()*(config.SpawnMaxX-config.SpawnMinX)

	id, err := entities.NewZombieEntity(s.entityManager, x, config.SpawnY, stats.Speed, stats.Health, s.hitRadius)
	if err != nil {
		log.Printf("[ZombieSpawnSystem] Failed to spawn zombie: %v", err)
		return
	}

	log.Printf("[ZombieSpawnSystem] Spawned zombie %d at x=%.1f (speed=%.1f, health=%.1f)",
		id, x, stats.Speed, stats.Health)
}
