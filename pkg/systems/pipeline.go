package systems

import (
	"log"

	"github.com/gonewx/zombie-shooter/pkg/ecs"
)

// Stage 系统执行阶段
// 阶段顺序在代码中固定，注册顺序不影响执行顺序
type Stage int

const (
	// StageInput 输入处理（玩家移动、商店、静音）
	StageInput Stage = iota
	// StageDifficulty 存活计时与难度递增
	StageDifficulty
	// StageSpawn 僵尸生成
	StageSpawn
	// StageWeapon 武器开火
	StageWeapon
	// StageMovement 僵尸与子弹移动
	StageMovement
	// StageCombat 命中结算
	StageCombat
	// StageRound 失败判定与重新开始
	StageRound
	// StageEffects 飘字等视觉效果
	StageEffects

	stageCount
)

var stageNames = [stageCount]string{
	"Input", "Difficulty", "Spawn", "Weapon", "Movement", "Combat", "Round", "Effects",
}

// String 返回阶段名称
func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "Unknown"
	}
	return stageNames[s]
}

// Updater 每帧更新的系统
type Updater interface {
	Update(deltaTime float64)
}

// Pipeline 按阶段顺序驱动所有系统
// 每帧结束时统一清理被标记删除的实体
type Pipeline struct {
	entityManager *ecs.EntityManager
	stages        [stageCount][]Updater
}

// NewPipeline 创建系统管线
func NewPipeline(em *ecs.EntityManager) *Pipeline {
	return &Pipeline{entityManager: em}
}

// Register 将系统注册到指定阶段
// 同一阶段内按注册顺序执行
func (p *Pipeline) Register(stage Stage, system Updater) {
	if stage < 0 || stage >= stageCount {
		log.Printf("[Pipeline] Warning: ignoring system registered to invalid stage %d", stage)
		return
	}
	if system == nil {
		return
	}
	p.stages[stage] = append(p.stages[stage], system)
}

// Update 依次执行各阶段的系统，然后清理被标记删除的实体
func (p *Pipeline) Update(deltaTime float64) {
	for _, systems := range p.stages {
		for _, s := range systems {
			s.Update(deltaTime)
		}
	}
	p.entityManager.RemoveMarkedEntities()
}

// SystemCount 返回已注册的系统数量
func (p *Pipeline) SystemCount() int {
	n := 0
	for _, systems := range p.stages {
		n += len(systems)
	}
	return n
}
