package game

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/gonewx/zombie-shooter/pkg/config"
)

var (
	// ErrInsufficientScore 分数不足以购买
	ErrInsufficientScore = errors.New("insufficient score")
	// ErrUnknownItem 商店中不存在该槽位
	ErrUnknownItem = errors.New("unknown shop item")
)

// PurchaseOutcome 商店操作结果
type PurchaseOutcome int

const (
	// PurchaseBought 首次购买成功（已扣分）
	PurchaseBought PurchaseOutcome = iota
	// PurchaseSelected 已拥有的武器被切换为当前武器（未扣分）
	PurchaseSelected
	// PurchaseToggled 已拥有的技能被切换开关（未扣分）
	PurchaseToggled
)

// WeaponSlot 武器槽状态
type WeaponSlot struct {
	Config    config.WeaponConfig
	Purchased bool
}

// AbilitySlot 技能槽状态
// 技能之间互相独立，可同时激活多个
type AbilitySlot struct {
	Config    config.AbilityConfig
	Purchased bool
	Active    bool
}

// ProgressionStore 分数与商店状态
//
// 分数只会被战斗结算增加、被购买扣除，永远不为负
// 任意时刻恰好有一把武器处于激活状态
type ProgressionStore struct {
	shop         config.ShopConfig
	score        int
	weapons      []WeaponSlot
	abilities    []AbilitySlot
	activeWeapon int
}

// NewProgressionStore 根据商店配置创建进度存储
// 第一把武器（免费）默认已拥有并激活
// 分数与购买记录在整个进程内保留，重新开始回合不会清空
func NewProgressionStore(shop config.ShopConfig) *ProgressionStore {
	ps := &ProgressionStore{
		shop:      shop,
		score:     shop.InitialScore,
		weapons:   make([]WeaponSlot, len(shop.Weapons)),
		abilities: make([]AbilitySlot, len(shop.Abilities)),
	}
	for i, w := range shop.Weapons {
		ps.weapons[i] = WeaponSlot{Config: w, Purchased: w.Cost == 0}
	}
	for i, a := range shop.Abilities {
		ps.abilities[i] = AbilitySlot{Config: a}
	}
	return ps
}

// Score 返回当前分数
func (ps *ProgressionStore) Score() int {
	return ps.score
}

// AddScore 增加分数，非正数被忽略
func (ps *ProgressionStore) AddScore(points int) {
	if points > 0 {
		ps.score += points
	}
}

// Award 按当前得分倍率发放分数
//
// 返回：
//   - int: 实际增加的分数
func (ps *ProgressionStore) Award(base int) int {
	points := int(math.Round(float64(base) * ps.ScoreMultiplier()))
	ps.AddScore(points)
	return points
}

// Weapons 返回武器槽状态副本
func (ps *ProgressionStore) Weapons() []WeaponSlot {
	out := make([]WeaponSlot, len(ps.weapons))
	copy(out, ps.weapons)
	return out
}

// Abilities 返回技能槽状态副本
func (ps *ProgressionStore) Abilities() []AbilitySlot {
	out := make([]AbilitySlot, len(ps.abilities))
	copy(out, ps.abilities)
	return out
}

// ActiveWeaponIndex 返回当前武器索引
func (ps *ProgressionStore) ActiveWeaponIndex() int {
	return ps.activeWeapon
}

// ActiveWeapon 返回当前武器配置
func (ps *ProgressionStore) ActiveWeapon() config.WeaponConfig {
	return ps.weapons[ps.activeWeapon].Config
}

// PurchaseWeapon 购买或切换武器
//
// 未拥有：分数不足返回 ErrInsufficientScore（状态不变），否则扣分、标记已购买并设为当前武器
// 已拥有：直接切换为当前武器，不扣分
//
// 参数：
//   - index: 武器槽索引
//
// 返回：
//   - PurchaseOutcome: PurchaseBought 或 PurchaseSelected
//   - error: ErrUnknownItem / ErrInsufficientScore
func (ps *ProgressionStore) PurchaseWeapon(index int) (PurchaseOutcome, error) {
	if index < 0 || index >= len(ps.weapons) {
		return 0, fmt.Errorf("%w: weapon slot %d", ErrUnknownItem, index)
	}

	slot := &ps.weapons[index]
	if slot.Purchased {
		ps.activeWeapon = index
		return PurchaseSelected, nil
	}

	if ps.score < slot.Config.Cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d",
			ErrInsufficientScore, slot.Config.Name, slot.Config.Cost, ps.score)
	}

	ps.score -= slot.Config.Cost
	slot.Purchased = true
	ps.activeWeapon = index
	log.Printf("[ProgressionStore] Purchased weapon %s for %d (score now %d)",
		slot.Config.Name, slot.Config.Cost, ps.score)
	return PurchaseBought, nil
}

// PurchaseAbility 购买或切换技能
//
// 未拥有：分数不足返回 ErrInsufficientScore（状态不变），否则扣分、标记已购买并激活
// 已拥有：切换激活状态，不扣分
func (ps *ProgressionStore) PurchaseAbility(index int) (PurchaseOutcome, error) {
	if index < 0 || index >= len(ps.abilities) {
		return 0, fmt.Errorf("%w: ability slot %d", ErrUnknownItem, index)
	}

	slot := &ps.abilities[index]
	if slot.Purchased {
		slot.Active = !slot.Active
		return PurchaseToggled, nil
	}

	if ps.score < slot.Config.Cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d",
			ErrInsufficientScore, slot.Config.Name, slot.Config.Cost, ps.score)
	}

	ps.score -= slot.Config.Cost
	slot.Purchased = true
	slot.Active = true
	log.Printf("[ProgressionStore] Purchased ability %s for %d (score now %d)",
		slot.Config.Name, slot.Config.Cost, ps.score)
	return PurchaseBought, nil
}

// multiplier 累乘所有激活的同类技能倍率
func (ps *ProgressionStore) multiplier(kind config.AbilityKind) float64 {
	m := 1.0
	for _, a := range ps.abilities {
		if a.Active && a.Config.Kind == kind {
			m *= a.Config.Multiplier
		}
	}
	return m
}

// DamageMultiplier 当前伤害倍率（重型弹药）
func (ps *ProgressionStore) DamageMultiplier() float64 {
	return ps.multiplier(config.AbilityHeavyRounds)
}

// ScoreMultiplier 当前得分倍率（赏金）
func (ps *ProgressionStore) ScoreMultiplier() float64 {
	return ps.multiplier(config.AbilityBounty)
}
