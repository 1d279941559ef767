package systems

import (
	"log"

	"github.com/gonewx/zombie-shooter/pkg/game"
)

// ShopSystem 将武器/技能快捷键转换为商店操作
// 分数不足时记录提示并播放拒绝音效，状态不变
type ShopSystem struct {
	input       game.InputSource
	progression *game.ProgressionStore
	round       *game.RoundState
	sound       game.SoundPlayer
}

// NewShopSystem 创建商店系统
func NewShopSystem(session *game.Session, input game.InputSource, sound game.SoundPlayer) *ShopSystem {
	return &ShopSystem{
		input:       input,
		progression: session.Progression,
		round:       session.Round,
		sound:       sound,
	}
}

// Update 处理本帧的商店按键
func (s *ShopSystem) Update(deltaTime float64) {
	if !s.round.IsPlaying() {
		return
	}

	for i, action := range game.WeaponActions {
		if s.input.JustPressed(action) {
			outcome, err := s.progression.PurchaseWeapon(i)
			s.report("weapon", i, outcome, err)
		}
	}
	for i, action := range game.AbilityActions {
		if s.input.JustPressed(action) {
			outcome, err := s.progression.PurchaseAbility(i)
			s.report("ability", i, outcome, err)
		}
	}
}

// report 记录购买结果并播放对应音效
func (s *ShopSystem) report(kind string, index int, outcome game.PurchaseOutcome, err error) {
	if err != nil {
		log.Printf("[ShopSystem] Cannot buy %s %d: %v", kind, index, err)
		playSound(s.sound, game.SoundDenied)
		return
	}
	if outcome == game.PurchaseBought {
		playSound(s.sound, game.SoundPurchase)
	}
}
