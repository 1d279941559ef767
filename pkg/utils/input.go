// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/game"
)

// KeyBindings 逻辑动作到按键的映射，一个动作可绑定多个按键
type KeyBindings map[game.Action][]ebiten.Key

// DefaultKeyBindings 返回默认按键映射
//
//   - 移动：← → 或 A D
//   - 开火：空格
//   - 武器：1 2 3
//   - 技能：Q E
//   - 重新开始：R（也可点击 Restart 按钮）
//   - 静音：M，音量：- =
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		game.ActionMoveLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
		game.ActionMoveRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
		game.ActionFire:       {ebiten.KeySpace},
		game.ActionWeapon1:    {ebiten.KeyDigit1},
		game.ActionWeapon2:    {ebiten.KeyDigit2},
		game.ActionWeapon3:    {ebiten.KeyDigit3},
		game.ActionAbility1:   {ebiten.KeyQ},
		game.ActionAbility2:   {ebiten.KeyE},
		game.ActionRestart:    {ebiten.KeyR},
		game.ActionMute:       {ebiten.KeyM},
		game.ActionVolumeDown: {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
		game.ActionVolumeUp:   {ebiten.KeyEqual, ebiten.KeyNumpadAdd},
	}
}

// KeyboardInput 基于 ebiten 键盘/鼠标/触摸状态的 game.InputSource 实现
type KeyboardInput struct {
	bindings KeyBindings
}

// NewKeyboardInput 创建键盘输入源，bindings 为 nil 时使用默认映射
func NewKeyboardInput(bindings KeyBindings) *KeyboardInput {
	if bindings == nil {
		bindings = DefaultKeyBindings()
	}
	return &KeyboardInput{bindings: bindings}
}

// IsHeld 动作对应的任一按键处于按下状态
func (k *KeyboardInput) IsHeld(a game.Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed 动作对应的任一按键在本帧刚被按下
// 重新开始动作同时接受对 Restart 按钮的点击或触摸
func (k *KeyboardInput) JustPressed(a game.Action) bool {
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	if a == game.ActionRestart {
		if clicked, x, y := IsJustTouchedOrClicked(); clicked {
			return InRestartButton(float64(x), float64(y))
		}
	}
	return false
}

// InRestartButton 屏幕坐标是否落在 Restart 按钮内
func InRestartButton(x, y float64) bool {
	return x >= config.RestartButtonX && x <= config.RestartButtonX+config.RestartButtonWidth &&
		y >= config.RestartButtonY && y <= config.RestartButtonY+config.RestartButtonHeight
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
