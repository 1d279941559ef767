package game

// Action 逻辑输入动作
// 系统只依赖逻辑动作，具体按键映射由 utils.KeyboardInput 负责
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionFire
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionAbility1
	ActionAbility2
	ActionRestart
	ActionMute
	ActionVolumeDown
	ActionVolumeUp
)

// WeaponActions 武器槽索引到动作的映射
var WeaponActions = []Action{ActionWeapon1, ActionWeapon2, ActionWeapon3}

// AbilityActions 技能槽索引到动作的映射
var AbilityActions = []Action{ActionAbility1, ActionAbility2}

// InputSource 输入源接口
type InputSource interface {
	// IsHeld 动作当前是否处于按住状态
	IsHeld(a Action) bool
	// JustPressed 动作是否在本帧刚被触发
	JustPressed(a Action) bool
}
