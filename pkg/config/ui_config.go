package config

// UI 布局相关的常量配置
// 包括 HUD 文本、商店面板、游戏结束遮罩等 UI 元素的屏幕坐标（左上角为原点）

// HUD Configuration (抬头显示配置)
const (
	// HUDMargin HUD 文本距离屏幕边缘的距离
	HUDMargin = 10.0

	// HUDFontSize HUD 文本字号
	HUDFontSize = 20.0

	// HUDLineHeight HUD 文本行高
	HUDLineHeight = 24.0

	// FloatingScoreFontSize 得分飘字字号
	FloatingScoreFontSize = 16.0
)

// Shop Panel Configuration (商店面板配置)
//
// 武器槽位于屏幕右上角竖直排列，技能槽位于武器槽下方
// 每个槽位显示名称、价格、快捷键，未购买时叠加锁定遮罩，激活时绘制高亮边框
const (
	// ShopSlotX 槽位左上角 X
	ShopSlotX = 640.0

	// ShopSlotStartY 第一个槽位左上角 Y
	ShopSlotStartY = 10.0

	// ShopSlotWidth 槽位宽度
	ShopSlotWidth = 150.0

	// ShopSlotHeight 槽位高度
	ShopSlotHeight = 34.0

	// ShopSlotSpacing 相邻槽位的垂直间距
	ShopSlotSpacing = 6.0

	// ShopSectionGap 武器区与技能区之间的额外间距
	ShopSectionGap = 12.0

	// ShopFontSize 槽位文字字号
	ShopFontSize = 14.0

	// ShopActiveBorderWidth 激活边框线宽
	ShopActiveBorderWidth = 2.0
)

// WeaponSlotKeys 武器槽快捷键标签（与 InputSource 的 Weapon1..3 对应）
var WeaponSlotKeys = []string{"1", "2", "3"}

// AbilitySlotKeys 技能槽快捷键标签（与 InputSource 的 Ability1..2 对应）
var AbilitySlotKeys = []string{"Q", "E"}

// Game Over Overlay Configuration (游戏结束遮罩配置)
const (
	// GameOverBackdropAlpha 背景遮罩不透明度
	GameOverBackdropAlpha = 0.7

	// GameOverTitleFontSize "Game Over!" 字号
	GameOverTitleFontSize = 60.0

	// GameOverTitleY 标题中心 Y
	GameOverTitleY = 240.0

	// RestartButtonWidth 重新开始按钮宽度
	RestartButtonWidth = 150.0

	// RestartButtonHeight 重新开始按钮高度
	RestartButtonHeight = 50.0

	// RestartButtonX 重新开始按钮左上角 X（水平居中）
	RestartButtonX = (GameWindowWidth - RestartButtonWidth) / 2

	// RestartButtonY 重新开始按钮左上角 Y
	RestartButtonY = 330.0

	// RestartButtonFontSize 按钮文字字号
	RestartButtonFontSize = 24.0
)

// ShopSlotRect 计算第 index 个商店槽位的屏幕矩形
//
// 参数：
//   - section: 0=武器区, 1=技能区
//   - index: 区内索引
//   - weaponCount: 武器槽数量（技能区紧随其后）
//
// 返回：
//   - x, y: 左上角坐标
//   - w, h: 宽高
func ShopSlotRect(section, index, weaponCount int) (x, y, w, h float64) {
	row := float64(index)
	y = ShopSlotStartY + row*(ShopSlotHeight+ShopSlotSpacing)
	if section == 1 {
		y += float64(weaponCount)*(ShopSlotHeight+ShopSlotSpacing) + ShopSectionGap
	}
	return ShopSlotX, y, ShopSlotWidth, ShopSlotHeight
}
