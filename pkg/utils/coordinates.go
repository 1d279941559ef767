// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换
//
// # 坐标系统概述
//
//   - **世界坐标**：原点位于战场中心，X 向右为正，Y 向上为正（所有 PositionComponent 使用）
//   - **屏幕坐标**：原点位于窗口左上角，Y 向下为正（ebiten 绘制与鼠标坐标使用）
//
// # 核心转换公式
//
//	screenX = worldX + FieldHalfWidth
//	screenY = FieldHalfHeight - worldY
package utils

import "github.com/gonewx/zombie-shooter/pkg/config"

// WorldToScreen 世界坐标转换为屏幕坐标
func WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	return worldX + config.FieldHalfWidth, config.FieldHalfHeight - worldY
}

// ScreenToWorld 屏幕坐标转换为世界坐标
func ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	return screenX - config.FieldHalfWidth, config.FieldHalfHeight - screenY
}

// CenteredRect 以世界坐标中心点计算屏幕矩形左上角
//
// 参数：
//   - worldX, worldY: 中心点世界坐标
//   - w, h: 矩形宽高（像素）
//
// 返回：
//   - x, y: 屏幕坐标系下的左上角
func CenteredRect(worldX, worldY, w, h float64) (x, y float64) {
	sx, sy := WorldToScreen(worldX, worldY)
	return sx - w/2, sy - h/2
}
