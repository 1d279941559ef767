package components

// GameOverOverlayComponent 标记游戏结束遮罩实体
// 遮罩只在进入 GameOver 时创建一次，重新开始时销毁
//
// 重新开始按钮的屏幕矩形保存在组件中，供渲染和点击检测共用
type GameOverOverlayComponent struct {
	Title         string
	ButtonLabel   string
	ButtonX       float64 // 按钮左上角 X（屏幕坐标）
	ButtonY       float64 // 按钮左上角 Y（屏幕坐标）
	ButtonWidth   float64
	ButtonHeight  float64
	BackdropAlpha float64 // 背景遮罩不透明度 0.0 ~ 1.0
}

// ContainsPoint 检测屏幕坐标点是否落在重新开始按钮内
func (g *GameOverOverlayComponent) ContainsPoint(x, y float64) bool {
	return x >= g.ButtonX && x <= g.ButtonX+g.ButtonWidth &&
		y >= g.ButtonY && y <= g.ButtonY+g.ButtonHeight
}
