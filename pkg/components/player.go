package components

// PlayerComponent 标记玩家实体
// 玩家只在底部水平移动，Y 坐标固定
type PlayerComponent struct {
	Speed float64 // 水平移动速度（像素/秒）
	MinX  float64 // 可移动范围下限
	MaxX  float64 // 可移动范围上限
}
