package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标原点位于战场中心，X 向右为正，Y 向上为正
type PositionComponent struct {
	X float64
	Y float64
}
