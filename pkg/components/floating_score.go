package components

// FloatingScoreKind 得分飘字类型
// 不同类型使用不同颜色绘制
type FloatingScoreKind int

const (
	// FloatingScoreHit 命中得分（白色）
	FloatingScoreHit FloatingScoreKind = iota
	// FloatingScoreKill 击杀奖励（金色）
	FloatingScoreKill
)

// FloatingScoreComponent 得分飘字
// 生成后以 RiseSpeed 向上漂移，由 LifetimeComponent 控制销毁时机
type FloatingScoreComponent struct {
	Text      string            // 显示文本，如 "+10"
	Kind      FloatingScoreKind // 飘字类型
	RiseSpeed float64           // 上升速度（像素/秒）
}
