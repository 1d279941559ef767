package components

// ProjectileComponent 子弹数据
// DirX/DirY 为单位方向向量：手枪和机枪竖直向上 (0, 1)，霰弹枪按扇形角度偏转
type ProjectileComponent struct {
	DirX  float64
	DirY  float64
	Speed float64 // 飞行速度（像素/秒）
}
