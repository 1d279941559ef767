package components

// ZombieComponent 僵尸数据
// Speed 和 MaxHealth 是生成时刻难度参数的快照，之后的难度递增不影响已存在的僵尸
//
// 不变式：结算后 0 <= Health <= MaxHealth，Health <= 0 的僵尸在同一帧被销毁
type ZombieComponent struct {
	Health    float64 // 当前生命值
	MaxHealth float64 // 生成时的生命值，用于绘制血条比例
	Speed     float64 // 向下移动速度（像素/秒）
}

// HealthRatio 返回当前生命值占比，限制在 [0, 1]
// 血条宽度由此派生，不需要单独的血条实体
func (z *ZombieComponent) HealthRatio() float64 {
	if z.MaxHealth <= 0 {
		return 0
	}
	r := z.Health / z.MaxHealth
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
