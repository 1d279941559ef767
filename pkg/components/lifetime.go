package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体（如得分飘字）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
}

// Remaining 返回剩余存活时间（秒），不小于 0
func (l *LifetimeComponent) Remaining() float64 {
	r := l.MaxLifetime - l.CurrentLifetime
	if r < 0 {
		return 0
	}
	return r
}

// Expired 是否已达到生命周期上限
func (l *LifetimeComponent) Expired() bool {
	return l.CurrentLifetime >= l.MaxLifetime
}
