package game

// RepeatingTimer 重复计时器
// 每累计满 Duration 秒触发一次，触发后保留溢出部分继续计时
//
// 单次 Tick 最多报告一次触发：即使 dt 跨越多个周期也只触发一次，
// 只保留不足一个周期的剩余时间
type RepeatingTimer struct {
	Duration float64 // 周期（秒）
	Elapsed  float64 // 当前周期已累计时间（秒）
}

// NewRepeatingTimer 创建周期为 duration 的重复计时器
func NewRepeatingTimer(duration float64) *RepeatingTimer {
	return &RepeatingTimer{Duration: duration}
}

// Tick 推进计时器
//
// 返回：
//   - bool: 本次推进是否完成了一个周期
func (t *RepeatingTimer) Tick(dt float64) bool {
	if t.Duration <= 0 || dt <= 0 {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
	}
	return true
}

// Reset 清空当前周期进度
func (t *RepeatingTimer) Reset() {
	t.Elapsed = 0
}

// SetDuration 修改周期并清空进度
func (t *RepeatingTimer) SetDuration(duration float64) {
	t.Duration = duration
	t.Elapsed = 0
}

// Progress 返回当前周期的完成比例 [0, 1)
func (t *RepeatingTimer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return t.Elapsed / t.Duration
}
