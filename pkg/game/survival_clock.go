package game

// SurvivalClock 本局存活时间
// 只在 Playing 状态下推进，重新开始时归零
type SurvivalClock struct {
	seconds float64
}

// NewSurvivalClock 创建归零的存活计时
func NewSurvivalClock() *SurvivalClock {
	return &SurvivalClock{}
}

// Advance 累加存活时间，负值被忽略
func (c *SurvivalClock) Advance(dt float64) {
	if dt > 0 {
		c.seconds += dt
	}
}

// Seconds 返回已存活秒数
func (c *SurvivalClock) Seconds() float64 {
	return c.seconds
}

// Reset 归零
func (c *SurvivalClock) Reset() {
	c.seconds = 0
}
