package utils

import "math"

// 缓动函数
//
// 接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]；超出区间的输入先被截断。

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出，比 Cubic 更柔和
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
