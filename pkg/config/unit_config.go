package config

// 单位配置常量
// 本文件定义了僵尸、子弹、玩家等单位的尺寸和表现参数
// 可调的玩法数值（难度、伤害、得分、武器）见 game_config.go

// Zombie Configuration (僵尸配置)
const (
	// ZombieSize 僵尸外观尺寸（正方形边长，像素）
	ZombieSize = 25.0

	// HealthBarWidth 血条满血宽度（像素）
	HealthBarWidth = 25.0

	// HealthBarHeight 血条高度（像素）
	HealthBarHeight = 4.0

	// HealthBarOffsetY 血条相对僵尸中心的Y偏移（世界坐标，向上）
	HealthBarOffsetY = 20.0
)

// Projectile Configuration (子弹配置)
const (
	// ProjectileWidth 子弹宽度（像素）
	ProjectileWidth = 3.0

	// ProjectileHeight 子弹高度（像素）
	ProjectileHeight = 7.0
)

// Player Configuration (玩家配置)
const (
	// PlayerSize 玩家外观尺寸（像素）
	PlayerSize = 10.0

	// PlayerSpeed 玩家水平移动速度（像素/秒）
	PlayerSpeed = 500.0
)

// Floating Score Configuration (飘字配置)
const (
	// FloatingScoreRiseSpeed 飘字上升速度（像素/秒）
	FloatingScoreRiseSpeed = 20.0

	// FloatingScoreLifetime 飘字存在时间（秒）
	FloatingScoreLifetime = 0.8

	// FloatingScoreJitter 飘字相对僵尸位置的随机偏移范围（±像素）
	FloatingScoreJitter = 10.0
)
