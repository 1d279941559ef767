package config

// 布局配置常量
// 本文件定义了窗口尺寸与战场（play-field）边界
//
// 所有实体坐标使用"世界坐标系"：原点位于窗口中心，X 向右为正，Y 向上为正
// 渲染时由 utils.WorldToScreen 转换为屏幕坐标（左上角为原点，Y 向下）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Zombie Shooter"
)

// Play-field Configuration (战场边界配置)
const (
	// FieldHalfWidth 战场半宽（世界坐标），X 范围 [-400, 400]
	FieldHalfWidth = GameWindowWidth / 2.0

	// FieldHalfHeight 战场半高（世界坐标），Y 范围 [-300, 300]
	FieldHalfHeight = GameWindowHeight / 2.0

	// SpawnMinX 僵尸生成X坐标下限
	SpawnMinX = -375.0

	// SpawnMaxX 僵尸生成X坐标上限
	SpawnMaxX = 375.0

	// SpawnY 僵尸生成的固定Y坐标（屏幕顶部附近）
	SpawnY = 250.0

	// LossBoundaryY 失败边界：任一僵尸 Y 低于此值即判定本局失败
	LossBoundaryY = -300.0

	// ProjectileDeletionBoundaryY 子弹飞出此Y坐标后被删除
	ProjectileDeletionBoundaryY = FieldHalfHeight

	// ProjectileDeletionBoundaryX 子弹水平方向飞出 |X| > 此值后被删除（散弹斜飞）
	ProjectileDeletionBoundaryX = FieldHalfWidth

	// PlayerStartX 玩家初始X坐标
	PlayerStartX = 0.0

	// PlayerY 玩家固定Y坐标（屏幕底部附近）
	PlayerY = -250.0

	// PlayerMinX 玩家可移动的X坐标下限
	PlayerMinX = -375.0

	// PlayerMaxX 玩家可移动的X坐标上限
	PlayerMaxX = 375.0

	// MuzzleOffsetY 子弹出生点相对玩家中心的Y偏移
	MuzzleOffsetY = 30.0
)
