package components

// CollisionComponent 定义实体的圆形碰撞范围
// 战斗结算使用子弹与僵尸中心之间的欧氏距离，距离严格小于 Radius 才算命中
type CollisionComponent struct {
	Radius float64 // 命中半径（像素）
}
