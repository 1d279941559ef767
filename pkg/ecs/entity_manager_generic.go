package ecs

import "reflect"

// 泛型 API
//
// 与反射版本共用同一份存储，区别仅在于调用方无需手写 reflect.TypeOf 与类型断言：
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
//	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ZombieComponent](em)

// typeOf 返回类型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// AddComponent 为实体添加组件，组件类型由参数推断
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[typeOf[T]()] = component
	}
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 移除实体的 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 T1 组件的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// GetEntitiesWith4 查询同时拥有 T1..T4 组件的所有实体
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
}

// DestroyEntitiesWith1 标记所有拥有 T1 组件的实体待删除，返回标记数量
func DestroyEntitiesWith1[T1 any](em *EntityManager) int {
	ids := GetEntitiesWith1[T1](em)
	count := 0
	for _, id := range ids {
		if em.IsAlive(id) {
			em.DestroyEntity(id)
			count++
		}
	}
	return count
}
