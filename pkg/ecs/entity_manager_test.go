package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testHealthComponent struct {
	Health, MaxHealth float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID 从 1 开始，0 保留为无效ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", id1, id2)
	}
}

func TestAddAndGetComponentGeneric(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射 API 共用同一份存储
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Reflection API should see component added through generic API")
	}

	if _, ok := GetComponent[*testHealthComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前组件仍可访问，但实体不再存活
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestDestroyEntityIdempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	other := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	if len(em.entitiesToDestroy) != 1 {
		t.Errorf("Expected 1 pending destroy, got %d", len(em.entitiesToDestroy))
	}

	em.RemoveMarkedEntities()

	// 已删除实体、无效ID 再次删除均为无操作
	em.DestroyEntity(id)
	em.DestroyEntity(0)
	em.DestroyEntity(999)
	if len(em.entitiesToDestroy) != 0 {
		t.Errorf("Destroying removed entities should be a no-op, got %d pending", len(em.entitiesToDestroy))
	}

	em.RemoveMarkedEntities()
	if !em.IsAlive(other) {
		t.Error("Unrelated entity should survive")
	}
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 entity left, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWithSortedAndFiltered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testHealthComponent{Health: 50, MaxHealth: 50})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testHealthComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range got {
		if got[i] != ids[i] {
			t.Errorf("Index %d: got %d, want %d (results must be sorted by ID)", i, got[i], ids[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 20 {
		t.Errorf("Expected 20 entities with position, got %d", n)
	}
}

func TestDestroyEntitiesWith1(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 3; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testHealthComponent{})
	}
	keep := em.CreateEntity()
	AddComponent(em, keep, &testPositionComponent{})

	if n := DestroyEntitiesWith1[*testHealthComponent](em); n != 3 {
		t.Errorf("Expected 3 entities marked, got %d", n)
	}
	// 第二次调用不会重复标记
	if n := DestroyEntitiesWith1[*testHealthComponent](em); n != 0 {
		t.Errorf("Expected 0 entities marked on second call, got %d", n)
	}

	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 || !em.IsAlive(keep) {
		t.Error("Only the entity without health component should remain")
	}
}

func TestRemoveComponentGeneric(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})
	AddComponent(em, id, &testHealthComponent{})

	RemoveComponent[*testHealthComponent](em, id)

	if HasComponent[*testHealthComponent](em, id) {
		t.Error("Health component should be removed")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Position component should remain")
	}
}
