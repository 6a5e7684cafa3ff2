package ecs

import "reflect"

// 泛型访问器，避免调用方到处写 reflect.TypeOf 和类型断言

// AddComponent 为实体添加类型为 T 的组件
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeFor[T]()] = component
	}
}

// GetComponent 获取实体上类型为 T 的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有类型为 T 的组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// RemoveComponent 移除实体上类型为 T 的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的存活实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的存活实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的存活实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// CountWith1 返回拥有组件 T1 的存活实体数量
func CountWith1[T1 any](em *EntityManager) int {
	ct := reflect.TypeFor[T1]()
	n := 0
	for _, id := range em.order {
		if _, marked := em.pending[id]; marked {
			continue
		}
		if _, found := em.components[id][ct]; found {
			n++
		}
	}
	return n
}
