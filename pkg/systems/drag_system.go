package systems

import (
	"github.com/gonewx/lildrake/pkg/components"
	"github.com/gonewx/lildrake/pkg/ecs"
	"github.com/gonewx/lildrake/pkg/types"
)

// DragSystem 位置/拖拽控制器
// 指针按下进入拖拽模式，移动时位置跟随指针（保持抓取偏移），松开后回到自主模式
type DragSystem struct {
	em *ecs.EntityManager
}

// NewDragSystem 创建拖拽系统
func NewDragSystem(em *ecs.EntityManager) *DragSystem {
	return &DragSystem{em: em}
}

// HitTest 检查指针是否落在精灵（含当前缩放）范围内
func (s *DragSystem) HitTest(id ecs.EntityID, px, py float64) bool {
	pet, ok := ecs.GetComponent[*components.PetStateComponent](s.em, id)
	if !ok {
		return false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if !ok {
		return false
	}

	// 缩放以精灵中心为锚点
	w, h := sprite.Width*pet.Scale, sprite.Height*pet.Scale
	left := pet.X + (sprite.Width-w)/2
	top := pet.Y + (sprite.Height-h)/2
	return px >= left && px < left+w && py >= top && py < top+h
}

// Begin 记录抓取偏移并进入拖拽模式
// 返回 false 表示实体不存在或已在拖拽中
func (s *DragSystem) Begin(id ecs.EntityID, px, py float64) bool {
	pet, ok := ecs.GetComponent[*components.PetStateComponent](s.em, id)
	if !ok {
		return false
	}
	drag, ok := ecs.GetComponent[*components.DragComponent](s.em, id)
	if !ok || drag.IsDragging() {
		return false
	}

	drag.Mode = types.MotionDragging
	drag.GrabOffsetX = px - pet.X
	drag.GrabOffsetY = py - pet.Y
	return true
}

// Move 拖拽中更新位置：指针位置减去抓取偏移，并限制在视口内
func (s *DragSystem) Move(id ecs.EntityID, px, py float64) {
	drag, ok := ecs.GetComponent[*components.DragComponent](s.em, id)
	if !ok || !drag.IsDragging() {
		return
	}
	pet, _ := ecs.GetComponent[*components.PetStateComponent](s.em, id)
	viewport, _ := ecs.GetComponent[*components.ViewportComponent](s.em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if pet == nil || viewport == nil || sprite == nil {
		return
	}

	pet.X, pet.Y = viewport.Clamp(sprite, px-drag.GrabOffsetX, py-drag.GrabOffsetY)
}

// End 结束拖拽，返回之前是否处于拖拽中
func (s *DragSystem) End(id ecs.EntityID) bool {
	drag, ok := ecs.GetComponent[*components.DragComponent](s.em, id)
	if !ok || !drag.IsDragging() {
		return false
	}
	drag.Mode = types.MotionAutonomous
	drag.GrabOffsetX, drag.GrabOffsetY = 0, 0
	return true
}

// IsDragging 实体是否处于拖拽模式
func (s *DragSystem) IsDragging(id ecs.EntityID) bool {
	drag, ok := ecs.GetComponent[*components.DragComponent](s.em, id)
	return ok && drag.IsDragging()
}

// Resize 更新视口尺寸
// 不会回溯修正当前位置，新边界在下一次写入位置时生效
func (s *DragSystem) Resize(id ecs.EntityID, width, height float64) {
	viewport, ok := ecs.GetComponent[*components.ViewportComponent](s.em, id)
	if !ok {
		return
	}
	viewport.Width = width
	viewport.Height = height
}
