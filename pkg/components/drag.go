package components

import "github.com/gonewx/lildrake/pkg/types"

// DragComponent 拖拽状态
// Mode 决定位置写入权：自主移动和拖拽不会同时修改位置
type DragComponent struct {
	Mode        types.MotionMode
	GrabOffsetX float64 // 按下时指针相对于精灵原点的偏移
	GrabOffsetY float64
}

// IsDragging 是否处于拖拽模式
func (d *DragComponent) IsDragging() bool {
	return d.Mode == types.MotionDragging
}
