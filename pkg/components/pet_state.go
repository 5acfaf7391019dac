package components

import "github.com/gonewx/lildrake/pkg/types"

// PetStateComponent 桌宠的核心状态记录
//
// 只允许通过系统修改：移动系统写位置和朝向，
// ActionDirector 写动作、缩放和来源，拖拽系统在拖拽模式下写位置。
type PetStateComponent struct {
	X, Y   float64            // 精灵左上角的视口坐标
	Facing types.Facing       // 当前朝向
	Action types.Action       // 当前动作，必须是动作目录中的成员
	Speed  float64            // 每次移动计时器触发时前进的距离
	Scale  float64            // 视觉缩放倍数（抚摸时放大）
	Origin types.ActionOrigin // 当前动作到期任务的所有者
}
