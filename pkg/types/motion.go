package types

// Facing 桌宠朝向
type Facing int

const (
	// FacingRight 面朝右（默认）
	FacingRight Facing = iota
	// FacingLeft 面朝左，渲染时水平镜像
	FacingLeft
)

// String 返回朝向的字符串表示
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Flip 返回相反的朝向
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// MotionMode 位置写入权的归属
// 自主移动和拖拽互斥：同一时刻只有一方可以修改位置
type MotionMode int

const (
	// MotionAutonomous 由移动计时器驱动
	MotionAutonomous MotionMode = iota
	// MotionDragging 由指针拖拽驱动
	MotionDragging
)

// String 返回模式的字符串表示
func (m MotionMode) String() string {
	if m == MotionDragging {
		return "dragging"
	}
	return "autonomous"
}

// ActionOrigin 记录当前动作（以及其到期任务）由谁设置
type ActionOrigin int

const (
	// OriginAmbient 环境随机动作或回落状态
	OriginAmbient ActionOrigin = iota
	// OriginGesture 用户手势触发的动作序列
	OriginGesture
)
