// Package input 把宿主的原始指针采样转换为按下/移动/松开事件
// 不依赖任何窗口库，桌面宿主和终端宿主共用
package input

// PointerSample 一帧的指针采样（屏幕坐标）
type PointerSample struct {
	X, Y      float64
	Primary   bool // 左键按下或有活动触摸
	Secondary bool // 右键按下
}

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerPress 主按钮按下
	PointerPress PointerEventKind = iota
	// PointerMove 主按钮按住时移动
	PointerMove
	// PointerRelease 主按钮松开
	PointerRelease
	// PointerContext 右键按下（打开菜单）
	PointerContext
)

// String 返回事件类型名称
func (k PointerEventKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerContext:
		return "context"
	default:
		return "unknown"
	}
}

// PointerEvent 指针事件
type PointerEvent struct {
	Kind PointerEventKind
	X, Y float64
}

// PointerTracker 把逐帧采样转换为按下/移动/松开事件
//
// 桌宠窗口在拖拽时会跟着指针移动，窗口内坐标没有意义，
// 所以采样必须是屏幕坐标（窗口位置 + 窗口内光标位置）。
type PointerTracker struct {
	last        PointerSample
	initialized bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Update 输入本帧采样，返回产生的事件
func (t *PointerTracker) Update(s PointerSample) []PointerEvent {
	var events []PointerEvent
	prev := t.last
	if !t.initialized {
		// 第一帧之前已经按住的按钮不算按下
		prev = s
		t.initialized = true
	}

	switch {
	case s.Primary && !prev.Primary:
		events = append(events, PointerEvent{Kind: PointerPress, X: s.X, Y: s.Y})
	case s.Primary && (s.X != prev.X || s.Y != prev.Y):
		events = append(events, PointerEvent{Kind: PointerMove, X: s.X, Y: s.Y})
	case !s.Primary && prev.Primary:
		events = append(events, PointerEvent{Kind: PointerRelease, X: s.X, Y: s.Y})
	}

	if s.Secondary && !prev.Secondary {
		events = append(events, PointerEvent{Kind: PointerContext, X: s.X, Y: s.Y})
	}

	t.last = s
	return events
}

// Reset 丢弃历史采样
func (t *PointerTracker) Reset() {
	t.last = PointerSample{}
	t.initialized = false
}
