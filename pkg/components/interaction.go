package components

import "time"

// ClickBurstComponent 点击计数状态
// 每个防抖窗口结束后清零
type ClickBurstComponent struct {
	Pending  int           // 当前窗口内累计的按下次数
	Deadline time.Duration // 防抖截止时间（调度器虚拟时间），Pending 为 0 时无意义
}

// AffectionComponent 连续抚摸计数
type AffectionComponent struct {
	PetStreak int
}
