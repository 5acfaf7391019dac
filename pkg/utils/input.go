// Package utils 提供宿主层的通用工具函数
package utils

import (
	"github.com/gonewx/lildrake/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ReadPointerSample 读取当前指针状态并换算为屏幕坐标
// 优先使用触摸，其次使用鼠标
func ReadPointerSample() input.PointerSample {
	wx, wy := ebiten.WindowPosition()

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return input.PointerSample{X: float64(wx + x), Y: float64(wy + y), Primary: true}
	}

	x, y := ebiten.CursorPosition()
	return input.PointerSample{
		X:         float64(wx + x),
		Y:         float64(wy + y),
		Primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

// ScreenSize 返回当前显示器尺寸，无法获取时返回 fallback
func ScreenSize(fallbackW, fallbackH int) (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return fallbackW, fallbackH
	}
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}

// IsJustClicked 检查本帧是否刚刚点击或触摸（窗口内坐标）
func IsJustClicked() (bool, float64, float64) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, float64(x), float64(y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, float64(x), float64(y)
	}
	return false, 0, 0
}
