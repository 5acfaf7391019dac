package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a host scene (launcher or deployed pet).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// WindowSizer 是一个可选接口，场景通过它声明自己需要的逻辑屏幕尺寸
//
// 启动器是普通窗口，桌宠场景的窗口只比精灵略大，
// App.Layout 会优先使用当前场景给出的尺寸。
type WindowSizer interface {
	WindowSize() (width, height int)
}

// Disposable 是一个可选接口，场景被切换掉时调用 Dispose 释放资源
//
// 桌宠场景在这里卸载桌宠（取消全部计时器），保证召回后不留任何任务。
type Disposable interface {
	Dispose()
}
