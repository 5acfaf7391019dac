package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneLauncher = "launcher"
	ScenePet      = "pet"
)

// SceneFactory 场景工厂函数类型
// 根据场景名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
	sm.currentScene = scene
	sm.currentName = ""
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Load 切换的场景名称，直接 SwitchTo 的场景为空字符串
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂创建并切换到指定场景
// name: 场景名称，如 SceneLauncher、ScenePet
func (sm *SceneManager) Load(name string) bool {
	log.Printf("[SceneManager] 切换场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentName = name
	return true
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// WindowSize 返回当前场景需要的逻辑屏幕尺寸
// 场景未实现 WindowSizer 时返回 fallback
func (sm *SceneManager) WindowSize(fallbackW, fallbackH int) (int, int) {
	if s, ok := sm.currentScene.(WindowSizer); ok {
		if w, h := s.WindowSize(); w > 0 && h > 0 {
			return w, h
		}
	}
	return fallbackW, fallbackH
}

// Shutdown 释放当前场景
func (sm *SceneManager) Shutdown() {
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
	sm.currentScene = nil
	sm.currentName = ""
}
