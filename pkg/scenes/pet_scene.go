package scenes

import (
	"log"
	"time"

	"github.com/gonewx/lildrake/pkg/game"
	"github.com/gonewx/lildrake/pkg/input"
	"github.com/gonewx/lildrake/pkg/modules"
	"github.com/gonewx/lildrake/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 桌宠窗口布局
const (
	petWindowPadding   = 24.0 // 精灵四周的留白，容纳缩放和抖动
	tooltipHeight      = 44.0 // 精灵下方提示区域
	tooltipMaxWidth    = 160.0
	tooltipFadeSeconds = 0.25
)

// PetScene 已部署的桌宠场景
//
// 窗口无边框、透明、置顶，大小只比精灵略大，每帧移动到桌宠的位置。
// 桌宠的视口是整个显示器，所有指针坐标都换算为屏幕坐标后交给 PetModule。
type PetScene struct {
	toggle       *modules.DeployToggle
	sceneManager *game.SceneManager
	settings     *game.SettingsManager

	sprite        *ebiten.Image
	spriteW       float64
	spriteH       float64
	windowW       int
	windowH       int
	lastWindowX   int
	lastWindowY   int
	screenW       int
	screenH       int
	pointer       *input.PointerTracker
	menu          *ContextMenu
	hovering      bool
	hoverTime     float64 // 悬停持续时间（秒），用于提示框淡入
	recallPending bool
}

// NewPetScene 创建桌宠场景并把窗口切换为桌宠模式
//
// 参数:
//   - toggle: 部署开关，场景只驱动已部署的桌宠
//   - sceneManager: 召回后切回启动器
//   - settings: 宿主设置（提示开关）
//   - sprite: 精灵图像，面朝右
//   - spriteW, spriteH: 精灵逻辑尺寸（与桌宠配置一致）
func NewPetScene(
	toggle *modules.DeployToggle,
	sceneManager *game.SceneManager,
	settings *game.SettingsManager,
	sprite *ebiten.Image,
	spriteW, spriteH float64,
) *PetScene {
	s := &PetScene{
		toggle:       toggle,
		sceneManager: sceneManager,
		settings:     settings,
		sprite:       sprite,
		spriteW:      spriteW,
		spriteH:      spriteH,
		pointer:      input.NewPointerTracker(),
		menu:         NewContextMenu(),
		lastWindowX:  -1,
		lastWindowY:  -1,
	}

	menuW, menuH := s.menu.Size()
	s.windowW = int(spriteW + 2*petWindowPadding + menuW)
	s.windowH = int(max(spriteH+2*petWindowPadding+tooltipHeight, menuH+2*petWindowPadding))

	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(s.windowW, s.windowH)
	log.Printf("[PetScene] Window %dx%d", s.windowW, s.windowH)
	return s
}

// WindowSize 实现 game.WindowSizer
func (s *PetScene) WindowSize() (int, int) {
	return s.windowW, s.windowH
}

// Update 推进桌宠并处理输入
func (s *PetScene) Update(deltaTime float64) {
	pet := s.toggle.Current()
	if pet == nil {
		s.recall()
		return
	}

	// 显示器尺寸就是桌宠的视口
	if w, h := utils.ScreenSize(s.screenW, s.screenH); w != s.screenW || h != s.screenH {
		s.screenW, s.screenH = w, h
		pet.Resize(float64(w), float64(h))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.recall()
		return
	}
	s.handleShortcuts(pet)
	s.handlePointer(pet)
	if s.hovering {
		s.hoverTime += deltaTime
	} else {
		s.hoverTime = 0
	}
	if s.recallPending {
		s.recall()
		return
	}

	pet.Update(time.Duration(deltaTime * float64(time.Second)))
	s.followPet(pet)
}

// shortcutKeys 键盘快捷键：P/F/G/S 对应菜单命令
var shortcutKeys = map[ebiten.Key]modules.MenuCommand{
	ebiten.KeyP: modules.MenuPet,
	ebiten.KeyF: modules.MenuFeed,
	ebiten.KeyG: modules.MenuPlay,
	ebiten.KeyS: modules.MenuScare,
}

func (s *PetScene) handleShortcuts(pet *modules.PetModule) {
	for key, cmd := range shortcutKeys {
		if inpututil.IsKeyJustPressed(key) {
			pet.Command(cmd)
		}
	}
}

// handlePointer 把本帧指针事件分发给菜单或桌宠
func (s *PetScene) handlePointer(pet *modules.PetModule) {
	sample := utils.ReadPointerSample()
	wx, wy := ebiten.WindowPosition()
	localX, localY := sample.X-float64(wx), sample.Y-float64(wy)

	s.hovering = pet.Contains(sample.X, sample.Y)
	if s.menu.IsOpen() {
		s.menu.Hover(localX, localY)
	}

	for _, ev := range s.pointer.Update(sample) {
		switch ev.Kind {
		case input.PointerPress:
			if s.menu.IsOpen() {
				s.selectMenu(pet, localX, localY)
				continue
			}
			pet.PointerDown(ev.X, ev.Y)
		case input.PointerMove:
			pet.PointerMove(ev.X, ev.Y)
		case input.PointerRelease:
			pet.PointerUp()
		case input.PointerContext:
			if pet.Contains(ev.X, ev.Y) && !pet.IsDragging() {
				s.menu.Open(localX, localY, float64(s.windowW), float64(s.windowH))
			} else {
				s.menu.Close()
			}
		}
	}
}

func (s *PetScene) selectMenu(pet *modules.PetModule, x, y float64) {
	entry, ok := s.menu.Select(x, y)
	if !ok {
		return
	}
	log.Printf("[PetScene] Menu: %s", entry.Label)
	if entry.Recall {
		s.recallPending = true
		return
	}
	pet.Command(entry.Command)
}

// followPet 把窗口移动到桌宠位置（精灵左上角减去留白）
func (s *PetScene) followPet(pet *modules.PetModule) {
	v := pet.Visual()
	x := int(v.X - petWindowPadding)
	y := int(v.Y - petWindowPadding)
	if x == s.lastWindowX && y == s.lastWindowY {
		return
	}
	ebiten.SetWindowPosition(x, y)
	s.lastWindowX, s.lastWindowY = x, y
}

// recall 召回桌宠并回到启动器
// 场景切换时 Dispose 负责卸载
func (s *PetScene) recall() {
	s.recallPending = false
	if !s.sceneManager.Load(game.SceneLauncher) {
		s.toggle.Recall()
	}
}

// Dispose 实现 game.Disposable：离开场景即召回
func (s *PetScene) Dispose() {
	s.toggle.Recall()
	log.Printf("[PetScene] Disposed")
}
