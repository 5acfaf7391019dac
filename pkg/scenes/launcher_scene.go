package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/lildrake/pkg/game"
	"github.com/gonewx/lildrake/pkg/modules"
	"github.com/gonewx/lildrake/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 启动器窗口尺寸
const (
	LauncherWidth  = 280
	LauncherHeight = 200
)

const deployLabel = "Deploy Drake"

var (
	launcherBackground = color.RGBA{R: 36, G: 44, B: 40, A: 255}
	launcherButton     = color.RGBA{R: 96, G: 170, B: 92, A: 255}
	launcherButtonHot  = color.RGBA{R: 126, G: 200, B: 112, A: 255}
	launcherText       = color.RGBA{R: 236, G: 240, B: 230, A: 255}
	launcherDim        = color.RGBA{R: 150, G: 160, B: 150, A: 255}
	launcherError      = color.RGBA{R: 240, G: 120, B: 110, A: 255}
)

// launcherRect 启动器上的可点击区域
type launcherRect struct {
	x, y, w, h float64
}

func (r launcherRect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// launcherOption 启动器上的一个设置开关
type launcherOption struct {
	label string
	rect  launcherRect
	get   func(*game.PetSettings) bool
	set   func(*game.SettingsManager, bool)
}

// LauncherScene 启动器场景：部署按钮和宿主设置
type LauncherScene struct {
	toggle       *modules.DeployToggle
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	monitor      *game.SystemMonitor

	deployButton launcherRect
	options      []launcherOption
	hoverDeploy  bool
	status       string
}

// NewLauncherScene 创建启动器场景并把窗口切换为普通窗口
func NewLauncherScene(
	toggle *modules.DeployToggle,
	sceneManager *game.SceneManager,
	settings *game.SettingsManager,
	monitor *game.SystemMonitor,
) *LauncherScene {
	s := &LauncherScene{
		toggle:       toggle,
		sceneManager: sceneManager,
		settings:     settings,
		monitor:      monitor,
		deployButton: launcherRect{x: 20, y: 46, w: LauncherWidth - 40, h: 32},
	}
	s.options = []launcherOption{
		{
			label: "Show tooltips",
			rect:  launcherRect{x: 20, y: 92, w: LauncherWidth - 40, h: 16},
			get:   func(p *game.PetSettings) bool { return p.ShowTooltip },
			set:   (*game.SettingsManager).SetShowTooltip,
		},
		{
			label: "Deploy on start",
			rect:  launcherRect{x: 20, y: 112, w: LauncherWidth - 40, h: 16},
			get:   func(p *game.PetSettings) bool { return p.StartDeployed },
			set:   (*game.SettingsManager).SetStartDeployed,
		},
		{
			label: "Show system stats",
			rect:  launcherRect{x: 20, y: 132, w: LauncherWidth - 40, h: 16},
			get:   func(p *game.PetSettings) bool { return p.ShowMonitor },
			set:   (*game.SettingsManager).SetShowMonitor,
		},
		{
			label: "Play sounds",
			rect:  launcherRect{x: 20, y: 152, w: LauncherWidth - 40, h: 16},
			get:   func(p *game.PetSettings) bool { return p.SoundEnabled },
			set:   (*game.SettingsManager).SetSoundEnabled,
		},
	}

	ebiten.SetWindowDecorated(true)
	ebiten.SetWindowFloating(false)
	ebiten.SetWindowSize(LauncherWidth, LauncherHeight)
	return s
}

// WindowSize 实现 game.WindowSizer
func (s *LauncherScene) WindowSize() (int, int) {
	return LauncherWidth, LauncherHeight
}

// Update 处理按钮和开关
func (s *LauncherScene) Update(deltaTime float64) {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	s.hoverDeploy = s.deployButton.contains(x, y)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.deploy()
		return
	}

	clicked, px, py := utils.IsJustClicked()
	if !clicked {
		return
	}
	if s.deployButton.contains(px, py) {
		s.deploy()
		return
	}
	for _, opt := range s.options {
		if opt.rect.contains(px, py) {
			opt.set(s.settings, !opt.get(s.settings.GetSettings()))
			if err := s.settings.Save(); err != nil {
				log.Printf("[LauncherScene] Warning: %v", err)
			}
			return
		}
	}
}

// deploy 部署桌宠并切换到桌宠场景
func (s *LauncherScene) deploy() {
	if _, err := s.toggle.Deploy(); err != nil {
		s.status = fmt.Sprintf("Deploy failed: %v", err)
		log.Printf("[LauncherScene] %s", s.status)
		return
	}
	if !s.sceneManager.Load(game.ScenePet) {
		s.toggle.Recall()
		s.status = "Deploy failed: no pet scene"
	}
}

// Draw 绘制启动器
func (s *LauncherScene) Draw(screen *ebiten.Image) {
	screen.Fill(launcherBackground)
	face := utils.BasicFace()

	drawLauncherText(screen, "Lil Drake", 20, 16, launcherText)

	btn := launcherButton
	if s.hoverDeploy {
		btn = launcherButtonHot
	}
	b := s.deployButton
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), btn, true)
	labelW := text.Advance(deployLabel, face)
	drawLauncherText(screen, deployLabel, b.x+(b.w-labelW)/2, b.y+10, launcherText)

	settings := s.settings.GetSettings()
	for _, opt := range s.options {
		mark := "[ ]"
		if opt.get(settings) {
			mark = "[x]"
		}
		drawLauncherText(screen, mark+" "+opt.label, opt.rect.x, opt.rect.y+2, launcherDim)
	}

	switch {
	case s.status != "":
		drawLauncherText(screen, s.status, 20, LauncherHeight-22, launcherError)
	case settings.ShowMonitor && s.monitor != nil:
		drawLauncherText(screen, s.monitor.Stats().String(), 20, LauncherHeight-22, launcherDim)
	}
}

func drawLauncherText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, utils.BasicFace(), op)
}
