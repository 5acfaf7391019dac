// Package app 提供桌面宿主的核心包装器
//
// 该包把窗口、场景、设置和桌宠模块组装在一起，实现 ebiten.Game 接口。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/embedded"
	"github.com/gonewx/lildrake/pkg/game"
	"github.com/gonewx/lildrake/pkg/modules"
	"github.com/gonewx/lildrake/pkg/scenes"
	"github.com/gonewx/lildrake/pkg/systems"
	"github.com/gonewx/lildrake/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// 获取不到显示器尺寸时使用的视口
const (
	fallbackScreenWidth  = 1280
	fallbackScreenHeight = 720
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部桌宠配置文件，为空时使用内置 data/pet.yaml
	ConfigPath string
	// StartDeployed 启动后直接部署（与保存的设置取或）
	StartDeployed bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是桌面宿主的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	toggle       *modules.DeployToggle
	monitor      *game.SystemMonitor
	audioManager *game.AudioManager
	verbose      bool
}

// NewApp 创建并初始化桌面宿主
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	petConfig, err := loadPetConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings, err := game.NewSettingsManager(openStorage())
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	sprite := utils.NewDrakeSprite(int(petConfig.Sprite.Width), int(petConfig.Sprite.Height))
	if path := settings.GetSettings().SpritePath; path != "" {
		if img, err := utils.LoadSpriteImage(path); err != nil {
			log.Printf("[App] Warning: %v (using built-in sprite)", err)
		} else {
			sprite = img
		}
	}

	audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settings)
	for _, g := range systems.AllGestures {
		tone := systems.GestureTone(g)
		audioManager.RegisterTone(gestureSoundID(g), tone.Freq, tone.Duration)
	}

	rng := systems.NewRandomSource(cfg.Seed)
	toggle := modules.NewDeployToggle(func() (*modules.PetModule, error) {
		w, h := utils.ScreenSize(fallbackScreenWidth, fallbackScreenHeight)
		pet, err := modules.NewPetModule(petConfig, rng, float64(w), float64(h))
		if err != nil {
			return nil, err
		}
		pet.OnGesture(func(g systems.Gesture) {
			audioManager.PlaySound(gestureSoundID(g))
		})
		return pet, nil
	})

	monitor := game.NewSystemMonitor(nil, 0)
	monitor.Start(context.Background())

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneLauncher:
			return scenes.NewLauncherScene(toggle, sceneManager, settings, monitor)
		case game.ScenePet:
			return scenes.NewPetScene(toggle, sceneManager, settings, sprite, petConfig.Sprite.Width, petConfig.Sprite.Height)
		default:
			return nil
		}
	})

	a := &App{
		sceneManager: sceneManager,
		settings:     settings,
		toggle:       toggle,
		monitor:      monitor,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}

	// 根据配置决定启动场景
	startDeployed := cfg.StartDeployed || settings.GetSettings().StartDeployed
	if startDeployed {
		if _, err := toggle.Deploy(); err != nil {
			log.Printf("[App] Warning: deploy on start failed: %v", err)
			startDeployed = false
		}
	}
	if startDeployed {
		sceneManager.Load(game.ScenePet)
	} else {
		sceneManager.Load(game.SceneLauncher)
	}

	log.Printf("[App] Started (deployed=%v)", toggle.IsDeployed())
	return a, nil
}

// loadPetConfig 读取外部配置或内置配置
func loadPetConfig(path string) (*config.PetConfig, error) {
	if path != "" {
		cfg, err := config.LoadPetConfig(path)
		if err != nil {
			return nil, fmt.Errorf("桌宠配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载桌宠配置: %s", path)
		return cfg, nil
	}

	cfg, err := embedded.LoadPetConfig()
	if err != nil {
		return nil, fmt.Errorf("内置桌宠配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载内置桌宠配置: %s", embedded.PetConfigPath)
	return cfg, nil
}

// gestureSoundID 手势提示音的资源ID
func gestureSoundID(g systems.Gesture) string {
	return "gesture/" + g.String()
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置降级为仅内存）
func openStorage() *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: "lildrake"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		return nil
	}
	return m
}

// Update 更新宿主逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 桌宠场景和启动器使用不同的窗口尺寸，由当前场景决定
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneManager.WindowSize(scenes.LauncherWidth, scenes.LauncherHeight)
}

// Shutdown 窗口关闭时调用：召回桌宠、停止监控、保存设置
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
	a.toggle.Recall()
	a.monitor.Stop()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
