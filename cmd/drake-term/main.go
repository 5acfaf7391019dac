// drake-term 在终端里运行 Lil Drake
//
// 用法:
//
//	go run ./cmd/drake-term [-config pet.yaml] [-sound] [-seed N] [-log drake.log]
//
// 鼠标左键拖拽或点击小龙，p/f/g/s 执行菜单命令，r 召回/部署，q 或 Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/lildrake/data"
	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/embedded"
	"github.com/gonewx/lildrake/pkg/systems"
)

func main() {
	configPath := flag.String("config", "", "Path to a pet tuning YAML file (default: built-in data/pet.yaml)")
	logPath := flag.String("log", "", "Write logs to this file (terminal is owned by the UI)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	withSound := flag.Bool("sound", false, "Play a chirp on every gesture")
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}

	embedded.Init(data.FS)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var sound *SoundManager
	if *withSound {
		sound = NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// 没有音频设备时照常运行
			log.Printf("[DrakeTerm] Audio initialization failed: %v", err)
			sound = nil
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	host := newTermHost(screen, cfg, systems.NewRandomSource(*seed), sound)
	defer screen.Fini()
	defer host.shutdown()

	host.run()
}

// setupLogging 终端被界面占用，日志只能写文件或丢弃
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

// loadConfig 加载外部配置或内置配置，并应用终端 profile
func loadConfig(path string) (*config.PetConfig, error) {
	var (
		cfg *config.PetConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadPetConfig(path)
		log.Printf("[DrakeTerm] Loading config from %s", path)
	} else {
		cfg, err = embedded.LoadPetConfig()
		log.Printf("[DrakeTerm] Loading built-in config %s", embedded.PetConfigPath)
	}
	if err != nil {
		return nil, err
	}
	return cfg.ForProfile("terminal"), nil
}
