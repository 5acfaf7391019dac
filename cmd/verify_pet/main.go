// verify_pet 无界面验证桌宠状态机
//
// 用虚拟时钟运行一段会话并打印每次动作迁移，也可以只校验配置文件。
//
// 用法:
//
//	go run ./cmd/verify_pet -duration 30s -seed 42
//	go run ./cmd/verify_pet -script "1000:click,1100:click,6000:feed"
//	go run ./cmd/verify_pet -validate -config data/pet.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gonewx/lildrake/pkg/config"
	"github.com/gonewx/lildrake/pkg/systems"
)

var (
	configPath = flag.String("config", "data/pet.yaml", "桌宠配置文件路径")
	seed       = flag.Int64("seed", 1, "随机种子（0 表示按时间）")
	duration   = flag.Duration("duration", 30*time.Second, "模拟的虚拟时长")
	script     = flag.String("script", "", "操作脚本，如 \"1000:click,5000:feed\"")
	width      = flag.Float64("width", 800, "视口宽度")
	height     = flag.Float64("height", 600, "视口高度")
	validate   = flag.Bool("validate", false, "只校验配置文件")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadPetConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置无效: %v\n", err)
		os.Exit(1)
	}
	if *validate {
		fmt.Printf("✅ %s: %d actions, sprite %.0fx%.0f, %d host profiles\n",
			*configPath, len(cfg.Actions), cfg.Sprite.Width, cfg.Sprite.Height, len(cfg.Profiles))
		return
	}

	steps, err := ParseScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 脚本无效: %v\n", err)
		os.Exit(1)
	}

	session, err := NewSession(cfg, systems.NewRandomSource(*seed), *width, *height, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 挂载失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Simulating %s in a %.0fx%.0f viewport (seed %d)\n\n", *duration, *width, *height, *seed)
	session.Run(steps, *duration)
	session.Summary()
}
