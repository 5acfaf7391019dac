package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/lildrake/data"
	"github.com/gonewx/lildrake/pkg/app"
	"github.com/gonewx/lildrake/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	configPath := flag.String("config", "", "Path to a pet tuning YAML file (default: built-in data/pet.yaml)")
	deployed := flag.Bool("deployed", false, "Deploy Drake immediately instead of showing the launcher")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	embedded.Init(data.FS)

	a, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ConfigPath:    *configPath,
		StartDeployed: *deployed,
		Seed:          *seed,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 已经关闭了日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Shutdown()

	ebiten.SetWindowTitle("Lil Drake")

	// 桌宠窗口需要透明背景，启动器自己绘制不透明背景
	if err := ebiten.RunGameWithOptions(a, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		log.Fatal(err)
	}
}
