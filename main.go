package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/zombie-shooter/pkg/app"
	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configPath := flag.String("config", "", "玩法配置覆盖文件（YAML）")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
	})
	if err != nil {
		// 非 verbose 模式下日志被丢弃，启动错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start game: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Game exited with error: %v", err)
	}
}
