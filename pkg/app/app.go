// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载玩法配置、打开持久化存储、
// 创建音频与输入，并把它们注入游戏场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/zombie-shooter/pkg/config"
	"github.com/gonewx/zombie-shooter/pkg/game"
	"github.com/gonewx/zombie-shooter/pkg/scenes"
	"github.com/gonewx/zombie-shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "zombie_shooter"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 玩法配置覆盖文件路径，为空则使用内嵌配置
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	audioManager             *game.AudioManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 持久化存储打开失败时降级为内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings and records will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	recordsManager := game.NewRecordsManager(gdataManager)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	seed := ResolveSeed(cfg.Seed, time.Now())
	log.Printf("[App] Random seed: %d", seed)

	input := utils.NewKeyboardInput(utils.DefaultKeyBindings())

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(gameConfig, scenes.GameSceneDeps{
			Input:    input,
			Sound:    audioManager,
			Music:    audioManager,
			Settings: settingsManager,
			Records:  recordsManager,
			Rand:     rand.New(rand.NewSource(seed)),
		})
	})
	if err := sceneManager.Start(); err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	audioManager.ApplySettings(game.MusicMain)

	return &App{
		sceneManager: sceneManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadGameConfig 加载玩法配置
// path 为空时读取内嵌的 data/game_config.yaml，否则读取磁盘文件
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		cfg, err := config.LoadGameConfig(config.DefaultGameConfigPath)
		if err != nil {
			return nil, fmt.Errorf("玩法配置加载失败: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadGameConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded game config override: %s", path)
	return cfg, nil
}

// ResolveSeed 返回实际使用的随机种子，seed 为 0 时使用 now
func ResolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] Warning: scene failed to save on exit")
		}
		a.audioManager.StopMusic()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(DeltaTime(ebiten.TPS()))
	return nil
}

// DeltaTime 根据 TPS 计算每个 tick 的时长（秒）
func DeltaTime(tps int) float64 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
