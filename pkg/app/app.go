// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	synth "github.com/decker502/cnake/internal/audio"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/embedded"
	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/services"
	"github.com/decker502/cnake/pkg/types"
	"github.com/decker502/cnake/pkg/utils"
)

// DefaultConfigPath 嵌入的默认游戏配置
const DefaultConfigPath = "data/game.yaml"

// storageAppName gdata 存储使用的应用名
const storageAppName = "cnake"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的游戏配置文件，为空时使用嵌入的 data/game.yaml
	ConfigPath string
	// Debug 强制启用调试按键（与配置文件中的 debug 取或）
	Debug bool
	// Seed 非 0 时覆盖配置中的随机种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg    *config.GameConfig
	layout config.Layout

	game      *game.Game
	resources *services.ResourceManager
	audio     *services.AudioManager
	settings  *services.SettingsManager
	renderer  *Renderer

	drawList types.DrawList
	events   []types.InputEvent
	keys     []ebiten.Key

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 读取游戏配置：path 为空时读取嵌入资源
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseGameConfig(data)
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

	gameConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	if cfg.Debug {
		gameConfig.Debug = true
	}
	if cfg.Seed != 0 {
		gameConfig.Seed = cfg.Seed
	}

	// 设置持久化失败时降级为仅内存设置
	storage, err := services.OpenStorage(storageAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settings, err := services.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	audioContext := audio.NewContext(int(synth.SampleRate))

	resources, err := services.NewResourceManager(gameConfig, audioContext)
	if err != nil {
		return nil, fmt.Errorf("资源管理器初始化失败: %w", err)
	}
	if err := resources.LoadTextures(); err != nil {
		return nil, fmt.Errorf("贴图加载失败: %w", err)
	}

	audioManager := services.NewAudioManager(resources, settings)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	g := game.New(gameConfig, utils.NewRand(gameConfig.Seed), resources, audioManager)
	g.SetBestScore(settings.GetSettings().BestScore)

	a := &App{
		cfg:       gameConfig,
		layout:    gameConfig.Layout(),
		game:      g,
		resources: resources,
		audio:     audioManager,
		settings:  settings,
		renderer:  NewRenderer(gameConfig, resources),
		verbose:   cfg.Verbose,
	}

	ebiten.SetWindowSize(a.layout.WindowW, a.layout.WindowH)
	ebiten.SetWindowTitle("cnake")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.layout.WindowW, a.layout.WindowH)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.layout.WindowW, a.layout.WindowH)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audio.ToggleSound()
		a.saveSettings()
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	a.events = TranslateKeys(a.events[:0], a.keys)
	if ebiten.IsWindowBeingClosed() {
		a.events = append(a.events, types.Quit())
	}

	a.game.HandleEvents(a.events)
	a.game.Update()

	if a.game.State() == game.StateDead && a.settings.RecordScore(a.game.BestScore()) {
		a.saveSettings()
	}

	if a.game.State() == game.StateQuit {
		a.settings.RecordScore(a.game.BestScore())
		a.saveSettings()
		log.Printf("[App] Quit requested, terminating")
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.drawList.Reset()
	a.game.Draw(&a.drawList)
	a.renderer.Render(screen, &a.drawList)
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
	return a.layout.WindowW, a.layout.WindowH
}

// Game 返回游戏核心
func (a *App) Game() *game.Game {
	return a.game
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
