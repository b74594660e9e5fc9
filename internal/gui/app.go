package gui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/walden/internal/config"
	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/scene"
)

type AppConfig struct {
	Version string
	Session *game.Session
	Window  config.WindowConfig

	// FixedDelta, when positive, replaces the measured frame time.
	FixedDelta float32
	Log        logrus.FieldLogger
}

// App is the windowed client.
type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width, cfg.Window.Height = int(game.DefaultViewport.X), int(game.DefaultViewport.Y)
	}
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = 1
	}
	if cfg.Window.FPS <= 0 {
		cfg.Window.FPS = 60
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Walden"
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	if a.cfg.Session == nil {
		return errors.New("gui: no session to run")
	}
	win := a.cfg.Window
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width*win.Scale), int32(win.Height*win.Scale), win.Title)
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(win.FPS))
	initTypography()

	a.cfg.Log.WithFields(logrus.Fields{
		"width":  win.Width * win.Scale,
		"height": win.Height * win.Scale,
		"fps":    win.FPS,
	}).Info("window opened")

	input := newPadInput(raylibSource{}, a.cfg.FixedDelta)
	for !rl.WindowShouldClose() {
		a.cfg.Session.Tick(input.Poll())
		frame := scene.Build(a.cfg.Session)

		rl.BeginDrawing()
		drawFrame(frame, frameScale(frame, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())))
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	a.cfg.Log.Info("window closed")
	return nil
}

// frameScale fits the frame inside the window without distortion.
func frameScale(f scene.Frame, screenW, screenH float32) float32 {
	if f.Width <= 0 || f.Height <= 0 {
		return 1
	}
	return max(min(screenW/f.Width, screenH/f.Height), 0)
}
