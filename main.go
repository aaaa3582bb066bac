package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"mute-overlay/internal/config"
	"mute-overlay/internal/instance"
	"mute-overlay/internal/logging"
	"mute-overlay/internal/micstate"
	"mute-overlay/internal/notify"
	"mute-overlay/internal/overlay"
	"mute-overlay/internal/tray"
)

//go:embed all:frontend/dist
var assets embed.FS

const (
	appName = "Mute Overlay"

	// names the OS mutex behind the single-instance lock
	singleInstanceID = "com.mute-overlay.app.7f3c2a9e"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

// App struct
type App struct {
	ctx     context.Context
	config  *config.Service
	log     zerolog.Logger
	mic     *micstate.Querier
	overlay *overlay.Configurator
	tray    *tray.Tray

	overlayActive bool
}

// NewApp creates a new App application struct
func NewApp(configSvc *config.Service, logger zerolog.Logger) *App {
	return &App{
		config:  configSvc,
		log:     logger,
		mic:     micstate.New(nil, logger),
		overlay: overlay.New(nil, logger),
	}
}

// OnStartup is called when the app starts up. The window exists but is
// still hidden: it gets its overlay style before it is first shown.
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	hwnd, err := mainWindowHandle(appName)
	switch {
	case errors.Is(err, overlay.ErrUnsupported):
		a.log.Warn().Msg("No native window handle on this platform, running as a normal window")
	case err != nil:
		a.log.Fatal().Err(err).Msg("Failed to find main window")
	default:
		a.overlayActive = a.overlay.ApplyOrDegrade(hwnd)
	}

	win := a.config.Get().Window
	runtime.WindowSetPosition(ctx, win.X, win.Y)
	runtime.WindowShow(ctx)

	a.tray = tray.New(appName, version, func() { runtime.Quit(a.ctx) }, a.log)
	a.tray.Start()

	a.log.Info().
		Str("version", version).
		Bool("overlay", a.overlayActive).
		Str("config", a.config.Path()).
		Msg("Mute Overlay started")
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	if a.tray != nil {
		a.tray.Stop()
	}
	if a.config != nil {
		if err := a.config.Save(); err != nil {
			a.log.Warn().Err(err).Msg("Failed to save config")
		}
	}
}

// Frontend API methods

// GetMicStatus returns "true" when the default microphone is muted, "false"
// when it is not, and an "Error: " diagnostic when the state is unknown.
func (a *App) GetMicStatus() string {
	return a.mic.Status()
}

// GetPollInterval returns how often the front-end should call GetMicStatus,
// in milliseconds.
func (a *App) GetPollInterval() int {
	return a.config.Get().PollIntervalMs
}

// IsOverlayActive reports whether the click-through style was applied
func (a *App) IsOverlayActive() bool {
	return a.overlayActive
}

func main() {
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := configSvc.Get()

	logger := logging.New(cfg.LogLevel)
	app := NewApp(configSvc, logger)
	guard := instance.NewGuard(appName, notify.Desktop{}, cfg.Notifications, logger)

	err = wails.Run(&options.App{
		Title:  appName,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Frameless:        true,
		AlwaysOnTop:      true,
		DisableResize:    true,
		StartHidden:      true,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0}, // Transparent
		Windows: &wailswindows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			DisableWindowIcon:    true,
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: singleInstanceID,
			OnSecondInstanceLaunch: func(data options.SecondInstanceData) {
				guard.OnSecondLaunch(instance.Launch{
					Args:             data.Args,
					WorkingDirectory: data.WorkingDirectory,
				})
			},
		},
		Logger:     logging.NewWailsLogger(logger),
		LogLevel:   logging.WailsLevel(cfg.LogLevel),
		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		logger.Error().Err(err).Msg("Error starting application")
		os.Exit(1)
	}
}
