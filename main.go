package main

import (
	"embed"
	"log"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"aspectlock/internal/app"
	"aspectlock/internal/config"
	"aspectlock/internal/infrastructure/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load("aspectlock.toml")
	if err != nil {
		log.Fatal(err)
	}

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	appLogger := logging.NewLogger(os.Stderr, level)

	application := app.NewApp(cfg, nil, appLogger)

	err = wails.Run(&options.App{
		Title:         "AspectLock Demo",
		Width:         1280,
		Height:        720,
		MinWidth:      320,
		MinHeight:     180,
		DisableResize: false,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:        logging.NewWailsLoggerAdapter(appLogger),
		LogLevel:      logger.INFO,
		OnStartup:     application.Startup,
		OnDomReady:    application.DomReady,
		OnBeforeClose: application.BeforeClose,
		OnShutdown:    application.Shutdown,
		Bind: []interface{}{
			application,
		},
		// Windows platform specific options
		Windows: &windows.Options{
			DisableWindowIcon:   false,
			WebviewUserDataPath: "",
		},
	})

	if err != nil {
		log.Fatal(err)
	}
}
