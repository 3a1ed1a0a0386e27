package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"rubick-translator/internal/config"
	"rubick-translator/internal/logging"
	"rubick-translator/internal/services"

	"github.com/spf13/viper"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	v := viper.New()
	if err := config.Init(v, os.Getenv("RTRANS_CONFIG")); err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}
	cfg := config.Load(v)

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logger error:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	svc, err := services.Open(cfg, false, log)
	if err != nil {
		log.Errorw("open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	app := NewApp(svc.API, log.Named("app"))

	err = wails.Run(&options.App{
		Title:  "rubick-translator",
		Width:  820,
		Height: 620,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown: func(ctx context.Context) {
			if err := svc.Close(); err != nil {
				log.Warnw("close store", "error", err)
			}
		},
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Errorw("wails run", "error", err)
	}
}
