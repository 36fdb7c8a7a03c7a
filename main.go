package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/config"
	"github.com/ytget/art-gallery/internal/download"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/logging"
	"github.com/ytget/art-gallery/internal/platform"
	"github.com/ytget/art-gallery/internal/storage"
	"github.com/ytget/art-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.artgallery"
	AppName = "Art Gallery"

	WindowWidth  = 480
	WindowHeight = 860
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	cfg := settings.Config()

	log := logging.New(cfg.Logging(), os.Stderr)
	log.Info().Str("version", version).Msg(AppName + " starting")

	if err := cfg.DefaultStorePath(platform.DefaultStorePath); err != nil {
		log.Warn().Err(err).Msg("no default store path")
	}
	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid settings, using defaults")
		cfg = config.Default()
		cfg.Storage.Driver = config.DriverPreferences
	}

	store, err := storage.Open(storage.Config{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path}, myApp.Preferences(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	client, err := artic.NewClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create API client")
	}

	var exporter download.Exporter
	if dir, err := platform.DefaultExportDir(); err != nil {
		log.Warn().Err(err).Msg("no export directory, saving images disabled")
	} else {
		exporter = download.NewService(dir, download.DefaultMaxParallel, client, log)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, ui.Services{
		Catalog:  client,
		Library:  gallery.NewLibrary(store, log),
		Settings: settings,
		Exporter: exporter,
		Log:      log,
	})

	// Show and run
	myWindow.ShowAndRun()
}
