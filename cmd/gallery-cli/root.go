package main

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/config"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/logging"
	"github.com/ytget/art-gallery/internal/platform"
	"github.com/ytget/art-gallery/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configPath string
	storePath  string
	logLevel   string
	jsonOutput bool
}

// env is everything a command needs, built once per invocation
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  storage.Store
	lib    *gallery.Library
	client *artic.Client
	out    io.Writer
	json   bool
}

// newRootCmd builds the command tree. The caller closes e after Execute.
func newRootCmd(e *env) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "gallery-cli",
		Short: "Browse the Art Institute of Chicago collection",
		Long: `gallery-cli lists, searches and shows artworks from the Art Institute
of Chicago public API, and manages the local liked and favourite lists.

Mutations act as the detail screen: every list screen is told to reload
the affected artwork. The desktop app sees these changes when its library
storage is set to sqlite, which opens the same default store file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default: user config dir)")
	root.PersistentFlags().StringVar(&flags.storePath, "store", "", "SQLite store path (default: user config dir)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	root.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Print results as JSON")

	root.AddCommand(
		newExploreCmd(e),
		newGridCmd(e),
		newSearchCmd(e),
		newFiltersCmd(e),
		newShowCmd(e),
		newArtistCmd(e),
		newSaveCmd(e),
		newMarkCmd(e, "like", "Mark an artwork as liked", (*gallery.Library).SetLiked, true),
		newMarkCmd(e, "unlike", "Remove an artwork from liked", (*gallery.Library).SetLiked, false),
		newMarkCmd(e, "fav", "Add an artwork to favourites", (*gallery.Library).SetFavourite, true),
		newMarkCmd(e, "unfav", "Remove an artwork from favourites", (*gallery.Library).SetFavourite, false),
		newListCmd(e, "liked", "List liked artworks", (*gallery.Library).Liked),
		newListCmd(e, "favourites", "List favourite artworks", (*gallery.Library).Favourites),
		newPendingCmd(e),
		newClearCmd(e),
	)
	return root
}

// init loads the config, then opens the logger, store and client
func (e *env) init(cmd *cobra.Command, flags *globalFlags) error {
	path := flags.configPath
	if path == "" {
		p, err := platform.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.storePath != "" {
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.Path = flags.storePath
	}
	if err := cfg.DefaultStorePath(platform.DefaultStorePath); err != nil {
		return err
	}
	if cfg.Storage.Driver == config.DriverPreferences {
		return fmt.Errorf("storage driver %q needs the desktop app; use sqlite or memory", cfg.Storage.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	e.cfg = cfg
	e.out = cmd.OutOrStdout()
	e.json = flags.jsonOutput
	e.log = logging.New(cfg.Logging(), cmd.ErrOrStderr())

	store, err := storage.Open(storage.Config{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path}, nil, e.log)
	switch {
	case errors.Is(err, storage.ErrDisabled):
		e.log.Warn().Msg("storage disabled, library changes are not kept")
		store = storage.NewMemory()
	case err != nil:
		return err
	}
	e.store = store
	e.lib = gallery.NewLibrary(store, e.log)

	client, err := artic.NewClient(cfg, e.log)
	if err != nil {
		return err
	}
	e.client = client

	e.log.Debug().Str("config", path).Str("store", cfg.Storage.Path).Msg("cli ready")
	return nil
}

func (e *env) close() {
	if e.store == nil {
		return
	}
	if err := e.store.Close(); err != nil {
		e.log.Warn().Err(err).Msg("failed to close store")
	}
	e.store = nil
}
