package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/five82/wodview/internal/config"
	"github.com/five82/wodview/internal/configstore"
	"github.com/five82/wodview/internal/notify"
	"github.com/five82/wodview/internal/prefs"
	"github.com/five82/wodview/internal/render"
	"github.com/five82/wodview/internal/schedule"
	"github.com/five82/wodview/internal/state"
	"github.com/five82/wodview/internal/ui"
)

// Options configure the wodview application. Zero values defer to the
// config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/wodview/prefs.toml
	Source      string // URL or directory
	PollMinutes int
	Print       bool      // paint the current week once and exit
	Out         io.Writer // destination for Print, defaults to stdout
}

// Settings loads the local settings and applies command line overrides.
func Settings(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.Source != "" {
		cfg.Source = opts.Source
		if !config.IsURL(opts.Source) {
			expanded, err := config.ExpandPath(opts.Source)
			if err != nil {
				return config.Config{}, fmt.Errorf("source path: %w", err)
			}
			cfg.Source = expanded
		}
	}
	if opts.PollMinutes > 0 {
		cfg.Poll = time.Duration(opts.PollMinutes) * time.Minute
	}
	return cfg, nil
}

// Run boots wodview until the user quits or the context is cancelled.
func Run(ctx context.Context, cfg config.Config, opts Options) error {
	source, err := NewSource(cfg)
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}
	lister, err := NewLister(cfg, source)
	if err != nil {
		return fmt.Errorf("init week list: %w", err)
	}

	store := state.NewStore(state.DefaultConfig())
	configs := configstore.New(source, lister, store)

	bootCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	configs.Load(bootCtx)
	configs.ListAvailableWeeks(bootCtx)
	cancel()

	userPrefs := prefs.Load(opts.PrefsPath)

	if opts.Print {
		return printWeek(ctx, cfg, source, store, userPrefs.Theme, opts.Out)
	}

	notices := notify.NewCenter(notify.DefaultTTL)
	StartMonitor(ctx, Monitor{
		Store:    store,
		Source:   source,
		Configs:  configs,
		Notices:  notices,
		Interval: cfg.Poll,
		Timeout:  cfg.RequestTimeout,
	})

	return ui.Run(ui.Options{
		Context:     ctx,
		Source:      source,
		Store:       store,
		Configs:     configs,
		Notices:     notices,
		LoadTimeout: cfg.RequestTimeout,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	})
}

// NewSource returns the HTTP client for URL sources and a filesystem source
// otherwise.
func NewSource(cfg config.Config) (schedule.Source, error) {
	if config.IsURL(cfg.Source) {
		client, err := schedule.NewClient(cfg.Source, cfg.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	dir, err := schedule.NewDirSource(cfg.Source)
	if err != nil {
		return nil, err
	}
	return dir, nil
}

// NewLister picks the week list strategy named by cfg.Weeks.
func NewLister(cfg config.Config, source schedule.Source) (schedule.Lister, error) {
	switch cfg.Weeks {
	case config.WeeksDir:
		fsSource, ok := source.(*schedule.FSSource)
		if !ok {
			return nil, fmt.Errorf("weeks = %q requires a directory source", config.WeeksDir)
		}
		return schedule.DirLister{FS: fsSource.Filesystem()}, nil
	case config.WeeksConfig:
		return schedule.ConfigLister{Source: source}, nil
	default:
		if cfg.SeedFile == "" {
			return schedule.StaticLister{Weeks: schedule.DefaultSeed()}, nil
		}
		return schedule.LoadSeedFile(cfg.SeedFile)
	}
}

func printWeek(ctx context.Context, cfg config.Config, source schedule.Source, store *state.Store, theme string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	current := store.Config()
	key := current.Key()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	token := store.BeginLoad(key)
	doc, err := source.LoadWeek(loadCtx, key)
	store.CompleteLoad(token, doc, err)

	view := render.Schedule(doc)
	if err != nil {
		view = render.ErrorPanelFor(key, err)
	}
	return ui.Print(out, view, ui.PrintOptions{ThemeName: theme, DarkMode: current.DarkMode})
}
