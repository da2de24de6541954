package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wodview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/wodview/config.toml)")
	source := flag.String("source", "", "schedule base URL or directory (optional)")
	pollMinutes := flag.Int("poll", 0, "new week check interval in minutes (optional, defaults to 5)")
	printOnce := flag.Bool("print", false, "print the current week and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		Source:      *source,
		PollMinutes: *pollMinutes,
		Print:       *printOnce,
	}

	cfg, err := app.Settings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wodview: %v\n", err)
		return 1
	}

	// The TUI owns the terminal, so logs go to a file; print mode keeps stderr.
	if !opts.Print {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "wodview: create log dir: %v\n", err)
			return 1
		}
		f, err := tea.LogToFile(cfg.LogFile, "wodview")
		if err != nil {
			fmt.Fprintf(os.Stderr, "wodview: open log: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
	}

	log.Printf("starting with source %s", cfg.Source)
	if err := app.Run(ctx, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "wodview: %v\n", err)
		return 1
	}
	return 0
}
