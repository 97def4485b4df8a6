package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cakes/internal/cakes"
	"github.com/five82/cakes/internal/config"
	"github.com/five82/cakes/internal/connectivity"
	"github.com/five82/cakes/internal/state"
	"github.com/five82/cakes/internal/thumbnail"
	"github.com/five82/cakes/internal/ui"
)

// Options configure the cakes application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cakes/prefs.toml
	Endpoint   string // overrides the configured endpoint
	LogFile    string // overrides the configured log file
}

// Run boots the catalogue screen until the context is cancelled or the
// user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if logFile := strings.TrimSpace(opts.LogFile); logFile != "" {
		cfg.LogFile = logFile
	}

	logOut, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()

	client, err := cakes.NewClient(cfg.Endpoint, cakes.WithTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("init cakes client: %w", err)
	}
	checker, err := connectivity.ForURL(client.URL())
	if err != nil {
		return fmt.Errorf("init connectivity check: %w", err)
	}
	thumbs := thumbnail.NewLoader(thumbnail.WithSize(cfg.ThumbnailSize))

	userPrefs := config.LoadPrefs(opts.PrefsPath)

	// The screen owns this context; quitting the UI cancels an
	// in-flight load so its result is dropped.
	screenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	StartLoader(screenCtx, store, checker, client)

	log.Printf("screen started endpoint=%s", client.URL())
	return ui.Run(ui.Options{
		Context:    screenCtx,
		Store:      store,
		Thumbnails: thumbs,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}

func openLog(path string) (*os.File, error) {
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(resolved, "cakes")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
