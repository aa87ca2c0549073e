// Package internal provides the App struct that wires all components of the
// agent gallery together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/valter-silva-au/agent-gallery/internal/cli"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
)

// App holds all service dependencies for the agent gallery.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	Catalog storage.CatalogStoreManager

	// Core services
	Selector *core.CatalogSelector

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components of the agent gallery.
// basePath is the directory containing the catalog and the .galleryrc file.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, err
	}

	// --- Storage layer ---
	catalogPath := cfg.CatalogPath
	if !filepath.IsAbs(catalogPath) {
		catalogPath = filepath.Join(basePath, catalogPath)
	}
	app.Catalog = storage.NewCatalogStoreManager(catalogPath)
	// Non-fatal: commands that need the catalog report the load error
	// themselves, while `agl init` must work in an empty directory.
	_ = app.Catalog.Load()

	// --- Core services ---
	app.Selector = core.NewCatalogSelector()

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".agl_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if log can't be created.
		app.EventLog = nil
	}
	if app.EventLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Config = cfg
	cli.Catalog = app.Catalog
	cli.Selector = app.Selector
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the gallery data directory.
// It checks for the AGL_HOME env var, then walks up from the current
// directory looking for a .galleryrc file, and finally falls back to cwd.
func ResolveBasePath() string {
	if home := os.Getenv("AGL_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".galleryrc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
