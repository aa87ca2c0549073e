package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// ConfigurationManager defines the interface for loading and validating
// the gallery configuration from the .galleryrc file.
type ConfigurationManager interface {
	LoadConfig() (*models.GalleryConfig, error)
	ValidateConfig(cfg *models.GalleryConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .galleryrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultConfig returns a GalleryConfig populated with sensible defaults.
func defaultConfig() *models.GalleryConfig {
	return &models.GalleryConfig{
		CatalogPath: "agents.json",
		ServerBind:  "127.0.0.1",
		ServerPort:  8350,
		Watch:       false,
		LogLevel:    "info",
		Theme:       "dark",
	}
}

// LoadConfig reads the .galleryrc file from the base path using Viper.
// If the file does not exist, defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.GalleryConfig, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(".galleryrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("catalog.path", cfg.CatalogPath)
	v.SetDefault("server.bind", cfg.ServerBind)
	v.SetDefault("server.port", cfg.ServerPort)
	v.SetDefault("server.cors_origins", cfg.CORSOrigins)
	v.SetDefault("server.watch", cfg.Watch)
	v.SetDefault("logging.level", cfg.LogLevel)
	v.SetDefault("ui.theme", cfg.Theme)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .galleryrc: %w", err)
	}

	// Map nested YAML keys to flat GalleryConfig fields.
	cfg.CatalogPath = v.GetString("catalog.path")
	cfg.ServerBind = v.GetString("server.bind")
	cfg.ServerPort = v.GetInt("server.port")
	cfg.CORSOrigins = v.GetStringSlice("server.cors_origins")
	cfg.Watch = v.GetBool("server.watch")
	cfg.LogLevel = v.GetString("logging.level")
	cfg.Theme = v.GetString("ui.theme")

	return cfg, nil
}

// validLogLevels is the set of accepted logging.level values.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "error": true, "silent": true,
}

// ValidateConfig checks the configuration for invalid values and returns a
// clear error message identifying every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GalleryConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.CatalogPath == "" {
		errs = append(errs, "catalog.path must not be empty")
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is invalid, must be between 1 and 65535", cfg.ServerPort))
	}

	if cfg.LogLevel != "" && !validLogLevels[cfg.LogLevel] {
		errs = append(errs, fmt.Sprintf(
			"logging.level %q is invalid, must be one of: trace, debug, info, warn, error, silent",
			cfg.LogLevel,
		))
	}

	for _, origin := range cfg.CORSOrigins {
		if origin == "" {
			errs = append(errs, "server.cors_origins must not contain empty entries")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("gallery config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
