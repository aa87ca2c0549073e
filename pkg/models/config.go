package models

// GalleryConfig holds system-wide settings read from .galleryrc via Viper.
type GalleryConfig struct {
	// CatalogPath points at either an agents.json document or a directory
	// of markdown agent files with YAML frontmatter.
	CatalogPath string `yaml:"catalog_path" mapstructure:"catalog_path"`

	// Server settings for `agl serve`.
	ServerBind  string   `yaml:"server_bind" mapstructure:"server_bind"`
	ServerPort  int      `yaml:"server_port" mapstructure:"server_port"`
	CORSOrigins []string `yaml:"cors_origins,omitempty" mapstructure:"cors_origins"`
	Watch       bool     `yaml:"watch" mapstructure:"watch"`

	// LogLevel controls the server's structured log verbosity.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// Theme selects the glamour style used when rendering agent bodies.
	Theme string `yaml:"theme" mapstructure:"theme"`
}
