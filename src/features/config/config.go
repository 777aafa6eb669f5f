package config

// Config holds the application configuration.
type Config struct {
	SoundCloud SoundCloud `yaml:"soundcloud" validate:"required"`
	Host       Host       `yaml:"host"`
	Server     Server     `yaml:"server"`
	Database   Database   `yaml:"database" validate:"required"`
	Logger     Logger     `yaml:"logger"`
	Telegram   Telegram   `yaml:"telegram"`
	Metrics    Metrics    `yaml:"metrics"`
}

// SoundCloud holds the external API credentials and call policy.
type SoundCloud struct {
	ClientID     string `yaml:"clientId" validate:"required"`
	ClientSecret string `yaml:"clientSecret"`
	RedirectURI  string `yaml:"redirectUri" validate:"required,url"`
	// SearchLimit bounds search results per query.
	SearchLimit int `yaml:"searchLimit"`
	// PollIntervalSeconds is the playlist re-fetch interval while
	// authorized.
	PollIntervalSeconds int `yaml:"pollIntervalSeconds"`
}

// Host holds the callback surface of the home-automation host.
type Host struct {
	// CallbackURL, when set, receives a POST whenever the host should
	// refresh its playlist state. Empty means log-only.
	CallbackURL string `yaml:"callbackUrl"`
}

// Server holds the configuration for the Fiber server.
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Database holds the configuration for the settings database.
type Database struct {
	Path string `yaml:"path" validate:"required"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Telegram holds the optional status bot configuration.
type Telegram struct {
	Enabled      bool     `yaml:"enabled"`
	Token        string   `yaml:"token"`
	AllowedUsers []string `yaml:"allowedUsers"`
}

// Metrics toggles the Prometheus endpoint.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}
