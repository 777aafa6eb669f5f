package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new Manager.
// If the file doesn't exist, creates a default configuration.
func Load(path string) (*Manager, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		defaultCfg := createDefaultConfig()

		if err := saveDefaultConfig(path, defaultCfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		applyEnvOverrides(defaultCfg)
		return NewManager(defaultCfg), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return NewManager(&cfg), nil
}

// applyEnvOverrides lets deployment environments inject secrets without
// writing them to the config file.
func applyEnvOverrides(cfg *Config) {
	if id := os.Getenv("SOUNDCLOUD_CLIENT_ID"); id != "" {
		cfg.SoundCloud.ClientID = id
	}
	if secret := os.Getenv("SOUNDCLOUD_CLIENT_SECRET"); secret != "" {
		cfg.SoundCloud.ClientSecret = secret
	}
	if uri := os.Getenv("SOUNDCLOUD_REDIRECT_URI"); uri != "" {
		cfg.SoundCloud.RedirectURI = uri
	}
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
}

func applyDefaults(cfg *Config) {
	if cfg.SoundCloud.SearchLimit <= 0 {
		cfg.SoundCloud.SearchLimit = 50
	}
	if cfg.SoundCloud.PollIntervalSeconds <= 0 {
		cfg.SoundCloud.PollIntervalSeconds = 180
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3636
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./soundbridge.db"
	}
}

// createDefaultConfig creates a new Config with sensible default values
func createDefaultConfig() *Config {
	return &Config{
		SoundCloud: SoundCloud{
			ClientID:            "", // From https://soundcloud.com/you/apps
			ClientSecret:        "",
			RedirectURI:         "http://localhost:3636/oauth2/callback",
			SearchLimit:         50,
			PollIntervalSeconds: 180,
		},
		Host: Host{
			CallbackURL: "",
		},
		Server: Server{
			PrintRoutes: false,
			Port:        3636,
		},
		Database: Database{
			Path: "./soundbridge.db",
		},
		Logger: Logger{
			Enabled: true,
			Level:   "info",
			Format:  "text",
		},
		Telegram: Telegram{
			Enabled:      false,
			Token:        "", // Can be obtained with https://t.me/BotFather
			AllowedUsers: []string{"user1"},
		},
		Metrics: Metrics{
			Enabled: true,
		},
	}
}

// saveDefaultConfig saves the default configuration to the specified file path
func saveDefaultConfig(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	slog.Info("Default configuration saved", "path", path)
	return nil
}
