package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. CONCOURS_DATABASE_URL.
	EnvPrefix = "CONCOURS"
)

// Config is the complete server configuration.
type Config struct {
	WSPort           int           `mapstructure:"ws_port"`
	APIPort          int           `mapstructure:"api_port"`
	AllowedOrigins   []string      `mapstructure:"allowed_origins"`
	LogLevel         string        `mapstructure:"log_level"`
	DatabaseURL      string        `mapstructure:"database_url"`
	MigrationsDir    string        `mapstructure:"migrations_dir"`
	QuestionsFile    string        `mapstructure:"questions_file"`
	MemorizeSeconds  int           `mapstructure:"memorize_seconds"`
	FeedbackDelay    time.Duration `mapstructure:"feedback_delay"`
	GameLoopInterval time.Duration `mapstructure:"game_loop_interval"`
	SaveInterval     time.Duration `mapstructure:"save_interval"`
	Grid             GridConfig    `mapstructure:"grid"`
	Roster           Roster        `mapstructure:"roster"`
}

type GridConfig struct {
	TilesPerPlayer int `mapstructure:"tiles_per_player"`
	NeutralTiles   int `mapstructure:"neutral_tiles"`
	// Width of the grid in tiles; 0 derives a square from the tile count.
	Width int `mapstructure:"width"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %v", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %v", err)
	}
	if len(cfg.Roster) == 0 {
		cfg.Roster = DefaultRoster()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ws_port", 8080)
	v.SetDefault("api_port", 9090)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("log_level", "info")
	v.SetDefault("database_url", "sqlite://concours.db")
	v.SetDefault("migrations_dir", "./migrations")
	v.SetDefault("questions_file", "")
	v.SetDefault("memorize_seconds", 20)
	v.SetDefault("feedback_delay", 3*time.Second)
	v.SetDefault("game_loop_interval", 50*time.Millisecond)
	v.SetDefault("save_interval", 10*time.Second)
	v.SetDefault("grid.tiles_per_player", 30)
	v.SetDefault("grid.neutral_tiles", 10)
	v.SetDefault("grid.width", 10)
}

func (c *Config) Validate() error {
	if c.MemorizeSeconds < 0 {
		return errors.New("memorize_seconds must not be negative")
	}
	if c.FeedbackDelay <= 0 {
		return errors.New("feedback_delay must be positive")
	}
	if c.GameLoopInterval <= 0 {
		return errors.New("game_loop_interval must be positive")
	}
	if c.SaveInterval <= 0 {
		return errors.New("save_interval must be positive")
	}
	if c.Grid.TilesPerPlayer < 0 || c.Grid.NeutralTiles < 0 || c.Grid.Width < 0 {
		return errors.New("grid sizes must not be negative")
	}
	if err := c.Roster.Validate(); err != nil {
		return fmt.Errorf("roster: %v", err)
	}
	return nil
}
