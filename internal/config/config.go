package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. DEHYDRATE_PORT or DEHYDRATE_PLAYBACK_INTERVAL.
const envPrefix = "DEHYDRATE"

// Config is the full application configuration.
type Config struct {
	Port     string         `mapstructure:"port"`
	GinMode  string         `mapstructure:"gin_mode"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Server   ServerConfig   `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	// Path of the SQLite file. The default keeps the event log in memory for the session only.
	Path string `mapstructure:"path"`
}

type DatasetConfig struct {
	// Source is an http(s) URL or a local file path.
	Source       string        `mapstructure:"source"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

type PlaybackConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type AuthConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

var (
	errNoDatasetSource = errors.New("dataset.source must be set")
	errBadInterval     = errors.New("playback.interval must be > 0")
	errNoSigningKey    = errors.New("auth.signing_key is required when auth is enabled")
	errNoOperator      = errors.New("auth.username and auth.password are required when auth is enabled")
)

// setDefaults registers fallbacks for every key so a missing config file still yields a usable setup.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("dataset.source", "data/simulated_tomato_drying_data.csv")
	v.SetDefault("dataset.fetch_timeout", 15*time.Second)
	v.SetDefault("playback.interval", time.Second)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.username", "operator")
	v.SetDefault("auth.password", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load reads configs/config.yml (from any of the given search paths) and environment overrides.
// A missing config file is not an error; defaults apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dataset.Source) == "" {
		return errNoDatasetSource
	}
	if c.Playback.Interval <= 0 {
		return errBadInterval
	}
	if c.Auth.Enabled {
		if c.Auth.SigningKey == "" {
			return errNoSigningKey
		}
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return errNoOperator
		}
	}
	return nil
}
