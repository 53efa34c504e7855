// Package config loads service settings from flags, ARCADE_* environment
// variables, an optional .env file and an optional arcadetracker.yaml.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "ARCADE"

// DefaultAddr is used when neither server.addr nor PORT is set.
const DefaultAddr = ":8000"

// Config is the full set of runtime settings.
type Config struct {
	Server   ServerConfig
	Fetch    FetchConfig
	Log      LogConfig
	Otel     OtelConfig
	Render   RenderConfig
	Platform Platform
}

type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

type FetchConfig struct {
	Timeout      time.Duration
	MaxRedirects int
	MaxBodyBytes int64
	UserAgent    string
}

type LogConfig struct {
	Level       string
	Development bool
}

// OtelConfig enables trace export when Endpoint is set.
type OtelConfig struct {
	Endpoint    string
	ServiceName string
}

type RenderConfig struct {
	Timeout time.Duration
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("platform", DefaultPlatform)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("fetch.timeout", 20*time.Second)
	v.SetDefault("fetch.max_redirects", 8)
	v.SetDefault("fetch.max_body_bytes", int64(8<<20))
	v.SetDefault("fetch.user_agent", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.service_name", "arcadetracker")
	v.SetDefault("render.timeout", 30*time.Second)
}

// NewViper returns a viper instance with defaults, environment binding and
// the optional config file search path wired up. A .env file in the working
// directory is loaded first when present.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("arcadetracker")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// ReadFile reads the config file if one exists. A missing file is not an
// error.
func ReadFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	addr := v.GetString("server.addr")
	if addr == "" {
		addr = DefaultAddr
		// PORT is honored for platforms that assign one.
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
	}

	key := v.GetString("platform")
	platform, ok := Platforms[key]
	if !ok {
		return Config{}, errors.Errorf("platform %q is not known", key)
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:        addr,
			CORSOrigins: v.GetStringSlice("server.cors_origins"),
		},
		Fetch: FetchConfig{
			Timeout:      v.GetDuration("fetch.timeout"),
			MaxRedirects: v.GetInt("fetch.max_redirects"),
			MaxBodyBytes: v.GetInt64("fetch.max_body_bytes"),
			UserAgent:    v.GetString("fetch.user_agent"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
		Otel: OtelConfig{
			Endpoint:    v.GetString("otel.endpoint"),
			ServiceName: v.GetString("otel.service_name"),
		},
		Render: RenderConfig{
			Timeout: v.GetDuration("render.timeout"),
		},
		Platform: platform,
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad values.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.Errorf("server.addr must be set")
	}
	if c.Fetch.Timeout <= 0 {
		return errors.Errorf("fetch.timeout must be > 0")
	}
	if c.Fetch.MaxRedirects <= 0 {
		return errors.Errorf("fetch.max_redirects must be > 0")
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return errors.Errorf("fetch.max_body_bytes must be > 0")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Render.Timeout <= 0 {
		return errors.Errorf("render.timeout must be > 0")
	}
	return nil
}
