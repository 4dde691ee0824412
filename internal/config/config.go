package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override, e.g. TRIVIA_REDIS_ADDR.
const EnvPrefix = "TRIVIA"

type Config struct {
	Server struct {
		Port      string `yaml:"port"`
		PublicURL string `yaml:"public_url"`
		StaticDir string `yaml:"static_dir"`
		Dev       bool   `yaml:"dev"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL  string `yaml:"url"`
		Seed bool   `yaml:"seed"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	Game struct {
		AdvanceDelay string `yaml:"advance_delay"`
		PlayerName   string `yaml:"player_name"`
	} `yaml:"game"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Metrics.Enabled = true
	return cfg
}

// Load reads YAML config from path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. Keys mirror the YAML
// layout: server.public_url is read from TRIVIA_SERVER_PUBLIC_URL.
func ApplyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	strs := map[string]*string{
		"server.port":        &cfg.Server.Port,
		"server.public_url":  &cfg.Server.PublicURL,
		"server.static_dir":  &cfg.Server.StaticDir,
		"redis.addr":         &cfg.Redis.Addr,
		"redis.password":     &cfg.Redis.Password,
		"redis.ttl":          &cfg.Redis.TTL,
		"postgres.url":       &cfg.Postgres.URL,
		"catalog.ttl":        &cfg.Catalog.TTL,
		"game.advance_delay": &cfg.Game.AdvanceDelay,
		"game.player_name":   &cfg.Game.PlayerName,
		"log.level":          &cfg.Log.Level,
		"log.format":         &cfg.Log.Format,
	}
	for key, dst := range strs {
		_ = v.BindEnv(key)
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	bools := map[string]*bool{
		"server.dev":      &cfg.Server.Dev,
		"postgres.seed":   &cfg.Postgres.Seed,
		"metrics.enabled": &cfg.Metrics.Enabled,
	}
	for key, dst := range bools {
		_ = v.BindEnv(key)
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}

	_ = v.BindEnv("redis.db")
	if v.IsSet("redis.db") {
		cfg.Redis.DB = v.GetInt("redis.db")
	}
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
