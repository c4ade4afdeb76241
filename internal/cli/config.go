package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file.
//
//	[view]
//	zoom = 1.5
//	width = 1920
//	height = 1080
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	key_prefix = "isogrid:prod:"
//
//	[server]
//	addr = ":8080"
type Config struct {
	View   ViewConfig   `toml:"view"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// ViewConfig supplies default view values. Zero fields fall through to the
// pipeline defaults.
type ViewConfig struct {
	Zoom   float64 `toml:"zoom"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"` // file (default), memory, redis, none
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
	MaxMB    int64  `toml:"max_mb"` // memory backend size
	// KeyPrefix namespaces keys so several deployments can share one
	// Redis database.
	KeyPrefix string `toml:"key_prefix"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: backendFile},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// loadConfig reads the config file at path. An empty path selects the XDG
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return cfg, nil
		}
		path = p
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
