package configs

import (
	"log/slog"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/9triver/lrucore/utils/errors"
)

const (
	kDefaultRequestTimeout = 5 * time.Second
	kDefaultMaxEntries     = 1024

	AppName = "lrucore"
)

var (
	RequestTimeout    = kDefaultRequestTimeout // cache actor requests
	DefaultMaxEntries = kDefaultMaxEntries
)

// Config describes a cache instance. Zero values fall back to the package
// defaults; MaxEntries < 0 explicitly disables the bound.
type Config struct {
	// MaxEntries bounds the cache through LRU eviction.
	MaxEntries int `mapstructure:"max_entries"`
	// StoreCapacity fixes the size of the entry store, 0 means growable.
	StoreCapacity  int           `mapstructure:"store_capacity"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFiles       []string      `mapstructure:"log_files"`
}

func Default() *Config {
	return &Config{
		MaxEntries:     DefaultMaxEntries,
		RequestTimeout: RequestTimeout,
		LogLevel:       "info",
	}
}

// Decode overlays values from m onto the defaults. Durations may be given as
// strings ("250ms") or integer nanoseconds.
func Decode(m map[string]any) (*Config, error) {
	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(m); err != nil {
		return nil, errors.WrapWith(err, "configs: decode")
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML file and decodes it with Decode.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWith(err, "configs: read %s", path)
	}

	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapWith(err, "configs: parse %s", path)
	}
	return Decode(m)
}

// fillDefaults replaces explicit zero values with the package defaults.
func (c *Config) fillDefaults() {
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = RequestTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	if c.StoreCapacity < 0 {
		return errors.Format("configs: store_capacity must not be negative, got %d", c.StoreCapacity)
	}
	if c.RequestTimeout <= 0 {
		return errors.Format("configs: request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.WrapWith(err, "configs: log_level")
	}
	return level, nil
}
