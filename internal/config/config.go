package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
)

// EnvConfigPath names the environment variable overriding the config path.
const EnvConfigPath = "FORAGE_WAIT_CONFIG"

// Config holds forage-wait settings.
type Config struct {
	Runtime    string    `toml:"runtime"`
	Timeout    int       `toml:"timeout"`
	Quiet      bool      `toml:"quiet"`
	Monochrome bool      `toml:"monochrome"`
	Current    bool      `toml:"current"`
	StopGrace  Duration  `toml:"stop_grace"`
	Log        LogConfig `toml:"log"`
}

// LogConfig controls debug logging.
type LogConfig struct {
	Verbose bool `toml:"verbose"`
	JSON    bool `toml:"json"`
}

// Duration wraps time.Duration for TOML string parsing (e.g. "5s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Runtime:   "auto",
		Timeout:   10,
		StopGrace: Duration{5 * time.Second},
	}
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "forage-wait", "config.toml")
}

// Load reads the config at path, or DefaultPath when path is empty.
// Unset keys keep their defaults; a missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.ConfigError("reading config "+path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.ConfigError("parsing config "+path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.KindConfig, "unknown key "+undecoded[0].String()+" in "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be checked while decoding.
func (c *Config) Validate() error {
	switch c.Runtime {
	case "", "auto", "docker", "podman":
	default:
		return errors.New(errors.KindConfig, "invalid runtime "+c.Runtime+": must be auto, docker or podman")
	}
	if c.Timeout < 0 {
		return errors.New(errors.KindConfig, "timeout must not be negative")
	}
	if c.StopGrace.Duration < 0 {
		return errors.New(errors.KindConfig, "stop_grace must not be negative")
	}
	return nil
}
