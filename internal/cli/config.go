package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/autolayout/pkg/cache"
	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/layout"
)

// Config is the contents of config.toml. Command-line flags override it.
type Config struct {
	Container ContainerConfig `toml:"container"`
	Direction string          `toml:"direction"` // "ltr" or "rtl"
	Priority  float64         `toml:"priority"`  // 0 keeps scene constraints required
	Strict    bool            `toml:"strict"`    // fail when a required constraint is dropped
	Verbose   bool            `toml:"verbose"`
}

// ContainerConfig is the size of the root element demos are built in.
type ContainerConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Container: ContainerConfig{Width: 320, Height: 480},
		Direction: "ltr",
	}
}

// configDir returns the config directory using XDG standard (~/.config/autolayout/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// cacheDir returns the render cache directory, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache opens the file cache, falling back to a null cache when disabled
// or when the directory cannot be created.
func newCache(disabled bool, logger *log.Logger) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return fc
		}
	}
	logger.Warn("cache unavailable, rendering without it", "error", err)
	return cache.NewNullCache()
}

// defaultConfigPath returns the path of the config file in configDir.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads the config at path. An empty path means the default
// location, where a missing file yields DefaultConfig; an explicit path that
// does not exist is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, errs.Wrap(errs.ErrCodeNotFound, err, "config file %s", path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

// parseConfig decodes TOML on top of DefaultConfig and validates the result.
func parseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := errs.ValidateExtent("container.width", c.Container.Width); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "container")
	}
	if err := errs.ValidateExtent("container.height", c.Container.Height); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "container")
	}
	if _, err := layout.ParseDirection(c.Direction); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "direction")
	}
	if c.Priority != 0 {
		if err := errs.ValidatePriority(c.Priority); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "priority")
		}
	}
	return nil
}

// layoutDirection returns the parsed direction. Validate has already
// rejected bad values.
func (c Config) layoutDirection() layout.Direction {
	d, err := layout.ParseDirection(c.Direction)
	if err != nil {
		return layout.DirectionLeftToRight
	}
	return d
}

// writeConfig encodes c as TOML.
func writeConfig(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
