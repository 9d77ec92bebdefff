// Package config loads and saves the code-explorer settings and the named
// explorer configurations (a project name and its source locations).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrConfigurationNotFound  = errors.New("configuration not found")
	ErrDuplicateConfiguration = errors.New("configuration already exists")
	ErrBlankName              = errors.New("configuration name is blank")
)

// Config holds the code-explorer configuration.
type Config struct {
	Explorer       ExplorerConfig           `toml:"explorer"`
	Filter         FilterConfig             `toml:"filter"`
	Configurations []*ExplorerConfiguration `toml:"configurations"`
}

// ExplorerConfig controls the dependency projection.
type ExplorerConfig struct {
	ShowOutsideDependencies bool `toml:"show_outside_dependencies"`
	FoldDepth               int  `toml:"fold_depth"`
	Workers                 int  `toml:"workers"` // 0 means one per CPU
}

// FilterConfig is the default map filter. An empty pattern filters nothing.
type FilterConfig struct {
	Pattern         string `toml:"pattern"`
	ShowAncestors   bool   `toml:"show_ancestors"`
	ShowDescendants bool   `toml:"show_descendants"`
}

// ExplorerConfiguration names a set of source locations analyzed together.
type ExplorerConfiguration struct {
	ProjectName string   `toml:"project_name"`
	Locations   []string `toml:"locations"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Explorer: ExplorerConfig{ShowOutsideDependencies: true, FoldDepth: 2},
		Filter:   FilterConfig{ShowAncestors: true},
	}
}

// ConfigDir returns the code-explorer config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "code-explorer")
}

func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg *Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return toml.NewEncoder(f).Encode(cfg)
}

func (c *Config) Configuration(name string) (*ExplorerConfiguration, error) {
	for _, ec := range c.Configurations {
		if ec.ProjectName == name {
			return ec, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrConfigurationNotFound)
}

func (c *Config) AddConfiguration(name string) (*ExplorerConfiguration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	if _, err := c.Configuration(name); err == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateConfiguration)
	}
	ec := &ExplorerConfiguration{ProjectName: name}
	c.Configurations = append(c.Configurations, ec)
	return ec, nil
}

func (c *Config) RemoveConfiguration(name string) error {
	for i, ec := range c.Configurations {
		if ec.ProjectName == name {
			c.Configurations = append(c.Configurations[:i], c.Configurations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrConfigurationNotFound)
}

func (c *Config) RenameConfiguration(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrBlankName
	}
	ec, err := c.Configuration(oldName)
	if err != nil {
		return err
	}
	if newName == oldName {
		return nil
	}
	if _, err := c.Configuration(newName); err == nil {
		return fmt.Errorf("%q: %w", newName, ErrDuplicateConfiguration)
	}
	ec.ProjectName = newName
	return nil
}

// AddLocation adds path to the named configuration. The path is stored as an
// absolute path and added only once.
func (c *Config) AddLocation(name, path string) error {
	ec, err := c.Configuration(name)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for _, loc := range ec.Locations {
		if loc == abs {
			return nil
		}
	}
	ec.Locations = append(ec.Locations, abs)
	return nil
}

func (c *Config) RemoveLocation(name, path string) error {
	ec, err := c.Configuration(name)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for i, loc := range ec.Locations {
		if loc == abs || loc == path {
			ec.Locations = append(ec.Locations[:i], ec.Locations[i+1:]...)
			return nil
		}
	}
	return nil
}
