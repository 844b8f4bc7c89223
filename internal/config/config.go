package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/mutasim/xfer/internal/security"
)

const (
	// EnvConfigPath overrides the config file location when set
	EnvConfigPath = "XFER_CONFIG"

	configDirName  = "xfer"
	configFileName = "config.toml"

	dirPermissions  = 0700
	filePermissions = 0600
)

// ServerConfig holds the connection details for one aliased server
type ServerConfig struct {
	Host              string `toml:"host"`
	User              string `toml:"user"`
	KeyPath           string `toml:"key_path,omitempty"`
	Port              int    `toml:"port,omitempty"`
	DefaultRemotePath string `toml:"default_remote_path,omitempty"`
}

// Config is the full on-disk configuration: alias -> server mapping plus an
// optional default alias
type Config struct {
	DefaultServer string                  `toml:"default_server,omitempty"`
	Servers       map[string]ServerConfig `toml:"servers"`
}

// Path returns the config file location, honoring the XFER_CONFIG override
func Path() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Load reads the config file. A missing file is not an error: onboarding
// handles the empty case.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{Servers: map[string]ServerConfig{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if cfg.Servers == nil {
		cfg.Servers = map[string]ServerConfig{}
	}
	return &cfg, nil
}

// Save writes the full config back to disk, creating the directory if needed
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("config dir create failed (%s): %w", filepath.Dir(path), err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config encode failed: %w", err)
	}

	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("config write failed (%s): %w", path, err)
	}
	return nil
}

// Server looks up a server by alias
func (c *Config) Server(alias string) (ServerConfig, bool) {
	srv, ok := c.Servers[alias]
	return srv, ok
}

// AddServer validates and inserts (or replaces) a server entry
func (c *Config) AddServer(alias string, srv ServerConfig) error {
	if err := ValidateServer(alias, srv); err != nil {
		return err
	}
	if c.Servers == nil {
		c.Servers = map[string]ServerConfig{}
	}
	c.Servers[alias] = srv
	return nil
}

// RemoveServer deletes a server entry; removing the default clears it
func (c *Config) RemoveServer(alias string) error {
	if _, ok := c.Servers[alias]; !ok {
		return fmt.Errorf("unknown server alias %q", alias)
	}
	delete(c.Servers, alias)
	if c.DefaultServer == alias {
		c.DefaultServer = ""
	}
	return nil
}

// SetDefault marks an existing alias as the default server
func (c *Config) SetDefault(alias string) error {
	if _, ok := c.Servers[alias]; !ok {
		return fmt.Errorf("unknown server alias %q", alias)
	}
	c.DefaultServer = alias
	return nil
}

// Aliases returns all configured aliases in sorted order
func (c *Config) Aliases() []string {
	aliases := make([]string, 0, len(c.Servers))
	for alias := range c.Servers {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// ValidateServer checks an alias and server entry before it is persisted
func ValidateServer(alias string, srv ServerConfig) error {
	if err := security.ValidateAlias(alias); err != nil {
		return fmt.Errorf("invalid alias: %w", err)
	}
	if err := security.ValidateHostname(srv.Host); err != nil {
		return fmt.Errorf("invalid host for %q: %w", alias, err)
	}
	if err := security.ValidateUsername(srv.User); err != nil {
		return fmt.Errorf("invalid user for %q: %w", alias, err)
	}
	if err := security.ValidatePort(srv.Port); err != nil {
		return fmt.Errorf("invalid port for %q: %w", alias, err)
	}
	if srv.DefaultRemotePath != "" {
		if err := security.ValidateRemotePath(srv.DefaultRemotePath); err != nil {
			return fmt.Errorf("invalid default remote path for %q: %w", alias, err)
		}
	}
	return nil
}
