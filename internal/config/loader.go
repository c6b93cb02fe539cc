package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	configDir  = ".dbmeta"
	configFile = "config"
	configType = "yaml"
	envPrefix  = "DBMETA"
)

// Load reads the configuration from ~/.dbmeta/config.yaml.
// Returns an empty config if the file does not exist.
func Load() (*Config, error) {
	dir, err := configDirPath()
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.yaml from dir. DBMETA_* environment variables
// override preferences (DBMETA_PREFERENCES_LOG_LEVEL and so on).
func LoadFrom(dir string) (*Config, error) {
	v := newViper(dir)

	cfg := &Config{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configFile)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("preferences.theme", "default")
	v.SetDefault("preferences.default_connection", "")
	v.SetDefault("preferences.log_level", "info")

	return v
}

// Save writes the configuration to ~/.dbmeta/config.yaml.
func Save(cfg *Config) error {
	dir, err := configDirPath()
	if err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	return SaveTo(dir, cfg)
}

// SaveTo writes cfg to dir/config.yaml. Passwords are never written to the
// file; see SaveConnection.
func SaveTo(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	conns := make([]Connection, len(cfg.Connections))
	for i, c := range cfg.Connections {
		c.Password = ""
		conns[i] = c
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("connections", conns)
	v.Set("preferences", cfg.Preferences)

	path := filepath.Join(dir, configFile+"."+configType)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SaveConnection assigns conn an ID if it has none, moves its password to
// the OS keyring, adds it to cfg and writes cfg to ~/.dbmeta. A saved
// connection with the same name is replaced and its stored password dropped.
func SaveConnection(cfg *Config, conn Connection) error {
	dir, err := configDirPath()
	if err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	return SaveConnectionTo(dir, cfg, conn)
}

// SaveConnectionTo is SaveConnection writing to dir.
func SaveConnectionTo(dir string, cfg *Config, conn Connection) error {
	existing, replace := cfg.Connection(conn.Name)
	if replace && existing.ID != "" {
		if err := DeletePassword(existing.ID); err != nil {
			return err
		}
		if conn.ID == "" {
			conn.ID = existing.ID
		}
	}
	if conn.ID == "" {
		conn.ID = uuid.NewString()
	}
	if err := StorePassword(conn); err != nil {
		return err
	}
	conn.Password = ""

	if replace {
		*existing = conn
	} else {
		cfg.AddConnection(conn)
	}
	return SaveTo(dir, cfg)
}

// DefaultConnection returns the default connection from config, or the first one.
func DefaultConnection(cfg *Config) *Connection {
	if len(cfg.Connections) == 0 {
		return nil
	}

	if cfg.Preferences.DefaultConnection != "" {
		if conn, ok := cfg.Connection(cfg.Preferences.DefaultConnection); ok {
			return conn
		}
	}

	return &cfg.Connections[0]
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}
