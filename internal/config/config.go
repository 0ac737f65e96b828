// Package config manages vdfctl's on-disk JSON configuration, using a
// load-or-create-default pattern: the first run writes a default
// config.json, later runs read it back.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the config file's name inside its directory.
const FileName = "config.json"

// Config holds everything vdfctl needs to run the challenge store, the
// timelord worker pool, and the HTTP/gRPC surfaces.
type Config struct {
	StorePath            string `json:"store_path"`
	HTTPListenOn         string `json:"http_listen_on"`
	GRPCListenOn         string `json:"grpc_listen_on"`
	WorkerPoolSize       int    `json:"worker_pool_size"`
	DefaultTimeParameter uint64 `json:"default_time_parameter"`
	LogLevel             string `json:"log_level"`
	Version              int    `json:"version"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// Default returns a conservative configuration rooted at dir.
func Default(dir string) *Config {
	now := currentTimestamp()
	return &Config{
		StorePath:            filepath.Join(dir, "challenges"),
		HTTPListenOn:         "127.0.0.1:8383",
		GRPCListenOn:         "127.0.0.1:8384",
		WorkerPoolSize:       2,
		DefaultTimeParameter: 1_000_000,
		LogLevel:             "info",
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Dir returns the default configuration directory, $HOME/.vdfctl.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".vdfctl"), nil
}

// Path returns the full path to the config file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the config file at dir, creating and saving a default one
// the first time dir doesn't contain one.
func Load(dir string) (*Config, error) {
	path := Path(dir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		def := Default(dir)
		if err := ensureDir(dir); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}
		if err := Save(dir, def); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
		return def, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to dir, creating the directory if needed.
func Save(dir string, cfg *Config) error {
	if err := ensureDir(dir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg.UpdatedAt = currentTimestamp()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o700)
}

func currentTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
