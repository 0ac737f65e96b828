package main

import (
	"fmt"

	"github.com/chronosvdf/wesolowski/internal/config"
)

func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving default config directory: %w", err)
	}
	return dir, nil
}
