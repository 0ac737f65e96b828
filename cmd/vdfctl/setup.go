package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronosvdf/wesolowski/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the default vdfctl configuration",
	Long:  "Writes a default config.json to the configuration directory, if one doesn't already exist.",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := resolveConfigDir()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg, err := config.Load(dir)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		fmt.Printf("Configuration ready at %s\n", config.Path(dir))
		fmt.Printf("  store path:       %s\n", cfg.StorePath)
		fmt.Printf("  http listen on:   %s\n", cfg.HTTPListenOn)
		fmt.Printf("  grpc listen on:   %s\n", cfg.GRPCListenOn)
		fmt.Printf("  worker pool size: %d\n", cfg.WorkerPoolSize)
	},
}
