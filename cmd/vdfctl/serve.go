package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronosvdf/wesolowski/internal/api"
	"github.com/chronosvdf/wesolowski/internal/config"
	"github.com/chronosvdf/wesolowski/internal/store"
	"github.com/chronosvdf/wesolowski/internal/timelord"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the timelord worker pool behind the HTTP and gRPC service surface",
	Long: `Serve opens the challenge store, starts the timelord worker pool,
and listens for HTTP and gRPC requests until interrupted.`,
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

		st, err := store.Open(cfg.StorePath)
		if err != nil {
			fmt.Printf("Error opening challenge store: %v\n", err)
			return
		}
		defer st.Close()

		tlConfig := timelord.DefaultConfig()
		tlConfig.WorkerPoolSize = cfg.WorkerPoolSize
		if cmd.Flags().Changed("workers") {
			workers, _ := cmd.Flags().GetInt("workers")
			tlConfig.WorkerPoolSize = workers
		}
		tl := timelord.New(tlConfig, st)
		tl.Start()
		defer tl.Stop()

		httpServer := api.NewServer(cfg.HTTPListenOn, st, tl)
		go func() {
			fmt.Printf("HTTP API listening on %s\n", cfg.HTTPListenOn)
			if err := httpServer.ListenAndServe(); err != nil {
				fmt.Printf("HTTP server stopped: %v\n", err)
			}
		}()

		grpcServer := api.NewGRPCServer()
		go func() {
			fmt.Printf("gRPC server listening on %s\n", cfg.GRPCListenOn)
			if err := grpcServer.Serve(cfg.GRPCListenOn); err != nil {
				fmt.Printf("gRPC server stopped: %v\n", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		fmt.Println("shutting down...")
		grpcServer.Stop()
		time.Sleep(100 * time.Millisecond)
	},
}

func init() {
	serveCmd.Flags().Int("workers", 2, "Number of timelord worker threads (overrides worker_pool_size from the config when set)")
}
