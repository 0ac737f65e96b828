package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "vdfctl",
	Short: "vdfctl - a Wesolowski verifiable delay function prover and verifier",
	Long: `vdfctl computes and verifies Wesolowski verifiable delay function
proofs over a fixed 2048-bit RSA modulus, and can run a timelord worker
pool behind an HTTP and gRPC service surface.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (defaults to $HOME/.vdfctl)")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	Execute()
}
