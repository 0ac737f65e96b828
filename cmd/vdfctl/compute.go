package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronosvdf/wesolowski"
)

var computeCmd = &cobra.Command{
	Use:   "compute [t] [seed-hex]",
	Short: "Compute a Wesolowski VDF proof",
	Long: `Compute evaluates a Wesolowski verifiable delay function over the
trusted 2048-bit RSA modulus for t sequential squarings, given a
32-byte hex-encoded seed, and prints the 772-byte serialized proof as hex.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid t: %v\n", err)
			return
		}

		x, err := hex.DecodeString(args[1])
		if err != nil {
			fmt.Printf("Error: invalid seed hex: %v\n", err)
			return
		}

		proof, err := vdf.Compute(t, x)
		if err != nil {
			fmt.Printf("Error computing proof: %v\n", err)
			return
		}

		fmt.Println(hex.EncodeToString(vdf.EncodeProof(proof)))
	},
}
