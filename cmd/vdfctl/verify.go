package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronosvdf/wesolowski"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [t] [seed-hex] [proof-hex]",
	Short: "Verify a Wesolowski VDF proof",
	Long: `Verify checks that a 772-byte hex-encoded proof satisfies the
Wesolowski relation for the given time parameter t and 32-byte hex seed.`,
	Args: cobra.ExactArgs(3),
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

		proofBytes, err := hex.DecodeString(args[2])
		if err != nil {
			fmt.Printf("Error: invalid proof hex: %v\n", err)
			return
		}

		proof, err := vdf.DecodeProof(proofBytes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		param := &vdf.SerializedParameter{X: x, T: t}
		if err := vdf.VerifySerialized(param, proof); err != nil {
			fmt.Printf("INVALID: %v\n", err)
			return
		}

		fmt.Println("VALID")
	},
}
