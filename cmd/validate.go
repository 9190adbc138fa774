package cmd

import (
	"errors"
	"fmt"

	"github.com/chinmay1088/fuelkit/chains/fuel"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errInvalidAddress = errors.New("address is not valid")

var validateCmd = &cobra.Command{
	Use:   "validate [address]",
	Short: "Check whether an address is a valid Fuel address",
	Long: `Check whether an address is a valid Fuel address.

Accepted forms are 0x followed by 64 hex characters and legacy fuel1 bech32m
addresses. The command exits with a non-zero status for invalid input.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	input := args[0]

	if !newClient().IsValidWalletAddress(input) {
		fmt.Fprintf(out, "❌ %s\n", color.RedString("invalid"))
		return errInvalidAddress
	}

	fmt.Fprintf(out, "✅ %s\n", color.GreenString("valid"))

	// show both encodings
	addr, err := fuel.NewAddress(input)
	if err != nil {
		return nil
	}
	fmt.Fprintf(out, "   b256:   %s\n", addr.String())
	if b32, err := addr.Bech32(); err == nil {
		fmt.Fprintf(out, "   bech32: %s\n", b32)
	}
	return nil
}
