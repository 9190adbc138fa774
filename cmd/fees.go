package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var feesJSONFlag bool

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Estimate transfer fees",
	Long: `Estimate the fee of a simple transfer from the network's fee parameters.

Examples:
  fuelkit fees              # Fee tiers on the default network
  fuelkit fees -n main      # Fee tiers on mainnet
  fuelkit fees --json       # Machine readable output`,
	Args: cobra.NoArgs,
	RunE: runFees,
}

func init() {
	feesCmd.Flags().BoolVar(&feesJSONFlag, "json", false, "print the estimate as JSON")
}

func runFees(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	network, err := currentNetwork()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	fees, err := newClient().GetFeeStats(ctx, network.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch fee parameters: %w", err)
	}

	if feesJSONFlag {
		return printJSON(cmd, fees)
	}

	fmt.Fprintf(out, "⛽ Fee estimate (%s)\n", networkLabel(network))
	fmt.Fprintf(out, "   Base:     %.18f %s\n", fees.BaseFee, fees.Currency)
	fmt.Fprintf(out, "   Low:      %.18f %s\n", fees.LowFeeCharged, fees.Currency)
	fmt.Fprintf(out, "   Standard: %.18f %s\n", fees.StandardFeeCharged, fees.Currency)
	fmt.Fprintf(out, "   Fast:     %.18f %s\n", fees.FastFeeCharged, fees.Currency)
	fmt.Fprintf(out, "   Max:      %.18f %s\n", fees.MaxFeeCharged, fees.Currency)
	return nil
}
