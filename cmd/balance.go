package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	balanceAssetFlag    string
	balanceDecimalsFlag int32
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check the balance of an account",
	Long: `Check the balance an account holds of one asset.

The asset defaults to the network's base asset (ETH, 9 decimals).

Examples:
  fuelkit balance 0x1b4b...                       # ETH balance
  fuelkit balance 0x1b4b... --asset 0x... -d 6    # Balance of another asset`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&balanceAssetFlag, "asset", "", "asset id (default: the network base asset)")
	balanceCmd.Flags().Int32VarP(&balanceDecimalsFlag, "decimals", "d", 9, "decimals of the asset")
}

func runBalance(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	address := args[0]

	network, err := currentNetwork()
	if err != nil {
		return err
	}

	assetID := balanceAssetFlag
	if assetID == "" {
		assetID = network.BaseAssetID
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	log.Debug("fetching balance", zap.String("address", address), zap.String("asset", assetID), zapNetwork(network))
	balance, err := newClient().GetBalance(ctx, address, assetID, network.ID, balanceDecimalsFlag)
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	symbol := "ETH"
	if assetID != network.BaseAssetID {
		symbol = "units"
	}

	fmt.Fprintln(out, "💰 Balance")
	fmt.Fprintf(out, "🌐 Network: %s\n", networkLabel(network))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "   %s %s\n", balance, symbol)
	fmt.Fprintf(out, "   📍 Address: %s\n", address)
	fmt.Fprintf(out, "   🔗 %s\n", network.WalletLink(address))
	return nil
}
