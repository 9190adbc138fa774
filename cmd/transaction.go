package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var txJSONFlag bool

var txCmd = &cobra.Command{
	Use:     "tx [transaction-id]",
	Aliases: []string{"transaction"},
	Short:   "Show the receipt of a transaction",
	Long: `Look up a transaction by id and print its receipt.

Examples:
  fuelkit tx 0x2b3c...           # Human readable receipt
  fuelkit tx 0x2b3c... --json    # Transaction and receipt as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runTx,
}

func init() {
	txCmd.Flags().BoolVar(&txJSONFlag, "json", false, "print the raw result as JSON")
}

func runTx(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	txID := args[0]

	network, err := currentNetwork()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	log.Debug("fetching transaction", zap.String("id", txID), zapNetwork(network))
	result, err := newClient().GetTransaction(ctx, txID, network.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch transaction: %w", err)
	}

	if result == nil {
		fmt.Fprintf(out, "🔍 Transaction %s not found on %s\n", txID, networkLabel(network))
		return nil
	}

	if txJSONFlag {
		return printJSON(cmd, result)
	}

	r := result.Receipt
	status := color.YellowString("unknown")
	switch {
	case r.IsSuccessful:
		status = color.GreenString("success")
	case r.IsFailed:
		status = color.RedString("failed")
	}

	fmt.Fprintln(out, "📄 Transaction Receipt")
	fmt.Fprintf(out, "   Hash:     %s\n", r.TransactionHash)
	fmt.Fprintf(out, "   Status:   %s\n", status)
	fmt.Fprintf(out, "   Gas used: %d\n", r.GasLimit)
	fmt.Fprintf(out, "   Fee:      %.9f %s\n", r.GasCostInCrypto, r.GasCostCryptoCurrency)
	fmt.Fprintf(out, "   Network:  %s\n", networkLabel(network))
	fmt.Fprintf(out, "   🔗 %s\n", r.TransactionLink)
	return nil
}
