package cmd

import (
	"fmt"

	"github.com/chinmay1088/fuelkit/api"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Print explorer links",
	Long: `Print block explorer links for transactions and accounts.

Examples:
  fuelkit link tx 0x2b3c...            # Transaction page
  fuelkit link wallet 0x1b4b... -n main # Account page on mainnet`,
}

var linkTxCmd = &cobra.Command{
	Use:   "tx [transaction-id]",
	Short: "Explorer link of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := currentNetwork()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), api.GetTransactionLink(args[0], network.ID))
		return nil
	},
}

var linkWalletCmd = &cobra.Command{
	Use:     "wallet [address]",
	Aliases: []string{"account"},
	Short:   "Explorer link of an account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := currentNetwork()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), api.GetWalletLink(args[0], network.ID))
		return nil
	},
}

func init() {
	linkCmd.AddCommand(linkTxCmd)
	linkCmd.AddCommand(linkWalletCmd)
}
